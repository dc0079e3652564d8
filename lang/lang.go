// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package lang holds the label sets used when rendering decoded identity
// numbers: weekdays, western zodiac signs, zodiac animals and sexes.
package lang

import (
	"golang.org/x/text/language"
)

const (
	// NumWeekdays is the number of weekday labels, Monday first
	NumWeekdays = 7

	// NumSigns is the number of western zodiac signs, Aries first
	NumSigns = 12

	// NumAnimals is the length of the zodiac animal cycle, Rat first
	NumAnimals = 12
)

// Language is a complete label set for one locale
type Language struct {
	tag      language.Tag
	name     string
	nameEn   string
	weekdays [NumWeekdays]string
	signs    [NumSigns]string
	animals  [NumAnimals]string
	male     string
	female   string
}

var (
	// languages contains all supported label sets, the default first
	languages = []*Language{zhHans, en}

	matcher = language.NewMatcher(tags())
)

var zhHans = &Language{
	tag:      language.SimplifiedChinese,
	name:     "简体中文",
	nameEn:   "Chinese (Simplified)",
	weekdays: [NumWeekdays]string{"星期一", "星期二", "星期三", "星期四", "星期五", "星期六", "星期天"},
	signs: [NumSigns]string{
		"白羊座", "金牛座", "双子座", "巨蟹座", "狮子座", "处女座",
		"天秤座", "天蝎座", "射手座", "摩羯座", "水瓶座", "双鱼座",
	},
	animals: [NumAnimals]string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"},
	male:    "男",
	female:  "女",
}

var en = &Language{
	tag:      language.English,
	name:     "English",
	nameEn:   "English",
	weekdays: [NumWeekdays]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"},
	signs: [NumSigns]string{
		"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
		"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
	},
	animals: [NumAnimals]string{
		"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
		"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
	},
	male:   "Male",
	female: "Female",
}

func tags() []language.Tag {
	t := make([]language.Tag, len(languages))
	for i, l := range languages {
		t[i] = l.tag
	}
	return t
}

// GetNumLangs returns the number of supported languages
func GetNumLangs() int {
	return len(languages)
}

// GetLang returns a language by its index
func GetLang(i int) *Language {
	if i < 0 || i >= len(languages) {
		return nil
	}
	return languages[i]
}

// Default returns the Simplified Chinese label set
func Default() *Language {
	return languages[0]
}

// Match returns the label set that best fits the given BCP 47 tags, e.g.
// "zh-CN", "zh-Hans" or "en-US". Unparseable tags are skipped; with no
// usable tag the default language is returned.
func Match(tags ...string) *Language {
	var want []language.Tag
	for _, s := range tags {
		t, err := language.Parse(s)
		if err != nil {
			continue
		}
		want = append(want, t)
	}
	if len(want) == 0 {
		return Default()
	}
	return MatchTag(want...)
}

// MatchTag is Match for already parsed tags
func MatchTag(tags ...language.Tag) *Language {
	_, i, _ := matcher.Match(tags...)
	return languages[i]
}

// Tag returns the BCP 47 tag of the language
func (l *Language) Tag() language.Tag {
	return l.tag
}

// GetLangName returns the native name of a language
func (l *Language) GetLangName() string {
	return l.name
}

// GetLangNameEn returns the English name of a language
func (l *Language) GetLangNameEn() string {
	return l.nameEn
}

// Weekday returns the label for a Monday-first index (0 = Monday, 6 = Sunday)
func (l *Language) Weekday(i int) string {
	if i < 0 || i >= NumWeekdays {
		return ""
	}
	return l.weekdays[i]
}

// Sign returns the zodiac sign label for an Aries-first index
func (l *Language) Sign(i int) string {
	if i < 0 || i >= NumSigns {
		return ""
	}
	return l.signs[i]
}

// Animal returns the zodiac animal label for a Rat-first index
func (l *Language) Animal(i int) string {
	if i < 0 || i >= NumAnimals {
		return ""
	}
	return l.animals[i]
}

// Male returns the label for the male sex
func (l *Language) Male() string {
	return l.male
}

// Female returns the label for the female sex
func (l *Language) Female() string {
	return l.female
}

// FindSign finds the Aries-first index of a zodiac sign label, or -1
func (l *Language) FindSign(label string) int {
	for i, s := range l.signs {
		if s == label {
			return i
		}
	}
	return -1
}
