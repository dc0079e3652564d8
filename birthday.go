// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package idcard

import (
	"fmt"
	"strconv"
	"time"

	"github.com/complex-gh/idcard_go/lang"
)

const (
	// animalOffset aligns lunar year % 12 with the Rat-first cycle
	// (1984 % 12 == 4 is a Rat year)
	animalOffset = 4
)

// Birthday is everything derived from the encoded birth date
type Birthday struct {
	Date      string    `json:"date"`
	Lunar     string    `json:"lunar"`
	LunarLeap bool      `json:"lunar_leap,omitempty"`
	Year      string    `json:"year"`
	Month     string    `json:"month"`
	Day       string    `json:"day"`
	Week      string    `json:"week"`
	Zodiac    string    `json:"zodiac,omitempty"`
	ZodiacZh  string    `json:"zodiac_zh"`
	Time      time.Time `json:"-"`
}

// BirthDay decodes the birth date of id with the default decoder
func BirthDay(id string) (*Birthday, error) {
	return Default().BirthDay(id)
}

// BirthDay decodes the birth date of id. Invalid dates and lunar conversion
// failures are returned as errors; no default is substituted.
func (d *Decoder) BirthDay(id string) (*Birthday, error) {
	year, month, day := BirthYear(id), BirthMonth(id), BirthDayOfMonth(id)
	date := year + "/" + month + "/" + day

	t, err := parseSolar(year, month, day)
	if err != nil {
		return nil, err
	}

	ld, err := d.lunar.SolarToLunar(t)
	if err != nil {
		return nil, fmt.Errorf("lunar date of %s: %w", date, err)
	}

	sign, _ := d.zodiac.Sign(int(t.Month()), t.Day(), d.lang.Tag())

	return &Birthday{
		Date:      date,
		Lunar:     ld.String(),
		LunarLeap: ld.Leap,
		Year:      year,
		Month:     month,
		Day:       day,
		Week:      weekday(t, d.lang),
		Zodiac:    sign,
		ZodiacZh:  zodiacAnimal(ld.Year, d.lang),
		Time:      t,
	}, nil
}

// parseSolar validates the year/month/day fields as a Gregorian date
func parseSolar(year, month, day string) (time.Time, error) {
	date := year + "/" + month + "/" + day
	if len(year) != 4 || len(month) != 2 || len(day) != 2 || leadingDigits(year+month+day) != 8 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	dd, _ := strconv.Atoi(day)

	t := time.Date(y, time.Month(m), dd, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != dd {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t, nil
}

// weekday labels t with a Monday-first index
func weekday(t time.Time, l *lang.Language) string {
	return l.Weekday((int(t.Weekday()) + 6) % 7)
}

// zodiacAnimal maps a lunar year onto the 12-year animal cycle
func zodiacAnimal(lunarYear int, l *lang.Language) string {
	i := lunarYear%lang.NumAnimals - animalOffset
	if i < 0 {
		i += lang.NumAnimals
	}
	return l.Animal(i)
}
