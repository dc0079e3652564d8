// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package idcard

import (
	"fmt"
	"time"

	"github.com/6tail/lunar-go/calendar"
	"golang.org/x/text/language"

	"github.com/complex-gh/idcard_go/lang"
)

// ZodiacResolver names the western zodiac sign of a month and day.
// ok is false if month/day is not a calendar date.
type ZodiacResolver interface {
	Sign(month, day int, tag language.Tag) (sign string, ok bool)
}

// signYear is any leap year, so Feb 29 is accepted
const signYear = 2000

// calendarZodiac is the default ZodiacResolver backed by lunar-go
type calendarZodiac struct{}

func (calendarZodiac) Sign(month, day int, tag language.Tag) (string, bool) {
	i, err := signIndex(month, day)
	if err != nil {
		return "", false
	}
	return lang.MatchTag(tag).Sign(i), true
}

// signIndex returns the Aries-first sign index of month/day
func signIndex(month, day int) (i int, err error) {
	if month < 1 || month > 12 || day < 1 ||
		day > time.Date(signYear, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day() {
		return 0, fmt.Errorf("%w: %02d/%02d", ErrInvalidDate, month, day)
	}

	defer func() {
		if r := recover(); r != nil {
			i, err = 0, fmt.Errorf("zodiac of %02d/%02d: %v", month, day, r)
		}
	}()

	// lunar-go names signs without the trailing 座
	name := calendar.NewSolarFromYmd(signYear, month, day).GetXingZuo()
	if i = lang.Default().FindSign(name + "座"); i < 0 {
		return 0, fmt.Errorf("zodiac of %02d/%02d: unknown sign %q", month, day, name)
	}
	return i, nil
}
