// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package idcard

import (
	"fmt"
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// supported solar years of the lunar conversion
const (
	MinLunarYear = 1900
	MaxLunarYear = 2100
)

// LunarDate is a date in the Chinese lunisolar calendar
type LunarDate struct {
	Year  int
	Month int // 1-12
	Day   int // 1-30
	Leap  bool
}

// String formats the date as YYYY/MM/DD
func (d LunarDate) String() string {
	return fmt.Sprintf("%d/%02d/%02d", d.Year, d.Month, d.Day)
}

// LunarConverter converts a Gregorian date to the lunar calendar
type LunarConverter interface {
	SolarToLunar(t time.Time) (LunarDate, error)
}

// LunarConverterFunc adapts a function to LunarConverter
type LunarConverterFunc func(t time.Time) (LunarDate, error)

// SolarToLunar calls f(t)
func (f LunarConverterFunc) SolarToLunar(t time.Time) (LunarDate, error) {
	return f(t)
}

// calendarConverter is the default LunarConverter backed by lunar-go
type calendarConverter struct{}

func (calendarConverter) SolarToLunar(t time.Time) (d LunarDate, err error) {
	year := t.Year()
	if year < MinLunarYear || year > MaxLunarYear {
		return d, fmt.Errorf("%w: %d", StatusErrRange, year)
	}

	// lunar-go panics on dates it cannot represent
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", StatusErrRange, r)
		}
	}()

	l := calendar.NewSolarFromYmd(year, int(t.Month()), t.Day()).GetLunar()
	d = LunarDate{Year: l.GetYear(), Month: l.GetMonth(), Day: l.GetDay()}
	if d.Month < 0 {
		// negative months are leap months
		d.Month = -d.Month
		d.Leap = true
	}
	return d, nil
}
