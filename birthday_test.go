// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package idcard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complex-gh/idcard_go/lang"
)

func TestBirthDay(t *testing.T) {
	bd, err := BirthDay("110226198501272116")
	require.NoError(t, err)

	assert.Equal(t, "1985/01/27", bd.Date)
	assert.Equal(t, "1984/12/07", bd.Lunar)
	assert.False(t, bd.LunarLeap)
	assert.Equal(t, "1985", bd.Year)
	assert.Equal(t, "01", bd.Month)
	assert.Equal(t, "27", bd.Day)
	assert.Equal(t, "星期天", bd.Week)
	assert.Equal(t, "水瓶座", bd.Zodiac)
	assert.Equal(t, "鼠", bd.ZodiacZh)
	assert.Equal(t, time.Date(1985, 1, 27, 0, 0, 0, 0, time.UTC), bd.Time)
}

// The animal follows the lunar year: a January 1985 birth still belongs
// to the 1984 Rat year, not the 1985 Ox year.
func TestBirthDayAnimalUsesLunarYear(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		animal string
	}{
		{"before spring festival 1985", "110226198501272116", "鼠"},
		{"before spring festival 1990", RepairIDCard("11010119900101000"), "蛇"},
		{"after spring festival 1996", "411403199603140010", "鼠"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd, err := BirthDay(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.animal, bd.ZodiacZh)
		})
	}
}

func TestBirthDayLeapMonth(t *testing.T) {
	bd, err := BirthDay(RepairIDCard("11010120200523000"))
	require.NoError(t, err)
	assert.Equal(t, "2020/04/01", bd.Lunar)
	assert.True(t, bd.LunarLeap)
	assert.Equal(t, "星期六", bd.Week)
	assert.Equal(t, "双子座", bd.Zodiac)
}

func TestBirthDayInvalidDate(t *testing.T) {
	tests := []struct {
		name string
		id   string
	}{
		{"month zero", "110226198500272116"},
		{"month thirteen", "110226198513272116"},
		{"day zero", "110226198501002116"},
		{"day thirty two", "110226198501322116"},
		{"february thirtieth", "110226198502302116"},
		{"not a leap year", "110226198502292116"},
		{"letters in date", "1102261985ab272116"},
		{"too short", "11022619"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bd, err := BirthDay(tt.id)
			assert.Nil(t, bd)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestBirthDayLeapDay(t *testing.T) {
	bd, err := BirthDay("330106198802290043")
	require.NoError(t, err)
	assert.Equal(t, "1988/02/29", bd.Date)
	assert.Equal(t, "星期一", bd.Week)
	assert.Equal(t, "双鱼座", bd.Zodiac)
}

func TestBirthDayOutOfLunarRange(t *testing.T) {
	_, err := BirthDay(RepairIDCard("11010118991231000"))
	assert.ErrorIs(t, err, StatusErrRange)
}

func TestBirthDayPropagatesConverterError(t *testing.T) {
	boom := errors.New("converter down")
	d := New(WithLunar(LunarConverterFunc(func(time.Time) (LunarDate, error) {
		return LunarDate{}, boom
	})))

	bd, err := d.BirthDay("110226198501272116")
	assert.Nil(t, bd)
	assert.ErrorIs(t, err, boom)
}

func TestBirthDayInjectedConverter(t *testing.T) {
	var got time.Time
	d := New(WithLunar(LunarConverterFunc(func(t time.Time) (LunarDate, error) {
		got = t
		return LunarDate{Year: 2023, Month: 2, Day: 9, Leap: true}, nil
	})))

	bd, err := d.BirthDay("411403199603140010")
	require.NoError(t, err)
	assert.Equal(t, time.Date(1996, 3, 14, 0, 0, 0, 0, time.UTC), got)
	assert.Equal(t, "2023/02/09", bd.Lunar)
	assert.True(t, bd.LunarLeap)
	assert.Equal(t, "兔", bd.ZodiacZh)
	assert.Equal(t, "星期四", bd.Week)
}

func TestBirthDayEnglish(t *testing.T) {
	d := New(WithLanguage(lang.Match("en")))
	bd, err := d.BirthDay("110226198501272116")
	require.NoError(t, err)
	assert.Equal(t, "Sunday", bd.Week)
	assert.Equal(t, "Aquarius", bd.Zodiac)
	assert.Equal(t, "Rat", bd.ZodiacZh)
}

func TestZodiacAnimalCycle(t *testing.T) {
	l := lang.Default()
	want := []string{"鼠", "牛", "虎", "兔", "龙", "蛇", "马", "羊", "猴", "鸡", "狗", "猪"}
	for i, animal := range want {
		assert.Equal(t, animal, zodiacAnimal(1984+i, l), "year %d", 1984+i)
		assert.Equal(t, animal, zodiacAnimal(1984+i+12, l), "year %d", 1996+i)
	}
	// years below the offset wrap around
	assert.Equal(t, "猴", zodiacAnimal(0, l))
}

func TestLunarDateString(t *testing.T) {
	assert.Equal(t, "1984/12/07", LunarDate{Year: 1984, Month: 12, Day: 7}.String())
	assert.Equal(t, "2020/04/01", LunarDate{Year: 2020, Month: 4, Day: 1, Leap: true}.String())
}
