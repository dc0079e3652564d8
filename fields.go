// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package idcard

// field offsets within an 18-character number
const (
	yearStart   = 6
	monthStart  = 10
	dayStart    = 12
	dayEnd      = 14
	genderIndex = 16
)

func field(id string, from, to int) string {
	if len(id) < to {
		return ""
	}
	return id[from:to]
}

// RegionCode returns the 6-character division code, or "" if id is shorter
func RegionCode(id string) string {
	return field(id, 0, RegionLen)
}

// BirthYear returns the 4-digit birth year of an 18-character number
func BirthYear(id string) string {
	return field(id, yearStart, monthStart)
}

// BirthMonth returns the 2-digit birth month of an 18-character number
func BirthMonth(id string) string {
	return field(id, monthStart, dayStart)
}

// BirthDayOfMonth returns the 2-digit birth day of an 18-character number
func BirthDayOfMonth(id string) string {
	return field(id, dayStart, dayEnd)
}

// GenderDigit returns the parity digit at index 16
func GenderDigit(id string) (int, bool) {
	if len(id) <= genderIndex {
		return 0, false
	}
	c := id[genderIndex]
	if c < '0' || c > '9' {
		return 0, false
	}
	return int(c - '0'), true
}

// isMale reports an odd gender digit; missing digits count as even
func isMale(id string) bool {
	d, ok := GenderDigit(id)
	return ok && d%2 == 1
}
