// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package idcard

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/complex-gh/idcard_go/internal/checksum"
)

// Number is a validated 18-character identity number
type Number [NumLen]byte

// Parse normalizes s, upgrades a 15-digit legacy number and verifies the
// check character. Wrong check characters are not repaired.
func Parse(s string) (Number, error) {
	var n Number

	s = Normalize(s)
	if detectFormat(s) == FormatLegacy {
		s = Num15To18(s)
	}

	if utf8.RuneCountInString(s) != NumLen {
		return n, fmt.Errorf("%w: %d", StatusErrLength, utf8.RuneCountInString(s))
	}
	if len(s) != NumLen || leadingDigits(s) < BodyLen || !isCheckChar(s[BodyLen]) {
		return n, StatusErrDigits
	}
	if !checksum.Valid(s, s[BodyLen]) {
		return n, StatusErrChecksum
	}

	copy(n[:], s)
	return n, nil
}

// MustParse is Parse that panics on error, for tests and constants
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("idcard: parse %q: %v", s, err))
	}
	return n
}

// String returns the 18-character form
func (n Number) String() string {
	return string(n[:])
}

// IsZero reports whether n is the zero value
func (n Number) IsZero() bool {
	return n == Number{}
}

// Region returns the 6-digit division code
func (n Number) Region() string {
	return string(n[:RegionLen])
}

// Birth returns the encoded birth date at UTC midnight
func (n Number) Birth() (time.Time, error) {
	s := n.String()
	return parseSolar(BirthYear(s), BirthMonth(s), BirthDayOfMonth(s))
}

// Male reports an odd gender digit
func (n Number) Male() bool {
	return isMale(n.String())
}

// MarshalText implements encoding.TextMarshaler
func (n Number) MarshalText() ([]byte, error) {
	if n.IsZero() {
		return []byte{}, nil
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (n *Number) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*n = Number{}
		return nil
	}
	p, err := Parse(string(b))
	if err != nil {
		return err
	}
	*n = p
	return nil
}
