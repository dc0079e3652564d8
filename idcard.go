// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package idcard validates and decodes Chinese resident identity-card
// numbers: check character verification, 15 to 18 digit upgrade, and the
// birth date, lunar date, zodiac, sex and address encoded in the digits.
package idcard

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/complex-gh/idcard_go/internal/checksum"
)

// Constants
const (
	// NumLen is the length of a current identity number
	NumLen = 18

	// BodyLen is the number of digits covered by the check character
	BodyLen = checksum.BodyLen

	// LegacyLen is the length of a first-generation identity number
	LegacyLen = 15

	// RegionLen is the length of the administrative division prefix
	RegionLen = 6

	// century inserted when upgrading a legacy number
	legacyCentury = "19"
)

// Status represents the result of a parse or decode operation
type Status int

const (
	// StatusOK indicates success
	StatusOK Status = iota

	// StatusErrLength indicates the number has an unsupported length
	StatusErrLength

	// StatusErrDigits indicates a non-digit where a digit is required
	StatusErrDigits

	// StatusErrChecksum indicates check character mismatch
	StatusErrChecksum

	// StatusErrDate indicates the encoded birth date is not a calendar date
	StatusErrDate

	// StatusErrRange indicates a date outside the supported lunar calendar
	StatusErrRange
)

// Error returns the error message for the status
func (s Status) Error() string {
	switch s {
	case StatusOK:
		return "success"
	case StatusErrLength:
		return "wrong number of characters"
	case StatusErrDigits:
		return "unexpected non-digit character"
	case StatusErrChecksum:
		return "check character mismatch"
	case StatusErrDate:
		return "invalid birth date"
	case StatusErrRange:
		return "date outside supported lunar calendar range"
	default:
		return "unknown error"
	}
}

// ErrInvalidDate is wrapped by every birth date parse failure
var ErrInvalidDate error = StatusErrDate

// EndNum computes the check character from the first 17 digits of id.
// It returns "" if id does not start with 17 decimal digits.
func EndNum(id string) string {
	c, ok := checksum.Compute(id)
	if !ok {
		return ""
	}
	return string(c)
}

// CheckIDCard reports whether id is 17 digits followed by its correct check
// character. A lowercase 'x' is accepted.
func CheckIDCard(id string) bool {
	if len(id) != NumLen || detectFormat(id) != FormatFull {
		return false
	}
	return checksum.Valid(id, id[BodyLen])
}

// RepairIDCard completes a 17-digit body with its check character or
// replaces a wrong check character of an 18-character number. Any other
// input is returned unchanged.
func RepairIDCard(id string) string {
	switch detectFormat(id) {
	case FormatBody:
		return id + EndNum(id)
	case FormatFull:
		return id[:BodyLen] + EndNum(id)
	default:
		return id
	}
}

// Num15To18 upgrades a 15-digit legacy number by inserting the 19xx
// century after the region code and appending the check character.
// Other inputs are handed to RepairIDCard.
func Num15To18(id string) string {
	if detectFormat(id) == FormatLegacy {
		return RepairIDCard(id[:RegionLen] + legacyCentury + id[RegionLen:])
	}
	return RepairIDCard(id)
}

// Normalize folds user input into the canonical ASCII form: full-width
// digits and letters are mapped through NFKC, blanks and hyphens are
// removed and a trailing x is upper-cased.
func Normalize(s string) string {
	s = norm.NFKC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '-':
			continue
		}
		b.WriteRune(r)
	}

	out := b.String()
	if n := len(out); n > 0 && out[n-1] == 'x' {
		out = out[:n-1] + "X"
	}
	return out
}
