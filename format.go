// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package idcard

import "unicode/utf8"

// Format classifies the shape of an identity number string
type Format uint8

const (
	// FormatUnknown matches none of the shapes below
	FormatUnknown Format = iota

	// FormatLegacy is exactly 15 digits
	FormatLegacy

	// FormatBody is exactly 17 digits, missing the check character
	FormatBody

	// FormatFull is 17 digits followed by exactly one more character
	FormatFull
)

// String returns a short name for the format
func (f Format) String() string {
	switch f {
	case FormatLegacy:
		return "legacy"
	case FormatBody:
		return "body"
	case FormatFull:
		return "full"
	default:
		return "unknown"
	}
}

// DetectFormat reports which shape s has
func DetectFormat(s string) Format {
	return detectFormat(s)
}

func detectFormat(s string) Format {
	n := leadingDigits(s)
	switch {
	case n == LegacyLen && len(s) == LegacyLen:
		return FormatLegacy
	case n == BodyLen && len(s) == BodyLen:
		return FormatBody
	case n >= BodyLen && utf8.RuneCountInString(s[BodyLen:]) == 1:
		return FormatFull
	default:
		return FormatUnknown
	}
}

// leadingDigits counts the ASCII decimal digits at the start of s
func leadingDigits(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return i
		}
	}
	return len(s)
}

// isCheckChar reports whether c can appear as a check character
func isCheckChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == 'X' || c == 'x'
}
