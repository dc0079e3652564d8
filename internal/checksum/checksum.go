// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package checksum implements the ISO 7064 MOD 11-2 check character used by
// 18-digit resident identity numbers.
package checksum

const (
	// BodyLen is the number of weighted digits preceding the check character
	BodyLen = 17

	// modulus of the weighted sum
	modulus = 11
)

// weights[i] is 2^(17-i) mod 11
var weights = [BodyLen]int{7, 9, 10, 5, 8, 4, 2, 1, 6, 3, 7, 9, 10, 5, 8, 4, 2}

// parity maps sum%11 to the check character
var parity = [modulus]byte{'1', '0', 'X', '9', '8', '7', '6', '5', '4', '3', '2'}

// Sum returns the weighted sum of the first 17 characters of body.
// ok is false if body has fewer than 17 leading decimal digits.
func Sum(body string) (sum int, ok bool) {
	if len(body) < BodyLen {
		return 0, false
	}
	for i := 0; i < BodyLen; i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		sum += int(c-'0') * weights[i]
	}
	return sum, true
}

// Compute returns the check character for the first 17 digits of body
func Compute(body string) (byte, bool) {
	sum, ok := Sum(body)
	if !ok {
		return 0, false
	}
	return parity[sum%modulus], true
}

// Valid reports whether c (case-insensitive) is the check character of body
func Valid(body string, c byte) bool {
	want, ok := Compute(body)
	if !ok {
		return false
	}
	if c == 'x' {
		c = 'X'
	}
	return c == want
}
