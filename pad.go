// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package idcard

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// defaultPad is used when no pad pattern is given
const defaultPad = "0"

// LeftPad renders value and pads it on the left to length runes by tiling
// pad and keeping the tail of the tiling. Without pad, "0" is used; an
// empty pad leaves value unpadded.
//
//	LeftPad("123", 10, "abc") == "cabcabc123"
func LeftPad(value any, length int, pad ...string) string {
	s, fill := padding(value, length, pad)
	if fill == nil {
		return s
	}
	return string(fill[len(fill)-(length-utf8.RuneCountInString(s)):]) + s
}

// RightPad is LeftPad on the right, keeping the head of the tiling.
//
//	RightPad("123", 10, "abc") == "123abcabca"
func RightPad(value any, length int, pad ...string) string {
	s, fill := padding(value, length, pad)
	if fill == nil {
		return s
	}
	return s + string(fill[:length-utf8.RuneCountInString(s)])
}

// padding returns the rendered value and a tiling of the pad pattern at
// least as long as the missing runes, or nil if no padding applies
func padding(value any, length int, pad []string) (string, []rune) {
	s := fmt.Sprint(value)
	diff := length - utf8.RuneCountInString(s)
	if diff <= 0 {
		return s, nil
	}

	p := defaultPad
	if len(pad) > 0 {
		p = pad[0]
	}
	n := utf8.RuneCountInString(p)
	if n == 0 {
		return s, nil
	}

	return s, []rune(strings.Repeat(p, (diff+n-1)/n))
}
