// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package idcard

import (
	"crypto/sha256"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// characters left visible at each end by Mask
	maskHead = RegionLen
	maskTail = 4

	kdfNumIterations = 10000
	pseudonymSize    = 32
)

// Mask hides the birth date and sequence digits of id, keeping the division
// code and the last four characters: 411403********0010. Inputs too short
// to keep both ends are masked entirely.
func Mask(id string) string {
	runes := []rune(id)
	if len(runes) < maskHead+maskTail {
		return strings.Repeat("*", len(runes))
	}
	for i := maskHead; i < len(runes)-maskTail; i++ {
		runes[i] = '*'
	}
	return string(runes)
}

// Pseudonym derives a stable 32-byte key for id using PBKDF2-HMAC-SHA256.
// The number is normalized and 15-digit numbers upgraded first, so every
// spelling of the same person yields the same key for a given salt.
func Pseudonym(id string, salt []byte) []byte {
	norm := Num15To18(Normalize(id))
	return pbkdf2.Key([]byte(norm), salt, kdfNumIterations, pseudonymSize, sha256.New)
}

