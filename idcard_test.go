// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package idcard

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomBody(r *rand.Rand) string {
	b := make([]byte, BodyLen)
	for i := range b {
		b[i] = byte('0' + r.IntN(10))
	}
	return string(b)
}

func TestEndNum(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"411403199603140010", "0"},
		{"41140319960314001", "0"},
		{"110226198501272116", "6"},
		{"11010519491231002", "X"},
		{"4114031996031400", ""},
		{"4114031996031400A", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, EndNum(tt.id))
		})
	}
}

func TestCheckIDCard(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{"valid digit check", "411403199603140010", true},
		{"wrong check character", "41140319960314001X", false},
		{"valid X check", "11010519491231002X", true},
		{"valid lowercase x check", "11010519491231002x", true},
		{"X expected but digit given", "110105194912310020", false},
		{"legacy length", "411403960314001", false},
		{"body only", "41140319960314001", false},
		{"too long", "4114031996031400100", false},
		{"letter in body", "41140319960314A010", false},
		{"empty", "", false},
		{"multibyte check", "41140319960314001０", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckIDCard(tt.id))
		})
	}
}

func TestCheckIDCardDetectsCheckCharMutation(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 200 {
		valid := RepairIDCard(randomBody(r))
		require.True(t, CheckIDCard(valid), valid)

		for _, c := range "0123456789X" {
			if byte(c) == valid[BodyLen] {
				continue
			}
			mutated := valid[:BodyLen] + string(c)
			assert.False(t, CheckIDCard(mutated), mutated)
		}
	}
}

func TestRepairIDCard(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"appends to body", "41140319960314001", "411403199603140010"},
		{"replaces wrong check", "41140319960314001X", "411403199603140010"},
		{"replaces any trailing character", "41140319960314001?", "411403199603140010"},
		{"keeps correct check", "110226198501272116", "110226198501272116"},
		{"appends X", "11010519491231002", "11010519491231002X"},
		{"legacy passes through", "411403960314001", "411403960314001"},
		{"short passes through", "12345", "12345"},
		{"letters pass through", "4114031996031400A", "4114031996031400A"},
		{"empty passes through", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RepairIDCard(tt.id))
		})
	}
}

func TestRepairedBodyAlwaysChecks(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 1000 {
		body := randomBody(r)
		assert.True(t, CheckIDCard(RepairIDCard(body)), body)
	}
}

func TestNum15To18(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"legacy upgrade", "411403960314001", "411403199603140010"},
		{"body delegates to repair", "41140319960314001", "411403199603140010"},
		{"full delegates to repair", "411403199603140019", "411403199603140010"},
		{"unknown passes through", "4114039603140", "4114039603140"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Num15To18(tt.id))
		})
	}
}

func TestNum15To18Idempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for range 500 {
		legacy := randomBody(r)[:LegacyLen]
		up := Num15To18(legacy)
		require.Len(t, up, NumLen)
		assert.Equal(t, "19", up[RegionLen:RegionLen+2])
		assert.True(t, CheckIDCard(up))
		assert.Equal(t, up, RepairIDCard(up))
		assert.Equal(t, up, Num15To18(up))
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		id   string
		want Format
	}{
		{"411403960314001", FormatLegacy},
		{"41140319960314001", FormatBody},
		{"411403199603140010", FormatFull},
		{"41140319960314001X", FormatFull},
		{"41140319960314001男", FormatFull},
		{"4114031996031400", FormatUnknown},
		{"4114031996031400100", FormatUnknown},
		{"41140319960314001XX", FormatUnknown},
		{"", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.id))
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "legacy", FormatLegacy.String())
	assert.Equal(t, "body", FormatBody.String())
	assert.Equal(t, "full", FormatFull.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already canonical", "411403199603140010", "411403199603140010"},
		{"full-width digits", "４１１４０３１９９６０３１４００１０", "411403199603140010"},
		{"full-width X", "１１０１０５１９４９１２３１００２Ｘ", "11010519491231002X"},
		{"lowercase x", "11010519491231002x", "11010519491231002X"},
		{"spaces and hyphens", " 411403-19960314-0010 ", "411403199603140010"},
		{"ideographic space", "411403　19960314 0010", "411403199603140010"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestStatusError(t *testing.T) {
	for s := StatusOK; s <= StatusErrRange; s++ {
		assert.NotEqual(t, "unknown error", s.Error(), "status %d", s)
	}
	assert.Equal(t, "unknown error", Status(99).Error())
	assert.True(t, errors.Is(ErrInvalidDate, StatusErrDate))
}
