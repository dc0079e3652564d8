// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package idcard

import (
	"sync"

	"github.com/complex-gh/idcard_go/lang"
	"github.com/complex-gh/idcard_go/region"
)

// Decoder derives birthday, sex and address records from identity numbers.
// Its collaborators are fixed at construction; a Decoder is safe for
// concurrent use.
type Decoder struct {
	regions RegionLookup
	lunar   LunarConverter
	zodiac  ZodiacResolver
	lang    *lang.Language
}

// Option configures a Decoder
type Option func(*Decoder)

// WithRegions replaces the packaged region table
func WithRegions(r RegionLookup) Option {
	return func(d *Decoder) {
		if r != nil {
			d.regions = r
		}
	}
}

// WithLunar replaces the lunar calendar conversion
func WithLunar(c LunarConverter) Option {
	return func(d *Decoder) {
		if c != nil {
			d.lunar = c
		}
	}
}

// WithZodiac replaces the zodiac sign lookup
func WithZodiac(z ZodiacResolver) Option {
	return func(d *Decoder) {
		if z != nil {
			d.zodiac = z
		}
	}
}

// WithLanguage selects the label set for weekdays, signs, animals and sexes
func WithLanguage(l *lang.Language) Option {
	return func(d *Decoder) {
		if l != nil {
			d.lang = l
		}
	}
}

// New creates a decoder. Unset collaborators default to the packaged region
// table, the lunar-go calendar, the built-in zodiac table and Simplified
// Chinese labels.
func New(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	if d.regions == nil {
		d.regions = region.Default()
	}
	if d.lunar == nil {
		d.lunar = calendarConverter{}
	}
	if d.zodiac == nil {
		d.zodiac = calendarZodiac{}
	}
	if d.lang == nil {
		d.lang = lang.Default()
	}
	return d
}

var (
	defaultOnce    sync.Once
	defaultDecoder *Decoder
)

// Default returns the shared decoder used by the package-level functions
func Default() *Decoder {
	defaultOnce.Do(func() {
		defaultDecoder = New()
	})
	return defaultDecoder
}

// Language returns the label set of the decoder
func (d *Decoder) Language() *lang.Language {
	return d.lang
}

// Info aggregates every decoded attribute of one identity number
type Info struct {
	EndNum      string         `json:"end_num"`
	BirthDay    *Birthday      `json:"birthday"`
	CheckIDCard bool           `json:"check"`
	Sex         string         `json:"sex"`
	Address     *AddressRecord `json:"address"`
}

// Sex returns the sex label of id with the default decoder
func Sex(id string) string {
	return Default().Sex(id)
}

// Sex returns the male label for an odd gender digit, the female label
// otherwise
func (d *Decoder) Sex(id string) string {
	if isMale(id) {
		return d.lang.Male()
	}
	return d.lang.Female()
}

// All decodes id with the default decoder
func All(id string) (*Info, error) {
	return Default().All(id)
}

// All decodes every attribute of id. The input is not validated beyond what
// each decoder does; a birth date error is returned as is.
func (d *Decoder) All(id string) (*Info, error) {
	bd, err := d.BirthDay(id)
	if err != nil {
		return nil, err
	}
	addr, _ := d.Address(id)
	return &Info{
		EndNum:      EndNum(id),
		BirthDay:    bd,
		CheckIDCard: CheckIDCard(id),
		Sex:         d.Sex(id),
		Address:     addr,
	}, nil
}
