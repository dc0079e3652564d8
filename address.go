// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package idcard

import (
	"strings"

	"github.com/complex-gh/idcard_go/region"
)

// addressSep joins the province, city and district names
const addressSep = "-"

// RegionLookup resolves a 6-digit division code
type RegionLookup interface {
	Lookup(code string) (region.Entry, bool)
}

// AddressRecord is the decoded birthplace of an identity number
type AddressRecord struct {
	Address  string `json:"address"`
	Province string `json:"province"`
	City     string `json:"city"`
	District string `json:"area"`
	All      string `json:"all"`
}

// Address decodes the birthplace of id with the default decoder
func Address(id string) (*AddressRecord, bool) {
	return Default().Address(id)
}

// Address looks up the division code prefix of id. ok is false if the code
// is not in the region table; that is not an error.
func (d *Decoder) Address(id string) (*AddressRecord, bool) {
	code := RegionCode(id)
	if code == "" {
		return nil, false
	}
	e, ok := d.regions.Lookup(code)
	if !ok {
		return nil, false
	}
	return &AddressRecord{
		Address:  e.Address,
		Province: e.Province,
		City:     e.City,
		District: e.District,
		All:      strings.Join(e.Parts(), addressSep),
	}, true
}
