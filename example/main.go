// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"fmt"

	idcard "github.com/complex-gh/idcard_go"
	"github.com/complex-gh/idcard_go/lang"
)

func main() {
	// Upgrade a first-generation number
	id := idcard.Num15To18("411403960314001")
	fmt.Printf("Upgraded: %s (valid: %t)\n\n", id, idcard.CheckIDCard(id))

	// Decode everything with the default Chinese labels
	info, err := idcard.All("110226198501272116")
	if err != nil {
		fmt.Printf("Error decoding: %v\n", err)
		return
	}
	fmt.Printf("Sex:      %s\n", info.Sex)
	fmt.Printf("Birthday: %s (%s)\n", info.BirthDay.Date, info.BirthDay.Week)
	fmt.Printf("Lunar:    %s %s\n", info.BirthDay.Lunar, info.BirthDay.ZodiacZh)
	fmt.Printf("Zodiac:   %s\n", info.BirthDay.Zodiac)
	if info.Address != nil {
		fmt.Printf("Address:  %s\n", info.Address.All)
	}

	// Same number with English labels
	d := idcard.New(idcard.WithLanguage(lang.Match("en")))
	bd, err := d.BirthDay("110226198501272116")
	if err != nil {
		panic(err)
	}
	fmt.Printf("\n%s, %s, year of the %s\n", bd.Week, bd.Zodiac, bd.ZodiacZh)
}
