// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package cli implements the idcard subcommands.
package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"

	idcard "github.com/complex-gh/idcard_go"
)

// Usage is printed for unknown commands and -h
const Usage = `usage: idcard [flags] <command> <number>...

commands:
  check      verify the check character
  repair     complete or correct the check character
  upgrade    convert 15-digit numbers to 18 digits
  info       decode birthday, sex and address
  mask       hide birth date and sequence digits
  pseudonym  derive a salted key (needs pseudonym_salt)
  version    print the version

flags:
`

// CLI runs subcommands against one decoder
type CLI struct {
	Out     io.Writer
	Err     io.Writer
	Decoder *idcard.Decoder
	Log     *zap.Logger
	JSON    bool
	Version string

	// Salt keys the pseudonym command
	Salt []byte
}

// Run executes cmd with the given numbers and returns the exit status
func (c *CLI) Run(cmd string, args []string) int {
	if cmd == "version" {
		fmt.Fprintf(c.Out, "idcard %s\n", c.Version)
		return 0
	}

	run, ok := map[string]func(string) bool{
		"check":     c.check,
		"repair":    c.repair,
		"upgrade":   c.upgrade,
		"info":      c.info,
		"mask":      c.mask,
		"pseudonym": c.pseudonym,
	}[cmd]
	if !ok {
		fmt.Fprintf(c.Err, "idcard: unknown command %q\n", cmd)
		return 2
	}
	if len(args) == 0 {
		fmt.Fprintf(c.Err, "usage: idcard %s <number>...\n", cmd)
		return 2
	}

	status := 0
	for _, arg := range args {
		id := idcard.Normalize(arg)
		c.Log.Debug("input", zap.String("cmd", cmd), zap.String("id", idcard.Mask(id)),
			zap.Stringer("format", idcard.DetectFormat(id)))
		if !run(id) {
			status = 1
		}
	}
	return status
}

func (c *CLI) check(id string) bool {
	ok := idcard.CheckIDCard(id)
	if c.JSON {
		c.printJSON(map[string]any{"id": id, "valid": ok, "end_num": idcard.EndNum(id)})
		return ok
	}
	verdict := "ok"
	if !ok {
		verdict = "invalid"
		if want := idcard.EndNum(id); want != "" && len(id) == idcard.NumLen {
			verdict = fmt.Sprintf("invalid (check character should be %s)", want)
		}
	}
	fmt.Fprintf(c.Out, "%s  %s\n", id, verdict)
	return ok
}

func (c *CLI) repair(id string) bool {
	out := idcard.RepairIDCard(id)
	if out == id && !idcard.CheckIDCard(out) {
		c.Log.Warn("not repairable", zap.String("id", idcard.Mask(id)))
	}
	c.printValue(id, out)
	return idcard.CheckIDCard(out)
}

func (c *CLI) upgrade(id string) bool {
	out := idcard.Num15To18(id)
	c.printValue(id, out)
	return idcard.CheckIDCard(out)
}

func (c *CLI) mask(id string) bool {
	c.printValue(id, idcard.Mask(id))
	return true
}

func (c *CLI) pseudonym(id string) bool {
	if len(c.Salt) == 0 {
		fmt.Fprintf(c.Err, "idcard: pseudonym: no salt configured\n")
		return false
	}
	c.printValue(id, hex.EncodeToString(idcard.Pseudonym(id, c.Salt)))
	return true
}

func (c *CLI) info(id string) bool {
	if idcard.DetectFormat(id) == idcard.FormatLegacy {
		id = idcard.Num15To18(id)
	}
	info, err := c.Decoder.All(id)
	if err != nil {
		c.Log.Error("decode failed", zap.String("id", idcard.Mask(id)), zap.Error(err))
		fmt.Fprintf(c.Err, "idcard: %s: %v\n", id, err)
		return false
	}

	if c.JSON {
		c.printJSON(struct {
			ID string `json:"id"`
			*idcard.Info
		}{id, info})
		return true
	}

	bd := info.BirthDay
	fmt.Fprintf(c.Out, "  id:       %s\n", id)
	fmt.Fprintf(c.Out, "  valid:    %t (check character %s)\n", info.CheckIDCard, info.EndNum)
	fmt.Fprintf(c.Out, "  sex:      %s\n", info.Sex)
	fmt.Fprintf(c.Out, "  birthday: %s %s\n", bd.Date, bd.Week)
	lunar := bd.Lunar
	if bd.LunarLeap {
		lunar += " (leap)"
	}
	fmt.Fprintf(c.Out, "  lunar:    %s %s\n", lunar, bd.ZodiacZh)
	if bd.Zodiac != "" {
		fmt.Fprintf(c.Out, "  zodiac:   %s\n", bd.Zodiac)
	}
	if info.Address != nil {
		fmt.Fprintf(c.Out, "  address:  %s\n", info.Address.All)
	} else {
		c.Log.Info("region code not found", zap.String("region", idcard.RegionCode(id)))
		fmt.Fprintf(c.Out, "  address:  -\n")
	}
	return true
}

func (c *CLI) printValue(in, out string) {
	if c.JSON {
		c.printJSON(map[string]string{"input": in, "output": out})
		return
	}
	fmt.Fprintln(c.Out, out)
}

func (c *CLI) printJSON(v any) {
	enc := json.NewEncoder(c.Out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(c.Err, "idcard: encode: %v\n", err)
	}
}
