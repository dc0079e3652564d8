// Copyright (c) 2025 complex (complex@ft.hn)
// See LICENSE for licensing information

package main

import (
	"flag"
	"fmt"
	"os"

	idcard "github.com/complex-gh/idcard_go"
	"github.com/complex-gh/idcard_go/internal/cli"
	"github.com/complex-gh/idcard_go/internal/config"
	"github.com/complex-gh/idcard_go/internal/logger"
	"github.com/complex-gh/idcard_go/lang"
	"github.com/complex-gh/idcard_go/region"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("idcard", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, cli.Usage)
		fs.PrintDefaults()
	}
	cfgPath := fs.String("config", "", "config file (default $"+config.EnvPath+")")
	asJSON := fs.Bool("json", false, "print JSON")
	verbose := fs.Bool("v", false, "debug logging")
	langTag := fs.String("lang", "", "label language, e.g. zh-CN or en")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "idcard: %v\n", err)
		return 1
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if *langTag != "" {
		cfg.Lang = *langTag
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "idcard: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	opts := []idcard.Option{idcard.WithLanguage(lang.Match(cfg.Lang))}
	if cfg.RegionsFile != "" {
		tbl, err := region.LoadFile(cfg.RegionsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "idcard: %v\n", err)
			return 1
		}
		log.Sugar().Debugf("loaded %d region codes from %s", tbl.Len(), cfg.RegionsFile)
		opts = append(opts, idcard.WithRegions(tbl))
	}

	c := &cli.CLI{
		Out:     os.Stdout,
		Err:     os.Stderr,
		Decoder: idcard.New(opts...),
		Log:     log,
		JSON:    *asJSON || cfg.Output == "json",
		Version: version,
		Salt:    []byte(cfg.PseudonymSalt),
	}
	return c.Run(fs.Arg(0), fs.Args()[1:])
}
