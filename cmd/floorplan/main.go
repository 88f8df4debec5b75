package main

import (
	"bytes"
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/venue"
)

//go:embed venues.json
var builtinVenues []byte

const usage = `usage: floorplan [command] [flags] [codes...]

commands:
  view              interactive floor map (default)
  resolve CODE...   print map coordinates for placement codes
  keys CODE...      print search keys for placement codes
  merge A B         combine two adjacent single-space codes
  venues            list venue ids

flags:
`

func main() {
	// Terminal must be restored even if the viewer crashes
	defer func() {
		if r := recover(); r != nil {
			emergencyReset()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mFLOORPLAN CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a sub-command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	cmd := "view"
	if len(args) > 0 {
		switch args[0] {
		case "view", "resolve", "keys", "merge", "venues":
			cmd, args = args[0], args[1:]
		}
	}

	if err := config.LoadEnv(".env"); err != nil {
		fmt.Fprintf(stderr, "floorplan: %v\n", err)
		return 1
	}

	cfg, rest, err := config.ParseFlags("floorplan "+cmd, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(stderr, usage)
			return 0
		}
		fmt.Fprintf(stderr, "floorplan: %v\n", err)
		return 2
	}

	// Every command owns stdout/stderr, logs go to the debug file or nowhere
	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	switch cmd {
	case "keys":
		return runKeys(rest, stdout, stderr)
	case "merge":
		return runMerge(rest, stdout, stderr)
	}

	cat, err := loadCatalog(cfg)
	if err != nil {
		fmt.Fprintf(stderr, "floorplan: %v\n", err)
		return 1
	}

	switch cmd {
	case "venues":
		return runVenues(cat, stdout)
	case "resolve":
		return runResolve(cat, cfg, rest, stdout, stderr)
	}

	if err := runViewer(cat, cfg); err != nil {
		fmt.Fprintf(stderr, "floorplan: %v\n", err)
		return 1
	}
	return 0
}

// loadCatalog reads the configured venue file, or the built-in sample
func loadCatalog(cfg config.Config) (*venue.Catalog, error) {
	if cfg.VenuesPath != "" {
		return venue.LoadFile(cfg.VenuesPath)
	}
	return venue.Load(bytes.NewReader(builtinVenues))
}

// pickVenue returns the requested venue, or the first registered one
func pickVenue(cat *venue.Catalog, id string) (*venue.Venue, error) {
	reg := cat.Registry()
	if id == "" {
		ids := reg.IDs()
		if len(ids) == 0 {
			return nil, errors.New("no venues defined")
		}
		id = ids[0]
	}
	v, ok := reg.Venue(id)
	if !ok {
		return nil, fmt.Errorf("unknown venue %q", id)
	}
	return v, nil
}
