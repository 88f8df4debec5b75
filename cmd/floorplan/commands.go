package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/lixenwraith/floorplan/config"
	"github.com/lixenwraith/floorplan/placement"
	"github.com/lixenwraith/floorplan/venue"
)

// codesFrom parses every positional argument as a list of placement codes
func codesFrom(args []string) ([]placement.Code, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("no placement codes given")
	}
	return placement.ParsePositions(strings.Join(args, " "))
}

// formatCoord renders a map coordinate with thousands separators and at most one decimal
func formatCoord(c venue.Coordinate) string {
	return humanize.CommafWithDigits(c.X, 1) + ", " + humanize.CommafWithDigits(c.Y, 1)
}

func runResolve(cat *venue.Catalog, cfg config.Config, args []string, stdout, stderr io.Writer) int {
	v, err := pickVenue(cat, cfg.VenueID)
	if err != nil {
		fmt.Fprintf(stderr, "floorplan: %v\n", err)
		return 1
	}
	codes, err := codesFrom(args)
	if err != nil {
		fmt.Fprintf(stderr, "floorplan: %v\n", err)
		return 2
	}

	res := venue.NewResolver(cat.Registry())
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	status := 0
	for _, code := range codes {
		c, err := res.ResolvePlacement(code, v.ID)
		if err != nil {
			fmt.Fprintf(stderr, "floorplan: %s: %v\n", code, err)
			status = 1
			continue
		}
		source := "layout"
		if n, _ := placement.Normalize(code); allAuthored(v, n.Positions) {
			source = "table"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", code, formatCoord(c), source)
	}
	tw.Flush()
	return status
}

// allAuthored reports whether every position has a hand-authored entry
func allAuthored(v *venue.Venue, positions []string) bool {
	for _, p := range positions {
		if _, ok := v.Table[p]; !ok {
			return false
		}
	}
	return len(positions) > 0
}

func runKeys(args []string, stdout, stderr io.Writer) int {
	codes, err := codesFrom(args)
	if err != nil {
		fmt.Fprintf(stderr, "floorplan: %v\n", err)
		return 2
	}
	for _, code := range codes {
		fmt.Fprintf(stdout, "%s: %s\n", code, strings.Join(placement.GenerateSearchKeys(code), " "))
	}
	return 0
}

func runMerge(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "floorplan: merge takes exactly two codes")
		return 2
	}
	code, err := placement.Merge(args[0], args[1])
	if err != nil {
		fmt.Fprintf(stderr, "floorplan: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout, code)
	return 0
}

func runVenues(cat *venue.Catalog, stdout io.Writer) int {
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	for _, id := range cat.Registry().IDs() {
		v, _ := cat.Registry().Venue(id)
		fmt.Fprintf(tw, "%s\t%s\t%s booths\t%s pins\n",
			v.ID, v.Name, humanize.Comma(int64(len(v.Table))), humanize.Comma(int64(len(cat.Pins(id)))))
	}
	tw.Flush()
	return 0
}
