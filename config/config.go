// Package config reads viewer settings from flags, the environment and an optional .env file
//
// Flags win over environment variables, which win over defaults:
//
//	-venues     FLOORPLAN_VENUES     venue JSON file (empty = built-in sample)
//	-venue      FLOORPLAN_VENUE      venue id to open (empty = first)
//	-debug      FLOORPLAN_DEBUG      write logs/floorplan.log
//	-sound      FLOORPLAN_SOUND      play audio cues
//	-friction   FLOORPLAN_FRICTION   momentum friction, (0, 1)
//	-threshold  FLOORPLAN_THRESHOLD  momentum stop speed, px/ms
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/floorplan/physics"
)

// Config is the resolved viewer configuration
type Config struct {
	VenuesPath string
	VenueID    string
	Debug      bool
	Sound      bool
	Friction   float64
	Threshold  float64
}

// Momentum returns the physics configuration
func (c Config) Momentum() physics.Config {
	d := physics.DefaultConfig()
	d.Friction = c.Friction
	d.Threshold = c.Threshold
	return d
}

// LoadEnv applies .env files without overriding variables already set
// Missing files are skipped
func LoadEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

// ParseFlags parses args (without the program name) with env fallback
func ParseFlags(name string, args []string) (Config, []string, error) {
	def := physics.DefaultConfig()
	cfg := Config{
		Friction:  def.Friction,
		Threshold: def.Threshold,
	}

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.StringVar(&cfg.VenuesPath, "venues", "", "Venue JSON file (default: built-in sample)")
	fset.StringVar(&cfg.VenueID, "venue", "", "Venue id to open")
	fset.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging to logs/floorplan.log")
	fset.BoolVar(&cfg.Sound, "sound", false, "Play audio cues")
	fset.Float64Var(&cfg.Friction, "friction", cfg.Friction, "Momentum friction per frame, (0, 1)")
	fset.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "Momentum stop speed, px/ms")

	if err := fset.Parse(args); err != nil {
		return Config{}, nil, err
	}

	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["venues"] {
		cfg.VenuesPath = os.Getenv("FLOORPLAN_VENUES")
	}
	if !set["venue"] {
		cfg.VenueID = os.Getenv("FLOORPLAN_VENUE")
	}
	if err := envBool(set["debug"], "FLOORPLAN_DEBUG", &cfg.Debug); err != nil {
		return Config{}, nil, err
	}
	if err := envBool(set["sound"], "FLOORPLAN_SOUND", &cfg.Sound); err != nil {
		return Config{}, nil, err
	}
	if err := envFloat(set["friction"], "FLOORPLAN_FRICTION", &cfg.Friction); err != nil {
		return Config{}, nil, err
	}
	if err := envFloat(set["threshold"], "FLOORPLAN_THRESHOLD", &cfg.Threshold); err != nil {
		return Config{}, nil, err
	}

	if err := cfg.Momentum().Validate(); err != nil {
		return Config{}, nil, err
	}
	return cfg, fset.Args(), nil
}

func envBool(flagSet bool, key string, dst *bool) error {
	if flagSet {
		return nil
	}
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}

func envFloat(flagSet bool, key string, dst *float64) error {
	if flagSet {
		return nil
	}
	s := os.Getenv(key)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = v
	return nil
}
