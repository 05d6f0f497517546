// Package config reads the command line flags.
package config

import (
	"flag"
	"fmt"
	"io"
)

type Config struct {
	Width   int
	Height  int
	FPS     int
	Seed    uint64
	Verbose bool
}

// Parse reads flags from args. Usage and flag errors go to output.
func Parse(args []string, output io.Writer) (Config, error) {
	var cfg Config
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&cfg.Width, "width", 800, "Initial window width in pixels")
	fs.IntVar(&cfg.Height, "height", 900, "Initial window height in pixels")
	fs.IntVar(&cfg.FPS, "fps", 60, "Target frames per second")
	fs.Uint64Var(&cfg.Seed, "seed", 0, "Food placement seed (0 = time based)")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log every phase change and raylib debug output")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	return nil
}
