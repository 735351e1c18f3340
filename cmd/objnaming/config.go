// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"cogentcore.org/objnaming/base/errors"
	"cogentcore.org/objnaming/naming"
	"cogentcore.org/objnaming/tree"
)

// DefaultConfigFile is the default config file; it is optional.
const DefaultConfigFile = "~/.objnaming.toml"

// Color modes of [Config.Color].
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config is the content of the config file.
type Config struct {

	// MatchLimit is the maximum number of candidates listed for a
	// name that is not found; 0 is unlimited. It is overridden by
	// the environment and by the --match-limit flag.
	MatchLimit *int `toml:"match_limit"`

	// Color is whether to color output: auto, always, or never.
	Color string `toml:"color"`
}

// LoadConfig loads the config file with the given path, expanding a
// leading ~. A missing file is only an error if required is set.
func LoadConfig(path string, required bool) (Config, error) {
	cfg := Config{Color: ColorAuto}
	fn, err := homedir.Expand(path)
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config file %q: %w", fn, err)
	}
	switch cfg.Color {
	case "":
		cfg.Color = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return cfg, fmt.Errorf("config file %q: invalid color %q (must be auto, always, or never)", fn, cfg.Color)
	}
	return cfg, nil
}

// configure loads the config file and resolves the naming options,
// in increasing order of precedence: defaults, config file,
// environment, and flags.
func (a *app) configure(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.configFile, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}
	a.config = cfg
	a.options = naming.DefaultOptions()
	if cfg.MatchLimit != nil {
		a.options.MatchLimit = *cfg.MatchLimit
	}
	if err := a.options.ApplyEnv(); err != nil {
		slog.Warn("ignoring invalid environment variable", "env", naming.MatchLimitEnv, "err", err)
	}
	if cmd.Flags().Changed("match-limit") {
		a.options.MatchLimit = a.matchLimit
	}
	slog.Debug("configured", "config", a.configFile, "matchLimit", a.options.MatchLimit, "color", cfg.Color)
	return nil
}

// output returns the styled output for the given writer.
func (a *app) output(w io.Writer) *termenv.Output {
	switch a.config.Color {
	case ColorAlways:
		return termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI256))
	case ColorNever:
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

// open opens the scene in the given tree file and returns
// a namer for it.
func (a *app) open(file string) (*naming.Namer, error) {
	s, err := tree.Open(file)
	if err != nil {
		return nil, err
	}
	return &naming.Namer{Roots: s, Options: a.options}, nil
}
