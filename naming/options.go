// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naming

import (
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
)

const (
	// MatchLimitEnv is the environment variable that controls
	// [Options.MatchLimit].
	MatchLimitEnv = "OBJNAMING_MATCH_LIMIT"

	// DefaultMatchLimit is the default value of [Options.MatchLimit].
	DefaultMatchLimit = 20
)

// Options are the options of a [Namer].
type Options struct {

	// MatchLimit is the maximum number of candidate objects listed in a
	// [Diagnostic]. A value of 0 or less means unlimited.
	MatchLimit int `env:"OBJNAMING_MATCH_LIMIT" envDefault:"20"`
}

// DefaultOptions returns the default [Options].
func DefaultOptions() Options {
	return Options{MatchLimit: DefaultMatchLimit}
}

// OptionsFromEnv returns [Options] loaded from the environment.
// An absent or empty [MatchLimitEnv] results in [DefaultMatchLimit].
// A value that is not an integer is logged and results in an unlimited
// MatchLimit of 0, the same as an explicit 0.
func OptionsFromEnv() Options {
	opts := DefaultOptions()
	if err := opts.ApplyEnv(); err != nil {
		slog.Warn("naming: invalid match limit; listing all candidates", "env", MatchLimitEnv, "err", err)
		opts.MatchLimit = 0
	}
	return opts
}

// ApplyEnv sets the options that are present and non-empty in the
// environment, leaving the others unchanged. If a value is invalid,
// it returns an error and leaves the options unchanged.
func (o *Options) ApplyEnv() error {
	if v, ok := os.LookupEnv(MatchLimitEnv); !ok || v == "" {
		return nil
	}
	opts := DefaultOptions()
	if err := env.Parse(&opts); err != nil {
		return err
	}
	o.MatchLimit = opts.MatchLimit
	return nil
}
