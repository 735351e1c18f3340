// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command objnaming inspects object names in saved object trees:
// it dumps the names of every object, resolves names back to objects,
// checks that recorded test scripts still resolve, and compares the
// names of two snapshots of a tree.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"cogentcore.org/objnaming/base/errors"
	"cogentcore.org/objnaming/base/logx"
	"cogentcore.org/objnaming/naming"
)

func main() {
	logx.SetDefaultLogger()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the state shared by the commands.
type app struct {

	// configFile is the path of the config file.
	configFile string

	// matchLimit is the --match-limit flag.
	matchLimit int

	// vv, v, and q are the verbosity flags.
	vv, v, q bool

	// config is the loaded configuration.
	config Config

	// options are the resolved naming options.
	options naming.Options
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "objnaming",
		Short:         "Inspect the names of objects in saved object trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
			return a.configure(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", DefaultConfigFile, "the TOML config file")
	pf.IntVar(&a.matchLimit, "match-limit", naming.DefaultMatchLimit, "the maximum number of candidates listed for a name that is not found (0 for unlimited)")
	pf.BoolVar(&a.vv, "vv", false, "show debug messages")
	pf.BoolVarP(&a.v, "verbose", "v", false, "show info messages")
	pf.BoolVarP(&a.q, "quiet", "q", false, "only show errors")
	errors.Must(root.MarkPersistentFlagFilename("config", "toml"))

	root.AddCommand(a.dumpCmd(), a.resolveCmd(), a.replayCmd(), a.diffCmd(), a.watchCmd())
	return root
}
