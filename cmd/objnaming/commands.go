// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"cogentcore.org/objnaming/base/errors"
	"cogentcore.org/objnaming/script"
)

func (a *app) dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <tree>",
		Short: "Print the full name of every object in a tree file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nm, err := a.open(args[0])
			if err != nil {
				return err
			}
			out := a.output(cmd.OutOrStdout())
			for _, name := range nm.DumpHierarchy() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func (a *app) resolveCmd() *cobra.Command {
	suggest := 0
	cmd := &cobra.Command{
		Use:   "resolve <tree> <name>...",
		Short: "Resolve names to the objects of a tree file",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nm, err := a.open(args[0])
			if err != nil {
				return err
			}
			out := a.output(cmd.OutOrStdout())
			names := args[1:]
			failed := 0
			for _, name := range names {
				n, d := nm.Object(name)
				if d == nil {
					if n == nil {
						fmt.Fprintf(out, "%s\t%s\n", name, out.String("(empty name)").Faint())
						continue
					}
					fmt.Fprintf(out, "%s\t%s\n", name, out.String(n.AsTree().Path()).Bold())
					continue
				}
				failed++
				printDiagnostic(out, d)
				if suggest > 0 {
					printSuggestions(out, d.Closest(suggest))
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d names could not be resolved", failed, len(names))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&suggest, "suggest", 0, "print the given number of objects with the most similar names for each name that is not found")
	return cmd
}

func (a *app) replayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <tree> <script>",
		Short: "Check that every object of a recorded script resolves in a tree file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nm, err := a.open(args[0])
			if err != nil {
				return err
			}
			events, err := script.Open(args[1])
			if err != nil {
				return err
			}
			out := a.output(cmd.OutOrStdout())
			p := script.NewPlayer(nm, nil)
			failed := 0
			for _, ev := range events {
				err := p.Step(ev)
				if err == nil {
					fmt.Fprintf(out, "%s  %d: %s\n", out.String("ok  ").Foreground(out.Color("2")), ev.Line, ev)
					continue
				}
				failed++
				fmt.Fprintf(out, "%s  %d: %s\n", out.String("FAIL").Foreground(out.Color("1")), ev.Line, ev)
				var pe *script.PlayError
				if errors.As(err, &pe) && pe.Diagnostic != nil {
					printDiagnostic(out, pe.Diagnostic)
				} else {
					fmt.Fprintln(out, "   ", err)
				}
			}
			slog.Info("replayed", "script", args[1], "events", len(events), "failed", failed)
			if failed > 0 {
				return fmt.Errorf("%d of %d events could not be resolved", failed, len(events))
			}
			return nil
		},
	}
}

func (a *app) diffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <tree-a> <tree-b>",
		Short: "Print the names that are only in one of two tree files",
		Long:  "Diff prints the names that are only in the first tree file prefixed with -, and those that are only in the second prefixed with +. Scripts recorded against the first tree can not replay the - names on the second.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			na, errA := a.open(args[0])
			nb, errB := a.open(args[1])
			if err := errors.Join(errA, errB); err != nil {
				return err
			}
			out := a.output(cmd.OutOrStdout())
			removed, added := DiffNames(na.DumpHierarchy(), nb.DumpHierarchy())
			for _, name := range removed {
				fmt.Fprintln(out, out.String("- "+name).Foreground(out.Color("1")))
			}
			for _, name := range added {
				fmt.Fprintln(out, out.String("+ "+name).Foreground(out.Color("2")))
			}
			return nil
		},
	}
}

// DiffNames returns the non-empty names that are only in a and those
// that are only in b, each in their original order.
func DiffNames(a, b []string) (onlyA, onlyB []string) {
	onlyA = missing(a, b)
	onlyB = missing(b, a)
	return
}

// missing returns the non-empty names of from that are not in in.
func missing(from, in []string) []string {
	var res []string
	for _, name := range from {
		if name != "" && !slices.Contains(in, name) {
			res = append(res, name)
		}
	}
	return res
}

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <tree>",
		Short: "Print the names of a tree file again whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			out := a.output(cmd.OutOrStdout())
			dump := func() {
				nm, err := a.open(file)
				if errors.Log(err) != nil {
					return
				}
				out.ClearScreen()
				for _, name := range nm.DumpHierarchy() {
					fmt.Fprintln(out, name)
				}
			}

			w, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer w.Close()
			// editors often replace the file, so the directory is watched
			if err := w.Add(filepath.Dir(file)); err != nil {
				return err
			}
			abs := errors.Log1(filepath.Abs(file))
			dump()
			ctx := cmd.Context()
			for {
				select {
				case <-ctx.Done():
					return nil
				case ev, ok := <-w.Events:
					if !ok {
						return nil
					}
					if errors.Log1(filepath.Abs(ev.Name)) != abs {
						continue
					}
					if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
						slog.Debug("watch: changed", "file", ev.Name, "op", ev.Op)
						dump()
					}
				case err, ok := <-w.Errors:
					if !ok {
						return nil
					}
					slog.Error("watch", "err", err)
				}
			}
		},
	}
}
