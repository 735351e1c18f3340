// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"cogentcore.org/objnaming/naming"
)

// printDiagnostic prints the given diagnostic, coloring its lines
// by their prefixes.
func printDiagnostic(out *termenv.Output, d *naming.Diagnostic) {
	for _, line := range strings.Split(strings.Trim(d.String(), "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		st := out.String(line)
		switch {
		case strings.HasPrefix(trimmed, "Couldn't find object"):
			st = st.Foreground(out.Color("1")).Bold()
		case strings.HasPrefix(trimmed, "Found up to"):
			st = st.Foreground(out.Color("3"))
		case strings.HasPrefix(trimmed, "Possible match:"):
			st = st.Foreground(out.Color("6"))
		case strings.HasPrefix(trimmed, "Set "):
			st = st.Faint()
		}
		fmt.Fprintln(out, st)
	}
}

// printSuggestions prints the given suggestions with their scores.
func printSuggestions(out *termenv.Output, cands []naming.Candidate) {
	if len(cands) == 0 {
		return
	}
	fmt.Fprintln(out, "    Did you mean:")
	for _, c := range cands {
		fmt.Fprintf(out, "        `%s` %s\n", c.Name, out.String(fmt.Sprintf("(%.2f)", c.Score)).Faint())
	}
}
