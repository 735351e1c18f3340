// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naming

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"cogentcore.org/objnaming/tree"
)

// Diagnostic describes a failed call to [Namer.Object]. Its text is
// rendered when the failure happens, since the tree may change afterwards.
// Tools parse lines by their stable prefixes: "Couldn't find object",
// "Found up to", "Possible match:", and "Available widget:".
type Diagnostic struct {

	// Name is the name that could not be resolved.
	Name string

	// Segment is the last segment of Name.
	Segment string

	// Deepest is the deepest node that was matched, or nil if
	// not even the top-level window was found.
	Deepest tree.Node

	// DeepestName is the full name of Deepest.
	DeepestName string

	// Matches are the nodes below Deepest whose explicit name is Segment,
	// each node before its children.
	Matches []tree.Node

	// Available are all of the nodes below Deepest, each node before its
	// children. It is only set when there are no Matches.
	Available []tree.Node

	// Limit is the [Options.MatchLimit] that was used for the text.
	Limit int

	// text is the rendered text.
	text string

	// namer is the namer that produced the diagnostic.
	namer *Namer
}

// diagnose returns a new [Diagnostic] for the given unresolved name.
func (nm *Namer) diagnose(name, segment string, deepest tree.Node) *Diagnostic {
	d := &Diagnostic{Name: name, Segment: segment, Deepest: deepest, Limit: nm.Options.MatchLimit, namer: nm}
	if deepest != nil {
		d.DeepestName, _ = nm.name(deepest)
		for _, k := range deepest.AsTree().Descendants() {
			if kn := k.AsTree().Name; kn != "" && escape(kn) == segment {
				d.Matches = append(d.Matches, k)
			}
		}
		if len(d.Matches) == 0 {
			d.Available = deepest.AsTree().Descendants()
		}
	}
	d.text = d.render()
	return d
}

// render renders the text of the diagnostic.
func (d *Diagnostic) render() string {
	var b strings.Builder
	b.WriteString("\n") // a newline to keep horizontal alignment
	fmt.Fprintf(&b, "Couldn't find object  `%s`\n", d.Name)
	if d.Deepest == nil {
		return b.String()
	}
	fmt.Fprintf(&b, "Found up to           `%s`\n", d.DeepestName)
	if len(d.Matches) > 0 {
		d.renderList(&b, "    Possible match:   ", "    Possible match: ", d.Matches)
	} else {
		d.renderList(&b, "    Available widget: ", "    Available widget: ", d.Available)
	}
	return b.String()
}

// renderList renders the given nodes, up to the limit.
func (d *Diagnostic) renderList(b *strings.Builder, prefix, morePrefix string, nodes []tree.Node) {
	n := len(nodes)
	if d.Limit > 0 {
		n = min(n, d.Limit)
	}
	for _, k := range nodes[:n] {
		name, _ := d.namer.name(k)
		fmt.Fprintf(b, "%s`%s`\n", prefix, name)
	}
	if d.Limit > 0 && len(nodes) > d.Limit {
		fmt.Fprintf(b, "%s.... (and %d more!)\n", morePrefix, len(nodes)-d.Limit)
		fmt.Fprintf(b, "    Set %s environment var to a +'ve number to limit entries (or 0 for unlimited).\n", MatchLimitEnv)
	}
}

// String returns the multi-line text of the diagnostic.
func (d *Diagnostic) String() string {
	return d.text
}

// Error implements the error interface with a one-line summary.
func (d *Diagnostic) Error() string {
	if d.Deepest == nil {
		return fmt.Sprintf("couldn't find object %q", d.Name)
	}
	return fmt.Sprintf("couldn't find object %q; found up to %q", d.Name, d.DeepestName)
}

// Candidate is a node suggested by [Diagnostic.Closest].
type Candidate struct {

	// Node is the suggested node.
	Node tree.Node

	// Name is the full name of the node.
	Name string

	// Score is the similarity of the segment of the node to the
	// requested segment, from 0 to 1.
	Score float64
}

// Closest returns up to k nodes below [Diagnostic.Deepest] (or among the
// top-level windows if nothing was matched) whose segments are the most
// similar to [Diagnostic.Segment], by Levenshtein similarity, the most
// similar first. Ties keep tree order. k <= 0 returns all of them.
// It is evaluated on the current tree.
func (d *Diagnostic) Closest(k int) []Candidate {
	var nodes []tree.Node
	if d.Deepest != nil {
		nodes = d.Deepest.AsTree().Descendants()
	} else {
		nodes = d.namer.topLevels()
	}
	lev := metrics.NewLevenshtein()
	cands := make([]Candidate, 0, len(nodes))
	for _, n := range nodes {
		name, err := d.namer.name(n)
		if err != nil {
			continue
		}
		score := strutil.Similarity(d.namer.Segment(n), d.Segment, lev)
		cands = append(cands, Candidate{Node: this(n), Name: name, Score: score})
	}
	slices.SortStableFunc(cands, func(a, b Candidate) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if k > 0 && len(cands) > k {
		cands = cands[:k]
	}
	return cands
}
