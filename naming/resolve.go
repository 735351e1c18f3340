// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naming

import (
	"strings"

	"cogentcore.org/objnaming/tree"
)

// Object returns the node with the given full name, as produced by
// [Namer.Name]. The name of the application singleton resolves to it.
// Otherwise the first segment is matched against the top-level windows
// and each later segment against the children of the previous match.
// A candidate matches when its [Namer.Segment] equals the segment; failing
// that, a named candidate also matches on its [Namer.UnnamedName], which
// tolerates objects that were given a name after recording. Within each
// of these, the first match in sibling order wins.
//
// A segment with the leading '0' of an invisible unnamed object that
// has no match is retried with a leading '1', since widgets that were
// hidden while recording may be visible while replaying. The reverse
// is not attempted.
//
// On failure it returns nil and a [Diagnostic] describing the deepest
// node that was matched and the likely candidates, which is also kept
// as the [Namer.LastDiagnostic]. An empty name returns nil, nil.
func (nm *Namer) Object(name string) (tree.Node, *Diagnostic) {
	if name == "" {
		return nil, nil
	}
	segs := strings.Split(name, "/")

	if app := nm.application(); app != nil && nm.Segment(app) == name {
		return app, nil
	}

	result := nm.find(nm.topLevels(), segs[0], false)
	last := result
	for _, seg := range segs[1:] {
		if result == nil {
			break
		}
		result = nm.find(result.AsTree().Children, seg, true)
		if result != nil {
			last = result
		}
	}
	if result != nil {
		return result, nil
	}

	d := nm.diagnose(name, segs[len(segs)-1], last)
	nm.last = d
	return nil, d
}

// find returns the first of the given nodes matching the given segment.
// If retry is set, an invisible ordinal segment with no match is retried
// as a visible one.
func (nm *Namer) find(nodes []tree.Node, seg string, retry bool) tree.Node {
	if n := nm.findExact(nodes, seg); n != nil {
		return n
	}
	if retry && strings.HasPrefix(seg, "0") {
		return nm.findExact(nodes, "1"+seg[1:])
	}
	return nil
}

// findExact returns the first of the given nodes whose segment is the
// given segment, and otherwise the first named node whose unnamed name is.
// An empty segment matches nothing, not even unnameable nodes.
func (nm *Namer) findExact(nodes []tree.Node, seg string) tree.Node {
	if seg == "" {
		return nil
	}
	for _, n := range nodes {
		if nm.Segment(n) == seg {
			return this(n)
		}
	}
	for _, n := range nodes {
		if this(n) != nil && n.AsTree().Name != "" && nm.UnnamedName(n) == seg {
			return this(n)
		}
	}
	return nil
}

// LastDiagnostic returns the diagnostic of the last failed call to
// [Namer.Object], or nil if there has been none.
func (nm *Namer) LastDiagnostic() *Diagnostic {
	return nm.last
}

// LastError returns the text of the diagnostic of the last failed
// call to [Namer.Object], or "" if there has been none.
func (nm *Namer) LastError() string {
	if nm.last == nil {
		return ""
	}
	return nm.last.String()
}
