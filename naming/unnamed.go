// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naming

import (
	"strconv"

	"cogentcore.org/objnaming/tree"
)

// UnnamedName returns the name that the given node has as if it were unnamed:
// {0|1}{TypeTag}{Index}. The siblings of the node are the children of its
// parent, or the top-level windows if it has no parent. Index counts the
// live siblings before the node that have the same type tag and no explicit name,
// using separate counts for visible widgets and for everything else, because
// the order of top-level windows is not guaranteed while tests mostly act on
// visible ones. It returns "" if the node can not be named, which happens
// when it is nil, destroyed, or has no type tag.
func (nm *Namer) UnnamedName(n tree.Node) string {
	n = this(n)
	if n == nil {
		return ""
	}
	typ := n.AsTree().TypeTag()
	if typ == "" {
		return ""
	}

	var siblings []tree.Node
	if parent := n.AsTree().Parent; parent != nil {
		siblings = parent.AsTree().Children
	} else {
		siblings = nm.topLevels()
	}

	visibleIndex, hiddenIndex := 0, 0
	for _, sib := range siblings {
		if sib == n {
			break
		}
		if this(sib) == nil {
			continue
		}
		sb := sib.AsTree()
		if sb.Name != "" || sb.TypeTag() != typ {
			continue
		}
		if isVisible(sib) {
			visibleIndex++
		} else {
			hiddenIndex++
		}
	}

	if isVisible(n) {
		return escape("1" + typ + strconv.Itoa(visibleIndex))
	}
	return escape("0" + typ + strconv.Itoa(hiddenIndex))
}

// Segment returns the path segment of the given node: its explicit
// name, or its [Namer.UnnamedName] if it has none, with [AppSuffix]
// appended for the application singleton. It returns "" if the
// node can not be named.
func (nm *Namer) Segment(n tree.Node) string {
	n = this(n)
	if n == nil {
		return ""
	}
	seg := n.AsTree().Name
	if seg == "" {
		seg = nm.UnnamedName(n)
	}
	if seg != "" && nm.isApplication(n) {
		seg += AppSuffix
	}
	return escape(seg)
}
