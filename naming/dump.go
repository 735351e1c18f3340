// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naming

import (
	"cogentcore.org/objnaming/base/errors"
	"cogentcore.org/objnaming/tree"
)

// DumpHierarchy returns the full names of every top-level window and
// all of their descendants, each node before its children and children
// in sibling order. Nodes that can not be named appear as "".
func (nm *Namer) DumpHierarchy() []string {
	var res []string
	for _, w := range nm.topLevels() {
		res = nm.appendDump(res, w)
	}
	return res
}

// DumpNode returns the full names of the given node and all of
// its descendants, in the same order as [Namer.DumpHierarchy].
func (nm *Namer) DumpNode(n tree.Node) []string {
	return nm.appendDump(nil, n)
}

func (nm *Namer) appendDump(res []string, n tree.Node) []string {
	n.AsTree().WalkDown(func(k tree.Node) bool {
		res = append(res, errors.Ignore1(nm.Name(k)))
		return tree.Continue
	})
	return res
}
