// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naming

import "cogentcore.org/objnaming/tree"

// Name returns the full name of the given node: the [Namer.Segment] of each
// ancestor from the top-level window down, joined with '/'. If the node or
// an ancestor can not be named, or the top-most ancestor is not a registered
// top-level window, it logs and returns a *[NameError] and an empty name.
func (nm *Namer) Name(n tree.Node) (string, error) {
	name, err := nm.name(n)
	if err != nil {
		return "", err.log()
	}
	return name, nil
}

// name is the non-logging implementation of [Namer.Name].
func (nm *Namer) name(n tree.Node) (string, *NameError) {
	n = this(n)
	name := nm.Segment(n)
	if name == "" {
		return "", &NameError{Kind: ErrUnnamed, Object: n}
	}
	for p := n.AsTree().Parent; p != nil; p = p.AsTree().Parent {
		pname := nm.Segment(p)
		if pname == "" {
			return "", &NameError{Kind: ErrUnnamedAncestor, Object: n, Ancestor: p, Partial: name}
		}
		name = pname + "/" + name
		if p.AsTree().Parent == nil && !nm.isTopLevel(p) {
			return "", &NameError{Kind: ErrNotTopLevel, Object: n, Ancestor: p, Partial: name}
		}
	}
	return name, nil
}
