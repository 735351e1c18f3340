// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "slices"

// admin.go has infrastructure code outside of the Node interface.

// InitNode initializes the node by setting [NodeBase.This] and calling
// [Node.Init]. It does nothing if the node has already been initialized.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != n {
		nb.This = n
		nb.This.Init()
	}
}

// SetParent sets the parent of the given node to the given parent node.
// This is only for nodes with no existing parent; see [MoveToParent] to
// move nodes that already have a parent. It does not add the node to the
// parent's list of children; see [NodeBase.AddChild] for a version that does.
func SetParent(child Node, parent Node) {
	child.AsTree().Parent = parent
	child.AsTree().This.OnAdd()
}

// MoveToParent removes the given node from its current parent
// and adds it as a child of the given new parent.
// The old and new parents can be in different trees (or not).
func MoveToParent(child Node, parent Node) {
	oldParent := child.AsTree().Parent
	if oldParent != nil {
		op := oldParent.AsTree()
		idx := IndexOf(op.Children, child)
		if idx >= 0 {
			op.Children = slices.Delete(op.Children, idx, idx+1)
		}
	}
	child.AsTree().Parent = nil
	parent.AsTree().AddChild(child)
}

// New returns a new initialized node of the given type, adding it
// as a child of the given optional parent. For example:
//
//	button := tree.New[tree.Widget](window)
func New[T any, PT interface {
	*T
	Node
}](parent ...Node) PT {
	n := PT(new(T))
	InitNode(n)
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AsTree().AddChild(n)
	}
	return n
}

// NewRoot returns a new initialized root node of the given type
// with the given name.
func NewRoot[T any, PT interface {
	*T
	Node
}](name string) PT {
	n := New[T, PT]()
	n.AsTree().SetName(name)
	return n
}

// IsRoot tests whether the given node is the root node in its tree.
func IsRoot(n Node) bool {
	nb := n.AsTree()
	return nb.This == nil || nb.Parent == nil || nb.Parent.AsTree().This == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	if IsRoot(n) {
		return n.AsTree().This
	}
	return Root(n.AsTree().Parent)
}

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument
// is a guess at where the node might be; the search proceeds
// outward from it in both directions.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	return findFunc(slice, func(e Node) bool { return e == child }, startIndex...)
}

// IndexByName returns the index of the first element in the given slice that
// has the given explicit name, or -1 if none is found.
func IndexByName(slice []Node, name string) int {
	return slices.IndexFunc(slice, func(ch Node) bool { return ch.AsTree().Name == name })
}

// findFunc returns the index of the element of s that matches,
// searching bidirectionally outward from the given optional start index.
func findFunc[T any](s []T, match func(e T) bool, startIndex ...int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	si := 0
	if len(startIndex) > 0 {
		si = min(max(startIndex[0], 0), n-1)
	}
	for up, down := si, si-1; up < n || down >= 0; up, down = up+1, down-1 {
		if up < n && match(s[up]) {
			return up
		}
		if down >= 0 && match(s[down]) {
			return down
		}
	}
	return -1
}
