// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"log/slog"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
)

// NodeBase implements the [Node] interface and provides the core functionality
// for the object tree. You must use NodeBase as an embedded struct
// in all higher-level tree types.
//
// Unlike many tree systems, NodeBase never assigns a name automatically:
// an empty [NodeBase.Name] is meaningful, because unnamed objects receive
// synthesized ordinal names based on their position among their siblings.
type NodeBase struct {

	// Name is the explicit name of this node. It may be empty, and it may be
	// changed at any time; it is not required to be unique among siblings.
	Name string `copier:"-"`

	// Type is the type tag of this node, as reported by the toolkit
	// (for example "QPushButton" or "Button"). If it is empty, [NodeBase.TypeTag]
	// falls back on the Go type name of [NodeBase.This].
	Type string

	// This is the value of this Node as its true underlying type. This allows methods
	// defined on base types to call methods defined on higher-level types. This is set
	// to nil when the node is destroyed.
	This Node `copier:"-" json:"-" yaml:"-" toml:"-"`

	// Parent is the parent of this node, which is set automatically when this node is
	// added as a child of a parent. It is a non-owning back reference only used for
	// traversal. To change the parent of a node, use [MoveToParent].
	Parent Node `copier:"-" json:"-" yaml:"-" toml:"-"`

	// Children is the list of children of this node, which it owns exclusively.
	// All of them are set to have this node as their parent. The order of the
	// list is the sibling order used for synthesized names.
	Children []Node `copier:"-" json:"-" yaml:"-" toml:"-"`

	// Properties is a property map for arbitrary key-value properties.
	// You should typically use the [NodeBase.SetProperty], [NodeBase.Property], and
	// [NodeBase.DeleteProperty] methods for modifying and accessing properties.
	Properties map[string]any `copier:"-" json:",omitempty"`

	// index is the last value of our index, which is used as a starting point for
	// finding us in our parent next time. It is not guaranteed to be accurate;
	// use the [NodeBase.IndexInParent] method.
	index int
}

// NewNodeBase returns a new plain [NodeBase] with the given type tag,
// adding it to the given optional parent.
func NewNodeBase(typ string, parent ...Node) *NodeBase {
	n := &NodeBase{Type: typ}
	InitNode(n)
	if len(parent) > 0 && parent[0] != nil {
		parent[0].AsTree().AddChild(n)
	}
	return n
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// SetName sets the explicit name of this node. An empty name makes the
// node unnamed again.
func (n *NodeBase) SetName(name string) *NodeBase {
	n.Name = name
	return n
}

// SetType sets the type tag of this node.
func (n *NodeBase) SetType(typ string) *NodeBase {
	n.Type = typ
	return n
}

// TypeTag returns the type tag of this node: [NodeBase.Type] if it is set,
// and otherwise the name of the Go type of [NodeBase.This].
func (n *NodeBase) TypeTag() string {
	if n.Type != "" {
		return n.Type
	}
	if n.This == nil {
		return ""
	}
	typ := reflect.TypeOf(n.This)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return typ.Name()
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that for an optimized search so subsequent calls
// are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This, n.index)
	n.index = idx
	return idx
}

// ParentLevel finds a given potential parent node recursively up the
// hierarchy, returning the level above the current node that the parent was
// found, and -1 if not found.
func (n *NodeBase) ParentLevel(parent Node) int {
	parLev := -1
	level := 0
	n.WalkUpParent(func(k Node) bool {
		if k == parent {
			parLev = level
			return Break
		}
		level++
		return Continue
	})
	return parLev
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name, and nil
// if no such element is found.
func (n *NodeBase) ChildByName(name string) Node {
	return n.Child(IndexByName(n.Children, name))
}

// Paths:

// Path returns a debugging path to this node from the tree root,
// using the explicit names separated by / delimeters. Unnamed nodes
// are represented by their type tag and index in their parent in
// the form Type[index]. Path is meant for printing; it is not a
// resolvable object name.
func (n *NodeBase) Path() string {
	seg := n.Name
	if seg == "" {
		seg = n.TypeTag()
		if n.Parent != nil {
			seg += "[" + strconv.Itoa(n.IndexInParent()) + "]"
		}
	}
	seg = strings.ReplaceAll(seg, "/", "|")
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + seg
	}
	return "/" + seg
}

// Adding and Inserting Children:

// AddChild adds given child at end of children list.
// The kid node is assumed to not be on another tree (see [MoveToParent]).
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n.This)
}

// InsertChild adds given child at position in children list.
// The kid node is assumed to not be on another tree (see [MoveToParent]).
func (n *NodeBase) InsertChild(kid Node, index int) {
	InitNode(kid)
	n.Children = slices.Insert(n.Children, index, kid)
	SetParent(kid, n.This)
}

// Deleting Children:

// DeleteChildAt deletes child at the given index. It returns false
// if there is no child at the given index.
func (n *NodeBase) DeleteChildAt(index int) bool {
	child := n.Child(index)
	if child == nil {
		return false
	}
	n.Children = slices.Delete(n.Children, index, index+1)
	child.Destroy()
	return true
}

// DeleteChild deletes the given child node, returning false if
// it can not find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	if child == nil {
		return false
	}
	idx := IndexOf(n.Children, child)
	if idx < 0 {
		return false
	}
	return n.DeleteChildAt(idx)
}

// DeleteChildByName deletes child node by name, returning false
// if it can not find it.
func (n *NodeBase) DeleteChildByName(name string) bool {
	idx := IndexByName(n.Children, name)
	if idx < 0 {
		return false
	}
	return n.DeleteChildAt(idx)
}

// DeleteChildren deletes all children nodes.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = n.Children[:0] // preserves capacity of list
	for _, kid := range kids {
		if kid == nil {
			continue
		}
		kid.Destroy()
	}
}

// Delete deletes this node from its parent's children list
// and then destroys itself.
func (n *NodeBase) Delete() {
	if n.Parent == nil {
		n.This.Destroy()
	} else {
		n.Parent.AsTree().DeleteChild(n.This)
	}
}

// Destroy recursively deletes and destroys the node, all of its children,
// and all of its children's children, etc.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	n.DeleteChildren()
	n.Parent = nil
	n.This = nil
}

// Property Storage:

// SetProperty sets given the given property to the given value.
func (n *NodeBase) SetProperty(key string, value any) {
	if n.Properties == nil {
		n.Properties = map[string]any{}
	}
	n.Properties[key] = value
}

// Property returns the property value for the given key.
// It returns nil if it doesn't exist.
func (n *NodeBase) Property(key string) any {
	return n.Properties[key]
}

// DeleteProperty deletes the property with the given key.
func (n *NodeBase) DeleteProperty(key string) {
	if n.Properties == nil {
		return
	}
	delete(n.Properties, key)
}

// Tree Walking:

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the node and all of its parents,
// sequentially in the current goroutine. It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for {
		if !fun(cur) { // false return means stop
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkUpParent calls the given function on all of the node's parents (but not
// the node itself), sequentially in the current goroutine. It stops walking if the
// function returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUpParent(fun func(n Node) bool) bool {
	if IsRoot(n) {
		return true
	}
	cur := n.Parent
	for {
		if !fun(cur) { // false return means stop
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first pre-order manner: every node is visited before its
// children, and children are visited in sibling order. It stops walking
// the current branch of the tree if the function returns [Break] and keeps
// walking if it returns [Continue]. It is non-recursive.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	tm := map[Node]int{} // traversal map
	start := n.This
	cur := start
	tm[cur] = -1
outer:
	for {
		cb := cur.AsTree()
		// fun can destroy the node, so we have to check for nil before and after.
		// A false return from fun indicates to stop.
		if cb.This != nil && fun(cur) && cb.This != nil {
			if cb.HasChildren() {
				tm[cur] = 0
				nxt := cb.Child(0)
				if nxt != nil && nxt.AsTree().This != nil {
					cur = nxt.AsTree().This
					tm[cur] = -1
					continue
				}
			}
		} else {
			tm[cur] = cb.NumChildren()
		}
		// if we get here, we're in the ascent branch -- move to the right and then up
		for {
			cb := cur.AsTree() // may have changed, so must get again
			curChild := tm[cur]
			if (curChild + 1) < cb.NumChildren() {
				curChild++
				tm[cur] = curChild
				nxt := cb.Child(curChild)
				if nxt != nil && nxt.AsTree().This != nil {
					cur = nxt.AsTree().This
					tm[cur] = -1
					continue outer
				}
				continue
			}
			delete(tm, cur)
			// couldn't go right, move up..
			if cur == start {
				break outer // done!
			}
			parent := cb.Parent
			if parent == nil || parent == cur {
				break outer
			}
			cur = parent
		}
	}
}

// Descendants returns all of the nodes below this node (not including
// the node itself) in [NodeBase.WalkDown] order.
func (n *NodeBase) Descendants() []Node {
	var res []Node
	n.WalkDown(func(k Node) bool {
		if k != n.This {
			res = append(res, k)
		}
		return Continue
	})
	return res
}

// Deep Copy:

// CopyFrom copies the data and children of the given node to this node.
// Existing children of this node are destroyed and replaced with clones of
// the children of the source node. The struct field tag copier:"-" can be
// added for any fields that should not be copied. Also, unexported fields
// are not copied.
func (n *NodeBase) CopyFrom(from Node) {
	if from == nil {
		slog.Error("tree.NodeBase.CopyFrom: nil source", "destinationNode", n)
		return
	}
	fromt := from.AsTree()
	n.DeleteChildren()
	if fromt.Properties != nil {
		if n.Properties == nil {
			n.Properties = map[string]any{}
		}
		maps.Copy(n.Properties, fromt.Properties)
	}
	n.This.CopyFieldsFrom(from)
	for _, kid := range fromt.Children {
		n.AddChild(kid.AsTree().Clone())
	}
}

// Clone creates and returns a deep copy of the tree from this node down.
// The clone has no parent.
func (n *NodeBase) Clone() Node {
	nc := reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
	InitNode(nc)
	nc.AsTree().SetName(n.Name)
	nc.AsTree().CopyFrom(n.This)
	return nc
}

// CopyFieldsFrom copies the fields of the node from the given node.
// By default, it is [NodeBase.CopyFieldsFrom], which automatically does
// a deep copy of all of the fields of the node that do not a have a
// `copier:"-"` struct tag.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	err := copier.CopyWithOption(n.This, from.AsTree().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("tree.NodeBase.CopyFieldsFrom", "err", err)
	}
}

// Event methods:

// Init is a placeholder implementation of
// [Node.Init] that does nothing.
func (n *NodeBase) Init() {}

// OnAdd is a placeholder implementation of
// [Node.OnAdd] that does nothing.
func (n *NodeBase) OnAdd() {}
