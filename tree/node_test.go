// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/objnaming/tree"
)

// labeled is a custom node type used to test type tag fallback
// and embedding of [Widget].
type labeled struct {
	Widget
	Text string
}

func TestNodeAddChild(t *testing.T) {
	parent := NewNodeBase("Frame")
	parent.SetName("par")
	child := &NodeBase{}
	parent.AddChild(child)
	child.SetName("child1")
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "/par/child1", child.Path())
	assert.Equal(t, 0, child.IndexInParent())
	assert.Equal(t, -1, parent.IndexInParent())
}

func TestNodeNoAutomaticNames(t *testing.T) {
	parent := NewWidget("QMainWindow")
	a := NewWidget("QPushButton", parent)
	b := NewWidget("QPushButton", parent)
	assert.Empty(t, a.Name)
	assert.Empty(t, b.Name)
	assert.Equal(t, "/QMainWindow/QPushButton[1]", b.Path())
}

func TestNodeTypeTag(t *testing.T) {
	assert.Equal(t, "NodeBase", New[NodeBase]().TypeTag())
	assert.Equal(t, "Widget", New[Widget]().TypeTag())
	l := New[labeled]()
	assert.Equal(t, "labeled", l.TypeTag())
	l.SetType("QLabel")
	assert.Equal(t, "QLabel", l.TypeTag())
}

func TestNodePathEscape(t *testing.T) {
	parent := NewRoot[NodeBase]("par/1")
	child := NewNodeBase("Object", parent)
	child.SetName("a/b")
	assert.Equal(t, "/par|1/a|b", child.Path())
}

func TestNodeInsertChild(t *testing.T) {
	parent := NewRoot[NodeBase]("par")
	a := NewNodeBase("Object", parent).SetName("a")
	c := NewNodeBase("Object", parent).SetName("c")
	b := NewNodeBase("Object").SetName("b")
	parent.InsertChild(b, 1)
	assert.Equal(t, []Node{a, b, c}, parent.Children)
	assert.Equal(t, 1, b.IndexInParent())
	assert.Equal(t, 2, c.IndexInParent())
	assert.Equal(t, Node(c), parent.ChildByName("c"))
	assert.Nil(t, parent.ChildByName("d"))
	assert.Nil(t, parent.Child(3))
	assert.Nil(t, parent.Child(-1))
}

func TestNodeDeleteChild(t *testing.T) {
	parent := NewRoot[NodeBase]("par")
	child := NewNodeBase("Object", parent).SetName("child1")
	grandchild := NewNodeBase("Object", child)
	assert.True(t, parent.DeleteChild(child))
	assert.Zero(t, parent.NumChildren())
	assert.Nil(t, child.This)
	assert.Nil(t, grandchild.This)
	assert.False(t, parent.DeleteChild(child))
	assert.False(t, parent.DeleteChild(nil))
}

func TestNodeDeleteChildByName(t *testing.T) {
	parent := NewRoot[NodeBase]("par")
	NewNodeBase("Object", parent).SetName("child1")
	assert.False(t, parent.DeleteChildByName("child2"))
	assert.True(t, parent.DeleteChildByName("child1"))
	assert.False(t, parent.HasChildren())
}

func TestNodeDelete(t *testing.T) {
	parent := NewRoot[NodeBase]("par")
	child := NewNodeBase("Object", parent)
	child.Delete()
	assert.Zero(t, parent.NumChildren())
	parent.Delete()
	assert.Nil(t, parent.This)
}

func TestMoveToParent(t *testing.T) {
	a := NewRoot[NodeBase]("a")
	b := NewRoot[NodeBase]("b")
	c := NewNodeBase("Object", a).SetName("c")
	MoveToParent(c, b)
	assert.Zero(t, a.NumChildren())
	assert.Equal(t, []Node{c}, b.Children)
	assert.Equal(t, "/b/c", c.Path())
	assert.Equal(t, Node(b), Root(c))
}

func TestNodeProperties(t *testing.T) {
	n := NewRoot[NodeBase]("n")
	assert.Nil(t, n.Property("tooltip"))
	n.SetProperty("tooltip", "hello")
	assert.Equal(t, "hello", n.Property("tooltip"))
	n.DeleteProperty("tooltip")
	assert.Nil(t, n.Property("tooltip"))
}

func TestWalkDown(t *testing.T) {
	root := NewRoot[NodeBase]("root")
	c0 := NewNodeBase("Object", root).SetName("c0")
	c1 := NewNodeBase("Object", root).SetName("c1")
	NewNodeBase("Object", c0).SetName("c00")
	NewNodeBase("Object", c0).SetName("c01")
	NewNodeBase("Object", c1).SetName("c10")

	var names []string
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"root", "c0", "c00", "c01", "c1", "c10"}, names)

	names = nil
	root.WalkDown(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return n != Node(c0)
	})
	assert.Equal(t, []string{"root", "c0", "c1", "c10"}, names)

	var desc []string
	for _, d := range root.Descendants() {
		desc = append(desc, d.AsTree().Name)
	}
	assert.Equal(t, []string{"c0", "c00", "c01", "c1", "c10"}, desc)
	assert.Empty(t, c1.Children[0].AsTree().Descendants())
}

func TestWalkUp(t *testing.T) {
	a := NewRoot[NodeBase]("a")
	b := NewNodeBase("Object", a).SetName("b")
	c := NewNodeBase("Object", b).SetName("c")

	var names []string
	c.WalkUp(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"c", "b", "a"}, names)

	names = nil
	c.WalkUpParent(func(n Node) bool {
		names = append(names, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"b", "a"}, names)
	assert.Equal(t, 1, c.ParentLevel(a))
	assert.Equal(t, -1, a.ParentLevel(c))
	assert.True(t, IsRoot(a))
	assert.False(t, IsRoot(c))
}

func TestWidgetVisibility(t *testing.T) {
	win := NewWidget("QMainWindow")
	frame := NewNodeBase("QLayout", win)
	button := NewWidget("QPushButton", frame).SetShown(true)
	assert.False(t, button.IsVisible(), "hidden window hides its contents")

	win.SetShown(true)
	assert.True(t, button.IsVisible(), "non-widget parents do not affect visibility")

	button.SetShown(false)
	assert.False(t, button.IsVisible())

	l := New[labeled](win)
	l.SetShown(true)
	inner := NewWidget("QLabel", l).SetShown(true)
	assert.True(t, inner.IsVisible())
	l.SetShown(false)
	assert.False(t, inner.IsVisible(), "embedded widget types count as widget ancestors")
}

func TestClone(t *testing.T) {
	win := NewWidget("QMainWindow").SetShown(true)
	win.SetName("MainWindow")
	win.SetProperty("title", "Main")
	NewWidget("QPushButton", win).SetShown(true).SetName("ok")
	NewNodeBase("QAction", win)

	cl, ok := win.Clone().(*Widget)
	require.True(t, ok)
	assert.NotSame(t, win, cl)
	assert.Equal(t, "MainWindow", cl.Name)
	assert.Equal(t, "QMainWindow", cl.TypeTag())
	assert.True(t, cl.Shown)
	assert.Nil(t, cl.Parent)
	assert.Equal(t, "Main", cl.Property("title"))
	require.Len(t, cl.Children, 2)
	for i, kid := range cl.Children {
		assert.NotSame(t, win.Children[i], kid)
		assert.Equal(t, Node(cl), kid.AsTree().Parent)
		assert.Equal(t, win.Children[i].AsTree().TypeTag(), kid.AsTree().TypeTag())
		assert.Equal(t, win.Children[i].AsTree().Name, kid.AsTree().Name)
	}
	ok2, isWidget := cl.Children[0].(*Widget)
	require.True(t, isWidget)
	assert.True(t, ok2.Shown)
}
