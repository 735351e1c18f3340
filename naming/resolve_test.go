// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naming_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/objnaming/naming"
	"cogentcore.org/objnaming/tree"
)

func TestObjectRoundTrip(t *testing.T) {
	ts := newTestScene(t)
	nm := ts.namer
	nodes := append([]tree.Node{ts.app}, ts.allNodes...)
	for _, n := range nodes {
		name, err := nm.Name(n)
		require.NoError(t, err)
		got, d := nm.Object(name)
		if assert.Nil(t, d, "resolving %q", name) {
			assert.Equal(t, n, got, "resolving %q", name)
		}
	}
	assert.Empty(t, nm.LastError())
	assert.Nil(t, nm.LastDiagnostic())
}

func TestObjectEmpty(t *testing.T) {
	ts := newTestScene(t)
	n, d := ts.namer.Object("")
	assert.Nil(t, n)
	assert.Nil(t, d)
}

func TestObjectUnnamedNameOfNamedObject(t *testing.T) {
	ts := newTestScene(t)
	n, d := ts.namer.Object("MainWindow/1QMenuBar0/0QMenu0")
	require.Nil(t, d)
	assert.Equal(t, tree.Node(ts.menu), n, "named objects also match their synthesized name")

	n, d = ts.namer.Object("1QMainWindow0/1QMenuBar0")
	require.Nil(t, d)
	assert.Equal(t, tree.Node(ts.menubar), n)
}

func TestObjectVisibilityFallback(t *testing.T) {
	ts := newTestScene(t)
	nm := ts.namer
	recorded, err := nm.Name(ts.buttons[2])
	require.NoError(t, err)
	assert.Equal(t, "MainWindow/0QPushButton1", recorded)

	ts.buttons[2].SetShown(true) // now 1QPushButton1
	n, d := nm.Object(recorded)
	require.Nil(t, d)
	assert.Equal(t, tree.Node(ts.buttons[2]), n)
}

func TestObjectNoReverseVisibilityFallback(t *testing.T) {
	ts := newTestScene(t)
	nm := ts.namer
	recorded, err := nm.Name(ts.buttons[1])
	require.NoError(t, err)
	assert.Equal(t, "MainWindow/1QPushButton0", recorded)

	ts.buttons[1].SetShown(false)
	n, d := nm.Object(recorded)
	assert.Nil(t, n)
	require.NotNil(t, d)
	assert.Equal(t, tree.Node(ts.win), d.Deepest)
}

func TestObjectFallbackRescansAllChildren(t *testing.T) {
	s := tree.NewScene()
	win := tree.NewWidget("QMainWindow").SetShown(true)
	win.SetName("win")
	require.NoError(t, s.AddWindow(win))
	first := tree.NewWidget("QCheckBox", win).SetShown(true)
	tree.NewWidget("QCheckBox", win).SetShown(true)
	nm := &Namer{Roots: s}

	n, d := nm.Object("win/0QCheckBox0")
	require.Nil(t, d)
	assert.Equal(t, tree.Node(first), n)
}

func TestObjectScanOrder(t *testing.T) {
	s := tree.NewScene()
	win := tree.NewWidget("QMainWindow").SetShown(true)
	win.SetName("win")
	require.NoError(t, s.AddWindow(win))
	named := tree.NewWidget("QLabel", win).SetShown(true)
	named.SetName("1QLineEdit0")
	tree.NewWidget("QLineEdit", win).SetShown(true)
	nm := &Namer{Roots: s}

	n, d := nm.Object("win/1QLineEdit0")
	require.Nil(t, d)
	assert.Equal(t, tree.Node(named), n, "the first match in sibling order wins")
}

func TestObjectFailure(t *testing.T) {
	ts := newTestScene(t)
	nm := ts.namer

	n, d := nm.Object("MainWindow/1QMenuBar0/menu_Edit/actionUndo")
	assert.Nil(t, n)
	require.NotNil(t, d)
	assert.Equal(t, tree.Node(ts.menubar), d.Deepest)
	assert.Equal(t, "MainWindow/1QMenuBar0", d.DeepestName)
	assert.Equal(t, "actionUndo", d.Segment)
	assert.Same(t, d, nm.LastDiagnostic())
	assert.Equal(t, d.String(), nm.LastError())

	n, d = nm.Object("SecondWindow/child")
	assert.Nil(t, n)
	require.NotNil(t, d)
	assert.Nil(t, d.Deepest)
	assert.Equal(t, "couldn't find object \"SecondWindow/child\"", d.Error())
	assert.Equal(t, d.String(), nm.LastError(), "the last diagnostic is replaced")
}

func TestObjectEmptySegment(t *testing.T) {
	ts := newTestScene(t)
	anon := &struct{ tree.NodeBase }{}
	ts.win.AddChild(anon)
	for _, name := range []string{"MainWindow/", "MainWindow//0QPushButton0", "/MainWindow"} {
		n, d := ts.namer.Object(name)
		assert.Nil(t, n, name)
		require.NotNil(t, d, name)
	}
	n, d := ts.namer.Object("MainWindow/")
	require.NotNil(t, d)
	assert.Nil(t, n)
	assert.Same(t, ts.win, d.Deepest)
}
