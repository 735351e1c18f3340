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

func TestDumpHierarchy(t *testing.T) {
	ts := newTestScene(t)
	want := []string{
		"MainWindow",
		"MainWindow/1QMenuBar0",
		"MainWindow/1QMenuBar0/menu_File",
		"MainWindow/1QMenuBar0/menu_File/actionOpen",
		"MainWindow/1QMenuBar0/menu_File/0QAction0",
		"MainWindow/0QPushButton0",
		"MainWindow/1QPushButton0",
		"MainWindow/0QPushButton1",
		"0QDialog0",
	}
	assert.Equal(t, want, ts.namer.DumpHierarchy())
	assert.Equal(t, want[2:5], ts.namer.DumpNode(ts.menu))
}

func TestDumpHierarchyWindowWithTwoChildren(t *testing.T) {
	s := tree.NewScene()
	win := tree.NewWidget("QWidget").SetShown(true)
	win.SetName("w")
	tree.NewWidget("QLabel", win).SetName("a")
	tree.NewWidget("QLabel", win).SetName("b")
	require.NoError(t, s.AddWindow(win))
	nm := &Namer{Roots: s}
	assert.Equal(t, []string{"w", "w/a", "w/b"}, nm.DumpHierarchy())
}

func TestDumpHierarchyUnnameable(t *testing.T) {
	ts := newTestScene(t)
	anon := &struct{ tree.NodeBase }{}
	ts.dialog.AddChild(anon)
	dump := ts.namer.DumpHierarchy()
	require.Len(t, dump, 10)
	assert.Equal(t, "0QDialog0", dump[8])
	assert.Empty(t, dump[9])
}
