// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"
)

// Scene is the registry of root nodes of a running application:
// the optional application singleton and the list of top-level windows,
// in registration order. It plays the role of the toolkit's list of
// top-level widgets.
type Scene struct {

	// App is the application singleton, if any.
	App Node

	// Windows are the registered top-level windows.
	Windows []Node
}

// NewScene returns a new empty [Scene] with the given optional application.
func NewScene(app ...Node) *Scene {
	s := &Scene{}
	if len(app) > 0 {
		s.App = app[0]
	}
	return s
}

// Application returns the application singleton, which may be nil.
func (s *Scene) Application() Node {
	return s.App
}

// TopLevels returns the current top-level windows in registration order.
// Windows that have been destroyed are unregistered first.
// The returned slice must not be modified.
func (s *Scene) TopLevels() []Node {
	s.Windows = slices.DeleteFunc(s.Windows, func(w Node) bool {
		return w == nil || w.AsTree().This == nil
	})
	return s.Windows
}

// AddWindow registers the given root node as a top-level window.
// It returns an error if the node has a parent or is already registered.
func (s *Scene) AddWindow(w Node) error {
	InitNode(w)
	if w.AsTree().Parent != nil {
		return fmt.Errorf("tree.Scene.AddWindow: %v has a parent and can not be a top-level window", w)
	}
	if s.IsTopLevel(w) {
		return fmt.Errorf("tree.Scene.AddWindow: %v is already a top-level window", w)
	}
	s.Windows = append(s.Windows, w)
	return nil
}

// RemoveWindow unregisters the given top-level window without destroying it,
// returning false if it was not registered.
func (s *Scene) RemoveWindow(w Node) bool {
	idx := IndexOf(s.Windows, w)
	if idx < 0 {
		return false
	}
	s.Windows = slices.Delete(s.Windows, idx, idx+1)
	return true
}

// IsTopLevel returns whether the given node is a registered top-level window.
func (s *Scene) IsTopLevel(n Node) bool {
	return n != nil && IndexOf(s.TopLevels(), n) >= 0
}

// WalkDown calls [NodeBase.WalkDown] with the given function on every
// current top-level window, in registration order.
func (s *Scene) WalkDown(fun func(n Node) bool) {
	for _, w := range s.TopLevels() {
		w.AsTree().WalkDown(fun)
	}
}
