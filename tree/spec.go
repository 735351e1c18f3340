// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"cogentcore.org/objnaming/base/errors"
)

// FormatVersion is the version of the [SceneSpec] format written by [Scene.Spec].
const FormatVersion = "1.0.0"

// formatConstraint is the range of [SceneSpec.Version] values that can be built.
var formatConstraint = errors.Must1(semver.NewConstraint("^1"))

// Spec is a serializable description of a node and its children.
// It is used for saving snapshots of a live object tree and for
// building trees from fixture files.
type Spec struct {

	// Type is the type tag of the node; it is required.
	Type string `json:"type" yaml:"type" toml:"type"`

	// Name is the explicit name of the node; empty for unnamed nodes.
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`

	// Widget is whether the node is a [Widget].
	Widget bool `json:"widget,omitempty" yaml:"widget,omitempty" toml:"widget,omitempty"`

	// Shown is whether a widget node is shown; ignored for non-widgets.
	Shown bool `json:"shown,omitempty" yaml:"shown,omitempty" toml:"shown,omitempty"`

	// Children are the children of the node in sibling order.
	Children []*Spec `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// SceneSpec is a serializable description of a [Scene].
type SceneSpec struct {

	// Version is the format version of the spec. Specs written by hand
	// may leave it empty; otherwise it must be compatible with [FormatVersion].
	Version string `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`

	// Application describes the application singleton, if any.
	Application *Spec `json:"application,omitempty" yaml:"application,omitempty" toml:"application,omitempty"`

	// Windows describe the top-level windows in registration order.
	Windows []*Spec `json:"windows" yaml:"windows" toml:"windows"`
}

// Build creates the node described by the spec, with all of its children.
func (sp *Spec) Build() (Node, error) {
	if sp.Type == "" {
		return nil, fmt.Errorf("tree.Spec.Build: node %q has no type", sp.Name)
	}
	var n Node
	if sp.Widget {
		n = NewWidget(sp.Type).SetShown(sp.Shown)
	} else {
		n = NewNodeBase(sp.Type)
	}
	n.AsTree().SetName(sp.Name)
	for _, csp := range sp.Children {
		kid, err := csp.Build()
		if err != nil {
			return nil, err
		}
		n.AsTree().AddChild(kid)
	}
	return n, nil
}

// Build creates the [Scene] described by the spec.
func (ss *SceneSpec) Build() (*Scene, error) {
	if ss.Version != "" {
		v, err := semver.NewVersion(ss.Version)
		if err != nil {
			return nil, fmt.Errorf("tree.SceneSpec.Build: version %q: %w", ss.Version, err)
		}
		if !formatConstraint.Check(v) {
			return nil, fmt.Errorf("tree.SceneSpec.Build: unsupported format version %s (want %s)", v, formatConstraint)
		}
	}
	s := NewScene()
	if ss.Application != nil {
		if ss.Application.Type == "" {
			return nil, fmt.Errorf("tree.SceneSpec.Build: application has no type")
		}
		app := NewApplication(ss.Application.Type)
		app.SetName(ss.Application.Name)
		for _, csp := range ss.Application.Children {
			kid, err := csp.Build()
			if err != nil {
				return nil, err
			}
			app.AddChild(kid)
		}
		s.App = app
	}
	for _, wsp := range ss.Windows {
		w, err := wsp.Build()
		if err != nil {
			return nil, err
		}
		if err := s.AddWindow(w); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// SpecOf returns a [Spec] describing the given node and its children.
func SpecOf(n Node) *Spec {
	nb := n.AsTree()
	sp := &Spec{Type: nb.TypeTag(), Name: nb.Name}
	switch w := n.(type) {
	case *Widget:
		sp.Widget = true
		sp.Shown = w.Shown
	case Visibler:
		sp.Widget = true
		sp.Shown = w.IsVisible()
	}
	for _, kid := range nb.Children {
		sp.Children = append(sp.Children, SpecOf(kid))
	}
	return sp
}

// Spec returns a [SceneSpec] describing the scene.
func (s *Scene) Spec() *SceneSpec {
	ss := &SceneSpec{Version: FormatVersion}
	if s.App != nil {
		ss.Application = SpecOf(s.App)
	}
	for _, w := range s.Windows {
		ss.Windows = append(ss.Windows, SpecOf(w))
	}
	return ss
}
