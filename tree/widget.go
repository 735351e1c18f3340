// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// Visibler is implemented by widget-like nodes. Nodes that do not
// implement it are plain objects (actions, layouts, models, timers...),
// which are never considered visible.
type Visibler interface {
	Node

	// IsVisible returns whether the widget is currently visible.
	IsVisible() bool
}

// Applicationer is implemented by the application singleton node.
type Applicationer interface {
	Node

	// IsApplication returns true for the application object.
	IsApplication() bool
}

// Widget is a node that can be shown on screen. It is visible when
// it is shown and every [Widget] above it is shown as well, matching
// the usual toolkit semantics where hiding a window hides its contents.
type Widget struct {
	NodeBase

	// Shown is whether the widget itself has been shown.
	// Use [Widget.IsVisible] for the effective visibility.
	Shown bool
}

// NewWidget returns a new [Widget] with the given type tag,
// adding it to the given optional parent.
func NewWidget(typ string, parent ...Node) *Widget {
	w := New[Widget](parent...)
	w.Type = typ
	return w
}

// SetShown sets whether the widget itself is shown.
func (w *Widget) SetShown(shown bool) *Widget {
	w.Shown = shown
	return w
}

// IsVisible returns whether the widget and all of its widget
// ancestors are shown. Non-widget ancestors do not affect it.
func (w *Widget) IsVisible() bool {
	if !w.Shown {
		return false
	}
	visible := true
	w.WalkUpParent(func(k Node) bool {
		if pv, ok := k.(Visibler); ok {
			visible = pv.IsVisible()
			return Break
		}
		return Continue
	})
	return visible
}

// Application is the application singleton node.
type Application struct {
	NodeBase
}

// NewApplication returns a new [Application] with the given type tag.
func NewApplication(typ string) *Application {
	a := New[Application]()
	a.Type = typ
	return a
}

// IsApplication implements [Applicationer].
func (a *Application) IsApplication() bool {
	return true
}
