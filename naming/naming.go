// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package naming derives stable, human-readable path names for the
// objects of a live object tree, and resolves such names back to
// objects, for recording and replaying user interface test scripts.
//
// A name is a '/'-delimited path from a top-level window down to the
// object. Each segment is the explicit name of an object or, for an
// unnamed object, a synthesized name of the form
//
//	{0|1}{TypeTag}{Index}
//
// where the leading digit is 1 for a visible widget and 0 otherwise, and
// Index counts the preceding unnamed siblings of the same type and the
// same visibility class. Any '/' inside a segment is replaced with '|'.
//
// Names are recomputed from the live tree on every call; nothing is cached,
// since the tree at replay time may differ from the tree at record time.
// A [Namer] is not safe for concurrent use; it is meant to be called from
// the thread that owns the tree.
package naming

import (
	"strings"

	"cogentcore.org/objnaming/tree"
)

// Roots enumerates the root objects of a running application.
// [tree.Scene] implements it.
type Roots interface {

	// TopLevels returns the registered top-level windows,
	// in the toolkit's order.
	TopLevels() []tree.Node

	// Application returns the application singleton, or nil.
	Application() tree.Node
}

// AppSuffix is appended to the name of the application singleton.
const AppSuffix = "-app"

// Namer derives names for the objects reachable from its [Roots]
// and resolves names back to objects.
type Namer struct {

	// Roots is the source of top-level windows and the application.
	Roots Roots

	// Options are the options for diagnostics.
	Options Options

	// last is the diagnostic of the last failed resolution.
	last *Diagnostic
}

// NewNamer returns a new [Namer] for the given roots, with
// [Options] loaded from the environment by [OptionsFromEnv].
func NewNamer(roots Roots) *Namer {
	return &Namer{Roots: roots, Options: OptionsFromEnv()}
}

// topLevels returns the top-level windows, or nil if there are no roots.
func (nm *Namer) topLevels() []tree.Node {
	if nm.Roots == nil {
		return nil
	}
	return nm.Roots.TopLevels()
}

// application returns the application singleton, or nil.
func (nm *Namer) application() tree.Node {
	if nm.Roots == nil {
		return nil
	}
	app := nm.Roots.Application()
	if app == nil || app.AsTree().This == nil {
		return nil
	}
	return app.AsTree().This
}

// isTopLevel returns whether the given node is a registered top-level window.
func (nm *Namer) isTopLevel(n tree.Node) bool {
	for _, w := range nm.topLevels() {
		if w == n {
			return true
		}
	}
	return false
}

// isApplication returns whether the given node is the application singleton.
func (nm *Namer) isApplication(n tree.Node) bool {
	if a, ok := n.(tree.Applicationer); ok && a.IsApplication() {
		return true
	}
	return n == nm.application()
}

// isVisible returns whether the given node is a visible widget.
func isVisible(n tree.Node) bool {
	v, ok := n.(tree.Visibler)
	return ok && v.IsVisible()
}

// this returns the true underlying node of the given node,
// or nil if it is nil or destroyed.
func this(n tree.Node) tree.Node {
	if n == nil {
		return nil
	}
	return n.AsTree().This
}

// escape replaces the path delimiter '/' with '|'.
func escape(s string) string {
	return strings.ReplaceAll(s, "/", "|")
}
