// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package naming

import (
	"fmt"
	"log/slog"

	"cogentcore.org/objnaming/base/errors"
	"cogentcore.org/objnaming/tree"
)

var (
	// ErrUnnamed is the kind of a [NameError] for an object
	// that has no explicit name and can not be given one.
	ErrUnnamed = errors.New("unnamed object")

	// ErrUnnamedAncestor is the kind of a [NameError] for an object
	// with an ancestor that has no explicit name and can not be given one.
	ErrUnnamedAncestor = errors.New("incompletely-named object")

	// ErrNotTopLevel is the kind of a [NameError] for an object whose
	// top-most ancestor is not a registered top-level window.
	ErrNotTopLevel = errors.New("ancestor is not a top-level window")
)

// NameError is returned by [Namer.Name] when a name can not be derived.
type NameError struct {

	// Kind is one of [ErrUnnamed], [ErrUnnamedAncestor], or [ErrNotTopLevel].
	Kind error

	// Object is the object that was being named.
	Object tree.Node

	// Ancestor is the ancestor that caused the failure, if any.
	Ancestor tree.Node

	// Partial is the name composed before the failure.
	Partial string
}

func (e *NameError) Error() string {
	switch e.Kind {
	case ErrUnnamed:
		return fmt.Sprintf("cannot record event for unnamed object %v", e.Object)
	case ErrUnnamedAncestor:
		return fmt.Sprintf("cannot record event for incompletely-named object %q %v with parent %v", e.Partial, e.Object, e.Ancestor)
	case ErrNotTopLevel:
		return fmt.Sprintf("unable to determine name for object %v because a parent %v is not a top-level window; name so far = %q", e.Object, e.Ancestor, e.Partial)
	}
	return fmt.Sprintf("%v: %v", e.Kind, e.Object)
}

// Unwrap returns [NameError.Kind], so that [errors.Is] works
// with the kinds.
func (e *NameError) Unwrap() error {
	return e.Kind
}

// log logs the error and returns it.
func (e *NameError) log() *NameError {
	slog.Error(e.Error(), "kind", e.Kind.Error(), "object", fmt.Sprint(e.Object), "name", e.Partial)
	return e
}
