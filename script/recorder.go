// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"io"

	"cogentcore.org/objnaming/naming"
	"cogentcore.org/objnaming/tree"
)

// Recorder records events addressed to objects by their names.
type Recorder struct {

	// Namer names the objects of recorded events.
	Namer *naming.Namer

	events []Event
}

// NewRecorder returns a new [Recorder] using the given namer.
func NewRecorder(nm *naming.Namer) *Recorder {
	return &Recorder{Namer: nm}
}

// Record records the given command on the given node. If the node
// can not be named, nothing is recorded and the naming error is returned.
func (r *Recorder) Record(n tree.Node, command string, args ...string) error {
	name, err := r.Namer.Name(n)
	if err != nil {
		return err
	}
	r.events = append(r.events, Event{Object: name, Command: command, Args: args})
	return nil
}

// Events returns the recorded events.
func (r *Recorder) Events() []Event {
	return r.events
}

// Reset discards the recorded events.
func (r *Recorder) Reset() {
	r.events = nil
}

// Save writes the text form of the recorded events to the given writer.
func (r *Recorder) Save(w io.Writer) error {
	return Write(w, r.events)
}
