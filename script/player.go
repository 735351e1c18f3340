// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package script

import (
	"fmt"

	"cogentcore.org/objnaming/base/errors"

	"cogentcore.org/objnaming/naming"
	"cogentcore.org/objnaming/tree"
)

// Handler performs the given event on the given resolved node.
type Handler func(n tree.Node, ev Event) error

// Player replays events by resolving their objects and
// passing them to a [Handler].
type Player struct {

	// Namer resolves the objects of events.
	Namer *naming.Namer

	// Handler performs events. If it is nil, events are only resolved.
	Handler Handler
}

// NewPlayer returns a new [Player] using the given namer and handler.
func NewPlayer(nm *naming.Namer, handler Handler) *Player {
	return &Player{Namer: nm, Handler: handler}
}

// ErrEmptyObject is the error of a [PlayError] for an event without an object name.
var ErrEmptyObject = errors.New("empty object name")

// PlayError is returned by [Player.Play] for an event that
// could not be replayed.
type PlayError struct {

	// Event is the event that failed.
	Event Event

	// Diagnostic is set when the object of the event could not be resolved.
	Diagnostic *naming.Diagnostic

	// Err is set when the handler failed.
	Err error
}

func (e *PlayError) Error() string {
	where := e.Event.Command
	if e.Event.Line > 0 {
		where = fmt.Sprintf("line %d: %s", e.Event.Line, where)
	}
	if e.Diagnostic != nil {
		return fmt.Sprintf("script: %s: %v", where, e.Diagnostic)
	}
	return fmt.Sprintf("script: %s %q: %v", where, e.Event.Object, e.Err)
}

func (e *PlayError) Unwrap() error {
	if e.Diagnostic != nil {
		return e.Diagnostic
	}
	return e.Err
}

// Step resolves the object of the given event and performs it.
func (p *Player) Step(ev Event) error {
	n, err := p.resolve(ev)
	if err != nil {
		return err
	}
	if p.Handler == nil {
		return nil
	}
	if err := p.Handler(n, ev); err != nil {
		return &PlayError{Event: ev, Err: err}
	}
	return nil
}

// Play replays the given events in order, stopping at the first one
// that fails, which is returned as a *[PlayError].
func (p *Player) Play(events []Event) error {
	for _, ev := range events {
		if err := p.Step(ev); err != nil {
			return err
		}
	}
	return nil
}

// Check resolves the object of every one of the given events without
// performing them, returning a *[PlayError] for each one that fails.
func (p *Player) Check(events []Event) []*PlayError {
	var errs []*PlayError
	for _, ev := range events {
		if _, err := p.resolve(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

// resolve returns the object of the given event.
func (p *Player) resolve(ev Event) (tree.Node, *PlayError) {
	n, d := p.Namer.Object(ev.Object)
	if d != nil {
		return nil, &PlayError{Event: ev, Diagnostic: d}
	}
	if n == nil {
		return nil, &PlayError{Event: ev, Err: ErrEmptyObject}
	}
	return n, nil
}
