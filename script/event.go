// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package script records and replays user interface test scripts,
// which are sequences of events addressed to objects by the names
// of package [naming].
//
// The text form of a script has one event per line:
//
//	<object> <command> [args...]
//
// with shell-style quoting of tokens. After unquoting, \n, \r and \\
// within a token stand for a newline, a carriage return and a backslash,
// so that multi-line text stays on one line. Blank lines and lines
// starting with # are ignored.
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Event is one recorded user interface event.
type Event struct {

	// Object is the full name of the object that received the event.
	Object string

	// Command is the high-level command, like "activate" or "set_string".
	Command string

	// Args are the arguments of the command.
	Args []string

	// Line is the line of the event in the script it was parsed from,
	// or 0 if it was not parsed.
	Line int
}

// String returns the text form of the event.
func (ev Event) String() string {
	tokens := append([]string{ev.Object, ev.Command}, ev.Args...)
	for i, tok := range tokens {
		tokens[i] = Quote(tok)
	}
	return strings.Join(tokens, " ")
}

// special are the characters that require a token to be quoted.
const special = " \t\r\n'\"\\;&|<>$`#()"

// escaper encodes the characters that can not appear raw in a line of
// the text form; unescaper reverses it after shell unquoting.
var (
	escaper   = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\r", `\r`)
	unescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\r`, "\r")
)

// Quote returns the given token quoted for the text form if necessary.
// Backslashes, newlines and carriage returns are escaped as \\, \n and \r
// within the quotes so that every event stays on one line.
func Quote(tok string) string {
	if tok != "" && !strings.ContainsAny(tok, special) {
		return tok
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range escaper.Replace(tok) {
		switch r {
		case '"', '\\', '$', '`':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	b.WriteByte('"')
	return b.String()
}

// ParseLine parses one line of the text form. It returns ok = false
// for blank lines and comments.
func ParseLine(line string) (ev Event, ok bool, err error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return ev, false, nil
	}
	p := shellwords.NewParser()
	tokens, err := p.Parse(trimmed)
	if err != nil {
		return ev, false, err
	}
	if p.Position >= 0 {
		return ev, false, fmt.Errorf("unquoted shell operator in %q; quote tokens containing any of ;&|<>", trimmed)
	}
	if len(tokens) < 2 {
		return ev, false, fmt.Errorf("event %q must have an object and a command", trimmed)
	}
	for i, tok := range tokens {
		tokens[i] = unescaper.Replace(tok)
	}
	ev = Event{Object: tokens[0], Command: tokens[1], Args: tokens[2:]}
	return ev, true, nil
}

// Parse parses the text form of a script.
func Parse(r io.Reader) ([]Event, error) {
	var events []Event
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		ev, ok, err := ParseLine(sc.Text())
		if err != nil {
			return events, fmt.Errorf("script: line %d: %w", line, err)
		}
		if !ok {
			continue
		}
		ev.Line = line
		events = append(events, ev)
	}
	return events, sc.Err()
}

// Open parses the script in the given file.
func Open(filename string) ([]Event, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	events, err := Parse(f)
	if err != nil {
		return events, fmt.Errorf("%s: %w", filename, err)
	}
	return events, nil
}

// Write writes the text form of the given events, one per line.
func Write(w io.Writer, events []Event) error {
	for _, ev := range events {
		if _, err := fmt.Fprintln(w, ev.String()); err != nil {
			return err
		}
	}
	return nil
}
