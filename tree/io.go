// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the supported encodings of a [SceneSpec].
type Formats int32

const (
	// JSON is the encoding/json format.
	JSON Formats = iota

	// YAML is the YAML format.
	YAML

	// TOML is the TOML format.
	TOML
)

func (f Formats) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Formats(%d)", int32(f))
}

// FormatFromFilename returns the format implied by the extension
// of the given filename.
func FormatFromFilename(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return JSON, fmt.Errorf("tree: unknown format for file %q (must be .json, .yaml, .yml, or .toml)", filename)
}

// Read reads a [SceneSpec] in the given format from the given reader
// and builds the [Scene] it describes.
func Read(r io.Reader, format Formats) (*Scene, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	ss := &SceneSpec{}
	switch format {
	case JSON:
		err = json.Unmarshal(b, ss)
	case YAML:
		err = yaml.Unmarshal(b, ss)
	case TOML:
		err = toml.Unmarshal(b, ss)
	default:
		err = fmt.Errorf("tree.Read: unknown format %v", format)
	}
	if err != nil {
		return nil, err
	}
	return ss.Build()
}

// Write writes the [SceneSpec] of the given scene in the given format.
func Write(w io.Writer, s *Scene, format Formats) error {
	ss := s.Spec()
	var b []byte
	var err error
	switch format {
	case JSON:
		b, err = json.MarshalIndent(ss, "", "\t")
		b = append(b, '\n')
	case YAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		err = enc.Encode(ss)
		if err == nil {
			err = enc.Close()
		}
		b = buf.Bytes()
	case TOML:
		b, err = toml.Marshal(ss)
	default:
		err = fmt.Errorf("tree.Write: unknown format %v", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Open reads the scene from the given file, using the format
// implied by its extension.
func Open(filename string) (*Scene, error) {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("tree.Open %q: %w", filename, err)
	}
	return s, nil
}

// Save writes the scene to the given file, using the format
// implied by its extension.
func Save(s *Scene, filename string) error {
	format, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Write(&buf, s, format); err != nil {
		return err
	}
	return os.WriteFile(filename, buf.Bytes(), 0666)
}
