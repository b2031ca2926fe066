// SPDX-License-Identifier: MIT

// Package yamlio reads and writes YAML configuration documents with strict
// parsing. Files must carry a .yaml or .yml extension, contain exactly one
// document, and decode without duplicate keys. Reads surface the document both
// as a generic map and as a yaml.Node tree for callers that need declaration
// order.
package yamlio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat classifies paths whose extension is not .yaml or .yml.
	// Use errors.Is(err, ErrUnsupportedFormat) instead of string matching.
	ErrUnsupportedFormat = errors.New("unsupported config format (only YAML supported)")

	// ErrNotMapping classifies documents whose top level is not a mapping.
	ErrNotMapping = errors.New("top-level YAML content is not a mapping")

	// ErrTrailingContent classifies files with multiple documents or trailing content.
	ErrTrailingContent = errors.New("file contains multiple documents or trailing content")
)

// FileError wraps any failure to read, parse or write a configuration file
// together with the path it occurred on.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("config file %s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// ReadMap loads a YAML file into a generic string-keyed map. An empty file
// (or an explicit null document) yields a nil map and no error; deciding
// whether emptiness is acceptable is the caller's concern.
func ReadMap(path string) (map[string]any, error) {
	node, err := ReadNode(path)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, &FileError{Path: path, Err: ErrNotMapping}
	}

	var doc map[string]any
	if err := node.Decode(&doc); err != nil {
		return nil, &FileError{Path: path, Err: fmt.Errorf("strict parse: %w", err)}
	}
	return doc, nil
}

// ReadNode loads a YAML file and returns the root node of its single
// document, preserving key declaration order. It returns (nil, nil) for an
// empty document.
func ReadNode(path string) (*yaml.Node, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, &FileError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)}
	}

	// #nosec G304 -- configuration file paths are provided by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	node, err := DecodeNode(data)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return node, nil
}

// DecodeNode decodes raw YAML bytes into the root node of their single
// document, with the same strictness as ReadNode. Callers embedding documents
// in the binary use this directly.
func DecodeNode(data []byte) (*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("strict parse: %w", err)
	}

	// Strict: exactly one document per stream.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingContent
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return nil, nil
		}
		node = node.Content[0]
	}
	// An explicit "null" document counts as empty.
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return nil, nil
	}
	return node, nil
}

// Write marshals doc and atomically replaces the file at path. The temp file
// is fsynced before the rename, so a crash leaves either the old or the new
// content, never a torn file.
func Write(path string, doc any) error {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return &FileError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)}
	}

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return &FileError{Path: path, Err: fmt.Errorf("create pending file: %w", err)}
	}
	defer func() {
		// Removes the temp file if we bail out before the atomic replace.
		_ = pending.Cleanup()
	}()

	enc := yaml.NewEncoder(pending)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return &FileError{Path: path, Err: fmt.Errorf("encode: %w", err)}
	}
	if err := enc.Close(); err != nil {
		return &FileError{Path: path, Err: fmt.Errorf("encode: %w", err)}
	}

	if err := pending.CloseAtomicallyReplace(); err != nil {
		return &FileError{Path: path, Err: fmt.Errorf("atomically replace: %w", err)}
	}
	return nil
}
