// SPDX-License-Identifier: MIT

package yamlio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadMap_NestedDocument(t *testing.T) {
	path := writeFixture(t, "config.yml", `
ship:
  name: mariner
  speed: 12.5
  crew: 8
tags:
  - fast
  - blue
`)

	doc, err := ReadMap(path)
	if err != nil {
		t.Fatalf("ReadMap: %v", err)
	}

	want := map[string]any{
		"ship": map[string]any{
			"name":  "mariner",
			"speed": 12.5,
			"crew":  8,
		},
		"tags": []any{"fast", "blue"},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestReadMap_EmptyDocuments(t *testing.T) {
	for name, content := range map[string]string{
		"empty file":    "",
		"only comments": "# nothing here\n",
		"explicit null": "null\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeFixture(t, "config.yaml", content)
			doc, err := ReadMap(path)
			if err != nil {
				t.Fatalf("ReadMap: %v", err)
			}
			if doc != nil {
				t.Errorf("expected nil map for empty document, got %v", doc)
			}
		})
	}
}

func TestReadMap_UnsupportedExtension(t *testing.T) {
	path := writeFixture(t, "config.json", `{"a": 1}`)

	_, err := ReadMap(path)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got: %v", err)
	}

	var fileErr *FileError
	if !errors.As(err, &fileErr) {
		t.Fatalf("expected *FileError, got %T", err)
	}
	if fileErr.Path != path {
		t.Errorf("FileError.Path = %q, want %q", fileErr.Path, path)
	}
}

func TestReadMap_MissingFile(t *testing.T) {
	_, err := ReadMap(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected os.ErrNotExist via FileError, got: %v", err)
	}
}

func TestReadMap_NonMappingRoot(t *testing.T) {
	for name, content := range map[string]string{
		"sequence": "- a\n- b\n",
		"scalar":   "42\n",
	} {
		t.Run(name, func(t *testing.T) {
			path := writeFixture(t, "config.yaml", content)
			_, err := ReadMap(path)
			if !errors.Is(err, ErrNotMapping) {
				t.Fatalf("expected ErrNotMapping, got: %v", err)
			}
		})
	}
}

func TestReadMap_MultipleDocuments(t *testing.T) {
	path := writeFixture(t, "config.yaml", "a: 1\n---\nb: 2\n")

	_, err := ReadMap(path)
	if !errors.Is(err, ErrTrailingContent) {
		t.Fatalf("expected ErrTrailingContent, got: %v", err)
	}
}

func TestReadMap_DuplicateKeys(t *testing.T) {
	path := writeFixture(t, "config.yaml", "a: 1\na: 2\n")

	if _, err := ReadMap(path); err == nil {
		t.Fatal("expected duplicate key error, got nil")
	}
}

func TestReadNode_PreservesDeclarationOrder(t *testing.T) {
	path := writeFixture(t, "schema.yaml", "banana: 1\napple: 2\ncherry: 3\n")

	node, err := ReadNode(path)
	if err != nil {
		t.Fatalf("ReadNode: %v", err)
	}
	if node.Kind != yaml.MappingNode {
		t.Fatalf("expected mapping node, got kind %v", node.Kind)
	}

	var keys []string
	for i := 0; i < len(node.Content); i += 2 {
		keys = append(keys, node.Content[i].Value)
	}
	want := []string{"banana", "apple", "cherry"}
	if diff := cmp.Diff(want, keys); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	doc := map[string]any{
		"ship": map[string]any{"name": "mariner", "crew": 8},
		"tags": []any{"fast"},
	}

	if err := Write(path, doc); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := ReadMap(path)
	if err != nil {
		t.Fatalf("ReadMap after Write: %v", err)
	}
	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_ReplacesExistingAtomically(t *testing.T) {
	path := writeFixture(t, "out.yaml", "old: true\n")

	if err := Write(path, map[string]any{"fresh": 1}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := ReadMap(path)
	if err != nil {
		t.Fatalf("ReadMap: %v", err)
	}
	if _, stale := got["old"]; stale {
		t.Error("old content survived the replace")
	}
	if got["fresh"] != 1 {
		t.Errorf("fresh = %v, want 1", got["fresh"])
	}

	// No temp files may be left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the target file in dir, found %d entries", len(entries))
	}
}

func TestWrite_UnsupportedExtension(t *testing.T) {
	err := Write(filepath.Join(t.TempDir(), "out.toml"), map[string]any{"a": 1})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got: %v", err)
	}
}
