package configdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cryocare-tools/cryocare-setup/internal/platform"
)

// Indent is the per-level indentation of saved documents
const Indent = "    "

// WriteError reports that a document could not be written to Path
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// ErrEmptyPath is returned by Save when no destination is given
var ErrEmptyPath = errors.New("destination path is empty")

// Encode serializes doc with stable key order and 4-space indentation,
// without a trailing newline
func Encode(doc Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("nil document")
	}
	// Paths are written literally: no \u0026 for '&' and friends
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", doc.Stage().ConfigName(), err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Parse decodes a saved document into a generic mapping
func Parse(data []byte) (map[string]interface{}, error) {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return m, nil
}

// Save encodes doc and writes it atomically to path. Any failure is
// returned as a *WriteError and leaves no partial file behind.
func Save(path string, doc Document) error {
	if path == "" {
		return &WriteError{Path: path, Err: ErrEmptyPath}
	}

	data, err := Encode(doc)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	if err := platform.WriteFileAtomic(path, data); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
