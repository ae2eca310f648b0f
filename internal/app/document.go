package app

import (
	"bytes"
	"os"
	"path/filepath"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dshills/rite/internal/engine"
)

// Document is a file together with the session editing it.
type Document struct {
	// Path is the absolute file path (empty for scratch buffers).
	Path string

	// Name is the display name (the file's base name, or empty).
	Name string

	// Session holds the text and cursor.
	Session *engine.Session

	// saved is the session revision last written to disk.
	saved engine.RevisionID
}

// NewScratchDocument creates a document with no file.
func NewScratchDocument(opts ...engine.Option) *Document {
	s := engine.New(opts...)
	return &Document{Session: s, saved: s.Revision()}
}

// OpenDocument reads the file at path into a new session. A missing file
// opens as an empty document that Save will create.
//
// File text must be valid UTF-8. Carriage returns are dropped and the text
// is normalized to NFC, so the buffer only ever holds '\n' line breaks.
func OpenDocument(path string, opts ...engine.Option) (*Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	data, err := os.ReadFile(abs)
	if err != nil && !os.IsNotExist(err) {
		return nil, NewOperationError("open", abs, err)
	}
	text, err := decodeText(data)
	if err != nil {
		return nil, NewOperationError("open", abs, err)
	}

	s := engine.New(append([]engine.Option{engine.WithContent(text)}, opts...)...)
	return &Document{
		Path:    abs,
		Name:    filepath.Base(abs),
		Session: s,
		saved:   s.Revision(),
	}, nil
}

// decodeText converts file bytes to buffer text.
func decodeText(data []byte) (string, error) {
	if !utf8.Valid(data) {
		return "", ErrInvalidEncoding
	}
	data = bytes.ReplaceAll(data, []byte("\r"), nil)
	return string(norm.NFC.Bytes(data)), nil
}

// IsScratch returns true if this document has no file.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// IsModified returns true if the text changed since it was loaded or saved.
func (d *Document) IsModified() bool {
	return d.Session.Revision() != d.saved
}

// Save writes the text back to the document's file.
func (d *Document) Save() error {
	if d.IsScratch() {
		return NewOperationError("save", "", ErrNoFilePath)
	}
	if err := os.WriteFile(d.Path, []byte(d.Session.Text()), 0o644); err != nil {
		return NewOperationError("save", d.Path, err)
	}
	d.saved = d.Session.Revision()
	return nil
}
