package schema

import (
	"errors"
	"path/filepath"
)

// Document is a loaded schema payload together with its origin. The payload
// is always JSON; loaders bridge YAML before a Document is built.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument validates and copies raw into a Document.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("schema: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("schema: raw document is empty")
	}
	return Document{source: src, raw: append([]byte(nil), raw...)}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a copy of the JSON payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Dir returns the directory holding a file-backed document. Documents from an
// fs.FS or without a source have no directory on disk.
func (d Document) Dir() (string, bool) {
	if d.source == nil || d.source.Kind() != SourceKindFile {
		return "", false
	}
	return filepath.Dir(d.source.Location()), true
}
