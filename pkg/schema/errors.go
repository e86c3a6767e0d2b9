package schema

import "errors"

var (
	// ErrInputNotFound reports a source that does not resolve to a readable
	// file.
	ErrInputNotFound = errors.New("input not found")

	// ErrMalformedDocument reports a payload that is not valid JSON (or YAML
	// for YAML sources).
	ErrMalformedDocument = errors.New("malformed document")
)
