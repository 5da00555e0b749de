package render

import "errors"

var (
	// ErrEmptyDocument indicates a document without variables.
	ErrEmptyDocument = errors.New("render: document has no variables")
	// ErrFont indicates the embedded font could not be loaded.
	ErrFont = errors.New("render: font unavailable")
)
