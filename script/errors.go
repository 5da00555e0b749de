package script

import "errors"

var (
	// ErrEmptyMarking indicates a marking entry with neither indices nor clicks.
	ErrEmptyMarking = errors.New("script: marking has no cells")
	// ErrClickIgnored indicates a click that left the marking unchanged.
	ErrClickIgnored = errors.New("script: click changed nothing")
	// ErrMixedMarking indicates a marking entry with both indices and clicks.
	ErrMixedMarking = errors.New("script: marking has both indices and clicks")
	// ErrSelectedRange indicates a selected position outside the markings.
	ErrSelectedRange = errors.New("script: selected out of range")
)
