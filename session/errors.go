// SPDX-License-Identifier: MIT
// Package: karnaugh/session
//
// errors.go: sentinel errors for the session package.

package session

import "errors"

// ErrValuesLength indicates a values string longer than the map has cells.
var ErrValuesLength = errors.New("session: more values than cells")

// ErrUnknownColor indicates a colour that is not in the palette.
var ErrUnknownColor = errors.New("session: colour not in palette")

// ErrEmptyPalette indicates a palette without colours.
var ErrEmptyPalette = errors.New("session: empty palette")

// ErrInvalidGroup indicates indices that do not form a K-map group.
// The underlying kmap error is wrapped alongside it.
var ErrInvalidGroup = errors.New("session: invalid group")
