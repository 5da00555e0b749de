// SPDX-License-Identifier: MIT
// Package: karnaugh/session
//
// Package session is the editing model behind a Karnaugh-map editor: the
// variable names, the truth-table values, the title and an ordered list of
// markings, one of which is selected.
//
// What:
//
//   - Clicks address cells by grid coordinate (LeftClick, RightClick) or by
//     index (LeftClickIndex, RightClickIndex). A left click grows the
//     selected marking towards the clicked cell, a right click on a member
//     halves it back; see kmap.Group.Expand and kmap.Group.Shrink.
//   - Markings carry a tag from a pool.Allocator and a colour from a
//     pool.Cycle over the palette. Tags and colours of removed markings are
//     reused.
//   - Every change to a marking recomputes its boundaries with kmap.Classify.
//   - Document returns a detached snapshot for the exporters.
//
// Contract:
//
//   - There is always at least one marking and the selection always points
//     at one of them. A fresh session has a single empty marking.
//   - Clicks that cannot apply (outside the grid, no neighbour, not a member)
//     are no-ops reported by a false return and a debug log line.
//   - Option constructors (WithX) panic on meaningless input. Methods return
//     errors.
//
// A Session is not safe for concurrent use.
package session
