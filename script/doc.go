// Package script reads and writes session files.
//
// A session file is YAML that replays a session: title, variables, values,
// an optional palette and the markings in order. Each marking lists its
// cells directly or as a sequence of clicks, so a file can record either the
// result or the way it was drawn:
//
//	title: f
//	vars: [A, B, C, D]
//	values: "11000011****10**"
//	markings:
//	  - color: red
//	    indices: [0, 1, 5, 4]
//	  - clicks:
//	      - {x: 1, y: 1}
//	      - {x: 2, y: 1}
//	      - {x: 2, y: 1, right: true}
//
// Load decodes strictly; unknown keys are errors. Apply replays a script
// onto a session, FromDocument captures one.
package script
