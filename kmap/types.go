package kmap

import "strings"

// MaxVars is the largest variable count accepted by NewGrid.
// Past this point the map is no longer something a person can read.
const MaxVars = 12

// Coord is a cell position on the map.
type Coord struct {
	X, Y int
}

// Cell is one member of a Block: the original index and where it sits.
type Cell struct {
	Index int // truth-table index
	X, Y  int // grid coordinates of Index
}

// Block is a maximal 4-connected island of cells. It never follows the
// wraparound; a group split across a map edge yields one Block per side.
type Block []Cell

// Rect spans [X1, X2) × [Y1, Y2) in grid units.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Width returns X2 - X1.
func (r Rect) Width() int { return r.X2 - r.X1 }

// Height returns Y2 - Y1.
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// Edge is a set of rectangle sides.
type Edge uint8

const (
	// EdgeRight is the side at X2.
	EdgeRight Edge = 1 << iota
	// EdgeLeft is the side at X1.
	EdgeLeft
	// EdgeTop is the side at Y1.
	EdgeTop
	// EdgeBottom is the side at Y2.
	EdgeBottom

	// EdgeNone is the empty set.
	EdgeNone Edge = 0
	// EdgeAll holds all four sides.
	EdgeAll = EdgeRight | EdgeLeft | EdgeTop | EdgeBottom
)

// Edges lists the four sides in drawing order.
var Edges = [4]Edge{EdgeLeft, EdgeRight, EdgeTop, EdgeBottom}

// Has reports whether every side in f is in e.
func (e Edge) Has(f Edge) bool { return e&f == f }

// Sides returns the \oval side selector for a set of closed sides: a side
// letter is emitted only when its opposite side is not in the set.
// Both or neither sides of an axis contribute nothing.
func (e Edge) Sides() string {
	var b strings.Builder
	if e.Has(EdgeRight) && !e.Has(EdgeLeft) {
		b.WriteByte('r')
	}
	if e.Has(EdgeLeft) && !e.Has(EdgeRight) {
		b.WriteByte('l')
	}
	if e.Has(EdgeTop) && !e.Has(EdgeBottom) {
		b.WriteByte('t')
	}
	if e.Has(EdgeBottom) && !e.Has(EdgeTop) {
		b.WriteByte('b')
	}
	return b.String()
}

// String renders the set as e.g. "left|top"; the empty set is "none".
func (e Edge) String() string {
	if e&EdgeAll == EdgeNone {
		return "none"
	}
	names := make([]string, 0, 4)
	for _, side := range Edges {
		if e.Has(side) {
			names = append(names, edgeNames[side])
		}
	}
	return strings.Join(names, "|")
}

var edgeNames = map[Edge]string{
	EdgeLeft:   "left",
	EdgeRight:  "right",
	EdgeTop:    "top",
	EdgeBottom: "bottom",
}

// Boundary is the renderable geometry of one island of a group.
// Open holds the sides where the group continues through the wraparound;
// those sides get no line on screen.
type Boundary struct {
	Rect
	Open Edge
}

// Closed returns the sides that are drawn.
func (b Boundary) Closed() Edge { return EdgeAll &^ b.Open }

// Grid holds the dimensions of a map with Vars variables.
// It is a plain value; the zero Grid is invalid, build one with NewGrid.
type Grid struct {
	Vars          int
	Width, Height int
}
