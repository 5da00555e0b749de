package labels

import (
	"github.com/katalvlaran/karnaugh/bintree"
)

// Axis selects a map edge.
type Axis int

const (
	// Top is the horizontal axis above the map, x coordinates.
	Top Axis = iota
	// Left is the vertical axis left of the map, y coordinates.
	Left
)

func (a Axis) String() string {
	if a == Left {
		return "left"
	}
	return "top"
}

// Bar is one labelled segment along an axis, in cell units.
type Bar struct {
	Var   int    // variable number, i.e. index bit
	Name  string // variable name, empty if none was given
	Axis  Axis
	Depth int // axis bit; bars of deeper bits sit further from the map
	Start int // first cell covered
	End   int // one past the last cell covered
}

// record is the pooled per-bar state.
type record struct {
	bit int
}

// axisBars pools the records of one axis.
type axisBars struct {
	axis Axis
	tree *bintree.Tree[*record]
	top  *record // highest bit, nil when the axis has no variables
	live int
	// promote makes drop keep the lowest removed root as the new top
	promote bool
}

func newAxisBars(axis Axis) *axisBars {
	a := &axisBars{axis: axis}
	a.tree = bintree.New(a.make, a.drop)
	return a
}

func (a *axisBars) make(bit int) *record {
	a.live++
	return &record{bit: bit}
}

func (a *axisBars) drop(roots, subtrees []*record) {
	if a.promote && len(roots) > 0 {
		a.top, roots = roots[len(roots)-1], roots[:len(roots)-1]
	}
	a.live -= len(roots) + len(subtrees)
}

// vars returns the number of variables on the axis.
func (a *axisBars) vars() int {
	if a.top == nil {
		return 0
	}
	return a.tree.Height() + 1
}

// resize sets the number of variables on the axis. Growing hands the old
// detached record to the tree as the root of the first new layer; shrinking
// detaches the root left at bit m-1 and makes it the top.
func (a *axisBars) resize(m int) {
	if m <= 0 {
		a.clear()
		return
	}
	cur := a.vars()
	switch {
	case m > cur && a.top != nil:
		_ = a.tree.Resize(m-1, a.top)
		a.top = a.make(m - 1)
	case m > cur:
		_ = a.tree.Resize(m - 1)
		a.top = a.make(m - 1)
	case m < cur:
		a.drop([]*record{a.top}, nil)
		a.top = nil
		a.promote = true
		_ = a.tree.Resize(m - 1)
		a.promote = false
	}
}

func (a *axisBars) clear() {
	if a.top != nil {
		a.drop([]*record{a.top}, nil)
		a.top = nil
	}
	a.tree.Clear()
}

// bars lays out the records along an axis of 2^vars cells.
func (a *axisBars) bars(names []string) []Bar {
	m := a.vars()
	if m == 0 {
		return nil
	}
	length := 1 << m
	var out []Bar
	layers := a.tree.Layers()
	for k := 0; k < len(layers); k++ {
		layer := layers[len(layers)-1-k] // leaves hold bit 0
		for j, r := range layer {
			start := 1<<r.bit + j<<(r.bit+2)
			out = append(out, a.bar(names, r.bit, start, min(start+1<<(r.bit+1), length)))
		}
	}
	start := 1 << a.top.bit
	out = append(out, a.bar(names, a.top.bit, start, length))
	return out
}

func (a *axisBars) bar(names []string, bit, start, end int) Bar {
	v := 2*bit + int(a.axis)
	b := Bar{Var: v, Axis: a.axis, Depth: bit, Start: start, End: end}
	if v < len(names) {
		b.Name = names[v]
	}
	return b
}

// Layout holds the bars of both axes for the current variable list.
// Not safe for concurrent use.
type Layout struct {
	names []string
	top   *axisBars
	left  *axisBars
}

// NewLayout returns an empty layout.
func NewLayout() *Layout {
	return &Layout{top: newAxisBars(Top), left: newAxisBars(Left)}
}

// Update sets the variable names. The top axis takes ⌈n/2⌉ variables and the
// left axis ⌊n/2⌋.
func (l *Layout) Update(names []string) {
	l.names = append(l.names[:0], names...)
	n := len(names)
	l.top.resize(n - n/2)
	l.left.resize(n / 2)
}

// Vars returns the number of variables.
func (l *Layout) Vars() int { return l.top.vars() + l.left.vars() }

// Live returns the number of pooled bar records, which equals len(Bars()).
func (l *Layout) Live() int { return l.top.live + l.left.live }

// Bars returns every bar, top axis first, each axis from the innermost bit
// outwards and left to right within a bit.
func (l *Layout) Bars() []Bar {
	return append(l.top.bars(l.names), l.left.bars(l.names)...)
}
