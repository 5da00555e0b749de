// SPDX-License-Identifier: MIT
// Package: karnaugh/session
//
// session.go: the Session type and its click handlers.

package session

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/katalvlaran/karnaugh/kmap"
	"github.com/katalvlaran/karnaugh/pool"
)

// Marking is one group of cells drawn in one colour.
type Marking struct {
	Tag        string
	Color      string
	Indices    kmap.Group
	Boundaries []kmap.Boundary // one per island, recomputed on every change
}

// Empty reports whether the marking holds no cells.
func (m Marking) Empty() bool { return len(m.Indices) == 0 }

func (m Marking) clone() Marking {
	m.Indices = m.Indices.Clone()
	m.Boundaries = slices.Clone(m.Boundaries)
	return m
}

// Session is an editable Karnaugh map.
type Session struct {
	log      *zap.Logger
	title    string
	vars     []string
	values   string
	grid     kmap.Grid
	markings []*Marking
	selected int
	palette  []string
	tags     *pool.Allocator
	colors   *pool.Cycle[string]
}

// New builds a session with one empty marking selected.
// Returns an error wrapping kmap.ErrVarCount for a bad variable count and
// ErrValuesLength for too many values.
func New(opts ...Option) (*Session, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Session{
		log:     cfg.log,
		title:   cfg.title,
		palette: slices.Clone(cfg.palette),
		tags:    pool.NewAllocator(TagPrefix),
		colors:  pool.NewCycle(cfg.palette...),
	}
	if err := s.SetVars(cfg.vars); err != nil {
		return nil, err
	}
	if err := s.SetValues(cfg.values); err != nil {
		return nil, err
	}
	s.markings = []*Marking{s.newMarking()}
	return s, nil
}

// newMarking takes a tag and the next colour.
func (s *Session) newMarking() *Marking {
	color, _ := s.colors.Next() // palette is never empty
	return &Marking{Tag: s.tags.Acquire(), Color: color}
}

func (s *Session) release(m *Marking) {
	s.tags.Release(m.Tag)
	s.colors.Release(m.Color)
}

func (s *Session) refresh(m *Marking) {
	m.Boundaries = s.grid.Classify(m.Indices)
}

func (s *Session) current() *Marking { return s.markings[s.selected] }

// wrap brings the selection back into range, cycling in both directions.
func (s *Session) wrap() {
	n := len(s.markings)
	s.selected = ((s.selected % n) + n) % n
}

// ── variables, values, title ────────────────────────────────────────────────

// SetVars replaces the variable names. Changing the variable count drops
// every marking and truncates values that no longer fit. Renaming keeps
// everything.
func (s *Session) SetVars(names []string) error {
	grid, err := kmap.NewGrid(len(names))
	if err != nil {
		return fmt.Errorf("session: SetVars: %w", err)
	}
	resized := grid != s.grid
	s.vars = slices.Clone(names)
	s.grid = grid

	if r := []rune(s.values); len(r) > grid.Cells() {
		s.values = string(r[:grid.Cells()])
		s.log.Debug("values truncated", zap.Int("cells", grid.Cells()))
	}
	if resized && s.markings != nil {
		for _, m := range s.markings {
			s.release(m)
		}
		s.markings = []*Marking{s.newMarking()}
		s.selected = 0
		s.log.Info("variable count changed, markings cleared", zap.Int("vars", grid.Vars))
	}
	return nil
}

// SetValues sets the truth-table values, one rune per cell in index order.
// Cells past the end of the string have no value.
func (s *Session) SetValues(values string) error {
	if n := utf8.RuneCountInString(values); n > s.grid.Cells() {
		return fmt.Errorf("session: SetValues: %d values for %d cells: %w", n, s.grid.Cells(), ErrValuesLength)
	}
	s.values = values
	return nil
}

// SetTitle sets the map title.
func (s *Session) SetTitle(title string) { s.title = title }

// Title returns the map title.
func (s *Session) Title() string { return s.title }

// Vars returns a copy of the variable names.
func (s *Session) Vars() []string { return slices.Clone(s.vars) }

// Values returns the values string.
func (s *Session) Values() string { return s.values }

// Grid returns the map dimensions.
func (s *Session) Grid() kmap.Grid { return s.grid }

// ── clicks ──────────────────────────────────────────────────────────────────

// LeftClick grows the selected marking towards cell (x, y).
// It reports whether the marking changed.
func (s *Session) LeftClick(x, y int) bool {
	i, err := s.grid.Index(x, y)
	if err != nil {
		s.log.Debug("left click outside grid", zap.Int("x", x), zap.Int("y", y))
		return false
	}
	return s.LeftClickIndex(i)
}

// LeftClickIndex grows the selected marking towards index: an empty marking
// takes the cell, otherwise the marking is doubled along the bit separating
// index from its first neighbour in the marking. Members and cells without
// a neighbour in the marking are ignored.
func (s *Session) LeftClickIndex(index int) bool {
	if index < 0 || index >= s.grid.Cells() {
		s.log.Debug("left click outside grid", zap.Int("index", index))
		return false
	}
	m := s.current()
	switch {
	case m.Empty():
		m.Indices = append(m.Indices, index)
	case m.Indices.Contains(index):
		s.log.Debug("left click on member", zap.String("tag", m.Tag), zap.Int("index", index))
		return false
	default:
		bit, ok := kmap.DifferentBit(index, m.Indices)
		if !ok {
			s.log.Debug("no neighbour in marking", zap.String("tag", m.Tag), zap.Int("index", index))
			return false
		}
		m.Indices.Expand(bit)
	}
	s.refresh(m)
	s.log.Debug("marking grown",
		zap.String("tag", m.Tag), zap.Int("index", index), zap.Int("size", len(m.Indices)))
	return true
}

// RightClick shrinks the selected marking on cell (x, y).
// It reports whether the marking changed.
func (s *Session) RightClick(x, y int) bool {
	i, err := s.grid.Index(x, y)
	if err != nil {
		s.log.Debug("right click outside grid", zap.Int("x", x), zap.Int("y", y))
		return false
	}
	return s.RightClickIndex(i)
}

// RightClickIndex halves the selected marking, keeping the half that holds
// index. A single-cell marking is emptied. Clicks on cells outside the
// marking are ignored.
func (s *Session) RightClickIndex(index int) bool {
	m := s.current()
	if !m.Indices.Contains(index) {
		s.log.Debug("right click off marking", zap.String("tag", m.Tag), zap.Int("index", index))
		return false
	}
	if len(m.Indices) == 1 {
		m.Indices = m.Indices[:0]
		s.refresh(m)
		s.log.Debug("marking emptied", zap.String("tag", m.Tag))
		return true
	}
	if !m.Indices.Shrink(index) {
		s.log.Debug("shrink refused", zap.String("tag", m.Tag), zap.Int("index", index))
		return false
	}
	s.refresh(m)
	s.log.Debug("marking shrunk",
		zap.String("tag", m.Tag), zap.Int("index", index), zap.Int("size", len(m.Indices)))
	return true
}

// ── marking list ────────────────────────────────────────────────────────────

// NewMarking inserts an empty marking after the selected one and selects it.
// Nothing happens while the selected marking is still empty.
func (s *Session) NewMarking() bool {
	if s.current().Empty() {
		return false
	}
	m := s.newMarking()
	s.markings = slices.Insert(s.markings, s.selected+1, m)
	s.selected++
	s.log.Info("marking created", zap.String("tag", m.Tag), zap.String("color", m.Color))
	return true
}

// Select moves the selection by offset, wrapping around. An empty selected
// marking is dropped instead when other markings exist; the selection then
// lands on the marking that followed it.
func (s *Session) Select(offset int) {
	if m := s.current(); m.Empty() && len(s.markings) > 1 {
		s.remove(s.selected)
	} else {
		s.selected += offset
	}
	s.wrap()
}

// RemoveSelected deletes the selected marking. Removing the last one leaves a
// fresh empty marking behind.
func (s *Session) RemoveSelected() {
	s.remove(s.selected)
	if len(s.markings) == 0 {
		s.markings = append(s.markings, s.newMarking())
	}
	s.wrap()
}

func (s *Session) remove(i int) {
	m := s.markings[i]
	s.release(m)
	s.markings = slices.Delete(s.markings, i, i+1)
	s.log.Info("marking removed", zap.String("tag", m.Tag))
}

// SetSelectedIndices replaces the cells of the selected marking.
// indices must pass kmap.Validate; the error wraps ErrInvalidGroup and the
// kmap sentinel.
func (s *Session) SetSelectedIndices(indices []int) error {
	if err := kmap.Validate(indices, s.grid.Vars); err != nil {
		return fmt.Errorf("session: SetSelectedIndices: %w: %w", ErrInvalidGroup, err)
	}
	m := s.current()
	m.Indices = kmap.Group(slices.Clone(indices))
	s.refresh(m)
	return nil
}

// SetColor recolours the selected marking.
func (s *Session) SetColor(name string) error {
	if !slices.Contains(s.palette, name) {
		return fmt.Errorf("session: SetColor(%q): %w", name, ErrUnknownColor)
	}
	m := s.current()
	if m.Color == name {
		return nil
	}
	s.colors.Release(m.Color)
	m.Color = name
	return nil
}

// SetPalette replaces the palette. Markings whose colour is no longer in it
// are dropped and the selection returns to the first marking.
func (s *Session) SetPalette(names []string) error {
	if len(names) == 0 {
		return fmt.Errorf("session: SetPalette: %w", ErrEmptyPalette)
	}
	s.palette = slices.Clone(names)
	s.colors.Reset(names...)

	kept := s.markings[:0]
	for _, m := range s.markings {
		if slices.Contains(names, m.Color) {
			kept = append(kept, m)
			continue
		}
		s.tags.Release(m.Tag)
		s.log.Info("marking dropped with its colour", zap.String("tag", m.Tag), zap.String("color", m.Color))
	}
	s.markings = kept
	if len(s.markings) == 0 {
		s.markings = append(s.markings, s.newMarking())
	}
	s.selected = 0
	return nil
}

// Palette returns a copy of the palette.
func (s *Session) Palette() []string { return slices.Clone(s.palette) }

// Selected returns the position of the selected marking.
func (s *Session) Selected() int { return s.selected }

// Len returns the number of markings.
func (s *Session) Len() int { return len(s.markings) }

// Current returns a copy of the selected marking.
func (s *Session) Current() Marking { return s.current().clone() }

// Markings returns copies of all markings in order.
func (s *Session) Markings() []Marking {
	out := make([]Marking, len(s.markings))
	for i, m := range s.markings {
		out[i] = m.clone()
	}
	return out
}
