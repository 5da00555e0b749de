package script

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/karnaugh/session"
)

// Script is the decoded form of a session file.
type Script struct {
	Title    string    `yaml:"title,omitempty"`
	Vars     []string  `yaml:"vars,omitempty,flow"`
	Values   string    `yaml:"values,omitempty"`
	Palette  []string  `yaml:"palette,omitempty,flow"`
	Markings []Marking `yaml:"markings,omitempty"`
	// Selected is the position, among Markings, of the marking selected
	// after Apply.
	Selected int `yaml:"selected,omitempty"`
}

// Marking describes one marking by its cells or by the clicks drawing it.
type Marking struct {
	Color   string  `yaml:"color,omitempty"`
	Indices []int   `yaml:"indices,omitempty,flow"`
	Clicks  []Click `yaml:"clicks,omitempty"`
}

// Click is a mouse click on cell (X, Y). Right clicks shrink.
type Click struct {
	X     int  `yaml:"x"`
	Y     int  `yaml:"y"`
	Right bool `yaml:"right,omitempty"`
}

// Load decodes a script from r.
func Load(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var sc Script
	if err := dec.Decode(&sc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	return &sc, nil
}

// LoadFile decodes the script stored at path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Write encodes sc as YAML.
func (sc *Script) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sc); err != nil {
		return fmt.Errorf("script: encode: %w", err)
	}
	return enc.Close()
}

// Apply replays sc onto s. Fields left empty in the script keep the
// session's current setting. Markings are appended after the selected one.
// Returns ErrSelectedRange, before touching s, when Selected does not name one
// of the script's markings.
func (sc *Script) Apply(s *session.Session) error {
	if sc.Selected < 0 || (sc.Selected > 0 && sc.Selected >= len(sc.Markings)) {
		return fmt.Errorf("script: selected %d with %d markings: %w", sc.Selected, len(sc.Markings), ErrSelectedRange)
	}
	if sc.Title != "" {
		s.SetTitle(sc.Title)
	}
	if len(sc.Palette) > 0 {
		if err := s.SetPalette(sc.Palette); err != nil {
			return fmt.Errorf("script: palette: %w", err)
		}
	}
	if len(sc.Vars) > 0 {
		if err := s.SetVars(sc.Vars); err != nil {
			return fmt.Errorf("script: vars: %w", err)
		}
	}
	if sc.Values != "" {
		if err := s.SetValues(sc.Values); err != nil {
			return fmt.Errorf("script: values: %w", err)
		}
	}

	first := s.Selected()
	if !s.Current().Empty() {
		first++
	}
	for i, m := range sc.Markings {
		if err := applyMarking(s, m); err != nil {
			return fmt.Errorf("script: marking %d: %w", i, err)
		}
	}
	if len(sc.Markings) > 0 {
		s.Select(first + sc.Selected - s.Selected())
	}
	return nil
}

func applyMarking(s *session.Session, m Marking) error {
	switch {
	case len(m.Indices) > 0 && len(m.Clicks) > 0:
		return ErrMixedMarking
	case len(m.Indices) == 0 && len(m.Clicks) == 0:
		return ErrEmptyMarking
	}

	s.NewMarking()
	if m.Color != "" {
		if err := s.SetColor(m.Color); err != nil {
			return err
		}
	}
	if len(m.Indices) > 0 {
		return s.SetSelectedIndices(m.Indices)
	}
	for j, c := range m.Clicks {
		var changed bool
		if c.Right {
			changed = s.RightClick(c.X, c.Y)
		} else {
			changed = s.LeftClick(c.X, c.Y)
		}
		if !changed {
			return fmt.Errorf("click %d at (%d,%d): %w", j, c.X, c.Y, ErrClickIgnored)
		}
	}
	if s.Current().Empty() {
		return ErrEmptyMarking
	}
	return nil
}

// FromDocument captures a document as a script. Empty markings are left out
// and every marking is recorded by its cells.
func FromDocument(doc session.Document) *Script {
	sc := &Script{Title: doc.Title, Vars: doc.Vars, Values: doc.Values}
	for i, m := range doc.Markings {
		if m.Empty() {
			continue
		}
		if i == doc.Selected {
			sc.Selected = len(sc.Markings)
		}
		sc.Markings = append(sc.Markings, Marking{Color: m.Color, Indices: []int(m.Indices)})
	}
	return sc
}
