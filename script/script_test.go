package script_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/karnaugh/kmap"
	"github.com/katalvlaran/karnaugh/script"
	"github.com/katalvlaran/karnaugh/session"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New()
	require.NoError(t, err)
	return s
}

func apply(t *testing.T, src string) (*session.Session, error) {
	t.Helper()
	sc, err := script.Load(strings.NewReader(src))
	require.NoError(t, err)
	s := newSession(t)
	return s, sc.Apply(s)
}

func TestApply_Indices(t *testing.T) {
	s, err := apply(t, `
title: g
vars: [P, Q, R, S]
values: "11000011****10**"
markings:
  - color: blue
    indices: [0, 1]
  - indices: [15]
`)
	require.NoError(t, err)
	require.Equal(t, "g", s.Title())
	require.Equal(t, []string{"P", "Q", "R", "S"}, s.Vars())
	require.Equal(t, "11000011****10**", s.Values())

	ms := s.Markings()
	require.Len(t, ms, 2)
	require.Equal(t, "blue", ms[0].Color)
	require.Equal(t, kmap.Group{0, 1}, ms[0].Indices)
	require.Equal(t, "red", ms[1].Color, "the released red comes back first")
	require.Equal(t, kmap.Group{15}, ms[1].Indices)
	require.Equal(t, 0, s.Selected())
}

func TestApply_Clicks(t *testing.T) {
	s, err := apply(t, `
markings:
  - clicks:
      - {x: 1, y: 1}
      - {x: 2, y: 1}
  - clicks:
      - {x: 1, y: 1}
      - {x: 2, y: 1}
      - {x: 2, y: 1, right: true}
selected: 1
`)
	require.NoError(t, err)
	ms := s.Markings()
	require.Len(t, ms, 2)
	require.Equal(t, kmap.Group{3, 7}, ms[0].Indices)
	require.Equal(t, kmap.Group{7}, ms[1].Indices)
	require.Equal(t, 1, s.Selected())
}

func TestApply_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"ignored click", "markings:\n  - clicks: [{x: 0, y: 0}, {x: 0, y: 0}]\n", script.ErrClickIgnored},
		{"no neighbour", "markings:\n  - clicks: [{x: 0, y: 0}, {x: 2, y: 2}]\n", script.ErrClickIgnored},
		{"empty marking", "markings:\n  - color: red\n", script.ErrEmptyMarking},
		{"mixed marking", "markings:\n  - indices: [0]\n    clicks: [{x: 1, y: 0}]\n", script.ErrMixedMarking},
		{"emptied by clicks", "markings:\n  - clicks: [{x: 0, y: 0}, {x: 0, y: 0, right: true}]\n", script.ErrEmptyMarking},
		{"bad group", "markings:\n  - indices: [0, 3]\n", session.ErrInvalidGroup},
		{"unknown colour", "markings:\n  - color: mauve\n    indices: [0]\n", session.ErrUnknownColor},
		{"too many values", "vars: [A]\nvalues: \"101\"\n", session.ErrValuesLength},
		{"too many vars", "vars: [a, b, c, d, e, f, g, h, i, j, k, l, m]\n", kmap.ErrVarCount},
		{"selected past end", "markings:\n  - indices: [0]\nselected: 1\n", script.ErrSelectedRange},
		{"selected negative", "markings:\n  - indices: [0]\nselected: -1\n", script.ErrSelectedRange},
		{"selected without markings", "selected: 2\n", script.ErrSelectedRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := apply(t, tc.src)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

// TestApply_SelectedRangeLeavesSessionAlone: a bad selected position is
// reported before anything is applied.
func TestApply_SelectedRangeLeavesSessionAlone(t *testing.T) {
	s, err := apply(t, "title: changed\nmarkings:\n  - indices: [0]\nselected: 3\n")
	require.ErrorIs(t, err, script.ErrSelectedRange)
	require.NotEqual(t, "changed", s.Title())
	require.True(t, s.Current().Empty())
}

func TestApply_Palette(t *testing.T) {
	s, err := apply(t, "palette: [teal, navy]\nmarkings:\n  - indices: [2]\n  - indices: [3]\n")
	require.NoError(t, err)
	require.Equal(t, []string{"teal", "navy"}, s.Palette())
	ms := s.Markings()
	require.Equal(t, "teal", ms[0].Color)
	require.Equal(t, "navy", ms[1].Color)
}

func TestApply_AfterExistingMarking(t *testing.T) {
	s := newSession(t)
	require.True(t, s.LeftClickIndex(9))

	sc, err := script.Load(strings.NewReader("markings:\n  - indices: [4]\n"))
	require.NoError(t, err)
	require.NoError(t, sc.Apply(s))

	ms := s.Markings()
	require.Len(t, ms, 2)
	require.Equal(t, kmap.Group{9}, ms[0].Indices)
	require.Equal(t, kmap.Group{4}, ms[1].Indices)
	require.Equal(t, 1, s.Selected())
}

func TestLoad(t *testing.T) {
	sc, err := script.Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, &script.Script{}, sc)

	_, err = script.Load(strings.NewReader("colour: red\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = script.LoadFile("does-not-exist.yaml")
	require.Error(t, err)
}

// TestFromDocument_Replays: capturing a session and replaying the capture
// on a fresh session gives the same document.
func TestFromDocument_Replays(t *testing.T) {
	s, err := apply(t, `
title: h
vars: [A, B, C]
values: "0110*"
markings:
  - indices: [0, 4]
  - clicks: [{x: 1, y: 0}, {x: 1, y: 1}]
  - color: cyan
    indices: [6]
selected: 1
`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, script.FromDocument(s.Document()).Write(&buf))

	replayed, err := script.Load(&buf)
	require.NoError(t, err)
	fresh := newSession(t)
	require.NoError(t, replayed.Apply(fresh))
	require.Equal(t, s.Document(), fresh.Document())
}

func TestFromDocument_SkipsEmpty(t *testing.T) {
	s := newSession(t)
	require.True(t, s.LeftClickIndex(2))
	require.True(t, s.NewMarking())

	sc := script.FromDocument(s.Document())
	require.Len(t, sc.Markings, 1)
	require.Equal(t, []int{2}, sc.Markings[0].Indices)
	require.Zero(t, sc.Selected)
}
