package kmap_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/karnaugh/kmap"
)

// GroupSuite exercises Expand and Shrink the way click handlers drive them.
type GroupSuite struct {
	suite.Suite
}

// TestExpandDoubles verifies exact doubling with the old group as prefix.
func (s *GroupSuite) TestExpandDoubles() {
	g := kmap.Group{0, 1}
	g.Expand(1)
	require.Equal(s.T(), kmap.Group{0, 1, 2, 3}, g)

	g = kmap.Group{5, 7, 13, 15}
	g.Expand(0)
	require.Len(s.T(), g, 8)
	require.Equal(s.T(), kmap.Group{5, 7, 13, 15}, g[:4])
	require.Equal(s.T(), kmap.Group{4, 6, 12, 14}, g[4:])
}

// TestExpandDoesNotDeduplicate: expanding along a bit the group already
// spans produces duplicates; callers must not do that.
func (s *GroupSuite) TestExpandDoesNotDeduplicate() {
	g := kmap.Group{0, 1}
	g.Expand(0)
	require.Equal(s.T(), kmap.Group{0, 1, 1, 0}, g)
}

// TestClickSequence replays: empty, click 0, click 1.
func (s *GroupSuite) TestClickSequence() {
	var g kmap.Group
	g = append(g, 0) // first click on an empty group just appends

	bit, ok := kmap.DifferentBit(1, g)
	require.True(s.T(), ok)
	require.Equal(s.T(), 0, bit)

	g.Expand(bit)
	require.Equal(s.T(), kmap.Group{0, 1}, g)
}

// TestShrinkRestores is the n=2 scenario: {0,1} → expand y-bit → shrink on 0.
func (s *GroupSuite) TestShrinkRestores() {
	g := kmap.Group{0, 1}
	g.Expand(1)
	require.True(s.T(), g.Shrink(0))
	require.Equal(s.T(), kmap.Group{0, 1}, g)

	g = kmap.Group{0, 1, 2, 3}
	require.True(s.T(), g.Shrink(1))
	require.Equal(s.T(), kmap.Group{0, 1}, g)
}

// TestShrinkKeepsClickedHalf: shrinking on a cell of the mirror half keeps
// the mirror half.
func (s *GroupSuite) TestShrinkKeepsClickedHalf() {
	g := kmap.Group{0, 1, 2, 3}
	require.True(s.T(), g.Shrink(3))
	require.Equal(s.T(), kmap.Group{2, 3}, g)

	require.True(s.T(), g.Shrink(2))
	require.Equal(s.T(), kmap.Group{2}, g)
}

// TestShrinkRefusals covers the caller-contract violations.
func (s *GroupSuite) TestShrinkRefusals() {
	cases := []struct {
		name  string
		g     kmap.Group
		index int
	}{
		{"single", kmap.Group{4}, 4},
		{"empty", nil, 0},
		{"not a member", kmap.Group{0, 1}, 2},
		{"no neighbour across halves", kmap.Group{0, 3}, 0},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			before := tc.g.Clone()
			require.False(s.T(), tc.g.Shrink(tc.index))
			require.Equal(s.T(), before, tc.g)
		})
	}
}

// TestShrinkOddGroupDoesNotPanic: a malformed group still splits by position
// and filters deterministically.
func (s *GroupSuite) TestShrinkOddGroupDoesNotPanic() {
	g := kmap.Group{0, 1, 2}
	require.NotPanics(s.T(), func() { g.Shrink(2) })
	require.Equal(s.T(), kmap.Group{2}, g)
}

// TestShrinkMalformedKeepsOwnHalf: on a group not built by Expand only the
// clicked cell's half is filtered; the other half is dropped whole.
func (s *GroupSuite) TestShrinkMalformedKeepsOwnHalf() {
	g := kmap.Group{0, 5, 4, 1}
	require.True(s.T(), g.Shrink(0))
	require.Equal(s.T(), kmap.Group{0}, g)

	g = kmap.Group{0, 5, 4, 1}
	require.True(s.T(), g.Shrink(1))
	require.Equal(s.T(), kmap.Group{1}, g, "bit 0 against 0, only 1 of {4,1} agrees")
}

// TestExpandShrinkProperty builds random groups through valid expansions and
// checks that shrinking on a first-half member undoes each step.
func (s *GroupSuite) TestExpandShrinkProperty() {
	const n = 8
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 200; round++ {
		g := kmap.Group{rng.Intn(1 << n)}
		var history []kmap.Group
		for _, bit := range rng.Perm(n)[:1+rng.Intn(n)] {
			history = append(history, g.Clone())
			g.Expand(bit)
			require.NoError(s.T(), kmap.Validate(g, n))
		}
		for len(history) > 0 {
			prev := history[len(history)-1]
			history = history[:len(history)-1]

			pick := g[rng.Intn(len(g)/2)]
			require.True(s.T(), g.Shrink(pick))
			require.Equal(s.T(), prev, g)
		}
		require.Len(s.T(), g, 1)
	}
}

func TestGroupSuite(t *testing.T) {
	suite.Run(t, new(GroupSuite))
}

func TestGroup_ContainsClone(t *testing.T) {
	g := kmap.Group{3, 7}
	require.True(t, g.Contains(7))
	require.False(t, g.Contains(4))

	c := g.Clone()
	c[0] = 99
	require.Equal(t, 3, g[0])
}
