package labels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// records returns every pooled record of a, tree and top.
func records(a *axisBars) map[*record]bool {
	out := map[*record]bool{}
	for _, layer := range a.tree.Layers() {
		for _, r := range layer {
			out[r] = true
		}
	}
	if a.top != nil {
		out[a.top] = true
	}
	return out
}

// TestAxis_ShrinkPromotesRoot: shrinking keeps the surviving tree records
// and reuses the detached root as the new top instead of making one.
func TestAxis_ShrinkPromotesRoot(t *testing.T) {
	a := newAxisBars(Top)
	a.resize(4)
	before := records(a)
	require.Len(t, before, 8, "7 tree records and the top")

	root := a.tree.Layer(1)[0] // spine node of bit 1
	a.resize(2)
	require.Same(t, root, a.top)
	require.Equal(t, 1, a.top.bit)
	for r := range records(a) {
		require.True(t, before[r], "shrinking makes no records")
	}
	require.Equal(t, 2, a.live, "one leaf plus the top")
	require.Len(t, a.bars(nil), a.live)

	// growing back hands the top to the tree and keeps it
	a.resize(4)
	require.True(t, records(a)[root])
	require.Equal(t, 8, a.live)
}

// TestLayout_ReusedAcrossUpdates: a layout driven through many variable
// counts ends with exactly the records its bars need.
func TestLayout_ReusedAcrossUpdates(t *testing.T) {
	l := NewLayout()
	for _, n := range []int{12, 3, 12, 7, 1, 12} {
		l.Update(make([]string, n))
		require.Equal(t, len(l.Bars()), l.Live(), "n=%d", n)
	}
}
