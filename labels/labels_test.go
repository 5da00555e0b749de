package labels_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/karnaugh/kmap"
	"github.com/katalvlaran/karnaugh/labels"
)

func names(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("x%d", i)
	}
	return out
}

func TestLayout_FourVars(t *testing.T) {
	l := labels.NewLayout()
	l.Update([]string{"A", "B", "C", "D"})
	require.Equal(t, 4, l.Vars())

	require.Equal(t, []labels.Bar{
		{Var: 0, Name: "A", Axis: labels.Top, Depth: 0, Start: 1, End: 3},
		{Var: 2, Name: "C", Axis: labels.Top, Depth: 1, Start: 2, End: 4},
		{Var: 1, Name: "B", Axis: labels.Left, Depth: 0, Start: 1, End: 3},
		{Var: 3, Name: "D", Axis: labels.Left, Depth: 1, Start: 2, End: 4},
	}, l.Bars())
}

func TestLayout_OneVar(t *testing.T) {
	l := labels.NewLayout()
	l.Update([]string{"A"})
	require.Equal(t, []labels.Bar{{Var: 0, Name: "A", Axis: labels.Top, Start: 1, End: 2}}, l.Bars())
}

func TestLayout_SixVarsTopAxis(t *testing.T) {
	l := labels.NewLayout()
	l.Update(names(6))

	var top [][2]int
	for _, b := range l.Bars() {
		if b.Axis == labels.Top {
			top = append(top, [2]int{b.Start, b.End})
		}
	}
	require.Equal(t, [][2]int{{1, 3}, {5, 7}, {2, 6}, {4, 8}}, top)
}

// TestLayout_BarsMatchGrayBits: a bar of depth k covers exactly the axis
// positions whose Gray code has bit k set.
func TestLayout_BarsMatchGrayBits(t *testing.T) {
	for n := 1; n <= kmap.MaxVars; n++ {
		l := labels.NewLayout()
		l.Update(names(n))
		w, h := kmap.Dimensions(n)

		covered := map[[3]int]bool{} // axis, depth, position
		for _, b := range l.Bars() {
			require.Equal(t, fmt.Sprintf("x%d", b.Var), b.Name)
			require.Equal(t, 2*b.Depth+int(b.Axis), b.Var)
			for p := b.Start; p < b.End; p++ {
				key := [3]int{int(b.Axis), b.Depth, p}
				require.False(t, covered[key], "n=%d overlap at %v", n, key)
				covered[key] = true
			}
		}

		check := func(axis labels.Axis, length, vars int) {
			for k := 0; k < vars; k++ {
				for p := 0; p < length; p++ {
					want := kmap.ToGray(p)>>k&1 == 1
					require.Equal(t, want, covered[[3]int{int(axis), k, p}], "n=%d %s k=%d p=%d", n, axis, k, p)
				}
			}
		}
		check(labels.Top, w, n-n/2)
		check(labels.Left, h, n/2)
	}
}

// TestLayout_ResizeKeepsPoolConsistent walks the variable count up and down
// and checks the pool never leaks or loses records.
func TestLayout_ResizeKeepsPoolConsistent(t *testing.T) {
	l := labels.NewLayout()
	for _, n := range []int{4, 6, 2, 9, 12, 1, 5, 0, 3} {
		l.Update(names(n))
		require.Equal(t, n, l.Vars())
		require.Equal(t, len(l.Bars()), l.Live(), "n=%d", n)
	}
}

func TestLayout_RenameKeepsGeometry(t *testing.T) {
	l := labels.NewLayout()
	l.Update([]string{"A", "B", "C"})
	before := l.Bars()
	l.Update([]string{"P", "Q", "R"})
	after := l.Bars()
	require.Len(t, after, len(before))
	for i := range before {
		require.Equal(t, before[i].Start, after[i].Start)
		require.Equal(t, before[i].End, after[i].End)
	}
	require.Equal(t, "Q", after[len(after)-1].Name)
}
