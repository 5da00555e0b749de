package latex

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/karnaugh/kmap"
	"github.com/katalvlaran/karnaugh/session"
)

// DefaultOvalShrink is subtracted from both oval extents so that ovals of
// neighbouring islands do not touch.
const DefaultOvalShrink = 0.1

type config struct {
	shrink float64
}

// Option customizes Export.
type Option func(*config)

// WithOvalShrink overrides DefaultOvalShrink. Panics unless 0 ≤ v < 1.
func WithOvalShrink(v float64) Option {
	if v < 0 || v >= 1 {
		panic(fmt.Sprintf("latex: WithOvalShrink(%g) outside [0,1)", v))
	}
	return func(c *config) { c.shrink = v }
}

// Export renders doc. Markings without cells are skipped.
func Export(doc session.Document, opts ...Option) string {
	cfg := config{shrink: DefaultOvalShrink}
	for _, opt := range opts {
		opt(&cfg)
	}

	var vars strings.Builder
	for i := len(doc.Vars) - 1; i >= 0; i-- {
		vars.WriteString("{" + doc.Vars[i] + "}")
	}

	groups := make([]string, 0, len(doc.Markings))
	for _, m := range doc.Markings {
		if len(m.Boundaries) == 0 {
			continue
		}
		ovals := make([]string, len(m.Boundaries))
		for i, b := range m.Boundaries {
			ovals[i] = Oval(b, doc.Grid.Height, cfg.shrink)
		}
		groups = append(groups, `\textcolor{`+m.Color+`}{`+strings.Join(ovals, "\n")+`}`)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\\karnaughmap{%d}{%s}%%\n", len(doc.Vars), doc.Title)
	fmt.Fprintf(&sb, "{%s}\n", vars.String())
	fmt.Fprintf(&sb, "{%s}\n", doc.Values)
	fmt.Fprintf(&sb, "{%s}\n", strings.Join(groups, "%\n"))
	return sb.String()
}

// Write is Export followed by a single write to w.
func Write(w io.Writer, doc session.Document, opts ...Option) error {
	if _, err := io.WriteString(w, Export(doc, opts...)); err != nil {
		return fmt.Errorf("latex: write: %w", err)
	}
	return nil
}

// Oval places one island: \put(x,y){\oval(dx,dy)[sides]} in the picture
// coordinates of a map height cells tall (y grows upwards).
func Oval(b kmap.Boundary, height int, shrink float64) string {
	closed := b.Closed()
	x := position(b.X1, b.X2, closed.Has(kmap.EdgeRight), closed.Has(kmap.EdgeLeft))
	y := float64(height) - position(b.Y1, b.Y2, closed.Has(kmap.EdgeBottom), closed.Has(kmap.EdgeTop))
	dx := extent(b.Width(), closed.Has(kmap.EdgeLeft) != closed.Has(kmap.EdgeRight)) - shrink
	dy := extent(b.Height(), closed.Has(kmap.EdgeTop) != closed.Has(kmap.EdgeBottom)) - shrink

	side := closed.Sides()
	if side != "" {
		side = "[" + side + "]"
	}
	return `\put(` + num(x) + `,` + num(y) + `){\oval(` + num(dx) + `,` + num(dy) + `)` + side + `}`
}

// position picks the oval centre along one axis: lo when only useLo is set,
// hi when only useHi is set, the midpoint otherwise.
func position(lo, hi int, useLo, useHi bool) float64 {
	switch {
	case useLo && !useHi:
		return float64(lo)
	case useHi && !useLo:
		return float64(hi)
	default:
		return float64(lo+hi) / 2
	}
}

func extent(cells int, half bool) float64 {
	if half {
		return 2 * float64(cells)
	}
	return float64(cells)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
