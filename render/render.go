package render

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/katalvlaran/karnaugh/kmap"
	"github.com/katalvlaran/karnaugh/labels"
	"github.com/katalvlaran/karnaugh/session"
)

var goRegular = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// layout holds the pixel geometry of one picture.
type layout struct {
	cfg      config
	grid     kmap.Grid
	ox, oy   float64 // top left corner of the grid
	width    int
	height   int
	topVars  int
	leftVars int
}

func newLayout(doc session.Document, cfg config) layout {
	n := len(doc.Vars)
	l := layout{cfg: cfg, grid: doc.Grid, topVars: n - n/2, leftVars: n / 2}
	c := cfg.cell
	// one half cell per bar row plus room for its name, and a title row
	l.ox = c/2*float64(l.leftVars+1) + c/4
	l.oy = c/2*float64(l.topVars+1) + c/4 + c/2
	l.width = int(l.ox + float64(l.grid.Width)*c + c/4)
	l.height = int(l.oy + float64(l.grid.Height)*c + c/4)
	return l
}

// cellRect returns the pixel corners of a grid rectangle.
func (l layout) cellRect(r kmap.Rect) (x1, y1, x2, y2 float64) {
	c := l.cfg.cell
	return l.ox + float64(r.X1)*c, l.oy + float64(r.Y1)*c, l.ox + float64(r.X2)*c, l.oy + float64(r.Y2)*c
}

// Renderer draws documents with fixed options. It keeps its label layout
// between calls, so redrawing a changing document reuses the bar records.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	cfg    config
	labels *labels.Layout
}

// NewRenderer applies opts once for every later call.
func NewRenderer(opts ...Option) *Renderer {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Renderer{cfg: cfg, labels: labels.NewLayout()}
}

// Size returns the picture size PNG would produce for doc.
func (r *Renderer) Size(doc session.Document) (width, height int, err error) {
	if len(doc.Vars) == 0 {
		return 0, 0, ErrEmptyDocument
	}
	l := newLayout(doc, r.cfg)
	return l.width, l.height, nil
}

// PNG draws doc and encodes it to w.
func (r *Renderer) PNG(w io.Writer, doc session.Document) error {
	if len(doc.Vars) == 0 {
		return ErrEmptyDocument
	}
	src, err := goRegular()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFont, err)
	}

	l := newLayout(doc, r.cfg)
	dc := gg.NewContext(l.width, l.height)
	defer func() { _ = dc.Close() }()
	dc.ClearWithColor(gg.White)

	if err := drawGrid(dc, l); err != nil {
		return err
	}
	drawCells(dc, l, doc, src)
	r.labels.Update(doc.Vars)
	if err := drawLabels(dc, l, r.labels, src); err != nil {
		return err
	}
	for i, m := range doc.Markings {
		if err := drawMarking(dc, l, m, i == doc.Selected); err != nil {
			return err
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// Size is NewRenderer(opts...).Size(doc).
func Size(doc session.Document, opts ...Option) (width, height int, err error) {
	return NewRenderer(opts...).Size(doc)
}

// PNG is NewRenderer(opts...).PNG(w, doc).
func PNG(w io.Writer, doc session.Document, opts ...Option) error {
	return NewRenderer(opts...).PNG(w, doc)
}

func drawGrid(dc *gg.Context, l layout) error {
	x1, y1, x2, y2 := l.cellRect(kmap.Rect{X2: l.grid.Width, Y2: l.grid.Height})
	c := l.cfg.cell
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	for x := 0; x <= l.grid.Width; x++ {
		px := x1 + float64(x)*c
		dc.DrawLine(px, y1, px, y2)
	}
	for y := 0; y <= l.grid.Height; y++ {
		py := y1 + float64(y)*c
		dc.DrawLine(x1, py, x2, py)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: grid: %w", err)
	}
	return nil
}

func drawCells(dc *gg.Context, l layout, doc session.Document, src *text.FontSource) {
	c := l.cfg.cell
	small, large := src.Face(c/5), src.Face(c/2.5)
	for i := 0; i < l.grid.Cells(); i++ {
		x, y := kmap.IndexToCoordinate(i)
		px, py := l.ox+float64(x)*c, l.oy+float64(y)*c

		dc.SetFont(small)
		dc.SetRGB(0.45, 0.45, 0.45)
		dc.DrawString(strconv.Itoa(i), px+0.06*c, py+0.24*c)

		if v := doc.Value(i); v != "" {
			dc.SetFont(large)
			dc.SetRGB(0, 0, 0)
			dc.DrawStringAnchored(v, px+c/2, py+c/2, 0.5, 0.35)
		}
	}
	if doc.Title != "" {
		dc.SetFont(large)
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(doc.Title, float64(l.width)/2, c/2, 0.5, 0.35)
	}
}

func drawLabels(dc *gg.Context, l layout, lay *labels.Layout, src *text.FontSource) error {
	c := l.cfg.cell

	dc.SetFont(src.Face(c / 4))
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	for _, b := range lay.Bars() {
		depth := float64(b.Depth) * c / 2
		start, end := float64(b.Start)*c, float64(b.End)*c
		mid := (start + end) / 2
		switch b.Axis {
		case labels.Top:
			y := l.oy - depth - 0.1*c
			dc.DrawLine(l.ox+start, y, l.ox+end, y)
			dc.DrawStringAnchored(b.Name, l.ox+mid, y-0.15*c, 0.5, 0)
		case labels.Left:
			x := l.ox - depth - 0.1*c
			dc.DrawLine(x, l.oy+start, x, l.oy+end)
			dc.DrawStringAnchored(b.Name, x-0.1*c, l.oy+mid, 1, 0.35)
		}
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: labels: %w", err)
	}
	return nil
}

func drawMarking(dc *gg.Context, l layout, m session.Marking, selected bool) error {
	if len(m.Boundaries) == 0 {
		return nil
	}
	hex, ok := l.cfg.colors[m.Color]
	if !ok {
		hex = fallbackColor
	}
	dc.SetHexColor(hex)
	dc.SetLineWidth(l.cfg.line)
	if selected {
		dc.SetLineWidth(l.cfg.selected)
	}

	in := l.cfg.inset * l.cfg.cell
	for _, b := range m.Boundaries {
		x1, y1, x2, y2 := l.cellRect(b.Rect)
		// closed sides are pulled in, open sides stay on the map edge
		if !b.Open.Has(kmap.EdgeLeft) {
			x1 += in
		}
		if !b.Open.Has(kmap.EdgeRight) {
			x2 -= in
		}
		if !b.Open.Has(kmap.EdgeTop) {
			y1 += in
		}
		if !b.Open.Has(kmap.EdgeBottom) {
			y2 -= in
		}
		closed := b.Closed()
		if closed.Has(kmap.EdgeLeft) {
			dc.DrawLine(x1, y1, x1, y2)
		}
		if closed.Has(kmap.EdgeRight) {
			dc.DrawLine(x2, y1, x2, y2)
		}
		if closed.Has(kmap.EdgeTop) {
			dc.DrawLine(x1, y1, x2, y1)
		}
		if closed.Has(kmap.EdgeBottom) {
			dc.DrawLine(x1, y2, x2, y2)
		}
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: marking %s: %w", m.Tag, err)
	}
	return nil
}
