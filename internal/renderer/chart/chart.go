// Package chart rasterizes plots to terminal cells.
package chart

import (
	"math"

	"github.com/dshills/rangescope/internal/plot"
	"github.com/dshills/rangescope/internal/plot/annotation"
	"github.com/dshills/rangescope/internal/renderer/core"
)

// Canvas is a cell grid the renderer draws into.
type Canvas interface {
	SetCell(x, y int, cell core.Cell)
	GetCell(x, y int) core.Cell
}

// Theme holds the renderer's colors.
type Theme struct {
	Background core.Color
	Foreground core.Color
	Axis       core.Color
	Series     []core.Color
}

// DefaultTheme returns a dark theme.
func DefaultTheme() Theme {
	return Theme{
		Background: core.ColorFromRGB(24, 24, 28),
		Foreground: core.ColorFromRGB(220, 220, 220),
		Axis:       core.ColorGray,
		Series: []core.Color{
			core.ColorBlue,
			core.ColorFromRGB(255, 127, 14),
			core.ColorFromRGB(44, 160, 44),
		},
	}
}

// Options configures a Renderer.
type Options struct {
	Theme Theme

	// Locale selects label number formatting.
	Locale string

	// XTicks and YTicks are the approximate tick counts per axis.
	XTicks int
	YTicks int
}

// DefaultOptions returns the default renderer options.
func DefaultOptions() Options {
	return Options{
		Theme:  DefaultTheme(),
		Locale: "en",
		XTicks: 6,
		YTicks: 4,
	}
}

// Renderer draws plots onto a Canvas.
type Renderer struct {
	canvas Canvas
	opts   Options
	format *Formatter
}

// New creates a renderer drawing to canvas.
func New(canvas Canvas, opts Options) *Renderer {
	if opts.XTicks < 2 {
		opts.XTicks = 2
	}
	if opts.YTicks < 2 {
		opts.YTicks = 2
	}
	if len(opts.Theme.Series) == 0 {
		opts.Theme.Series = DefaultTheme().Series
	}
	return &Renderer{canvas: canvas, opts: opts, format: NewFormatter(opts.Locale)}
}

// Layout assigns p's frame rectangle inside outer, leaving room for the
// title row, the y tick labels and the x axis.
func (r *Renderer) Layout(p *plot.Plot, outer core.ScreenRect) {
	margin := r.yLabelWidth(p) + 1
	p.SetRect(outer.Inset(1, 1, 2, margin))
}

func (r *Renderer) yLabelWidth(p *plot.Plot) int {
	iv := p.YRange.Interval()
	ticks, prec := Ticks(iv.Start, iv.End, r.opts.YTicks)
	w := 1
	for _, t := range ticks {
		w = max(w, core.StringWidth(r.format.Format(t, prec)))
	}
	return w
}

// Render draws p into outer. Call Layout first.
func (r *Renderer) Render(p *plot.Plot, outer core.ScreenRect) {
	base := core.DefaultStyle().
		WithForeground(r.opts.Theme.Foreground).
		WithBackground(r.opts.Theme.Background)
	r.fill(outer, core.NewStyledCell(' ', base))

	r.text(outer.Left+1, outer.Top, p.Title, base.WithAttributes(core.AttrBold))

	rect := p.Rect()
	if rect.IsEmpty() {
		return
	}

	r.axes(p, rect, base)

	for _, b := range p.Annotations {
		if b.Level != annotation.LevelOverlay {
			r.box(p, b)
		}
	}
	for i, s := range p.Series {
		r.series(p, i, s.X, s.Y)
	}
	for _, b := range p.Annotations {
		if b.Level == annotation.LevelOverlay {
			r.box(p, b)
		}
	}
}

func (r *Renderer) axes(p *plot.Plot, rect core.ScreenRect, base core.Style) {
	axis := base.WithForeground(r.opts.Theme.Axis)
	left := rect.Left - 1
	for y := rect.Top; y < rect.Bottom; y++ {
		r.canvas.SetCell(left, y, core.NewStyledCell('│', axis))
	}
	for x := rect.Left; x < rect.Right; x++ {
		r.canvas.SetCell(x, rect.Bottom, core.NewStyledCell('─', axis))
	}
	r.canvas.SetCell(left, rect.Bottom, core.NewStyledCell('└', axis))

	frame := p.Frame()

	yiv := p.YRange.Interval()
	yticks, yprec := Ticks(yiv.Start, yiv.End, r.opts.YTicks)
	yscale := frame.YScale()
	for _, t := range yticks {
		row := int(math.Round(yscale.Compute(t)))
		if row < rect.Top || row >= rect.Bottom {
			continue
		}
		label := r.format.Format(t, yprec)
		r.text(left-core.StringWidth(label), row, label, axis)
		r.canvas.SetCell(left, row, core.NewStyledCell('┤', axis))
	}

	xiv := p.XRange.Interval()
	xticks, xprec := Ticks(xiv.Start, xiv.End, r.opts.XTicks)
	xscale := frame.XScale()
	for _, t := range xticks {
		col := int(math.Round(xscale.Compute(t)))
		if col < rect.Left || col >= rect.Right {
			continue
		}
		r.canvas.SetCell(col, rect.Bottom, core.NewStyledCell('┬', axis))
		label := r.format.Format(t, xprec)
		start := col - core.StringWidth(label)/2
		start = max(start, rect.Left-1)
		r.text(start, rect.Bottom+1, label, axis)
	}
}

func (r *Renderer) series(p *plot.Plot, idx int, xs, ys []float64) {
	color := r.opts.Theme.Series[idx%len(r.opts.Theme.Series)]
	frame := p.Frame()
	xscale, yscale := frame.XScale(), frame.YScale()
	rect := p.Rect()

	prevCol, prevRow := 0, 0
	havePrev := false
	for i := range xs {
		col := int(math.Round(xscale.Compute(xs[i])))
		row := int(math.Round(yscale.Compute(ys[i])))
		if !rect.Contains(col, row) {
			havePrev = false
			continue
		}
		r.point(col, row, color)
		// Join vertical jumps between neighboring columns.
		if havePrev && abs(col-prevCol) <= 1 {
			lo, hi := min(row, prevRow), max(row, prevRow)
			for y := lo + 1; y < hi; y++ {
				r.point(col, y, color)
			}
		}
		prevCol, prevRow, havePrev = col, row, true
	}
}

func (r *Renderer) point(x, y int, color core.Color) {
	cell := r.canvas.GetCell(x, y)
	r.canvas.SetCell(x, y, core.NewStyledCell('•', cell.Style.WithForeground(color)))
}

// BoxRect returns the screen cells covered by b within p's frame.
// A missing boundary extends to the frame edge.
func BoxRect(p *plot.Plot, b *annotation.BoxAnnotation) core.ScreenRect {
	frame := p.Frame()
	rect := p.Rect()
	xscale, yscale := frame.XScale(), frame.YScale()

	out := rect
	if b.Left != nil {
		out.Left = int(math.Round(xscale.Compute(*b.Left)))
	}
	if b.Right != nil {
		out.Right = int(math.Round(xscale.Compute(*b.Right))) + 1
	}
	if b.Top != nil {
		out.Top = int(math.Round(yscale.Compute(*b.Top)))
	}
	if b.Bottom != nil {
		out.Bottom = int(math.Round(yscale.Compute(*b.Bottom))) + 1
	}
	return out.Intersection(rect)
}

func (r *Renderer) box(p *plot.Plot, b *annotation.BoxAnnotation) {
	if b.IsEmpty() {
		return
	}
	area := BoxRect(p, b)
	if area.IsEmpty() {
		return
	}

	bg := r.opts.Theme.Background
	style := b.Style
	fill, err := core.ColorFromHex(style.FillColor)
	if err == nil && style.FillAlpha > 0 {
		for y := area.Top; y < area.Bottom; y++ {
			for x := area.Left; x < area.Right; x++ {
				cell := r.canvas.GetCell(x, y)
				cell.Style.Background = cell.Style.Background.Blend(fill, style.FillAlpha, bg)
				r.canvas.SetCell(x, y, cell)
			}
		}
	}

	line, err := core.ColorFromHex(style.LineColor)
	if err != nil || style.LineAlpha <= 0 || style.LineWidth <= 0 {
		return
	}
	for i, pos := range perimeter(area) {
		if !dashOn(style.LineDash, i) {
			continue
		}
		cell := r.canvas.GetCell(pos.x, pos.y)
		fg := cell.Style.Background.Blend(line, style.LineAlpha, bg)
		ch := '┄'
		if pos.vertical {
			ch = '┆'
		}
		r.canvas.SetCell(pos.x, pos.y, core.NewStyledCell(ch, cell.Style.WithForeground(fg)))
	}
}

type edgeCell struct {
	x, y     int
	vertical bool
}

// perimeter walks the border of rect clockwise from the top-left cell.
func perimeter(rect core.ScreenRect) []edgeCell {
	var out []edgeCell
	top, left := rect.Top, rect.Left
	bottom, right := rect.Bottom-1, rect.Right-1
	for x := left; x <= right; x++ {
		out = append(out, edgeCell{x: x, y: top})
	}
	for y := top + 1; y <= bottom; y++ {
		out = append(out, edgeCell{x: right, y: y, vertical: true})
	}
	if bottom > top {
		for x := right - 1; x >= left; x-- {
			out = append(out, edgeCell{x: x, y: bottom})
		}
	}
	if right > left {
		for y := bottom - 1; y > top; y-- {
			out = append(out, edgeCell{x: left, y: y, vertical: true})
		}
	}
	return out
}

// dashOn reports whether position i along a line is drawn under the
// on/off pattern dash. An empty pattern is solid.
func dashOn(dash []int, i int) bool {
	total := 0
	for _, d := range dash {
		total += max(d, 0)
	}
	if total == 0 {
		return true
	}
	i %= total
	for k, d := range dash {
		if i < d {
			return k%2 == 0
		}
		i -= max(d, 0)
	}
	return true
}

func (r *Renderer) fill(rect core.ScreenRect, cell core.Cell) {
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			r.canvas.SetCell(x, y, cell)
		}
	}
}

func (r *Renderer) text(x, y int, s string, style core.Style) {
	for _, ch := range s {
		r.canvas.SetCell(x, y, core.NewStyledCell(ch, style))
		x += max(core.RuneWidth(ch), 1)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
