package backend

import (
	"sync"

	"github.com/dshills/rangescope/internal/renderer/core"
)

// NullBackend is an in-memory Backend for tests.
type NullBackend struct {
	mu     sync.Mutex
	w, h   int
	grid   [][]core.Cell
	shows  int
	events chan Event
}

var _ Backend = (*NullBackend)(nil)

// NewNullBackend returns a width by height backend with a 100-event queue.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{w: width, h: height, events: make(chan Event, 100)}
}

func (b *NullBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.reset()
	return nil
}

// reset reallocates a blank grid. Callers hold mu.
func (b *NullBackend) reset() {
	b.grid = make([][]core.Cell, b.h)
	for y := range b.grid {
		row := make([]core.Cell, b.w)
		for x := range row {
			row[x] = core.EmptyCell()
		}
		b.grid[y] = row
	}
}

func (b *NullBackend) bounds() core.ScreenRect {
	return core.RectFromSize(0, 0, b.h, b.w)
}

func (b *NullBackend) Shutdown()     {}
func (b *NullBackend) EnableMouse()  {}
func (b *NullBackend) DisableMouse() {}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.w, b.h
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bounds().Contains(x, y) && b.grid != nil {
		b.grid[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) core.Cell {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.bounds().Contains(x, y) && b.grid != nil {
		return b.grid[y][x]
	}
	return core.EmptyCell()
}

func (b *NullBackend) Fill(rect core.ScreenRect, cell core.Cell) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.grid == nil {
		return
	}
	clip := rect.Intersection(b.bounds())
	for y := clip.Top; y < clip.Bottom; y++ {
		for x := clip.Left; x < clip.Right; x++ {
			b.grid[y][x] = cell
		}
	}
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.grid != nil {
		b.reset()
	}
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
}

func (b *NullBackend) PollEvent() Event {
	return <-b.events
}

// PostEvent drops the event when the queue is full.
func (b *NullBackend) PostEvent(ev Event) {
	select {
	case b.events <- ev:
	default:
	}
}

// ShowCount returns the number of Show calls.
func (b *NullBackend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}

// Row returns row y as text, or "" outside the grid.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= len(b.grid) {
		return ""
	}
	runes := make([]rune, len(b.grid[y]))
	for x, c := range b.grid[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}

// Resize changes the grid size, clearing it, and queues a resize event.
func (b *NullBackend) Resize(width, height int) {
	b.mu.Lock()
	b.w, b.h = width, height
	b.reset()
	b.mu.Unlock()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
