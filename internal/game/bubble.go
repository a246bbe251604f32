package game

import "github.com/ormakov/hexpop/internal/core"

// BubbleColor is one of the bubble palette colors.
type BubbleColor uint8

const (
	Red BubbleColor = iota
	Green
	Blue
	Yellow
	Magenta
	Cyan

	// NumColors is the size of the full palette. Configs may use fewer.
	NumColors = 6
)

// Screen maps a bubble color to its screen palette slot.
func (c BubbleColor) Screen() core.Color {
	switch c {
	case Red:
		return core.ColorRed
	case Green:
		return core.ColorGreen
	case Blue:
		return core.ColorBlue
	case Yellow:
		return core.ColorYellow
	case Magenta:
		return core.ColorMagenta
	case Cyan:
		return core.ColorCyan
	default:
		return core.ColorWhite
	}
}

// BubbleID identifies a bubble in the grid's table. IDs are never reused
// within a run, so stale references simply miss.
type BubbleID uint32

// Bubble is the per-bubble record. Position lives in the grid's cell map,
// not here, so a bubble occupies exactly one cell at a time.
type Bubble struct {
	Color BubbleColor
}
