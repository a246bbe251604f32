package core

// Color identifies a palette slot understood by the renderer. The core keeps
// colors abstract; the TUI layer maps them to lipgloss styles.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
)
