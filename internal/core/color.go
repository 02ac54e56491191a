package core

// Color represents a foreground color for a screen cell.
// Hosts map these to terminal colors.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorSky
	ColorCloud
	ColorPipe
	ColorPipeCap
	ColorGround
	ColorEntity
	ColorBeak
	ColorText
	ColorAccent
)
