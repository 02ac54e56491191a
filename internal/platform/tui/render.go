package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Palette maps core.Color to lipgloss styles.
type Palette map[core.Color]lipgloss.Style

// NewPalette builds the scene palette for a renderer. SSH sessions pass a
// per-session renderer so color detection follows the remote terminal.
func NewPalette(r *lipgloss.Renderer) Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sky := lipgloss.Color("117")
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	// Scene elements sit on the sky; ground and text keep the terminal background
	onSky := func(c string) lipgloss.Style {
		return fg(c).Background(sky)
	}
	return Palette{
		core.ColorDefault: r.NewStyle(),
		core.ColorSky:     r.NewStyle().Background(sky),
		core.ColorCloud:   onSky("15"),
		core.ColorPipe:    onSky("2"),
		core.ColorPipeCap: onSky("10"),
		core.ColorGround:  fg("130"),
		core.ColorEntity:  onSky("11"),
		core.ColorBeak:    onSky("208"),
		core.ColorText:    fg("15"),
		core.ColorAccent:  fg("11").Bold(true),
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			// Apply style to the run
			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
