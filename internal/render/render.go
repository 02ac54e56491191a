// Package render draws engine snapshots into a core.Screen cell buffer.
// It only reads snapshots; the session is never touched.
package render

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// Visual characters for rendering
const (
	EntityChar    = '●'
	BeakChar      = '▶'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
	SoilChar      = '▒'
	CloudChar     = '░'
)

// cloud is one background cloud, laid out in a 400x600 reference world and
// scaled to the actual play area. Each cloud is two overlapping puffs.
type cloud struct {
	y     float64 // Top of the main puff
	speed float64 // Leftward drift in reference units per second
}

var clouds = []cloud{
	{y: 90, speed: 20},
	{y: 140, speed: 30},
	{y: 190, speed: 40},
}

const (
	refWidth    = 400.0
	refHeight   = 600.0
	cloudMargin = 60.0 // Clouds wrap this far beyond both edges
)

// Scale maps world coordinates onto screen cells.
type Scale struct {
	SX, SY float64 // Cells per world unit on each axis
	W, H   int     // Screen size in cells
}

// NewScale fits a play area of worldW x worldH into a w x h screen.
func NewScale(worldW, worldH float64, w, h int) Scale {
	s := Scale{W: w, H: h}
	if worldW > 0 {
		s.SX = float64(w) / worldW
	}
	if worldH > 0 {
		s.SY = float64(h) / worldH
	}
	return s
}

// Col returns the screen column containing world x.
func (s Scale) Col(x float64) int {
	return int(math.Floor(x * s.SX))
}

// Row returns the screen row containing world y.
func (s Scale) Row(y float64) int {
	return int(math.Floor(y * s.SY))
}

// Draw renders a full frame: sky, clouds, obstacles, ground, entity and the
// overlay for the current phase.
func Draw(dst *core.Screen, snap engine.Snapshot) {
	dst.Fill(' ', core.ColorSky)
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	sc := NewScale(snap.PlayWidth, snap.PlayHeight, dst.Width(), dst.Height())
	groundRow := core.Clamp(sc.Row(snap.GroundY), 0, dst.Height()-1)

	drawClouds(dst, sc, snap)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, sc, o, groundRow)
	}
	drawGround(dst, groundRow)
	drawEntity(dst, sc, snap.Entity)

	switch snap.Phase {
	case engine.PhaseMenu:
		drawCenteredMessage(dst,
			"FLAPPY",
			"",
			"Press SPACE to start",
			"SPACE / UP to flap",
		)
	case engine.PhasePlaying:
		dst.DrawTextCentered(0, fmt.Sprintf(" %d ", snap.Score))
	case engine.PhaseGameOver:
		drawCenteredMessage(dst,
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", snap.Score),
			"Press SPACE or R to restart",
		)
	}
}

// drawObstacle renders the upper and lower blocking regions with caps facing the gap.
func drawObstacle(dst *core.Screen, sc Scale, o engine.ObstacleView, groundRow int) {
	left := sc.Col(o.X)
	right := sc.Col(o.X + o.Width)
	if right <= left {
		right = left + 1
	}
	gapTop := sc.Row(o.GapTop)
	gapBottom := sc.Row(o.GapTop + o.GapSize)

	for x := left; x < right; x++ {
		// Upper region, from the top of the screen down to the gap
		dst.DrawVLine(x, 0, gapTop, PipeChar, core.ColorPipe)
		if gapTop > 0 {
			dst.SetColored(x, gapTop-1, PipeCapTop, core.ColorPipeCap)
		}

		// Lower region, from below the gap down to the ground
		dst.DrawVLine(x, gapBottom, groundRow-gapBottom, PipeChar, core.ColorPipe)
		if gapBottom < groundRow {
			dst.SetColored(x, gapBottom, PipeCapBottom, core.ColorPipeCap)
		}
	}
}

// drawClouds draws the background clouds, drifting left with play time and
// wrapping around the play area.
func drawClouds(dst *core.Screen, sc Scale, snap engine.Snapshot) {
	kx := snap.PlayWidth / refWidth
	ky := snap.PlayHeight / refHeight
	span := snap.PlayWidth + cloudMargin*kx
	if span <= 0 {
		return
	}

	for _, c := range clouds {
		x := snap.PlayWidth - math.Mod(snap.Elapsed*c.speed*kx, span) - cloudMargin*kx
		y := c.y * ky
		fillWorld(dst, sc, x, y, 80*kx, 30*ky)
		fillWorld(dst, sc, x+25*kx, y-10*ky, 60*kx, 35*ky)
	}
}

// fillWorld fills the cells covered by a world-space rectangle with cloud,
// at least one cell.
func fillWorld(dst *core.Screen, sc Scale, x, y, w, h float64) {
	left := sc.Col(x)
	top := sc.Row(y)
	r := core.NewRect(left, top,
		core.Max(sc.Col(x+w)-left, 1),
		core.Max(sc.Row(y+h)-top, 1))
	dst.DrawRect(r, CloudChar, core.ColorCloud)
}

func drawGround(dst *core.Screen, groundRow int) {
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorGround)
	for y := groundRow + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), SoilChar, core.ColorGround)
	}
}

// drawEntity fills the cells covered by the entity's box, at least one cell,
// with a beak on the right of the center row.
func drawEntity(dst *core.Screen, sc Scale, e engine.EntityView) {
	left := sc.Col(e.X - e.Radius)
	right := core.Max(sc.Col(e.X+e.Radius), left+1)
	top := sc.Row(e.Y - e.Radius)
	bottom := core.Max(sc.Row(e.Y+e.Radius), top+1)

	for y := top; y < bottom; y++ {
		for x := left; x < right; x++ {
			dst.SetColored(x, y, EntityChar, core.ColorEntity)
		}
	}
	dst.SetColored(right, sc.Row(e.Y), BeakChar, core.ColorBeak)
}

// drawCenteredMessage draws a boxed block of centered lines.
func drawCenteredMessage(dst *core.Screen, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	inner := 0
	for _, l := range lines {
		inner = core.Max(inner, len([]rune(l)))
	}
	boxW := inner + 4
	boxH := len(lines) + 2
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, l := range lines {
		x := boxX + (boxW-len([]rune(l)))/2
		c := core.ColorText
		if i == 0 {
			c = core.ColorAccent
		}
		dst.DrawTextColored(x, boxY+1+i, l, c)
	}
}
