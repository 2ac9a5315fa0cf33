package mission

import (
	"fmt"

	"github.com/lunarcade/lunarcade/internal/core"
)

// Glyphs for the scene.
const (
	landerChar    = '▲'
	crashedChar   = '✸'
	landedChar    = '◭'
	flameChar     = '▼'
	sideFlameChar = '·'
	surfaceChar   = '█'
	padChar       = '═'
	starChar      = '✦'
	dimStarChar   = '·'
)

// Render draws the current mission state to the screen: starfield, lunar
// surface with the landing pad, the craft with its flames, the HUD, and
// any verdict overlay. World coordinates project onto the cell grid; the
// world's bottom-left is the screen's bottom-left.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.surface == nil || g.craft == nil {
		return
	}

	g.drawStars(dst)
	g.drawSurface(dst)
	g.drawLander(dst)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	} else if g.verdict != nil {
		if g.verdict.Landed {
			g.drawCenteredMessage(dst, "THE EAGLE HAS LANDED",
				fmt.Sprintf("+%d points  |  Space for next approach", g.attemptScore(g.verdict)))
		} else {
			g.drawCenteredMessage(dst, "MISSION FAILED",
				fmt.Sprintf("touchdown %.1f m/s, tilt %.0f°  |  Space to retry", g.verdict.Speed, g.verdict.TiltDeg))
		}
	}
}

// screenX maps a world x coordinate to a screen column.
func (g *Game) screenX(dst *core.Screen, x float64) int {
	return int(x / g.bounds.W * float64(dst.Width()))
}

// screenY maps a world y coordinate to a screen row (world y grows up,
// screen y grows down).
func (g *Game) screenY(dst *core.Screen, y float64) int {
	return int((1.0 - y/g.bounds.H) * float64(dst.Height()-1))
}

// drawStars renders the twinkling background.
func (g *Game) drawStars(dst *core.Screen) {
	for _, s := range g.stars {
		ch := dimStarChar
		if (g.tick/8+s.phase)%4 == 0 {
			ch = starChar
		}
		dst.SetCell(g.screenX(dst, s.x), g.screenY(dst, s.y), ch, core.ColorGray)
	}
}

// drawSurface fills each column from the terrain elevation down, then lays
// the pad on top in green.
func (g *Game) drawSurface(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	samples := g.surface.Samples()
	if len(samples) == 0 {
		return
	}

	for col := 0; col < w; col++ {
		idx := col * len(samples) / w
		top := g.screenY(dst, samples[idx])
		for row := top; row < h; row++ {
			dst.SetCell(col, row, surfaceChar, core.ColorGray)
		}
	}

	padPos, padWidth := g.surface.Platform()
	padRow := g.screenY(dst, g.surface.PlatformHeight())
	left := g.screenX(dst, padPos.X-padWidth/2.0)
	right := g.screenX(dst, padPos.X+padWidth/2.0)
	for col := left; col <= right; col++ {
		dst.SetCell(col, padRow, padChar, core.ColorBrightGreen)
	}
}

// drawLander renders the craft and, while thrusters fire, their plumes.
func (g *Game) drawLander(dst *core.Screen) {
	pos := g.craft.Position()
	col := g.screenX(dst, pos.X)
	row := g.screenY(dst, pos.Y)

	ch := landerChar
	color := core.ColorBrightWhite
	switch {
	case g.craft.IsCrashed():
		ch = crashedChar
		color = core.ColorBrightRed
	case g.craft.IsLanded():
		ch = landedChar
		color = core.ColorBrightGreen
	}
	dst.SetCell(col, row, ch, color)

	if !g.craft.IsFlying() {
		return
	}
	if g.thrust.MainEngine && !g.craft.OutOfFuel() {
		dst.SetCell(col, row+1, flameChar, core.ColorOrange)
	}
	if g.thrust.CounterClockwise && !g.craft.OutOfFuel() {
		dst.SetCell(col+1, row, sideFlameChar, core.ColorOrange)
	}
	if g.thrust.Clockwise && !g.craft.OutOfFuel() {
		dst.SetCell(col-1, row, sideFlameChar, core.ColorOrange)
	}
}

// drawHUD renders flight data in the top-left and mission statistics in
// the top-right.
func (g *Game) drawHUD(dst *core.Screen) {
	pos := g.craft.Position()
	altitude := pos.Y - g.surface.ElevationAt(pos)
	if altitude < 0 {
		altitude = 0
	}

	fuelColor := core.ColorDefault
	if g.craft.FuelPercent() < 20 {
		fuelColor = core.ColorBrightRed // low fuel warning
	}
	dst.DrawTextColor(2, 0, fmt.Sprintf("Fuel: %.0f kg (%.0f%%)", g.craft.Fuel(), g.craft.FuelPercent()), fuelColor)
	dst.DrawText(2, 1, fmt.Sprintf("Speed: %.1f m/s", g.craft.Speed()))
	dst.DrawText(2, 2, fmt.Sprintf("Altitude: %.0f m", altitude))
	dst.DrawText(2, 3, fmt.Sprintf("Attitude: %.0f°", g.craft.Attitude().Degrees()))
	dst.DrawText(2, 4, fmt.Sprintf("Time: %.0f s", g.missionTime))

	stats := fmt.Sprintf("Score: %d  Landings: %d/%d", g.score, g.successes, g.attempts)
	dst.DrawText(dst.Width()-len(stats)-2, 0, stats)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
