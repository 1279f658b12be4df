package frogger

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/arena"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Minimum terminal size that still separates every lane.
const (
	minScreenW = 32
	minScreenH = 18
)

// Background bands, in arena pixels.
const (
	homeTop    = 40
	medianTop  = 244
	medianBot  = 276
	sidewalkY  = 436
	waterGlyph = '~'
)

// glyph is the terminal appearance of a sprite.
type glyph struct {
	Rune  rune
	Color core.Color
}

var spriteGlyphs = map[arena.Sprite]glyph{
	SpriteCarYellowRight:  {'▶', core.ColorBrightYellow},
	SpriteCarYellowLeft:   {'◀', core.ColorBrightYellow},
	SpriteCarWhiteRight:   {'▶', core.ColorBrightWhite},
	SpriteCarWhiteLeft:    {'◀', core.ColorBrightWhite},
	SpriteTruckRight:      {'█', core.ColorRed},
	SpriteTruckLeft:       {'█', core.ColorRed},
	SpriteRaft:            {'=', core.ColorOrange},
	SpriteTurtle:          {'o', core.ColorBrightRed},
	SpriteTurtleDiving:    {'.', core.ColorRed},
	SpriteCrocodileClosed: {'≡', core.ColorGreen},
	SpriteCrocodileOpen:   {'<', core.ColorBrightGreen},
	SpriteFrogUp:          {'^', core.ColorBrightGreen},
	SpriteFrogDown:        {'v', core.ColorBrightGreen},
	SpriteFrogLeft:        {'<', core.ColorBrightGreen},
	SpriteFrogRight:       {'>', core.ColorBrightGreen},
	SpriteFrogHome:        {'@', core.ColorBrightGreen},
}

// viewport scales arena pixels into screen cells below the HUD row.
type viewport struct {
	arena core.Point
	cols  int
	rows  int
}

func (v viewport) rect(pos, size core.Point) core.Rect {
	x0 := int(pos.X) * v.cols / int(v.arena.X)
	y0 := int(pos.Y) * v.rows / int(v.arena.Y)
	x1 := ceilDiv(int(pos.X+size.X)*v.cols, int(v.arena.X))
	y1 := ceilDiv(int(pos.Y+size.Y)*v.rows, int(v.arena.Y))
	return core.NewRect(x0, y0+1, max(x1-x0, 1), max(y1-y0, 1))
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	s := g.session
	v := viewport{arena: s.Size(), cols: w, rows: h - 1}

	g.drawBackground(dst, v)

	for _, a := range s.Actors() {
		if a.Kind() == arena.KindWater {
			dst.DrawRectColored(v.rect(a.Pos(), a.Size()), waterGlyph, core.ColorBlue)
			continue
		}
		sprite, ok := a.Sprite()
		if !ok {
			continue
		}
		look, ok := spriteGlyphs[sprite]
		if !ok {
			continue
		}
		dst.DrawRectColored(v.rect(a.Pos(), a.Size()), look.Rune, look.Color)
	}

	g.drawHomes(dst, v)

	hud := fmt.Sprintf(" Lives: %d  Homes: %d/%d  Time: %ds ",
		s.RemainingLives(), s.HomesFilled(), WinSlots, s.PlayingTime())
	dst.DrawText(1, 0, hud)
	score := fmt.Sprintf(" Score: %d ", s.Score())
	dst.DrawText(w-len(score)-1, 0, score)

	switch {
	case s.GameWon():
		g.drawCenteredMessage(dst, "ALL FROGS HOME", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score()))
	case s.GameOver():
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", s.Score()))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// Terrain is the scenery under a background band.
type Terrain uint8

const (
	TerrainBank Terrain = iota // grass holding the home slots
	TerrainMedian
	TerrainSidewalk
)

// Band is one full-width strip of scenery, in arena pixels.
type Band struct {
	Top, Bottom int32
	Terrain     Terrain
}

// Scenery lists the background bands of an arena height pixels tall.
// Bands are clipped to the arena; bands below it are left out.
func Scenery(height int32) []Band {
	all := []Band{
		{homeTop, riverTop, TerrainBank},
		{medianTop, medianBot, TerrainMedian},
		{sidewalkY, height, TerrainSidewalk},
	}
	out := all[:0]
	for _, b := range all {
		if b.Top >= height {
			continue
		}
		b.Bottom = min(b.Bottom, height)
		out = append(out, b)
	}
	return out
}

var terrainGlyphs = map[Terrain]glyph{
	TerrainBank:     {'▒', core.ColorGreen},
	TerrainMedian:   {'░', core.ColorMagenta},
	TerrainSidewalk: {'░', core.ColorMagenta},
}

func (g *Game) drawBackground(dst *core.Screen, v viewport) {
	size := g.session.Size()
	for _, b := range Scenery(size.Y) {
		look := terrainGlyphs[b.Terrain]
		dst.DrawRectColored(v.rect(core.Pt(0, b.Top), core.Pt(size.X, b.Bottom-b.Top)), look.Rune, look.Color)
	}
}

// drawHomes cuts the five slots into the bank and marks the filled ones.
func (g *Game) drawHomes(dst *core.Screen, v viewport) {
	wins := g.session.Hero().Wins()
	home := spriteGlyphs[SpriteFrogHome]
	for i := 0; i < WinSlots; i++ {
		slot := WinSlot(i)
		r := v.rect(core.Pt(int32(slot.X), int32(slot.Y)), core.Pt(int32(slot.W), int32(slot.H)))
		if wins[i] {
			dst.DrawRectColored(r, home.Rune, home.Color)
		} else {
			dst.DrawRect(r, ' ')
		}
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
