// Package window runs frogger in a desktop window through Ebiten.
//
// The Ebiten driver is only compiled with the "ebiten" build tag, since it
// needs cgo and a display on Linux. Colors, HUD text and input folding are
// shared by both builds.
package window

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/tui-frogger/internal/arena"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var (
	colorRoad  = color.RGBA{0x10, 0x10, 0x10, 0xff}
	colorWater = color.RGBA{0x00, 0x2a, 0x88, 0xff}
	colorSlot  = color.RGBA{0x00, 0x20, 0x00, 0xff}
	colorShade = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

var terrainColors = map[frogger.Terrain]color.RGBA{
	frogger.TerrainBank:     {0x00, 0x88, 0x22, 0xff},
	frogger.TerrainMedian:   {0x70, 0x30, 0x90, 0xff},
	frogger.TerrainSidewalk: {0x70, 0x30, 0x90, 0xff},
}

var spriteColors = map[arena.Sprite]color.RGBA{
	frogger.SpriteCarYellowRight:  {0xf0, 0xd0, 0x20, 0xff},
	frogger.SpriteCarYellowLeft:   {0xf0, 0xd0, 0x20, 0xff},
	frogger.SpriteCarWhiteRight:   {0xe8, 0xe8, 0xe8, 0xff},
	frogger.SpriteCarWhiteLeft:    {0xe8, 0xe8, 0xe8, 0xff},
	frogger.SpriteTruckRight:      {0xc0, 0x20, 0x20, 0xff},
	frogger.SpriteTruckLeft:       {0xc0, 0x20, 0x20, 0xff},
	frogger.SpriteRaft:            {0x8b, 0x5a, 0x2b, 0xff},
	frogger.SpriteTurtle:          {0xd0, 0x30, 0x30, 0xff},
	frogger.SpriteTurtleDiving:    {0x70, 0x20, 0x40, 0xff},
	frogger.SpriteCrocodileClosed: {0x20, 0x70, 0x20, 0xff},
	frogger.SpriteCrocodileOpen:   {0x50, 0xb0, 0x30, 0xff},
	frogger.SpriteFrogUp:          {0x40, 0xff, 0x40, 0xff},
	frogger.SpriteFrogDown:        {0x40, 0xff, 0x40, 0xff},
	frogger.SpriteFrogLeft:        {0x40, 0xff, 0x40, 0xff},
	frogger.SpriteFrogRight:       {0x40, 0xff, 0x40, 0xff},
	frogger.SpriteFrogHome:        {0x40, 0xff, 0x40, 0xff},
}

// actorColor returns the fill for an actor this frame. ok is false for
// actors that are not drawn, such as a blinking frog.
func actorColor(a arena.Actor) (c color.RGBA, ok bool) {
	if a.Kind() == arena.KindWater {
		return colorWater, true
	}
	sprite, visible := a.Sprite()
	if !visible {
		return color.RGBA{}, false
	}
	c, ok = spriteColors[sprite]
	return c, ok
}

func hudText(st core.GameState) string {
	return fmt.Sprintf("LIVES %d  HOMES %d/%d  TIME %ds  SCORE %d",
		st.Lives, st.Progress, frogger.WinSlots, st.Seconds, st.Score)
}

// banner is the centered message for the current state, if any.
func banner(st core.GameState) string {
	switch {
	case st.Won:
		return "ALL FROGS HOME - R to restart"
	case st.GameOver:
		return "GAME OVER - R to restart"
	case st.Paused:
		return "PAUSED - P to resume"
	}
	return ""
}

var moves = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// heldFrame folds the movement keys currently down into one tick's input.
func heldFrame(held func(core.Action) bool) core.InputFrame {
	frame := core.NewInputFrame()
	for _, a := range moves {
		if held(a) {
			frame.Set(a)
		}
	}
	return frame
}
