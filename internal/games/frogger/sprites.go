package frogger

import "github.com/vovakirdan/tui-frogger/internal/arena"

// Visual-state tokens reported by frogger actors.
const (
	SpriteCarYellowRight arena.Sprite = iota + 1
	SpriteCarYellowLeft
	SpriteCarWhiteRight
	SpriteCarWhiteLeft
	SpriteTruckRight
	SpriteTruckLeft
	SpriteRaft
	SpriteTurtle
	SpriteTurtleDiving
	SpriteCrocodileClosed
	SpriteCrocodileOpen
	SpriteFrogUp
	SpriteFrogDown
	SpriteFrogLeft
	SpriteFrogRight
	SpriteFrogHome // drawn in a filled win slot
)
