package world

import (
	"blockworld/internal/block"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Event is a deferred world mutation applied by Update on the main thread.
type Event interface {
	Handle(w *World)
}

// DigAction selects what a DigEvent does.
type DigAction int

const (
	ActionBreak DigAction = iota
	ActionPlace
)

// DigEvent breaks or places a single block.
type DigEvent struct {
	Action   DigAction
	Position mgl32.Vec3
	// Block is placed by ActionPlace.
	Block block.ID
	// OnBreak, if set, receives the block removed by ActionBreak.
	OnBreak func(block.ID)
}

// Handle applies the edit if the target column is loaded.
func (e DigEvent) Handle(w *World) {
	x := int(math.Floor(float64(e.Position.X())))
	y := int(math.Floor(float64(e.Position.Y())))
	z := int(math.Floor(float64(e.Position.Z())))

	pos := ChunkXZ(x, z)
	if !w.ChunkLoadedAt(pos.X, pos.Z) {
		return
	}

	switch e.Action {
	case ActionBreak:
		old := w.GetBlock(x, y, z)
		w.SetBlock(x, y, z, block.Air)
		w.UpdateChunk(x, y, z)
		if e.OnBreak != nil && old != block.Air {
			e.OnBreak(old)
		}
	case ActionPlace:
		if e.Block == block.Air {
			return
		}
		w.SetBlock(x, y, z, e.Block)
		w.UpdateChunk(x, y, z)
	}
}
