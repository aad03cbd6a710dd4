package world

import "fmt"

// BlockPos is an integer block coordinate in the loaded level
type BlockPos struct {
	X, Y, Z int
}

func (p BlockPos) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.X, p.Y, p.Z)
}

// HitKind classifies what the crosshair ray hit
type HitKind int

const (
	HitMiss HitKind = iota
	HitBlock
	HitEntity
)

func (k HitKind) String() string {
	switch k {
	case HitBlock:
		return "block"
	case HitEntity:
		return "entity"
	default:
		return "miss"
	}
}

// HitResult is the host's current crosshair target
// Pos is meaningful only for HitBlock
type HitResult struct {
	Kind HitKind
	Pos  BlockPos
}

// BlockHit is shorthand for a block hit at pos
func BlockHit(pos BlockPos) HitResult {
	return HitResult{Kind: HitBlock, Pos: pos}
}
