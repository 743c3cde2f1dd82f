package invaders

import (
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Block is one destructible cell of a bunker.
type Block struct {
	Box    core.RectF
	Health int
}

// Bunker is a fixed arch of blocks placed between the formation and the player.
type Bunker struct {
	X, Y   float64
	Blocks []*Block
}

// BunkerGeometry describes the cell grid every bunker is cut from.
type BunkerGeometry struct {
	Cols     int
	Rows     int
	CellSize float64
	Y        float64 // Top edge of every bunker
}

// geometryFrom extracts bunker geometry from the config section.
func geometryFrom(cfg config.BunkerConfig) BunkerGeometry {
	return BunkerGeometry{
		Cols:     cfg.Cols,
		Rows:     cfg.Rows,
		CellSize: cfg.CellSize,
		Y:        cfg.Y,
	}
}

// Width returns the width of one bunker in field units.
func (g BunkerGeometry) Width() float64 {
	return float64(g.Cols) * g.CellSize
}

// excluded reports whether the cell at (row, col) is cut out of the shape.
// The two outermost cells on each side of the top row round the corners;
// the middle third of the bottom third forms the arch.
func (g BunkerGeometry) excluded(row, col int) bool {
	if row == 0 && (col <= 1 || col >= g.Cols-2) {
		return true
	}
	archLeft := g.Cols / 3
	archRight := g.Cols - g.Cols/3
	return row >= g.Rows-g.Rows/3 && col >= archLeft && col < archRight
}

// CreateBunkers places count bunkers evenly across the field with equal gaps
// at both edges and between neighbours.
func CreateBunkers(count int, fieldWidth float64, g BunkerGeometry) []*Bunker {
	if count <= 0 {
		return nil
	}

	w := g.Width()
	gap := (fieldWidth - float64(count)*w) / float64(count+1)

	bunkers := make([]*Bunker, 0, count)
	for i := range count {
		b := &Bunker{
			X: gap + float64(i)*(w+gap),
			Y: g.Y,
		}
		for row := range g.Rows {
			for col := range g.Cols {
				if g.excluded(row, col) {
					continue
				}
				b.Blocks = append(b.Blocks, &Block{
					Box: core.NewRectF(
						b.X+float64(col)*g.CellSize,
						b.Y+float64(row)*g.CellSize,
						g.CellSize,
						g.CellSize,
					),
					Health: 1,
				})
			}
		}
		bunkers = append(bunkers, b)
	}
	return bunkers
}

// BlockCount returns the number of blocks still standing.
func (b *Bunker) BlockCount() int {
	return len(b.Blocks)
}

// ApplyHit damages the first block overlapping r, scanning bunkers and then
// blocks in creation order. At most one block is affected per call.
func ApplyHit(bunkers []*Bunker, r core.RectF) bool {
	for _, b := range bunkers {
		for i, block := range b.Blocks {
			if !core.Overlaps(block.Box, r) {
				continue
			}
			block.Health--
			if block.Health <= 0 {
				b.Blocks = slices.Delete(b.Blocks, i, i+1)
			}
			return true
		}
	}
	return false
}
