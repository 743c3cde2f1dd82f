package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func defaultGeometry() BunkerGeometry {
	return BunkerGeometry{Cols: 8, Rows: 6, CellSize: 10, Y: 440}
}

func hasBlockAt(b *Bunker, x, y float64) bool {
	for _, block := range b.Blocks {
		if block.Box.X == x && block.Box.Y == y {
			return true
		}
	}
	return false
}

func TestCreateBunkersLayout(t *testing.T) {
	bunkers := CreateBunkers(4, 800, defaultGeometry())
	if len(bunkers) != 4 {
		t.Fatalf("expected 4 bunkers, got %d", len(bunkers))
	}

	// gap = (800 - 4*80) / 5 = 96
	wantX := []float64{96, 272, 448, 624}
	for i, b := range bunkers {
		if b.X != wantX[i] {
			t.Errorf("bunker %d at x=%v, want %v", i, b.X, wantX[i])
		}
		// 48 cells - 4 rounded corners - 2x4 arch cells
		if b.BlockCount() != 36 {
			t.Errorf("bunker %d has %d blocks, want 36", i, b.BlockCount())
		}
		for _, block := range b.Blocks {
			if block.Health != 1 {
				t.Errorf("block health should start at 1, got %d", block.Health)
			}
		}
	}
}

func TestBunkerExclusionPattern(t *testing.T) {
	b := CreateBunkers(1, 800, defaultGeometry())[0]
	cell := func(row, col int) (float64, float64) {
		return b.X + float64(col)*10, b.Y + float64(row)*10
	}

	tests := []struct {
		row, col int
		present  bool
	}{
		{0, 0, false}, {0, 1, false}, {0, 6, false}, {0, 7, false}, // rounded corners
		{0, 2, true}, {0, 5, true},
		{1, 0, true}, {1, 7, true},
		{4, 2, false}, {4, 5, false}, {5, 3, false}, // arch
		{4, 1, true}, {4, 6, true}, {5, 0, true}, {3, 3, true},
	}

	for _, tc := range tests {
		x, y := cell(tc.row, tc.col)
		if got := hasBlockAt(b, x, y); got != tc.present {
			t.Errorf("cell (%d,%d): present=%v, want %v", tc.row, tc.col, got, tc.present)
		}
	}
}

func TestCreateBunkersNone(t *testing.T) {
	if bunkers := CreateBunkers(0, 800, defaultGeometry()); bunkers != nil {
		t.Errorf("expected no bunkers, got %d", len(bunkers))
	}
}

func TestApplyHitRemovesExactlyOneBlock(t *testing.T) {
	bunkers := CreateBunkers(2, 800, defaultGeometry())
	first := bunkers[0]
	before0, before1 := first.BlockCount(), bunkers[1].BlockCount()

	// Spans two cells of the second row.
	shot := core.NewRectF(first.X+15, first.Y+12, 10, 5)
	if !ApplyHit(bunkers, shot) {
		t.Fatal("expected hit")
	}

	if first.BlockCount() != before0-1 {
		t.Errorf("hit bunker should lose one block: %d -> %d", before0, first.BlockCount())
	}
	if bunkers[1].BlockCount() != before1 {
		t.Error("other bunker should be untouched")
	}
	// The first block in creation order is the one at column 1.
	if hasBlockAt(first, first.X+10, first.Y+10) {
		t.Error("first overlapping block should be destroyed")
	}
	if !hasBlockAt(first, first.X+20, first.Y+10) {
		t.Error("second overlapping block should survive")
	}
}

func TestApplyHitMiss(t *testing.T) {
	bunkers := CreateBunkers(4, 800, defaultGeometry())
	total := totalBlocks(bunkers)

	if ApplyHit(bunkers, core.NewRectF(0, 0, 3, 15)) {
		t.Error("shot far from bunkers should miss")
	}
	// Touching the top edge only is not a hit.
	b := bunkers[0]
	if ApplyHit(bunkers, core.NewRectF(b.X+25, b.Y-15, 3, 15)) {
		t.Error("edge contact should not count")
	}
	if totalBlocks(bunkers) != total {
		t.Error("misses must not remove blocks")
	}
}

func TestApplyHitDamagesTougherBlocks(t *testing.T) {
	bunkers := CreateBunkers(1, 800, defaultGeometry())
	block := bunkers[0].Blocks[0]
	block.Health = 2
	before := bunkers[0].BlockCount()

	ApplyHit(bunkers, block.Box)
	if bunkers[0].BlockCount() != before || block.Health != 1 {
		t.Errorf("first hit should only damage: count=%d health=%d", bunkers[0].BlockCount(), block.Health)
	}
	ApplyHit(bunkers, block.Box)
	if bunkers[0].BlockCount() != before-1 {
		t.Error("second hit should destroy the block")
	}
}
