package invaders

import (
	"slices"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Enemy is a single member of the formation.
// Type is derived from the row: the back row has the highest type and is
// worth the most points.
type Enemy struct {
	Box  core.RectF
	Type int
	Row  int
	Col  int
}

// Formation is the grid of live enemies moving as one rigid body.
type Formation struct {
	Enemies   []*Enemy
	Direction float64 // +1 right, -1 left
	Speed     float64

	initial int
	cfg     config.EnemyConfig
}

// NewFormation builds a full-strength formation at its starting position.
func NewFormation(cfg config.EnemyConfig) *Formation {
	f := &Formation{
		Enemies:   make([]*Enemy, 0, cfg.Rows*cfg.Cols),
		Direction: 1,
		Speed:     cfg.BaseSpeed,
		initial:   cfg.Rows * cfg.Cols,
		cfg:       cfg,
	}

	for row := range cfg.Rows {
		for col := range cfg.Cols {
			f.Enemies = append(f.Enemies, &Enemy{
				Box: core.NewRectF(
					cfg.LeftOffset+float64(col)*(cfg.Width+cfg.Padding),
					cfg.TopOffset+float64(row)*(cfg.Height+cfg.Padding),
					cfg.Width,
					cfg.Height,
				),
				Type: cfg.Rows - row,
				Row:  row,
				Col:  col,
			})
		}
	}
	return f
}

// SpeedFor returns the formation speed for a given number of survivors.
// Speed grows linearly from base at full strength to 3*base as the
// formation empties.
func SpeedFor(remaining, initial int, base float64) float64 {
	if initial <= 0 {
		return base
	}
	ratio := float64(remaining) / float64(initial)
	return base * (1 + (1-ratio)*2)
}

// Len returns the number of live enemies.
func (f *Formation) Len() int {
	return len(f.Enemies)
}

// Extents returns the leftmost and rightmost x covered by live enemies.
func (f *Formation) Extents() (left, right float64) {
	if len(f.Enemies) == 0 {
		return 0, 0
	}
	left = f.Enemies[0].Box.X
	right = f.Enemies[0].Box.Right()
	for _, e := range f.Enemies[1:] {
		left = min(left, e.Box.X)
		right = max(right, e.Box.Right())
	}
	return left, right
}

// Step moves the formation one tick. When the leading edge reaches the
// margin the direction flips and every enemy descends on the same tick.
// Returns true if a descent happened.
func (f *Formation) Step(fieldWidth float64) bool {
	if len(f.Enemies) == 0 {
		return false
	}

	left, right := f.Extents()
	descend := false
	switch {
	case f.Direction > 0 && right >= fieldWidth-f.cfg.EdgeMargin:
		f.Direction = -1
		descend = true
	case f.Direction < 0 && left <= f.cfg.EdgeMargin:
		f.Direction = 1
		descend = true
	}

	dx := f.Speed * f.Direction
	for _, e := range f.Enemies {
		e.Box.X += dx
		if descend {
			e.Box.Y += f.cfg.DescendStep
		}
	}

	f.Speed = SpeedFor(len(f.Enemies), f.initial, f.cfg.BaseSpeed)
	return descend
}

// Remove deletes the enemy at index i and rescales the speed.
func (f *Formation) Remove(i int) {
	f.Enemies = slices.Delete(f.Enemies, i, i+1)
	f.Speed = SpeedFor(len(f.Enemies), f.initial, f.cfg.BaseSpeed)
}

// ReachedLine reports whether any enemy's bottom edge is at or below y.
func (f *Formation) ReachedLine(y float64) bool {
	for _, e := range f.Enemies {
		if e.Box.Bottom() >= y {
			return true
		}
	}
	return false
}

// FrontByColumn returns the lowest live enemy of each occupied column,
// ordered by column index.
func (f *Formation) FrontByColumn() []*Enemy {
	fronts := make(map[int]*Enemy)
	for _, e := range f.Enemies {
		if cur, ok := fronts[e.Col]; !ok || e.Box.Y > cur.Box.Y {
			fronts[e.Col] = e
		}
	}

	result := make([]*Enemy, 0, len(fronts))
	for col := range f.cfg.Cols {
		if e, ok := fronts[col]; ok {
			result = append(result, e)
		}
	}
	return result
}
