package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '▄'
	PlayerNoseChar = '█'
	BlockChar      = '▓'
	PlayerShot     = '|'
	EnemyShot      = '!'
	BombChar       = '*'
	BorderHoriz    = '─'
)

// enemySprites are cycled across an enemy's width, indexed by type-1.
var enemySprites = []string{"(..)", "[~~]", "{@@}", "<##>", "/oo\\"}

// enemyColors are indexed by type-1; the back row gets the loudest color.
var enemyColors = []core.Color{
	core.ColorGreen,
	core.ColorCyan,
	core.ColorYellow,
	core.ColorRed,
	core.ColorMagenta,
}

const bonusSprite = "<=O=>"

// viewport maps field units to screen cells. Row 0 holds the HUD and the
// last row holds hints, the field fills the rows in between.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func newViewport(fieldW, fieldH float64, dst *core.Screen) viewport {
	rows := dst.Height() - 2
	return viewport{
		sx:  float64(dst.Width()) / fieldW,
		sy:  float64(rows) / fieldH,
		top: 1,
		w:   dst.Width(),
		h:   rows,
	}
}

// cells returns the inclusive cell span covered by r. Every non-empty
// rectangle covers at least one cell.
func (v viewport) cells(r core.RectF) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(r.X * v.sx))
	y0 = int(math.Floor(r.Y*v.sy)) + v.top
	x1 = max(x0, int(math.Ceil(r.Right()*v.sx))-1)
	y1 = max(y0, int(math.Ceil(r.Bottom()*v.sy))-1+v.top)
	return x0, y0, x1, y1
}

func (v viewport) point(x, y float64) (int, int) {
	return int(math.Floor(x * v.sx)), int(math.Floor(y*v.sy)) + v.top
}

func (v viewport) inField(y int) bool {
	return y >= v.top && y < v.top+v.h
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.sim == nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Invalid configuration")
		if g.err != nil {
			dst.DrawTextCentered(dst.Height()/2+1, g.err.Error())
		}
		return
	}

	snap := g.sim.Snapshot()
	v := newViewport(g.cfg.Field.Width, g.cfg.Field.Height, dst)

	g.renderHUD(dst, &snap)
	renderBunkers(dst, v, &snap)
	renderEnemies(dst, v, &snap)
	renderBonusShip(dst, v, &snap)
	renderBullets(dst, v, &snap)
	renderPlayer(dst, v, &snap)
	g.renderPopups(dst, v)
	g.renderOverlay(dst, &snap)
}

// renderHUD draws score, high score, wave and lives.
func (g *Game) renderHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Hi: %d  Wave: %d", max(g.highScore, snap.Score), snap.Wave))

	lives := fmt.Sprintf("Lives: %d", snap.Lives)
	dst.DrawTextColored(dst.Width()-len(lives)-1, 0, lives, core.ColorBrightGreen)

	dst.DrawHLine(0, dst.Height()-1, dst.Width(), BorderHoriz)
}

func renderBunkers(dst *core.Screen, v viewport, snap *Snapshot) {
	for _, blocks := range snap.Bunkers {
		for _, b := range blocks {
			x0, y0, x1, y1 := v.cells(b.Box)
			for y := y0; y <= y1; y++ {
				for x := x0; x <= x1; x++ {
					dst.SetColored(x, y, BlockChar, core.ColorGreen)
				}
			}
		}
	}
}

func renderEnemies(dst *core.Screen, v viewport, snap *Snapshot) {
	for _, e := range snap.Enemies {
		idx := core.Clamp(e.Type-1, 0, len(enemySprites)-1)
		sprite := []rune(enemySprites[idx])
		x0, y0, x1, _ := v.cells(e.Box)
		if !v.inField(y0) {
			continue
		}
		for x := x0; x <= x1; x++ {
			dst.SetColored(x, y0, sprite[(x-x0)%len(sprite)], enemyColors[idx])
		}
	}
}

func renderBonusShip(dst *core.Screen, v viewport, snap *Snapshot) {
	if !snap.HasBonus {
		return
	}
	x0, y0, x1, _ := v.cells(snap.Bonus.Box)
	sprite := []rune(bonusSprite)
	for x := x0; x <= x1; x++ {
		dst.SetColored(x, y0, sprite[(x-x0)%len(sprite)], core.ColorBrightRed)
	}
}

func renderBullets(dst *core.Screen, v viewport, snap *Snapshot) {
	draw := func(bullets []Bullet, glyph rune, color core.Color) {
		for _, b := range bullets {
			x, y := v.point(b.Box.CenterX(), b.Box.Y+b.Box.H/2)
			if v.inField(y) {
				dst.SetColored(x, y, glyph, color)
			}
		}
	}
	draw(snap.PlayerBullets, PlayerShot, core.ColorBrightWhite)
	draw(snap.EnemyBullets, EnemyShot, core.ColorYellow)
	draw(snap.Bombs, BombChar, core.ColorOrange)
}

func renderPlayer(dst *core.Screen, v viewport, snap *Snapshot) {
	// Blink while invulnerable
	if snap.Player.Invulnerable && (snap.Tick/6)%2 == 1 {
		return
	}
	x0, _, x1, y1 := v.cells(snap.Player.Box)
	mid := (x0 + x1) / 2
	for x := x0; x <= x1; x++ {
		glyph := PlayerChar
		if x == mid {
			glyph = PlayerNoseChar
		}
		dst.SetColored(x, y1, glyph, core.ColorBrightCyan)
	}
}

func (g *Game) renderPopups(dst *core.Screen, v viewport) {
	for _, p := range g.popups {
		x, y := v.point(p.x, p.y)
		if v.inField(y) {
			dst.DrawTextColored(x-len(p.text)/2, y, p.text, core.ColorBrightYellow)
		}
	}
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch {
	case snap.Phase == PhaseReady:
		g.drawCenteredBox(dst, g.Title(), "Press SPACE to start")
		dst.DrawTextCentered(dst.Height()-1, " A/D move  SPACE fire  P pause  Q quit ")

	case snap.Phase == PhaseGameOver:
		subtitle := fmt.Sprintf("Score: %d  Wave: %d  |  Press R to restart", snap.Score, snap.Wave)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
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
