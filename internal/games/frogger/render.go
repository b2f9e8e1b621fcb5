package frogger

import (
	"fmt"

	"github.com/Clark-Sheng-Quan/Frogger-Game/internal/core"
	fcore "github.com/Clark-Sheng-Quan/Frogger-Game/internal/games/frogger/core"
)

// Minimum terminal size that still shows every lane.
const (
	MinScreenW = 30
	MinScreenH = 14
)

// Visual characters for rendering
const (
	FrogChar      = '@'
	PlantChar     = '='
	CarChar       = '█'
	CrocBodyChar  = '≡'
	CrocHeadChar  = 'W'
	WaterChar     = '~'
	GrassChar     = '▒'
	HedgeChar     = '▓'
	BankChar      = '░'
	FlyChar       = '*'
	EmptyHomeChar = '·'
)

// board maps the 600x600 board onto the rows between the HUD and the help
// line.
type board struct {
	w, rows int
}

func (b board) col(x float64) int {
	return int(x * float64(b.w) / fcore.BoardWidth)
}

func (b board) row(y float64) int {
	return 1 + int(y*float64(b.rows)/fcore.BoardHeight)
}

// rect converts a board rectangle to screen cells, at least one cell big.
func (b board) rect(x, y, w, h float64) core.Rect {
	c0, r0 := b.col(x), b.row(y)
	return core.NewRect(c0, r0, max(1, b.col(x+w)-c0), max(1, b.row(y+h)-r0))
}

// boardY returns the board y at the middle of screen row r.
func (b board) boardY(r int) float64 {
	return (float64(r-1) + 0.5) * fcore.BoardHeight / float64(b.rows)
}

// Render draws the current state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinScreenW || dst.Height() < MinScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		return
	}

	b := board{w: dst.Width(), rows: dst.Height() - 2}
	s := g.state

	drawLanes(dst, b)
	drawHomes(dst, b, s.Homes)
	for _, p := range s.Plants {
		dst.DrawRectColored(b.rect(p.X, p.Y, p.Width, p.Height), PlantChar, core.ColorBrown)
	}
	for _, c := range s.Crocodiles {
		ch, color := CrocBodyChar, core.ColorGreen
		if c.Kind == fcore.KindCrocodileHead {
			ch, color = CrocHeadChar, core.ColorBrightGreen
		}
		dst.DrawRectColored(b.rect(c.X, c.Y, c.Width, c.Height), ch, color)
	}
	for _, c := range s.Cars {
		color := core.ColorRed
		if c.Kind == fcore.KindReverseCar {
			color = core.ColorYellow
		}
		dst.DrawRectColored(b.rect(c.X, c.Y, c.Width, c.Height), CarChar, color)
	}

	half := float64(fcore.FrogRadius) / 2
	frog := b.rect(s.Frog.X-half, s.Frog.Y, 2*half, 0)
	dst.DrawRectColored(frog, FrogChar, core.ColorBrightGreen)

	g.drawHUD(dst)
	g.drawOverlay(dst)
}

func drawLanes(dst *core.Screen, b board) {
	for r := 1; r <= b.rows; r++ {
		y := b.boardY(r)
		switch fcore.ZoneOf(y) {
		case fcore.ZoneHome:
			if y < 50 {
				dst.DrawRectColored(core.NewRect(0, r, b.w, 1), BankChar, core.ColorGray)
			} else {
				dst.DrawRectColored(core.NewRect(0, r, b.w, 1), HedgeChar, core.ColorGreen)
			}
		case fcore.ZoneWater:
			dst.DrawRectColored(core.NewRect(0, r, b.w, 1), WaterChar, core.ColorBlue)
		case fcore.ZoneRoad:
			// the river's upper bank (100-125) and the median are grass
			if y < 125 || (y >= 300 && y < 350) || y >= 550 {
				dst.DrawRectColored(core.NewRect(0, r, b.w, 1), GrassChar, core.ColorGreen)
			}
		}
	}
}

func drawHomes(dst *core.Screen, b board, homes []fcore.HomeSlot) {
	for _, h := range homes {
		area := b.rect(h.X, h.Y, h.Width, h.Height)
		switch {
		case h.Fly:
			dst.DrawRectColored(area, FlyChar, core.ColorMagenta)
		case h.Reached:
			dst.DrawRectColored(area, FrogChar, core.ColorBrightGreen)
		default:
			dst.DrawRectColored(area, EmptyHomeChar, core.ColorGray)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.state
	hud := fmt.Sprintf("SCORE %04d  HIGH %04d  LEVEL %d  HOMES %d/%d",
		s.Score, max(s.HighestScore, s.Score), s.Level, s.ReachedCount(), fcore.HomeCount)
	dst.DrawTextColored(1, 0, hud, core.ColorBrightYellow)

	help := "Arrows/WASD move  P pause  R restart  Q quit"
	dst.DrawTextColored(1, dst.Height()-1, help, core.ColorGray)
}

func (g *Game) drawOverlay(dst *core.Screen) {
	var title, hint string
	switch {
	case g.state.GameOver:
		title, hint = "GAME OVER", "Press R to restart"
	case g.state.CheckWin:
		title, hint = "LEVEL CLEAR", fmt.Sprintf("Level %d next", g.state.Level+1)
	case g.paused:
		title, hint = "PAUSED", "Press P to resume"
	default:
		return
	}

	w := max(len(hint), len(title)) + 4
	box := core.NewRect((dst.Width()-w)/2, dst.Height()/2-2, w, 4)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCenteredColored(box.Y+1, title, core.ColorBrightRed)
	dst.DrawTextCenteredColored(box.Y+2, hint, core.ColorWhite)
}
