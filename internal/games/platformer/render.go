package platformer

import (
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
)

// hudRows is the number of screen rows above the world viewport.
const hudRows = 1

// Visual characters for rendering
const (
	GroundChar    = '▓'
	PipeChar      = '█'
	StepChar      = '▒'
	BrickChar     = '▦'
	BoxChar       = '?'
	UsedBlockChar = '■'
	PlayerChar    = '█'
	PlayerHeadR   = '▶'
	PlayerHeadL   = '◀'
	DeadChar      = 'x'
	GoombaChar    = 'm'
	KoopaChar     = 'k'
	ShellChar     = 'o'
	FlatChar      = '_'
	MushroomChar  = '♠'
	FlowerChar    = '✿'
	FireballChar  = '*'
	BoomChar      = '✺'
	DebrisChar    = '·'
	CoinChar      = '$'
)

// glyph picks the character and color for a draw item.
func glyph(it sim.DrawItem) (rune, core.Color) {
	switch it.Kind {
	case sim.ItemGround:
		return GroundChar, core.ColorBrown
	case sim.ItemPipe:
		return PipeChar, core.ColorGreen
	case sim.ItemStep:
		return StepChar, core.ColorBrown
	case sim.ItemBrick:
		if it.State == "open" {
			return UsedBlockChar, core.ColorGray
		}
		if it.Dark {
			return BrickChar, core.ColorBlue
		}
		return BrickChar, core.ColorBrown
	case sim.ItemBox:
		if it.State == "open" {
			return UsedBlockChar, core.ColorOrange
		}
		return BoxChar, core.ColorBrightYellow
	case sim.ItemGoomba:
		c := core.ColorBrown
		if it.Dark {
			c = core.ColorBlue
		}
		if it.State == "trampled" {
			return FlatChar, c
		}
		return GoombaChar, c
	case sim.ItemKoopa:
		switch it.State {
		case "trampled", "slide":
			return ShellChar, core.ColorGreen
		}
		return KoopaChar, core.ColorGreen
	case sim.ItemMushroom:
		return MushroomChar, core.ColorRed
	case sim.ItemFireflower:
		return FlowerChar, core.ColorOrange
	case sim.ItemFireball:
		if it.State == "boom" {
			return BoomChar, core.ColorYellow
		}
		return FireballChar, core.ColorBrightRed
	case sim.ItemDebris:
		return DebrisChar, core.ColorBrown
	case sim.ItemCoin:
		return CoinChar, core.ColorBrightYellow
	default:
		return ' ', core.ColorDefault
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	g.renderHUD(dst)

	switch g.state {
	case StateLoading:
		g.renderLoading(dst)
		return
	case StateGameOver:
		if g.loadErr != nil {
			g.drawCenteredBox(dst, "NO LEVELS", g.loadErr.Error())
			return
		}
	}

	if g.level != nil {
		g.renderWorld(dst)
	}
	g.renderOverlay(dst)
}

// renderWorld projects the draw list onto the screen below the HUD.
func (g *Game) renderWorld(dst *core.Screen) {
	cw, ch := g.cfg.Render.CellW, g.cfg.Render.CellH
	for _, it := range g.level.DrawList() {
		switch it.Kind {
		case sim.ItemBackground:
			continue
		case sim.ItemPlayer:
			if !it.Hidden {
				g.renderPlayer(dst, it)
			}
			continue
		}
		r, c := glyph(it)
		cell := it.Rect.Cells(cw, ch)
		cell.Y += hudRows
		dst.DrawRectColored(cell, r, c)
	}
}

func (g *Game) renderPlayer(dst *core.Screen, it sim.DrawItem) {
	color := core.ColorRed
	if it.Shape == sim.ShapeFire {
		color = core.ColorBrightWhite
	}
	cell := it.Rect.Cells(g.cfg.Render.CellW, g.cfg.Render.CellH)
	cell.Y += hudRows

	if it.State == "die" {
		dst.DrawRectColored(cell, DeadChar, color)
		return
	}
	dst.DrawRectColored(cell, PlayerChar, color)
	head := PlayerHeadR
	if !it.Right {
		head = PlayerHeadL
	}
	dst.SetColored(cell.X+cell.W/2, cell.Y, head, color)
}

// renderHUD draws score, coins, level and lives on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("SCORE %06d", g.info.Score))
	dst.DrawTextColored(16, 0, fmt.Sprintf("%c x%02d", CoinChar, g.info.Coins), core.ColorBrightYellow)

	if d, ok := g.CurrentLevel(); ok {
		world := "WORLD " + d.ID
		dst.DrawTextColored((dst.Width()-len(world))/2, 0, world, core.ColorSky)
	}

	dst.DrawTextRight(0, 1, fmt.Sprintf("LIVES %d", g.info.Lives))
}

// renderLoading draws the level intro card.
func (g *Game) renderLoading(dst *core.Screen) {
	d, ok := g.CurrentLevel()
	if !ok {
		return
	}
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, "WORLD "+d.ID)
	if d.Name != "" {
		dst.DrawTextCentered(mid-1, d.Name)
	}
	dst.DrawTextCentered(mid+1, fmt.Sprintf("%c x %d", PlayerHeadR, g.info.Lives))
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.info.Score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.info.Score)
		g.drawCenteredBox(dst, "COURSE CLEAR!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawPanel(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
