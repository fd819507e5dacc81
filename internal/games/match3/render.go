package match3

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/tui-match3/internal/core"
	engine "github.com/vovakirdan/tui-match3/internal/match3"
)

const (
	cellWidth = 3
	hudHeight = 3
	controls  = "arrows move  space select  h hint  t auto  p pause"
)

// layoutSize returns the smallest screen that fits the board and HUD.
func (g *Game) layoutSize() (int, int) {
	boardW := g.round.Size*cellWidth + 2
	boardH := g.round.Size + 2
	return max(boardW, len(controls)), hudHeight + boardH + 2
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.board == nil {
		dst.DrawTextCentered(g.screenH/2, g.message)
		return
	}
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.round.Size*cellWidth + 2
	boardH := g.round.Size + 2
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	dst.DrawTextColor((g.screenW-len(controls))/2, boardY+boardH+1, controls, core.ColorGray)

	if g.gameOver || g.paused {
		g.renderOverlay(dst, boardY+boardH/2-1)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	dst.DrawTextCentered(0, g.Title())

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	var info string
	if g.mode == ModeTimeAttack {
		info = fmt.Sprintf("Time: %.1fs", g.TimeLeft().Seconds())
	} else {
		info = fmt.Sprintf("Moves: %d", g.moves)
	}
	if g.auto {
		info = "AUTO  " + info
	}
	infoX := max(boardX+boardW-len(info), boardX)
	color := core.ColorDefault
	if g.mode == ModeTimeAttack && g.TimeLeft().Seconds() < 10 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColor(infoX, 1, info, color)

	if g.message != "" {
		dst.DrawTextCentered(2, g.message)
	}
}

func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.round.Size
	dst.DrawBox(core.NewRect(boardX, boardY, size*cellWidth+2, size+2), core.ColorGray)

	cells := g.board.Cells()
	var frame *engine.Frame
	if f := g.playback.current(); f != nil {
		frame = f
		cells = f.Cells
	}

	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			p := engine.P(col, row)
			x := boardX + 1 + col*cellWidth
			y := boardY + 1 + row
			g.renderCell(dst, x, y, p, cells[row][col], frame)
		}
	}
}

// renderCell draws one tile with the markers that apply to it: cleared,
// cursor, selection or hint.
func (g *Game) renderCell(dst *core.Screen, x, y int, p engine.Point, t engine.Tile, frame *engine.Frame) {
	left, right := ' ', ' '
	markColor := core.ColorDefault
	letter := t.Rune()
	letterColor := core.TileColor(int(t))

	switch {
	case frame != nil && frame.Phase == engine.PhaseClear && slices.Contains(frame.Points, p):
		letter = '*'
		letterColor = core.ColorBrightWhite
	case frame != nil && (frame.Phase == engine.PhaseSwap || frame.Phase == engine.PhaseSwapBack) && slices.Contains(frame.Points, p):
		left, right = '<', '>'
		markColor = core.ColorWhite
	case frame == nil && g.selected && g.selection == p:
		left, right = '{', '}'
		markColor = core.ColorBrightYellow
	case frame == nil && p == g.cursor && !g.auto:
		left, right = '[', ']'
		markColor = core.ColorBrightWhite
	case frame == nil && g.hint != nil && (g.hint.A == p || g.hint.B == p):
		left, right = '(', ')'
		markColor = core.ColorBrightCyan
	}
	if t == engine.Empty {
		letterColor = core.ColorDefault
	}

	dst.SetColor(x, y, left, markColor)
	dst.SetColor(x+1, y, letter, letterColor)
	dst.SetColor(x+2, y, right, markColor)
}

func (g *Game) renderOverlay(dst *core.Screen, y int) {
	if g.gameOver {
		dst.DrawTextCentered(y, " GAME OVER ")
		dst.DrawTextCentered(y+1, fmt.Sprintf(" Score: %d ", g.score))
		if g.highRank > 0 {
			dst.DrawTextCentered(y+2, fmt.Sprintf(" New high score, rank %d on %s ", g.highRank, g.ScoreKey()))
			y++
		}
		dst.DrawTextCentered(y+2, " R restart  B menu ")
		return
	}
	dst.DrawTextCentered(y, " PAUSED ")
	dst.DrawTextCentered(y+1, " P resume ")
}
