package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

const (
	cellW      = 2  // Screen columns per board cell
	panelW     = 14 // Side panel width
	panelGap   = 1
	previewRow = 4 // Height of the next-piece box including borders
)

var (
	blockRunes = [cellW]rune{'█', '█'}
	emptyRunes = [cellW]rune{' ', '·'}
)

// layoutSize returns the minimum screen size for a w x h board.
func layoutSize(w, h int) (int, int) {
	boardW := w*cellW + 2
	boardH := h + 2
	return boardW + panelGap + panelW, boardH + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.err != nil {
		dst.DrawTextCentered(g.screenH/2, "Cannot start game")
		dst.DrawTextCentered(g.screenH/2+1, g.err.Error())
		return
	}

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.last
	totalW, _ := layoutSize(snap.Board.Width, snap.Board.Height)
	originX := (g.screenW - totalW) / 2
	boardRect := core.NewRect(originX, 1, snap.Board.Width*cellW+2, snap.Board.Height+2)

	dst.DrawTextCentered(0, "T E T R I S")
	g.renderBoard(dst, boardRect, snap)
	g.renderPanel(dst, boardRect.Right()+panelGap, boardRect.Y, snap)
	g.renderOverlays(dst, boardRect, snap)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	minW, minH := layoutSize(g.settings.Width, g.settings.Height)
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minW, minH))
}

// renderBoard draws the well, the settled cells and the falling piece.
func (g *Game) renderBoard(dst *core.Screen, r core.Rect, snap Snapshot) {
	dst.DrawBox(r, core.ColorGray)

	innerX, innerY := r.X+1, r.Y+1
	for y := 0; y < snap.Board.Height; y++ {
		for x := 0; x < snap.Board.Width; x++ {
			cell := snap.Board.At(x, y)
			if cell.Filled {
				drawBlock(dst, innerX+x*cellW, innerY+y, cell.Color)
			} else {
				drawEmpty(dst, innerX+x*cellW, innerY+y)
			}
		}
	}

	if snap.GameOver {
		return
	}
	for _, pt := range snap.Current.Cells() {
		if pt.Y < 0 {
			continue
		}
		drawBlock(dst, innerX+pt.X*cellW, innerY+pt.Y, snap.Current.Color)
	}
}

// renderPanel draws the next-piece preview and the counters.
func (g *Game) renderPanel(dst *core.Screen, x, y int, snap Snapshot) {
	dst.DrawText(x, y, "NEXT")
	box := core.NewRect(x, y+1, 4*cellW+2, previewRow)
	dst.DrawBox(box, core.ColorGray)

	next := snap.Next
	offX := box.X + 1 + (4-next.Matrix.Cols())*cellW/2
	offY := box.Y + 1 + (previewRow-2-next.Matrix.Rows())/2
	for row, line := range next.Matrix {
		for col, filled := range line {
			if filled {
				drawBlock(dst, offX+col*cellW, offY+row, next.Color)
			}
		}
	}

	statsY := box.Bottom() + 1
	dst.DrawText(x, statsY, "SCORE")
	dst.DrawTextColored(x, statsY+1, fmt.Sprintf("%d", snap.Score), core.ColorYellow)
	dst.DrawText(x, statsY+3, "LINES")
	dst.DrawText(x, statsY+4, fmt.Sprintf("%d", snap.Lines))
	dst.DrawText(x, statsY+6, "PIECES")
	dst.DrawText(x, statsY+7, fmt.Sprintf("%d", snap.Pieces))
}

// renderOverlays draws pause and game over messages over the board.
func (g *Game) renderOverlays(dst *core.Screen, r core.Rect, snap Snapshot) {
	switch {
	case snap.GameOver:
		lines := []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d", snap.Score),
			"",
			"R restart",
			"Q quit",
		}
		drawCentered(dst, r, lines)
	case g.paused:
		drawCentered(dst, r, []string{"PAUSED", "", "P resume"})
	}
}

// drawCentered writes lines centered inside r, blanking the row behind each.
func drawCentered(dst *core.Screen, r core.Rect, lines []string) {
	top := r.Y + (r.H-len(lines))/2
	for i, line := range lines {
		y := top + i
		dst.FillRect(core.NewRect(r.X+1, y, r.W-2, 1), ' ', core.ColorDefault)
		n := len([]rune(line))
		dst.DrawTextColored(r.X+(r.W-n)/2, y, line, core.ColorWhite)
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	for i, r := range blockRunes {
		dst.SetColored(x+i, y, r, c)
	}
}

func drawEmpty(dst *core.Screen, x, y int) {
	for i, r := range emptyRunes {
		dst.SetColored(x+i, y, r, core.ColorGray)
	}
}
