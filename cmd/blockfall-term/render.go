package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

const (
	// each board square is two columns wide so it looks square
	cellWidth = 2
	boardLeft = 2
	boardTop  = 1
	sideLeft  = boardLeft + tetris.Width*cellWidth + 4
)

var (
	styleFrame = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleText  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAlert = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func kindStyle(k tetris.Kind) tcell.Style {
	c := k.Color()
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, s string) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawSquare(screen tcell.Screen, x, y int, k tetris.Kind) {
	style := kindStyle(k)
	for i := range cellWidth {
		screen.SetContent(x+i, y, ' ', nil, style)
	}
}

// drawPreview draws kind in its spawn orientation with its top-left at (x, y).
func drawPreview(screen tcell.Screen, x, y int, k tetris.Kind) {
	if !k.Valid() {
		return
	}
	for _, pt := range tetris.Shape(k, 0) {
		drawSquare(screen, x+pt.X*cellWidth, y+pt.Y, k)
	}
}

// draw renders one snapshot: the framed board with the active piece, and a
// sidebar with the counters, the hold slot and the upcoming queue.
func draw(screen tcell.Screen, snap *tetris.Snapshot) {
	screen.Clear()

	right := boardLeft + tetris.Width*cellWidth
	bottom := boardTop + tetris.Height
	for y := boardTop; y < bottom; y++ {
		screen.SetContent(boardLeft-1, y, '│', nil, styleFrame)
		screen.SetContent(right, y, '│', nil, styleFrame)
	}
	for x := boardLeft - 1; x <= right; x++ {
		screen.SetContent(x, bottom, '─', nil, styleFrame)
	}
	screen.SetContent(boardLeft-1, bottom, '└', nil, styleFrame)
	screen.SetContent(right, bottom, '┘', nil, styleFrame)

	for y := range tetris.Height {
		for x := range tetris.Width {
			cell := snap.CellAt(x, y)
			if cell.Empty() {
				continue
			}
			drawSquare(screen, boardLeft+x*cellWidth, boardTop+y, cell.Kind())
		}
	}

	row := boardTop
	drawText(screen, sideLeft, row, styleText, fmt.Sprintf("Score  %d", snap.Score))
	drawText(screen, sideLeft, row+1, styleText, fmt.Sprintf("Level  %d", snap.Level))
	drawText(screen, sideLeft, row+2, styleText, fmt.Sprintf("Lines  %d", snap.Lines))

	row += 4
	holdLabel := "Hold"
	if !snap.CanHold {
		holdLabel = "Hold (used)"
	}
	drawText(screen, sideLeft, row, styleText, holdLabel)
	drawPreview(screen, sideLeft, row+1, snap.Hold)

	row += 4
	drawText(screen, sideLeft, row, styleText, "Next")
	for i, k := range snap.Next[:min(3, len(snap.Next))] {
		drawPreview(screen, sideLeft, row+1+i*3, k)
	}

	if snap.GameOver {
		drawText(screen, sideLeft, bottom-2, styleAlert, "GAME OVER")
		drawText(screen, sideLeft, bottom-1, styleText, "r to restart, q to quit")
	}
}
