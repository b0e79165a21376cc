package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/tetris"
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	wellColor       = color.RGBA{30, 30, 40, 255}
	gridColor       = color.RGBA{45, 45, 58, 255}
	flashColor      = color.RGBA{255, 255, 255, 90}
	overlayColor    = color.RGBA{0, 0, 0, 160}
)

// layout positions the well and sidebar for a given cell size.
type layout struct {
	cell    float32
	originX float32
	originY float32
}

func newLayout(cell int) layout {
	c := float32(cell)
	return layout{cell: c, originX: c, originY: c}
}

func (l layout) width() int {
	return int(l.cell * (tetris.Width + 8))
}

func (l layout) height() int {
	return int(l.cell * (tetris.Height + 2))
}

func (l layout) sidebarX() int {
	return int(l.originX + l.cell*(tetris.Width+1))
}

func kindColor(k tetris.Kind) color.RGBA {
	c := k.Color()
	return color.RGBA{c.R, c.G, c.B, 255}
}

func (l layout) square(screen *ebiten.Image, x, y float32, clr color.Color) {
	vector.DrawFilledRect(screen, x+1, y+1, l.cell-2, l.cell-2, clr, false)
}

func (l layout) drawPreview(screen *ebiten.Image, x, y float32, k tetris.Kind) {
	if !k.Valid() {
		return
	}
	small := l.cell * 0.6
	for _, pt := range tetris.Shape(k, 0) {
		vector.DrawFilledRect(screen, x+float32(pt.X)*small, y+float32(pt.Y)*small, small-1, small-1, kindColor(k), false)
	}
}

func (l layout) draw(screen *ebiten.Image, snap *tetris.Snapshot, flash bool) {
	screen.Fill(backgroundColor)

	w := l.cell * tetris.Width
	h := l.cell * tetris.Height
	vector.DrawFilledRect(screen, l.originX, l.originY, w, h, wellColor, false)

	for y := range tetris.Height {
		for x := range tetris.Width {
			px := l.originX + float32(x)*l.cell
			py := l.originY + float32(y)*l.cell
			cell := snap.CellAt(x, y)
			if cell.Empty() {
				vector.StrokeRect(screen, px, py, l.cell, l.cell, 1, gridColor, false)
				continue
			}
			l.square(screen, px, py, kindColor(cell.Kind()))
		}
	}
	if flash {
		vector.DrawFilledRect(screen, l.originX, l.originY, w, h, flashColor, false)
	}

	sx := l.sidebarX()
	sy := int(l.originY)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", snap.Score), sx, sy)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", snap.Level), sx, sy+16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES %d", snap.Lines), sx, sy+32)

	holdLabel := "HOLD"
	if !snap.CanHold {
		holdLabel = "HOLD (used)"
	}
	ebitenutil.DebugPrintAt(screen, holdLabel, sx, sy+64)
	l.drawPreview(screen, float32(sx), float32(sy+84), snap.Hold)

	ebitenutil.DebugPrintAt(screen, "NEXT", sx, sy+132)
	for i, k := range snap.Next[:min(5, len(snap.Next))] {
		l.drawPreview(screen, float32(sx), float32(sy+152)+float32(i)*l.cell*1.6, k)
	}

	if snap.GameOver {
		vector.DrawFilledRect(screen, l.originX, l.originY, w, h, overlayColor, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", int(l.originX+w/2)-27, int(l.originY+h/2)-8)
		ebitenutil.DebugPrintAt(screen, "R to restart", int(l.originX+w/2)-36, int(l.originY+h/2)+8)
	}
}
