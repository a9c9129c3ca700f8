package ui

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// bitmapfont glyphs are 16px tall at scale 1
const glyphHeight = 16.0

var face = text.NewGoXFace(bitmapfont.Face)

// drawPanel draws a filled rectangle with a 2px border
func drawPanel(screen *ebiten.Image, x, y, width, height float64, bgColor, borderColor color.Color) {
	const borderWidth = 2
	w, h := int(width), int(height)
	if w <= 2*borderWidth || h <= 2*borderWidth {
		return
	}

	border := ebiten.NewImage(w, h)
	border.Fill(borderColor)
	inner := ebiten.NewImage(w-2*borderWidth, h-2*borderWidth)
	inner.Fill(bgColor)

	innerOp := &ebiten.DrawImageOptions{}
	innerOp.GeoM.Translate(borderWidth, borderWidth)
	border.DrawImage(inner, innerOp)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(border, op)
}

// drawTextAt draws str with its top-left corner at x, y
func drawTextAt(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	scale := size / glyphHeight

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextCentered draws str centered horizontally on centerX
func drawTextCentered(screen *ebiten.Image, str string, centerX, y, size float64, clr color.Color) {
	width := text.Advance(str, face) * (size / glyphHeight)
	drawTextAt(screen, str, centerX-width/2, y, size, clr)
}
