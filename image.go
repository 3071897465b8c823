package xwfill

import (
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	cellSize   = 100
	cellBorder = 2
)

// WritePNG renders the grid as a PNG: white squares for fillable cells with
// their letters drawn centered, black for blocked cells and borders.
func (g Grid) WritePNG(w io.Writer) error {
	img := image.NewRGBA(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for y := range g.Height() {
		for x := range g.Width() {
			r := g.Get(x, y)
			if r == BlockedCell {
				continue
			}

			cell := image.Rect(
				x*cellSize+cellBorder, y*cellSize+cellBorder,
				(x+1)*cellSize-cellBorder, (y+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.White, image.Point{}, draw.Src)

			if r == BlankCell {
				continue
			}

			d := font.Drawer{
				Dst:  img,
				Src:  image.Black,
				Face: face,
			}
			d.Dot = fixed.P(x*cellSize+cellSize/2, y*cellSize+cellSize/2)
			d.Dot.X -= d.MeasureString(string(r)) / 2
			d.Dot.Y += face.Metrics().Ascent / 2

			d.DrawString(string(r))
		}
	}

	return png.Encode(w, img)
}
