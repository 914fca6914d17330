package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	opensimplex "github.com/ojrac/opensimplex-go"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/samdwyer/catanpg/internal/board"
	"github.com/samdwyer/catanpg/internal/gamedata"
	"github.com/samdwyer/catanpg/internal/hexgrid"
	"github.com/samdwyer/catanpg/internal/tile"
)

// Pixel geometry of pointy-top hexes.
const (
	HexEdge     = 40
	CellSpacing = 72
	RowSpacing  = 62
	CellPixels  = 100

	outlineWidth = 2
	tokenRadius  = 15
	lakeRadius   = 10
	pierWidth    = 5
	shadeAmount  = 0.18
)

var (
	background = color.RGBA{R: 0x10, G: 0x18, B: 0x30, A: 0xFF}
	outline    = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	ink        = color.RGBA{A: 0xFF}
	hotInk     = color.RGBA{R: 0xC0, A: 0xFF}
)

// ImageSize returns the side of the square image drawn for a grid of radius r.
func ImageSize(r int) int {
	return CellPixels * (2*r + 1)
}

// PixelCenter returns the center of the hex at c in an image of a grid of
// radius r.
func PixelCenter(c hexgrid.Coord, r int) (x, y float64) {
	half := float64(ImageSize(r)) / 2
	return half + CellSpacing*float64(c.X) + CellSpacing/2*float64(c.Y),
		half + RowSpacing*float64(c.Y)
}

// Image draws b. Terrain colors are shaded by noise seeded with the board
// seed, so the same board always gives the same image.
func Image(b *board.Board, p *gamedata.Palette) *image.RGBA {
	r := b.Grid.Radius()
	size := ImageSize(r)
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	pen := &painter{
		img:   img,
		ras:   vector.NewRasterizer(size, size),
		noise: opensimplex.NewNormalized(b.Seed),
	}

	for _, c := range b.Grid.Coords() {
		t := b.Tile(c)
		x, y := PixelCenter(c, r)

		fill := colorful.Color{R: 1, G: 1, B: 1}
		if def := p.Tile(t.Kind); def != nil {
			fill = def.Colorful()
		}
		pen.polygon(hexagon(x, y, HexEdge), outline)
		pen.polygon(hexagon(x, y, HexEdge-outlineWidth), pen.shade(fill, x, y))

		switch {
		case t.IsHarbor():
			pen.harbor(t, x, y, p.PortColor())
		case t.Kind == tile.Lake:
			pen.lake(t.Number, x, y, p.NumberColor())
		case t.HasNumber():
			pen.token(t.Number.String(), x, y, tokenRadius, p.NumberColor(), Hot(t.Number))
		}
	}
	return img
}

// PNG encodes the image of b to w.
func PNG(w io.Writer, b *board.Board, p *gamedata.Palette) error {
	return png.Encode(w, Image(b, p))
}

type painter struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	noise opensimplex.Noise
}

type point struct{ x, y float64 }

func (pn *painter) shade(c colorful.Color, x, y float64) color.RGBA {
	n := pn.noise.Eval2(x/CellPixels, y/CellPixels)
	return gamedata.ToRGBA(c.BlendRgb(colorful.Color{}, shadeAmount*n))
}

func (pn *painter) polygon(pts []point, col color.Color) {
	b := pn.img.Bounds()
	pn.ras.Reset(b.Dx(), b.Dy())
	pn.ras.DrawOp = draw.Over
	pn.ras.MoveTo(float32(pts[0].x), float32(pts[0].y))
	for _, pt := range pts[1:] {
		pn.ras.LineTo(float32(pt.x), float32(pt.y))
	}
	pn.ras.ClosePath()
	pn.ras.Draw(pn.img, b, image.NewUniform(col), image.Point{})
}

func (pn *painter) circle(x, y, radius float64, col color.Color) {
	const segments = 32
	pts := make([]point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = point{x + radius*math.Cos(a), y + radius*math.Sin(a)}
	}
	pn.polygon(pts, col)
}

// line draws a segment of the given width as a filled quad.
func (pn *painter) line(from, to point, width float64, col color.Color) {
	dx, dy := to.x-from.x, to.y-from.y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	pn.polygon([]point{
		{from.x + nx, from.y + ny},
		{to.x + nx, to.y + ny},
		{to.x - nx, to.y - ny},
		{from.x - nx, from.y - ny},
	}, col)
}

func (pn *painter) text(s string, x, y float64, col color.Color) {
	d := &font.Drawer{
		Dst:  pn.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
	}
	width := d.MeasureString(s)
	metrics := basicfont.Face7x13.Metrics()
	d.Dot = fixed.Point26_6{
		X: fixed.I(int(math.Round(x))) - width/2,
		Y: fixed.I(int(math.Round(y))) + (metrics.Ascent-metrics.Descent)/2,
	}
	d.DrawString(s)
}

func (pn *painter) token(label string, x, y, radius float64, fill colorful.Color, hot bool) {
	pn.circle(x, y, radius, outline)
	pn.circle(x, y, radius-1, gamedata.ToRGBA(fill))
	col := ink
	if hot {
		col = hotInk
	}
	pn.text(label, x, y, col)
}

// harbor draws two piers toward the corners of the edge the harbor faces and
// a token with the traded good.
func (pn *painter) harbor(t tile.Tile, x, y float64, port colorful.Color) {
	col := gamedata.ToRGBA(port)
	center := point{x, y}
	for _, offset := range []float64{-30, 30} {
		a := (t.Orientation.Angle() + offset) * math.Pi / 180
		end := point{x + HexEdge*math.Cos(a), y - HexEdge*math.Sin(a)}
		pn.line(center, end, pierWidth, col)
	}
	pn.token(t.Good.Label(), x, y, tokenRadius, port, false)
}

// lake draws one small token per lake number, in a square around the center.
func (pn *painter) lake(n tile.Number, x, y float64, fill colorful.Color) {
	values := n.Values()
	offsets := []point{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}
	for i, v := range values {
		if i >= len(offsets) {
			break
		}
		cx := x + offsets[i].x*(lakeRadius+2)
		cy := y + offsets[i].y*(lakeRadius+2)
		pn.token(tile.Single(v).String(), cx, cy, lakeRadius, fill, Pips(v) == 5)
	}
}

// hexagon returns the corners of a pointy-top hex.
func hexagon(x, y, edge float64) []point {
	pts := make([]point, 6)
	for i := range pts {
		a := (30 + 60*float64(i)) * math.Pi / 180
		pts[i] = point{x + edge*math.Cos(a), y - edge*math.Sin(a)}
	}
	return pts
}
