package polytope4d

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
)

var (
	backgroundColor = color.RGBA{0x0b, 0x0b, 0x14, 0xff}
	sectionFill     = color.RGBA{0x06, 0xb6, 0xd4, 0x40}
	sectionStroke   = color.RGBA{0x22, 0xd3, 0xee, 0xe6}
	sectionDot      = color.RGBA{0x67, 0xe8, 0xf9, 0xff}
	cellStroke      = color.RGBA{0x8b, 0x5c, 0xf6, 0xa0}
	cellFill        = color.RGBA{0x7c, 0x3a, 0xed, 0x18}
	netStroke       = color.RGBA{0xf5, 0x9e, 0x0b, 0xd0}
	netFill         = color.RGBA{0xf5, 0x9e, 0x0b, 0x14}
)

// View maps projected 3D coordinates to frame pixels: x right, y up, z
// dropped. Scale is the fraction of the frame width per unit length.
type View struct {
	Width, Height int
	Scale         Real
	LineWidth     Real
}

func (v View) toScreen(p Vector3) (x, y Real) {
	s := v.Scale * Real(v.Width)
	return Real(v.Width)/2 + p[0]*s, Real(v.Height)/2 - p[1]*s
}

// FrameContent is what one animation frame shows.
type FrameContent struct {
	Edges []Segment3
	// Section holds the projected slice points and SectionTris their hull.
	Section     []Vector3
	SectionTris [][3]int
	Cells       []CellMesh
	Net         []NetCube
}

// NewFrame allocates a frame filled with the background colour.
func NewFrame(w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("invalid frame size %dx%d", w, h))
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: backgroundColor}, image.Point{}, draw.Src)
	return img
}

func depthRGBA(wt Real) color.RGBA {
	r, g, b := DepthColor(wt)
	to8 := func(x Real) uint8 { return uint8(math.Round(255 * math.Min(math.Max(x, 0), 1))) }
	return color.RGBA{to8(r), to8(g), to8(b), 0xc0}
}

// RenderFrame draws c into a new frame.
func RenderFrame(v View, c *FrameContent) *image.RGBA {
	img := NewFrame(v.Width, v.Height)
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetLineWidth(v.LineWidth)

	for _, m := range c.Cells {
		drawTriangles(gc, v, m.Positions, m.Triangles, cellFill)
		gc.SetStrokeColor(cellStroke)
		for _, e := range m.Edges {
			strokeLine(gc, v, m.Positions[e[0]], m.Positions[e[1]])
		}
	}

	for _, n := range c.Net {
		for _, f := range CubeFaces {
			drawTriangles(gc, v, n.Positions, [][3]int{{f[0], f[1], f[2]}, {f[0], f[2], f[3]}}, netFill)
		}
		gc.SetStrokeColor(netStroke)
		for _, e := range CubeEdges {
			strokeLine(gc, v, n.Positions[e[0]], n.Positions[e[1]])
		}
	}

	for _, s := range c.Edges {
		gc.SetStrokeColor(depthRGBA((s.WA + s.WB) / 2))
		strokeLine(gc, v, s.A, s.B)
	}

	if len(c.Section) > 0 {
		drawTriangles(gc, v, c.Section, c.SectionTris, sectionFill)
		gc.SetStrokeColor(sectionStroke)
		for _, t := range c.SectionTris {
			for k := 0; k < 3; k++ {
				strokeLine(gc, v, c.Section[t[k]], c.Section[t[(k+1)%3]])
			}
		}
		gc.SetFillColor(sectionDot)
		for _, p := range c.Section {
			x, y := v.toScreen(p)
			gc.BeginPath()
			draw2dkit.Circle(gc, x, y, 2.5)
			gc.Fill()
		}
	}
	return img
}

func strokeLine(gc *draw2dimg.GraphicContext, v View, a, b Vector3) {
	ax, ay := v.toScreen(a)
	bx, by := v.toScreen(b)
	gc.BeginPath()
	gc.MoveTo(ax, ay)
	gc.LineTo(bx, by)
	gc.Stroke()
}

func drawTriangles(gc *draw2dimg.GraphicContext, v View, pts []Vector3, tris [][3]int, fill color.Color) {
	if len(tris) == 0 {
		return
	}
	gc.SetFillColor(fill)
	for _, t := range tris {
		x0, y0 := v.toScreen(pts[t[0]])
		x1, y1 := v.toScreen(pts[t[1]])
		x2, y2 := v.toScreen(pts[t[2]])
		gc.BeginPath()
		gc.MoveTo(x0, y0)
		gc.LineTo(x1, y1)
		gc.LineTo(x2, y2)
		gc.Close()
		gc.Fill()
	}
}
