// Package export implements a render.Listener that accumulates drawing
// events into an SVG document, then rasterizes it to PNG. Grounded on the
// SVGBuilder fluent API and the ParseSVG-then-rasterize pipeline.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/playbymail/vgacore/game/mapcore"
	"github.com/playbymail/vgacore/game/render"
)

// Palette maps a Relation to a display color.
type Palette struct {
	Unowned, Own, Allied, Enemy color.RGBA
	Grid, Border                color.RGBA
}

// DefaultPalette mirrors the classic own/allied/enemy scheme.
func DefaultPalette() Palette {
	return Palette{
		Unowned: color.RGBA{128, 128, 128, 255},
		Own:     color.RGBA{0, 200, 0, 255},
		Allied:  color.RGBA{0, 160, 220, 255},
		Enemy:   color.RGBA{220, 40, 40, 255},
		Grid:    color.RGBA{40, 40, 40, 255},
		Border:  color.RGBA{80, 80, 80, 255},
	}
}

func (p Palette) colorFor(rel render.Relation) color.RGBA {
	switch rel {
	case render.RelationOwn:
		return p.Own
	case render.RelationAllied:
		return p.Allied
	case render.RelationEnemy:
		return p.Enemy
	default:
		return p.Unowned
	}
}

// SVGListener builds an SVG document from render events, translating map
// units (which may include negative coordinates) into a fixed pixel canvas.
type SVGListener struct {
	builder *SVGBuilder
	width, height int
	scale         float64
	originX, originY int
}

// NewSVGListener creates a listener that maps the rectangle
// [origin, origin+extent) of world space onto a width x height canvas.
func NewSVGListener(width, height int, origin, extent mapcore.Point) *SVGListener {
	scale := 1.0
	if extent.X > 0 {
		scale = float64(width) / float64(extent.X)
	}
	return &SVGListener{
		builder: NewSVGBuilderForRasterization(width, height),
		width: width, height: height, scale: scale,
		originX: origin.X, originY: origin.Y,
	}
}

func (l *SVGListener) project(p mapcore.Point) (float64, float64) {
	x := float64(p.X-l.originX) * l.scale
	y := float64(l.height) - float64(p.Y-l.originY)*l.scale
	return x, y
}

func (l *SVGListener) DrawGridLine(a, b mapcore.Point)   { l.line(a, b, "rgba(40,40,40,0.5)", 1) }
func (l *SVGListener) DrawBorderLine(a, b mapcore.Point) { l.line(a, b, "rgba(80,80,80,0.8)", 1) }
func (l *SVGListener) DrawBorderCircle(center mapcore.Point, radius int) {
	cx, cy := l.project(center)
	l.builder.CircleOutline(cx, cy, float64(radius)*l.scale, "rgba(80,80,80,0.8)", 1)
}

func (l *SVGListener) DrawMinefield(center mapcore.Point, id int, radius int, isWeb bool, relation render.Relation, filled bool) {
	cx, cy := l.project(center)
	col := DefaultPalette().colorFor(relation)
	l.builder.Minefield(cx, cy, float64(radius)*l.scale, col)
}

func (l *SVGListener) DrawUfo(center mapcore.Point, id int, radius int, color int, speed, heading int, filled bool) {
	cx, cy := l.project(center)
	l.builder.CircleOutline(cx, cy, float64(radius)*l.scale, "purple", 1.5)
}

func (l *SVGListener) DrawUfoConnection(a, b mapcore.Point, color int) {
	l.line(a, b, "rgba(128,0,128,0.4)", 1)
}

func (l *SVGListener) DrawIonStorm(center mapcore.Point, radius, voltage, speed, heading int, filled bool) {
	cx, cy := l.project(center)
	l.builder.CircleOutline(cx, cy, float64(radius)*l.scale, "orange", 1)
}

func (l *SVGListener) DrawUserLine(a, b mapcore.Point, color int) { l.line(a, b, "white", 1) }
func (l *SVGListener) DrawUserRectangle(a, b mapcore.Point, color int) {
	x1, y1 := l.project(a)
	x2, y2 := l.project(b)
	w, h := x2-x1, y2-y1
	if w < 0 {
		w, x1 = -w, x2
	}
	if h < 0 {
		h, y1 = -h, y2
	}
	l.builder.Rect(x1, y1, w, h, "none")
}
func (l *SVGListener) DrawUserCircle(center mapcore.Point, radius int, color int) {
	cx, cy := l.project(center)
	l.builder.CircleOutline(cx, cy, float64(radius)*l.scale, "white", 1)
}
func (l *SVGListener) DrawUserMarker(center mapcore.Point, kind int, color int, comment string) {
	cx, cy := l.project(center)
	l.builder.Diamond(cx, cy, 3, mapcoreColor(color))
}
func (l *SVGListener) DrawExplosion(pos mapcore.Point) {
	cx, cy := l.project(pos)
	l.builder.CircleRGBA(cx, cy, 4, color.RGBA{255, 128, 0, 255})
}

func (l *SVGListener) DrawSelection(pos mapcore.Point) {
	cx, cy := l.project(pos)
	l.builder.CircleOutline(cx, cy, 8, "yellow", 1)
}
func (l *SVGListener) DrawMessageMarker(pos mapcore.Point) {
	cx, cy := l.project(pos)
	l.builder.CircleRGBA(cx, cy, 2, color.RGBA{255, 255, 0, 255})
}

func (l *SVGListener) DrawShip(pos mapcore.Point, id int, relation render.Relation, flags render.ShipFlags, label string) {
	cx, cy := l.project(pos)
	col := DefaultPalette().colorFor(relation)
	if flags&render.ShipFleetLeader != 0 {
		l.builder.Diamond(cx, cy, 4, col)
	} else {
		l.builder.CircleRGBA(cx, cy, 2, col)
	}
	if label != "" {
		l.builder.Text(cx+4, cy-4, label, col, 8)
	}
}

func (l *SVGListener) DrawShipTrail(a, b mapcore.Point, relation render.Relation, flags render.TrailFlags, age int) {
	col := DefaultPalette().colorFor(relation)
	x1, y1 := l.project(a)
	x2, y2 := l.project(b)
	fade := fmt.Sprintf("rgba(%d,%d,%d,%.2f)", col.R, col.G, col.B, 0.5-float64(age)*0.03)
	l.builder.Line(x1, y1, x2, y2, fade, 1)
}

func (l *SVGListener) DrawShipWaypoint(a, b mapcore.Point, relation render.Relation) {
	l.line(a, b, "rgba(0,200,0,0.5)", 1)
}
func (l *SVGListener) DrawShipVector(a, b mapcore.Point, relation render.Relation) {
	l.line(a, b, "rgba(0,200,0,0.3)", 1)
}

func (l *SVGListener) DrawPlanet(pos mapcore.Point, id int, flags render.PlanetFlags, label string) {
	cx, cy := l.project(pos)
	var col color.RGBA
	switch {
	case flags&render.PlanetOwn != 0:
		col = DefaultPalette().Own
	case flags&render.PlanetAllied != 0:
		col = DefaultPalette().Allied
	case flags&render.PlanetEnemy != 0:
		col = DefaultPalette().Enemy
	default:
		col = DefaultPalette().Unowned
	}
	l.builder.Planet(cx, cy, 4, col, flags&render.PlanetHasBase != 0, label, label != "")
}

func (l *SVGListener) DrawWarpWellEdge(pos mapcore.Point, direction render.Direction) {
	x, y := l.project(pos)
	l.builder.Rect(x, y, 1, 1, "rgba(60,60,200,0.2)")
}

func (l *SVGListener) line(a, b mapcore.Point, stroke string, width float64) {
	x1, y1 := l.project(a)
	x2, y2 := l.project(b)
	l.builder.Line(x1, y1, x2, y2, stroke, width)
}

func mapcoreColor(c int) color.RGBA {
	palette := []color.RGBA{
		{255, 255, 255, 255}, {255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255},
		{255, 255, 0, 255}, {255, 0, 255, 255}, {0, 255, 255, 255},
	}
	if c < 0 || c >= len(palette) {
		return palette[0]
	}
	return palette[c]
}

// String returns the accumulated SVG document.
func (l *SVGListener) String() string { return l.builder.String() }

// WriteSVG writes the accumulated SVG document to w.
func (l *SVGListener) WriteSVG(w io.Writer) error {
	_, err := io.WriteString(w, l.builder.String())
	return err
}

// WritePNG rasterizes the accumulated SVG through tdewolff/canvas and
// writes the result as PNG to w.
func (l *SVGListener) WritePNG(w io.Writer) error {
	img, err := l.toImage()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

func (l *SVGListener) toImage() (*image.RGBA, error) {
	svgStr := l.builder.String()
	c, err := canvas.ParseSVG(strings.NewReader(svgStr))
	if err != nil {
		return nil, fmt.Errorf("parse rendered SVG: %w", err)
	}
	canvasW := c.W
	if canvasW <= 0 {
		canvasW = float64(l.width)
	}
	dpmm := float64(l.width) / canvasW
	img := rasterizer.Draw(c, canvas.DPMM(dpmm), canvas.DefaultColorSpace)

	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
			for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
				rgba.Set(x, y, img.At(x, y))
			}
		}
	}
	return rgba, nil
}
