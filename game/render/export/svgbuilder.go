package export

import (
	"fmt"
	"image/color"
	"strings"
)

// SVGBuilder provides a fluent interface for building SVG documents, sized
// for the handful of shapes a rendered star map actually needs: circles,
// rectangles, lines, polygons, and text labels.
type SVGBuilder struct {
	width, height    int
	elements         []string
	forRasterization bool
}

// NewSVGBuilderForRasterization creates a builder that skips SVG features
// tdewolff/canvas's rasterizer doesn't support (markers, patterns).
func NewSVGBuilderForRasterization(width, height int) *SVGBuilder {
	return &SVGBuilder{
		width: width, height: height,
		elements:         make([]string, 0, 512),
		forRasterization: true,
	}
}

// Circle adds a circle element.
func (b *SVGBuilder) Circle(cx, cy, r float64, fill, stroke string, strokeWidth float64) *SVGBuilder {
	var s strings.Builder
	s.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"`, cx, cy, r))
	if fill != "" {
		s.WriteString(fmt.Sprintf(` fill="%s"`, fill))
	}
	if stroke != "" {
		s.WriteString(fmt.Sprintf(` stroke="%s"`, stroke))
	}
	if strokeWidth > 0 {
		s.WriteString(fmt.Sprintf(` stroke-width="%.1f"`, strokeWidth))
	}
	s.WriteString("/>")
	b.elements = append(b.elements, s.String())
	return b
}

// CircleRGBA adds a filled circle with RGBA color.
func (b *SVGBuilder) CircleRGBA(cx, cy, r float64, col color.RGBA) *SVGBuilder {
	return b.Circle(cx, cy, r, fmt.Sprintf("rgb(%d,%d,%d)", col.R, col.G, col.B), "", 0)
}

// CircleOutline adds an unfilled circle outline.
func (b *SVGBuilder) CircleOutline(cx, cy, r float64, stroke string, strokeWidth float64) *SVGBuilder {
	return b.Circle(cx, cy, r, "none", stroke, strokeWidth)
}

// Minefield adds a minefield with semi-transparent fill, using integer
// alpha so the rasterizer's color parser accepts it.
func (b *SVGBuilder) Minefield(cx, cy, r float64, col color.RGBA) *SVGBuilder {
	const alphaFill = 38
	const alphaStroke = 102
	b.elements = append(b.elements, fmt.Sprintf(
		`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="rgba(%d,%d,%d,%d)" stroke="rgba(%d,%d,%d,%d)" stroke-width="1"/>`,
		cx, cy, r, col.R, col.G, col.B, alphaFill, col.R, col.G, col.B, alphaStroke))
	return b
}

// Rect adds a rectangle element.
func (b *SVGBuilder) Rect(x, y, width, height float64, fill string) *SVGBuilder {
	if fill == "" {
		fill = "none"
	}
	b.elements = append(b.elements, fmt.Sprintf(
		`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`,
		x, y, width, height, fill))
	return b
}

// Text adds a text label.
func (b *SVGBuilder) Text(x, y float64, text string, col color.RGBA, fontSize int) *SVGBuilder {
	b.elements = append(b.elements, fmt.Sprintf(
		`<text x="%.1f" y="%.1f" fill="rgb(%d,%d,%d)" font-size="%d" font-family="monospace">%s</text>`,
		x, y, col.R, col.G, col.B, fontSize, text))
	return b
}

// Polygon adds a polygon element.
func (b *SVGBuilder) Polygon(points [][2]float64, fill, stroke string, strokeWidth float64) *SVGBuilder {
	var pointsStr strings.Builder
	for i, p := range points {
		if i > 0 {
			pointsStr.WriteString(" ")
		}
		pointsStr.WriteString(fmt.Sprintf("%.1f,%.1f", p[0], p[1]))
	}
	var s strings.Builder
	s.WriteString(fmt.Sprintf(`<polygon points="%s"`, pointsStr.String()))
	if fill != "" {
		s.WriteString(fmt.Sprintf(` fill="%s"`, fill))
	}
	if stroke != "" {
		s.WriteString(fmt.Sprintf(` stroke="%s"`, stroke))
	}
	if strokeWidth > 0 {
		s.WriteString(fmt.Sprintf(` stroke-width="%.1f"`, strokeWidth))
	}
	s.WriteString("/>")
	b.elements = append(b.elements, s.String())
	return b
}

// Diamond adds a diamond outline, used for fleet leaders.
func (b *SVGBuilder) Diamond(cx, cy, size float64, col color.RGBA) *SVGBuilder {
	points := [][2]float64{
		{cx, cy - size}, {cx + size, cy}, {cx, cy + size}, {cx - size, cy},
	}
	const alpha = 204
	stroke := fmt.Sprintf("rgba(%d,%d,%d,%d)", col.R, col.G, col.B, alpha)
	return b.Polygon(points, "none", stroke, 1)
}

// Line adds a line element.
func (b *SVGBuilder) Line(x1, y1, x2, y2 float64, stroke string, strokeWidth float64) *SVGBuilder {
	b.elements = append(b.elements, fmt.Sprintf(
		`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`,
		x1, y1, x2, y2, stroke, strokeWidth))
	return b
}

// Starbase adds a starbase indicator: white ring plus yellow satellite.
func (b *SVGBuilder) Starbase(cx, cy float64) *SVGBuilder {
	b.CircleOutline(cx, cy, 6, "white", 1)
	b.CircleRGBA(cx+5, cy-5, 2, color.RGBA{255, 255, 0, 255})
	return b
}

// Planet adds a planet circle, with an optional starbase ring and label.
func (b *SVGBuilder) Planet(cx, cy, radius float64, col color.RGBA, hasStarbase bool, name string, showName bool) *SVGBuilder {
	if hasStarbase {
		b.Starbase(cx, cy)
	}
	b.CircleRGBA(cx, cy, radius, col)
	if showName && name != "" {
		b.Text(cx+5, cy-5, name, col, 10)
	}
	return b
}

// String generates the final SVG document.
func (b *SVGBuilder) String() string {
	var svg strings.Builder
	svg.Grow(200 + len(b.elements)*96)
	svg.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="%d" height="%d" fill="black"/>
`, b.width, b.height, b.width, b.height, b.width, b.height))
	for _, elem := range b.elements {
		svg.WriteString(elem)
		svg.WriteString("\n")
	}
	svg.WriteString("</svg>\n")
	return svg.String()
}
