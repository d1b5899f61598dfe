// Package render draws an elevation surface and the routes found on it.
//
// Cells are filled in grey, darker for lower ground. Each route is drawn as
// a polyline through cell centers, with its start marked by a green dot and
// its goal by a blue one.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/hillclimb/climb"
	"github.com/katalvlaran/hillclimb/heightmap"
)

// DefaultScale is the cell size in pixels used when Options.Scale <= 0.
const DefaultScale = 8

// Options tunes the rendering.
type Options struct {
	// Scale is the side of one cell in pixels.
	Scale int
}

var (
	// routeColors cycles across routes.
	routeColors = []color.Color{
		color.RGBA{R: 220, G: 40, B: 40, A: 255},
		color.RGBA{R: 240, G: 160, B: 20, A: 255},
		color.RGBA{R: 150, G: 60, B: 200, A: 255},
	}
	startColor = color.RGBA{G: 200, A: 255}
	goalColor  = color.RGBA{B: 255, A: 255}
)

// Shade returns the grey used for a cell holding sym: 'a' (and 'S') is the
// darkest, 'z' (and 'E') the lightest.
func Shade(sym byte) color.Gray {
	e := int(heightmap.Effective(sym) - heightmap.Lowest)
	return color.Gray{Y: uint8(40 + e*8)}
}

// Image renders g and routes into a new image.
func Image(g *heightmap.Grid, routes []climb.Route, opts Options) image.Image {
	return draw(g, routes, opts).Image()
}

// PNG renders g and routes and writes them to w as PNG.
func PNG(w io.Writer, g *heightmap.Grid, routes []climb.Route, opts Options) error {
	if err := draw(g, routes, opts).EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePNG renders g and routes to the PNG file at path.
func SavePNG(path string, g *heightmap.Grid, routes []climb.Route, opts Options) error {
	if err := draw(g, routes, opts).SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	return nil
}

func draw(g *heightmap.Grid, routes []climb.Route, opts Options) *gg.Context {
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}
	s := float64(scale)
	center := func(c heightmap.Coord) (float64, float64) {
		return float64(c.X)*s + s/2, float64(c.Y)*s + s/2
	}

	dc := gg.NewContext(g.Width()*scale, g.Height()*scale)
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			sym, _ := g.Get(heightmap.Coord{X: x, Y: y})
			dc.SetColor(Shade(sym))
			dc.DrawRectangle(float64(x)*s, float64(y)*s, s, s)
			dc.Fill()
		}
	}

	for i, r := range routes {
		if len(r.Path) > 1 {
			dc.SetColor(routeColors[i%len(routeColors)])
			dc.SetLineWidth(s / 3)
			x, y := center(r.Path[0])
			dc.MoveTo(x, y)
			for _, c := range r.Path[1:] {
				x, y = center(c)
				dc.LineTo(x, y)
			}
			dc.Stroke()
		}

		x, y := center(r.Start)
		dc.SetColor(startColor)
		dc.DrawCircle(x, y, s/3)
		dc.Fill()

		x, y = center(r.Goal)
		dc.SetColor(goalColor)
		dc.DrawCircle(x, y, s/3)
		dc.Fill()
	}

	return dc
}
