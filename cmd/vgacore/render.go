package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/playbymail/vgacore/game/mapcore"
	"github.com/playbymail/vgacore/game/render"
	"github.com/playbymail/vgacore/game/render/export"
	"github.com/playbymail/vgacore/gameconfig"
)

type renderCommand struct {
	Output  string `short:"o" long:"output" description:"Output filename" default:"map.png"`
	SVG     bool   `short:"s" long:"svg" description:"Write SVG instead of PNG"`
	Width   int    `short:"W" long:"width" description:"Image width in pixels" default:"800"`
	Height  int    `short:"H" long:"height" description:"Image height in pixels" default:"600"`
	Extent  int    `long:"extent" description:"Half-width of the viewport, in map units" default:"2000"`
	Planets int    `short:"p" long:"planets" description:"Number of demo planets to scatter" default:"40"`
	Ships   int    `short:"f" long:"fleets" description:"Number of demo ships to scatter" default:"20"`
	Owner   int    `long:"owner" description:"Viewer's player id" default:"1"`
	Seed    int64  `long:"seed" description:"Random seed for the demo scene" default:"1"`
	ShowMines bool `short:"m" long:"mines" description:"Show minefields"`
}

func addRenderCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("render",
		"Render a map scene to SVG or PNG",
		"Scatters a demo scene of planets and ships across a flat universe and\n"+
			"renders it through the core renderer to SVG or rasterized PNG.\n\n"+
			"This toolkit's core has no turn-file reader (that is an external, "+
			"out-of-scope format), so the scene rendered here is synthetic.",
		&renderCommand{})
	if err != nil {
		panic(err)
	}
}

func (c *renderCommand) buildUniverse() *mapcore.Universe {
	rng := rand.New(rand.NewSource(c.Seed))
	half := c.Extent
	cfg := mapcore.NewFlatConfiguration(
		mapcore.Point{X: -half, Y: -half},
		mapcore.Point{X: half, Y: half},
	)
	univ := mapcore.NewUniverse(cfg)

	randomPoint := func() mapcore.Point {
		return mapcore.Point{X: rng.Intn(2*half) - half, Y: rng.Intn(2*half) - half}
	}

	for i := 1; i <= c.Planets; i++ {
		owner := mapcore.None[int]()
		if rng.Intn(3) == 0 {
			owner = mapcore.Some(1 + rng.Intn(4))
		}
		univ.Planets.Set(&mapcore.Planet{
			Id:          i,
			Owner:       owner,
			Position:    randomPoint(),
			Playability: mapcore.NotPlayable,
			Visible:     true,
		})
	}

	for i := 1; i <= c.Ships; i++ {
		univ.Ships.Set(&mapcore.Ship{
			Id:          1000 + i,
			Owner:       mapcore.Some(1 + rng.Intn(4)),
			Position:    mapcore.Some(randomPoint()),
			Playability: mapcore.NotPlayable,
			Visible:     true,
		})
	}

	return univ
}

func (c *renderCommand) Execute(args []string) error {
	configureLogging()

	univ := c.buildUniverse()

	opts := gameconfig.DefaultMapConfiguration()
	opts.ShowMines = c.ShowMines
	vpOpts := opts.Options()

	viewport := &render.Viewport{
		Universe:    univ,
		Options:     vpOpts,
		Zoom:        opts.Zoom,
		ViewerOwner: c.Owner,
		Center:      mapcore.Point{},
		HalfExtent:  mapcore.Point{X: c.Extent, Y: c.Extent},
	}

	listener := export.NewSVGListener(c.Width, c.Height,
		mapcore.Point{X: -c.Extent, Y: -c.Extent},
		mapcore.Point{X: 2 * c.Extent, Y: 2 * c.Extent})

	allied := func(a, b int) bool { return a == b }
	render.Render(viewport, listener, allied)

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if c.SVG {
		return listener.WriteSVG(f)
	}
	return listener.WritePNG(f)
}
