package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jessevdk/go-flags"

	"github.com/playbymail/vgacore/game/sim"
	"github.com/playbymail/vgacore/gameconfig"
)

type simCommand struct {
	Setup   string `short:"s" long:"setup" description:"JSON file describing the fleet setup (required)" required:"true"`
	Host    string `long:"host" description:"Host version: thost, phost2, phost3, phost4, nuhost" default:"thost"`
	Battles int    `short:"n" long:"battles" description:"Number of fights to run" default:"1000"`
	Workers int    `short:"w" long:"workers" description:"Parallel worker count" default:"4"`
	Seed    uint64 `long:"seed" description:"Batch seed" default:"1"`
}

func addSimCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("sim",
		"Run battle simulator fights",
		"Loads a fleet setup from JSON and runs a batch of fights in parallel,\n"+
			"printing a summary of the accumulated result list.",
		&simCommand{})
	if err != nil {
		panic(err)
	}
}

// simSetupFile is the CLI's own JSON shape for a fleet setup; the
// simulator itself only knows about sim.Setup.
type simSetupFile struct {
	Ships  []*sim.Ship  `json:"ships"`
	Planet *sim.Planet  `json:"planet,omitempty"`
}

func (c *simCommand) hostVersion() gameconfig.HostVersion {
	switch c.Host {
	case "phost2":
		return gameconfig.HostVersionPHost2
	case "phost3":
		return gameconfig.HostVersionPHost3
	case "phost4":
		return gameconfig.HostVersionPHost4
	case "nuhost":
		return gameconfig.HostVersionNuHost
	default:
		return gameconfig.HostVersionTHost
	}
}

func (c *simCommand) Execute(args []string) error {
	configureLogging()

	raw, err := os.ReadFile(c.Setup)
	if err != nil {
		return fmt.Errorf("reading setup file: %w", err)
	}
	var file simSetupFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parsing setup file: %w", err)
	}
	if len(file.Ships) == 0 {
		return fmt.Errorf("setup file must describe at least one ship")
	}
	setup := &sim.Setup{Ships: file.Ships, Planet: file.Planet}

	config := c.hostVersion().SimConfiguration()
	config.Seed = c.Seed

	runner := sim.NewParallelRunner(setup, config, sim.FlakConfig{}, sim.RunOptions{}, c.Workers)
	defer runner.Stop()

	start := time.Now()
	if err := runner.Init(); err != nil {
		return fmt.Errorf("running first fight: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	runner.Run(ctx, sim.MakeFiniteLimit(c.Battles-1), nil)

	results := runner.ResultList()
	fmt.Printf("battles run:   %s\n", humanize.Comma(int64(results.GetNumBattles())))
	fmt.Printf("cumulative weight: %s\n", humanize.Comma(int64(results.GetCumulativeWeight())))
	fmt.Printf("elapsed:       %v\n", time.Since(start))

	for _, class := range results.SortedClasses() {
		fmt.Printf("  planet-owner=%-3d survivors=%v weight=%s\n",
			class.PlanetOwner, class.OwnerCounts, humanize.Comma(int64(class.CumulativeWeight)))
	}

	return nil
}
