package main

import (
	"fmt"

	"github.com/jessevdk/go-flags"

	"github.com/playbymail/vgacore/game/v3"
)

type controlCommand struct {
	Dir    string `short:"d" long:"dir" description:"Game data directory" required:"true"`
	Player int    `short:"p" long:"player" description:"Player number" required:"true"`
	Touch  bool   `long:"touch" description:"Rewrite the control file even if unchanged, claiming file ownership for this player"`
}

func addControlCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("control",
		"Inspect and rewrite a control-file sidecar",
		"Loads the Dosplan control.dat or Winplan contrlN.dat checksum file\n"+
			"from a game directory and reports which one (if any) was found.\n"+
			"With --touch, rewrites it under this player's ownership.",
		&controlCommand{})
	if err != nil {
		panic(err)
	}
}

func (c *controlCommand) Execute(args []string) error {
	configureLogging()

	cf := v3.NewControlFile()
	if err := cf.Load(c.Dir, c.Player); err != nil {
		return fmt.Errorf("loading control file: %w", err)
	}

	switch owner := cf.FileOwner(); {
	case owner < 0:
		fmt.Println("no control file found")
	case owner == 0:
		fmt.Println("found shared control.dat")
	default:
		fmt.Printf("found contrl%d.dat\n", owner)
	}

	if c.Touch {
		cf.SetFileOwner(c.Player)
		if err := cf.Save(c.Dir); err != nil {
			return fmt.Errorf("saving control file: %w", err)
		}
		fmt.Printf("rewrote control file for player %d\n", c.Player)
	}

	return nil
}
