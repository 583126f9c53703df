package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/playbymail/vgacore/game/fcode"
	"github.com/playbymail/vgacore/gameconfig"
	"github.com/playbymail/vgacore/log"
)

type fcodeCommand struct {
	List    string `short:"l" long:"list" description:"Friendly-code list file to load (empty list if omitted)"`
	Extra   string `long:"extra" description:"Extra/prefix-blocklist file to load"`
	Host    string `long:"host" description:"Host version: thost, phost2, phost3, phost4, nuhost" default:"thost"`
	Seed    int64  `long:"seed" description:"Random seed for code generation" default:"0"`
	Args    struct {
		Mode string `positional-arg-name:"mode" description:"list|generate|check"`
		Code string `positional-arg-name:"code" description:"friendly code (check mode only)"`
	} `positional-args:"yes"`
}

func addFCodeCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("fcode",
		"Generate, check, and list friendly codes",
		"Loads a master friendly-code list and either prints it, generates a\n"+
			"random code, or reports whether a code is numeric and whether it is special.",
		&fcodeCommand{})
	if err != nil {
		panic(err)
	}
}

func (c *fcodeCommand) host() fcode.Host {
	switch c.Host {
	case "phost2":
		return gameconfig.HostVersionPHost2.FCodeHost()
	case "phost3":
		return gameconfig.HostVersionPHost3.FCodeHost()
	case "phost4":
		return gameconfig.HostVersionPHost4.FCodeHost()
	case "nuhost":
		return gameconfig.HostVersionNuHost.FCodeHost()
	default:
		return gameconfig.HostVersionTHost.FCodeHost()
	}
}

func (c *fcodeCommand) loadList() (*fcode.List, error) {
	list := fcode.NewList()
	if c.List != "" {
		f, err := os.Open(c.List)
		if err != nil {
			return nil, fmt.Errorf("opening friendly-code list: %w", err)
		}
		defer f.Close()
		list.Load(f)
	}
	if c.Extra != "" {
		f, err := os.Open(c.Extra)
		if err != nil {
			return nil, fmt.Errorf("opening extra friendly-code list: %w", err)
		}
		defer f.Close()
		list.LoadExtraCodes(f)
	}
	return list, nil
}

func (c *fcodeCommand) Execute(args []string) error {
	configureLogging()

	list, err := c.loadList()
	if err != nil {
		return err
	}

	switch c.Args.Mode {
	case "list":
		for _, info := range list.Pack(nil) {
			fmt.Printf("%-4s %-20s %s\n", info.Code, info.Flags, info.Description)
		}
		log.Info("listed friendly codes", log.F("count", list.Size()))
		return nil

	case "generate":
		rng := rand.New(rand.NewSource(c.Seed))
		code := list.GenerateRandomCode(rng, c.host())
		fmt.Println(code)
		return nil

	case "check":
		if c.Args.Code == "" {
			return fmt.Errorf("check mode requires a code argument")
		}
		host := c.host()
		numeric := fcode.IsNumeric(c.Args.Code, host)
		special := list.IsSpecial(c.Args.Code, host.Kind == fcode.NuHost)
		fmt.Printf("%s: numeric=%v special=%v\n", c.Args.Code, numeric, special)
		return nil

	default:
		return fmt.Errorf("unknown mode %q (want list, generate, or check)", c.Args.Mode)
	}
}
