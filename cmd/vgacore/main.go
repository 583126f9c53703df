// Command vgacore is a unified CLI exercising the VGA Planets client-side
// toolkit core: the friendly-code engine, the battle simulator, the map
// renderer, the control-file sidecar, and the message subsystem.
//
// Usage:
//
//	vgacore <command> [options]
//
// Commands:
//
//	fcode    Generate, check, and list friendly codes
//	sim      Run battle simulator fights
//	render   Render a map scene to SVG or PNG
//	control  Inspect and rewrite a control-file sidecar
//	msg      Decode and browse a v3/v3.5 message file
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"

	"github.com/playbymail/vgacore/log"
)

var version = "dev"

type globalOptions struct {
	Version func() `short:"V" long:"version" description:"Print version and exit"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`
}

// globals is package-level so each subcommand's Execute can read the
// verbose flag and (re)configure the logger for itself: go-flags fills
// it in while parsing, before any subcommand's Execute runs, but only
// if the flag precedes the subcommand name on the line.
var globals globalOptions

// configureLogging installs a stderr zerolog logger at debug level
// when -v was given, info level otherwise. Every subcommand calls this
// first thing in Execute.
func configureLogging() {
	level := zerolog.InfoLevel
	if globals.Verbose {
		level = zerolog.DebugLevel
	}
	log.SetLogger(log.NewZerologAdapter(zerolog.New(os.Stderr).With().Timestamp().Logger().Level(level)))
}

func main() {
	globals.Version = func() {
		fmt.Printf("vgacore %s\n", version)
		os.Exit(0)
	}

	parser := flags.NewParser(&globals, flags.Default)
	parser.Name = "vgacore"
	parser.LongDescription = "A client-side toolkit core for VGA Planets: " +
		"friendly codes, battle simulation, map rendering, control files, and messages"

	addFCodeCommand(parser)
	addSimCommand(parser)
	addRenderCommand(parser)
	addControlCommand(parser)
	addMsgCommand(parser)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				os.Exit(0)
			}
			if flagsErr.Type == flags.ErrCommandRequired {
				parser.WriteHelp(os.Stderr)
				os.Exit(1)
			}
		}
		os.Exit(1)
	}
}
