// Package gameconfig holds the plain option structs shared across the
// friendly-code, simulator, map-rendering, and messaging packages, so
// a CLI or future UI layer has one place to pick a host version and
// one set of rendering/filter defaults rather than redeclaring them
// per package.
package gameconfig

import (
	"github.com/playbymail/vgacore/game/fcode"
	"github.com/playbymail/vgacore/game/msg"
	"github.com/playbymail/vgacore/game/render"
	"github.com/playbymail/vgacore/game/sim"
)

// HostVersion names one of the hosting rulesets a game can be played
// under. It is the five-value selector the rest of the module narrows into a
// fcode.Host or sim.Mode as needed.
type HostVersion int

const (
	// HostVersionTHost is Tim-Host, any version.
	HostVersionTHost HostVersion = iota
	// HostVersionPHost2 is PHost 2.x.
	HostVersionPHost2
	// HostVersionPHost3 is PHost 3.x.
	HostVersionPHost3
	// HostVersionPHost4 is PHost 4.x.
	HostVersionPHost4
	// HostVersionNuHost is the web-hosted successor.
	HostVersionNuHost
)

// HostVersionNames maps each HostVersion to its display name, in the
// style of the teacher's data.GameSettingNames lookup table.
var HostVersionNames = map[HostVersion]string{
	HostVersionTHost:  "Host",
	HostVersionPHost2: "PHost 2",
	HostVersionPHost3: "PHost 3",
	HostVersionPHost4: "PHost 4",
	HostVersionNuHost: "NuHost",
}

// FCodeHost resolves a HostVersion to the fcode.Host it implies.
func (v HostVersion) FCodeHost() fcode.Host {
	switch v {
	case HostVersionPHost2:
		return fcode.NewHost(fcode.PHost, 2, 0, 0)
	case HostVersionPHost3:
		return fcode.NewHost(fcode.PHost, 3, 0, 0)
	case HostVersionPHost4:
		return fcode.NewHost(fcode.PHost, 4, 0, 0)
	case HostVersionNuHost:
		return fcode.NewHost(fcode.NuHost, 1, 0, 0)
	default:
		return fcode.NewHost(fcode.THost, 3, 22, 3)
	}
}

// SimMode resolves a HostVersion to the sim.Mode that replays its
// combat algorithm.
func (v HostVersion) SimMode() sim.Mode {
	switch v {
	case HostVersionPHost2:
		return sim.VcrPHost2
	case HostVersionPHost3:
		return sim.VcrPHost3
	case HostVersionPHost4:
		return sim.VcrPHost4
	case HostVersionNuHost:
		return sim.VcrNuHost
	default:
		return sim.VcrHost
	}
}

// SimConfiguration builds the sim.Configuration a batch run under this
// host version starts from; callers still set Seed, Alliances, and any
// non-default toggles.
func (v HostVersion) SimConfiguration() sim.Configuration {
	return sim.Configuration{
		Mode: v.SimMode(),
		Host: v.FCodeHost(),
	}
}

// MapConfiguration holds the display toggles a map render starts from,
// mirroring the teacher's maprenderer.RenderOptions shape but feeding
// game/render's Viewport/Options instead of the teacher's own renderer.
type MapConfiguration struct {
	ShowNames           bool
	ShowFleets          bool
	ShowFleetPaths      int
	ShowMines           bool
	ShowWormholes       bool
	ShowLegend          bool
	ShowScannerCoverage bool
	Zoom                float64
}

// DefaultMapConfiguration returns the same "sensible defaults" the
// teacher's map command falls back to when no display flag is given:
// fleets, wormholes, and the legend on, names and mines off.
func DefaultMapConfiguration() MapConfiguration {
	return MapConfiguration{
		ShowFleets:    true,
		ShowWormholes: true,
		ShowLegend:    true,
		Zoom:          1.0,
	}
}

// Options packs the map configuration into the render.Options bitmask
// Viewport consumes.
func (m MapConfiguration) Options() render.Options {
	var opts render.Options
	if m.ShowMines {
		opts |= render.ShowMinefields
	}
	if m.ShowFleets {
		opts |= render.ShowShipDots | render.ShowShipTrails
	}
	opts |= render.ShowUfos | render.ShowIonStorms | render.ShowDrawings | render.ShowWarpWells
	return opts
}

// MessageFilterConfiguration lists the message headings filtered out
// of the browser by default — the routine fleet-arrival and
// mine-sweep noise a player doesn't need to page through every turn.
type MessageFilterConfiguration struct {
	DefaultFilteredHeadings []string
}

// DefaultMessageFilterConfiguration returns the module's built-in
// filter defaults.
func DefaultMessageFilterConfiguration() MessageFilterConfiguration {
	return MessageFilterConfiguration{
		DefaultFilteredHeadings: []string{
			"(-h000)",
			"(-h9000)",
		},
	}
}

// Apply builds a msg.Configuration with this configuration's headings
// pre-filtered.
func (m MessageFilterConfiguration) Apply() *msg.Configuration {
	cfg := msg.NewConfiguration()
	for _, heading := range m.DefaultFilteredHeadings {
		cfg.SetFiltered(heading, true)
	}
	return cfg
}
