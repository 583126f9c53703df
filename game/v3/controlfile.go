// Package v3 implements the control-file sidecar: the per-directory
// checksum file VGAP data directories carry alongside the turn files
// proper. Nothing reads these checksums back for validation — the sole
// reason to maintain them is that Tim's maketurns expects them to be
// present and internally consistent.
package v3

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/playbymail/vgacore/log"
)

// Section names which record kind a checksum slot belongs to.
type Section int

const (
	ShipSection Section = iota
	PlanetSection
	BaseSection
)

const (
	controlMax = 2499

	// truncatedSize is the file size control.dat/contrlN.dat is written
	// at unless the Host999 ship extension (ids 501-999) holds any
	// nonzero checksum: 1500 full uint32 slots (6000 bytes) plus 2
	// padding bytes, reproducing the historical truncation exactly
	// rather than rounding up to a whole record.
	truncatedSize = 6002
	fullSize      = controlMax * 4
)

// ControlFile is an in-memory copy of one directory's checksum file,
// together with the "file owner" that decides which on-disk name Save
// writes: 0 for the Dosplan shared control.dat, >0 for a Winplan
// contrlN.dat, and <0 if no file should be written at all.
type ControlFile struct {
	data      [controlMax]uint32
	fileOwner int
}

// NewControlFile returns an empty, unconfigured control file (file owner
// -1: no file loaded, nothing to save).
func NewControlFile() *ControlFile {
	cf := &ControlFile{}
	cf.Clear()
	return cf
}

// Clear resets the file to empty and unconfigured.
func (cf *ControlFile) Clear() {
	for i := range cf.data {
		cf.data[i] = 0
	}
	cf.fileOwner = -1
}

// Load looks for a checksum file in dir for the given player: first the
// shared Dosplan control.dat, then the Winplan contrlN.dat. If neither
// exists the file owner is set to -1 and Save will write nothing.
func (cf *ControlFile) Load(dir string, player int) error {
	cf.Clear()

	path := filepath.Join(dir, "control.dat")
	data, err := os.ReadFile(path)
	if err == nil {
		cf.fileOwner = 0
	} else {
		path = filepath.Join(dir, fmt.Sprintf("contrl%d.dat", player))
		data, err = os.ReadFile(path)
		if err == nil {
			cf.fileOwner = player
		} else {
			log.Debug("v3: no control file found", log.F("dir", dir), log.F("player", player))
			cf.fileOwner = -1
			return nil
		}
	}

	slots := len(data) / 4
	if slots > controlMax {
		slots = controlMax
	}
	for i := 0; i < slots; i++ {
		cf.data[i] = binary.LittleEndian.Uint32(data[i*4 : i*4+4])
	}
	return nil
}

// Save writes the checksum file dir's file owner selects, or writes
// nothing if the owner is negative (no file was ever loaded for this
// directory). The file is truncated to 6002 bytes unless some slot from
// 1501 onward holds a nonzero checksum (the Host999 ship ids 501-999 use
// slots 2000-2498), in which case the full slot array is written.
func (cf *ControlFile) Save(dir string) error {
	if cf.fileOwner < 0 {
		log.Debug("v3: control file will not be created, owner unset")
		return nil
	}

	name := "control.dat"
	if cf.fileOwner != 0 {
		name = fmt.Sprintf("contrl%d.dat", cf.fileOwner)
	}

	size := truncatedSize
	for i := 1501; i < controlMax; i++ {
		if cf.data[i] != 0 {
			size = fullSize
			break
		}
	}

	buf := make([]byte, fullSize)
	for i, v := range cf.data {
		binary.LittleEndian.PutUint32(buf[i*4:i*4+4], v)
	}
	if size == truncatedSize {
		// Slots 1500's first two bytes sit at offsets 6000-6001; the
		// historical writer truncates mid-record there rather than
		// rounding up, and the two partial bytes are always zero.
		buf[6000] = 0
		buf[6001] = 0
	}

	return os.WriteFile(filepath.Join(dir, name), buf[:size], 0o644)
}

// Set stores a checksum for the given section and object id. Out-of-
// range ids are silently ignored, matching the historical behavior.
func (cf *ControlFile) Set(section Section, id int, checksum uint32) {
	if slot, ok := cf.slot(section, id); ok {
		cf.data[slot] = checksum
	}
}

// SetFileOwner sets which file Save writes: 0 for control.dat, a
// positive player number for contrlN.dat, or -1 to suppress saving.
func (cf *ControlFile) SetFileOwner(owner int) {
	cf.fileOwner = owner
}

// FileOwner returns the current file owner.
func (cf *ControlFile) FileOwner() int { return cf.fileOwner }

func (cf *ControlFile) slot(section Section, id int) (int, bool) {
	switch section {
	case ShipSection:
		switch {
		case id > 0 && id <= 500:
			return id - 1, true
		case id > 500 && id <= 999:
			return id + 1499, true
		}
	case PlanetSection:
		if id > 0 && id <= 500 {
			return id + 499, true
		}
	case BaseSection:
		if id > 0 && id <= 500 {
			return id + 999, true
		}
	}
	return 0, false
}
