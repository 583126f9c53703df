package v3

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPattern = []byte{1, 2, 3, 4, 5, 6, 7, 8, 1, 2, 3, 4, 5, 6, 7, 8}

func TestControlFile_SaveNoOwnerIsNoOp(t *testing.T) {
	dir := t.TempDir()
	cf := NewControlFile()
	cf.Set(ShipSection, 500, 1)
	cf.Set(PlanetSection, 500, 1)
	cf.Set(BaseSection, 500, 1)
	require.NoError(t, cf.Save(dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestControlFile_SaveDOS(t *testing.T) {
	dir := t.TempDir()
	cf := NewControlFile()
	cf.SetFileOwner(0)
	cf.Set(ShipSection, 500, 1)
	cf.Set(PlanetSection, 500, 1)
	cf.Set(BaseSection, 500, 1)
	require.NoError(t, cf.Save(dir))

	info, err := os.Stat(filepath.Join(dir, "control.dat"))
	require.NoError(t, err)
	assert.EqualValues(t, 6002, info.Size())
}

func TestControlFile_SaveWin(t *testing.T) {
	dir := t.TempDir()
	cf := NewControlFile()
	cf.SetFileOwner(6)
	cf.Set(ShipSection, 500, 1)
	cf.Set(PlanetSection, 500, 1)
	cf.Set(BaseSection, 500, 1)
	require.NoError(t, cf.Save(dir))

	info, err := os.Stat(filepath.Join(dir, "contrl6.dat"))
	require.NoError(t, err)
	assert.EqualValues(t, 6002, info.Size())
}

func TestControlFile_SaveHost999ExtensionWritesFullSize(t *testing.T) {
	dir := t.TempDir()
	cf := NewControlFile()
	cf.SetFileOwner(6)
	cf.Set(ShipSection, 501, 1)
	cf.Set(PlanetSection, 500, 1)
	cf.Set(BaseSection, 500, 1)
	require.NoError(t, cf.Save(dir))

	info, err := os.Stat(filepath.Join(dir, "contrl6.dat"))
	require.NoError(t, err)
	assert.EqualValues(t, fullSize, info.Size())
}

func TestControlFile_LoadDOSThenSaveRoundTrips(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "control.dat"), testPattern, 0o644))

	cf := NewControlFile()
	require.NoError(t, cf.Load(dir, 3))

	dir2 := t.TempDir()
	require.NoError(t, cf.Save(dir2))

	got, err := os.ReadFile(filepath.Join(dir2, "control.dat"))
	require.NoError(t, err)
	assert.Equal(t, testPattern, got[:len(testPattern)])
	for _, b := range got[len(testPattern):] {
		assert.EqualValues(t, 0, b)
	}
}

func TestControlFile_LoadWindowsThenSaveRoundTrips(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "contrl3.dat"), testPattern, 0o644))

	cf := NewControlFile()
	require.NoError(t, cf.Load(dir, 3))
	assert.Equal(t, 3, cf.FileOwner())

	dir2 := t.TempDir()
	require.NoError(t, cf.Save(dir2))

	got, err := os.ReadFile(filepath.Join(dir2, "contrl3.dat"))
	require.NoError(t, err)
	assert.Equal(t, testPattern, got[:len(testPattern)])
}

func TestControlFile_LoadEmptyDirectoryThenSaveIsNoOp(t *testing.T) {
	dir := t.TempDir()
	cf := NewControlFile()
	require.NoError(t, cf.Load(dir, 3))
	assert.Equal(t, -1, cf.FileOwner())

	dir2 := t.TempDir()
	require.NoError(t, cf.Save(dir2))

	entries, err := os.ReadDir(dir2)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestControlFile_OutOfRangeSetIsIgnored(t *testing.T) {
	cf := NewControlFile()
	cf.Set(ShipSection, 9999, 1)
	cf.Set(PlanetSection, 9999, 1)
	cf.Set(BaseSection, 9999, 1)

	dir := t.TempDir()
	cf.SetFileOwner(0)
	require.NoError(t, cf.Save(dir))

	got, err := os.ReadFile(filepath.Join(dir, "control.dat"))
	require.NoError(t, err)
	require.Len(t, got, 6002)
	for _, b := range got {
		assert.EqualValues(t, 0, b)
	}
}

func TestControlFile_SlotMapping(t *testing.T) {
	cf := NewControlFile()
	cf.Set(ShipSection, 1, 0xAABBCCDD)
	cf.Set(ShipSection, 500, 1)
	cf.Set(ShipSection, 501, 2)
	cf.Set(ShipSection, 999, 3)
	cf.Set(PlanetSection, 1, 4)
	cf.Set(BaseSection, 1, 5)

	assert.Equal(t, uint32(0xAABBCCDD), cf.data[0])
	assert.Equal(t, uint32(1), cf.data[499])
	assert.Equal(t, uint32(2), cf.data[2000])
	assert.Equal(t, uint32(3), cf.data[2498])
	assert.Equal(t, uint32(4), cf.data[500])
	assert.Equal(t, uint32(5), cf.data[1000])
}
