package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeROM(t *testing.T, dir, name, title string) string {
	t.Helper()
	data := make([]byte, 0x150)
	copy(data[0x134:0x144], title)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	writeROM(t, dir, "b-game.gb", "POCKET QUEST")
	writeROM(t, dir, "a-game.gbc", "CRYSTAL CAVE")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	roms, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, roms, 2)

	// sorted by file name
	assert.Equal(t, "POCKET QUEST", roms[1].Title)
	assert.Equal(t, "CRYSTAL CAVE", roms[0].Title)
}

func TestScanEmptyDir(t *testing.T) {
	roms, err := Scan(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, roms)
}

func TestTitleFallsBackToFileName(t *testing.T) {
	dir := t.TempDir()

	// Too short for a header.
	short := filepath.Join(dir, "tiny.gb")
	require.NoError(t, os.WriteFile(short, []byte{0x00, 0x01}, 0644))
	assert.Equal(t, "tiny", Title(short))

	// Missing file.
	assert.Equal(t, "ghost", Title(filepath.Join(dir, "ghost.gb")))

	// Header full of non-printable bytes.
	junk := writeROM(t, dir, "junk.gb", "")
	assert.Equal(t, "junk", Title(junk))
}

func TestTitleTrimsPadding(t *testing.T) {
	dir := t.TempDir()
	path := writeROM(t, dir, "padded.gb", "SHORT")
	assert.Equal(t, "SHORT", Title(path))
}
