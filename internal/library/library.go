// Package library locates Game Boy ROMs on disk.
package library

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ROM is one discovered ROM file.
type ROM struct {
	Path  string
	Title string // cartridge header title, or the file name when unreadable
}

// Scan globs the directory for .gb/.gbc files, sorted by file name.
func Scan(dir string) ([]ROM, error) {
	var paths []string
	for _, pattern := range []string{"*.gb", "*.gbc"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)

	roms := make([]ROM, 0, len(paths))
	for _, p := range paths {
		roms = append(roms, ROM{Path: p, Title: Title(p)})
	}
	return roms, nil
}

// Title reads the cartridge title from the ROM header (bytes 0x134-0x143).
// Falls back to the file name for short or unreadable files.
func Title(path string) string {
	fallback := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	data, err := os.ReadFile(path)
	if err != nil || len(data) < 0x144 {
		return fallback
	}
	raw := data[0x134:0x144]
	var b strings.Builder
	for _, c := range raw {
		if c == 0 {
			break
		}
		if c < 0x20 || c > 0x7E {
			continue
		}
		b.WriteByte(c)
	}
	title := strings.TrimSpace(b.String())
	if title == "" {
		return fallback
	}
	return title
}
