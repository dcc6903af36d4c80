// Package store persists cheat lists across sessions, one YAML document per
// ROM. The panel treats Persist as fire-and-forget; failures surface through
// the error return and are the caller's to report.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rivergale/cheatdeck/internal/cheat"
)

type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns where the cheat list for the given ROM lives. The ROM may be
// a full path; only its base name (without extension) identifies the file.
func (s *Store) Path(rom string) string {
	base := filepath.Base(rom)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(s.dir, base+".cheats.yaml")
}

type cheatFile struct {
	Cheats []cheat.Entry `yaml:"cheats"`
}

// Load reads the persisted list for a ROM. A missing file is not an error;
// it yields an empty list.
func (s *Store) Load(rom string) (*cheat.List, error) {
	data, err := os.ReadFile(s.Path(rom))
	if err != nil {
		if os.IsNotExist(err) {
			return cheat.NewList(), nil
		}
		return nil, fmt.Errorf("read cheat file: %w", err)
	}
	var f cheatFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse cheat file %s: %w", s.Path(rom), err)
	}
	return cheat.NewList(f.Cheats...), nil
}

// Persist writes the whole list, replacing any previous file.
func (s *Store) Persist(rom string, l *cheat.List) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create cheats dir: %w", err)
	}
	data, err := yaml.Marshal(cheatFile{Cheats: l.Entries()})
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.Path(rom), data, 0644); err != nil {
		return fmt.Errorf("write cheat file: %w", err)
	}
	return nil
}
