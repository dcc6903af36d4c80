package tui

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rivergale/cheatdeck/internal/config"
)

func loadConfigOrDefault(path string) *config.Config {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg
	}

	return config.Default()
}

func defaultConfigPath() string {
	workingDir, err := os.Getwd()
	if err != nil {
		return "cheatdeck.yaml"
	}
	return filepath.Join(workingDir, "cheatdeck.yaml")
}

func writeConfig(path string, cfg *config.Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	return nil
}
