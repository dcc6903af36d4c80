package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the full configuration structure
type Config struct {
	Library  LibraryConfig  `mapstructure:"library" yaml:"library"`
	Emulator EmulatorConfig `mapstructure:"emulator" yaml:"emulator"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

// LibraryConfig says where ROMs and their cheat files live
type LibraryConfig struct {
	ROMsDir   string `mapstructure:"roms_dir" yaml:"roms_dir"`
	CheatsDir string `mapstructure:"cheats_dir" yaml:"cheats_dir"`
}

// EmulatorConfig describes how to launch the external emulator.
// An empty command disables the launch affordance.
type EmulatorConfig struct {
	Command string   `mapstructure:"command" yaml:"command"`
	Args    []string `mapstructure:"args" yaml:"args"`
}

// LogConfig contains logging options
type LogConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Load reads configuration from file with defaults
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("cheatdeck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.cheatdeck")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("library.roms_dir", "roms")
	v.SetDefault("library.cheats_dir", "cheats")
	v.SetDefault("log.file", ".cheatdeck.log")
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{
		Library: LibraryConfig{
			ROMsDir:   "roms",
			CheatsDir: "cheats",
		},
		Log: LogConfig{
			File: ".cheatdeck.log",
		},
	}
}
