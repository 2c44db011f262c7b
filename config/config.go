// Package config loads process-level engine settings from the
// environment. Every setting has a default; the engine runs with no
// configuration at all.
package config

import (
	"github.com/spf13/viper"

	"github.com/clockgo/clockgo/board"
	"github.com/clockgo/clockgo/bot"
)

// Config holds the engine's startup settings.
type Config struct {
	// Debug enables debug-level logging.
	Debug bool `mapstructure:"debug"`
	// BoardSize is the initial board extent.
	BoardSize int `mapstructure:"board_size"`
	// Komi is the initial komi; it is reported to the GTP controller
	// but does not affect move legality.
	Komi float64 `mapstructure:"komi"`
	// GenmoveTries bounds the random-vertex attempts per generated move.
	GenmoveTries int `mapstructure:"genmove_tries"`
	// Console switches the binary from the GTP stdin loop to an
	// interactive prompt.
	Console bool `mapstructure:"console"`
}

// Load reads settings from CLOCKGO_-prefixed environment variables
// (CLOCKGO_DEBUG, CLOCKGO_BOARD_SIZE, ...), falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("clockgo")
	v.AutomaticEnv()

	v.SetDefault("debug", false)
	v.SetDefault("board_size", board.DefaultBoardDim)
	v.SetDefault("komi", 5.5)
	v.SetDefault("genmove_tries", bot.DefaultTries)
	v.SetDefault("console", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
