// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package config reads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/go-playground/validator"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Lang     string `env:"FLIX_LANG" env-default:"en" validate:"required"`
	MaxWidth int    `env:"FLIX_MAX_WIDTH" env-default:"120" validate:"min=60,max=400"`
	Mouse    bool   `env:"FLIX_MOUSE" env-default:"true"`
	Log      Log
}

type Log struct {
	File       string `env:"FLIX_LOG_FILE"`
	Level      string `env:"FLIX_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn warning error"`
	MaxSizeMB  int    `env:"FLIX_LOG_MAX_SIZE_MB" env-default:"10" validate:"min=1"`
	MaxBackups int    `env:"FLIX_LOG_MAX_BACKUPS" env-default:"3" validate:"min=0"`
}

// Load reads the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Usage describes every supported variable.
func Usage() string {
	var cfg Config
	s, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return s
}
