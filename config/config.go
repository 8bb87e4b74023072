// SPDX-License-Identifier: MIT

// Package config resolves the command's defaults from the environment.
// A .env file in the working directory or one of its parents is loaded first;
// variables already present in the environment win over the file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/katalvlaran/mtrxmaths/matrix"
	"github.com/katalvlaran/mtrxmaths/textio"
)

// Environment variable names.
const (
	EnvSingularTol = "MTRXMATHS_SINGULAR_TOL"
	EnvLocale      = "MTRXMATHS_LOCALE"
)

// envSearchDepth is how many directories (starting with the working one) are searched for .env.
const envSearchDepth = 5

// ErrInvalidValue indicates an environment value that cannot be used.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the command defaults.
type Config struct {
	// SingularTol is the relative pivot tolerance for inversion and division.
	SingularTol float64
	// Locale selects locale-aware display; language.Und keeps the fixed format.
	Locale language.Tag
}

// Load reads .env (if found above the working directory) and the environment.
func Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	return LoadFrom(dir)
}

// LoadFrom is Load with an explicit starting directory.
func LoadFrom(dir string) (*Config, error) {
	if err := loadEnvFile(dir); err != nil {
		return nil, fmt.Errorf("config: .env: %w", err)
	}

	cfg := &Config{
		SingularTol: matrix.DefaultSingularTol,
		Locale:      language.Und,
	}

	if raw := os.Getenv(EnvSingularTol); raw != "" {
		tol, err := strconv.ParseFloat(raw, 64)
		if err != nil || !validTol(tol) {
			return nil, fmt.Errorf("%s=%q: want a finite number >= 0: %w", EnvSingularTol, raw, ErrInvalidValue)
		}
		cfg.SingularTol = tol
	}

	if raw := os.Getenv(EnvLocale); raw != "" {
		tag, err := language.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%s=%q: %v: %w", EnvLocale, raw, err, ErrInvalidValue)
		}
		cfg.Locale = tag
	}

	return cfg, nil
}

// Validate reports a field the engine would refuse.
func (c *Config) Validate() error {
	if !validTol(c.SingularTol) {
		return fmt.Errorf("singular tolerance %v: want a finite number >= 0: %w", c.SingularTol, ErrInvalidValue)
	}

	return nil
}

// MatrixOptions converts the config into engine options.
// Call Validate first: an invalid SingularTol panics in matrix.WithSingularTol.
func (c *Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithSingularTol(c.SingularTol)}
}

// PrintOptions converts the config into presenter options.
// language.Und yields none, keeping the fixed locale-free format.
func (c *Config) PrintOptions() []textio.Option {
	if c.Locale == language.Und {
		return nil
	}

	return []textio.Option{textio.WithLocale(c.Locale)}
}

func validTol(tol float64) bool {
	return tol >= 0 && !math.IsNaN(tol) && !math.IsInf(tol, 0)
}

// loadEnvFile loads the nearest .env walking up from dir.
// A missing file is not an error.
func loadEnvFile(dir string) error {
	for i := 0; i < envSearchDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			return godotenv.Load(envPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil
}
