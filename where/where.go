// Package where resolves the application's directories and files on each platform.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/swatch-cli/swatch/constant"
	"github.com/swatch-cli/swatch/filesystem"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "SWATCH_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory, honouring SWATCH_CONFIG_PATH before
// the platform's user config directory.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Swatch))
}

// Cache resolves the cache directory, falling back to ./cache when the platform has none.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Swatch))
}

// Logs resolves the directory daily log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Palette resolves the file the saved color list lives in.
func Palette() string {
	return filepath.Join(Config(), "palette.json")
}
