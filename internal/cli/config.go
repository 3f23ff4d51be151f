package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	deperrors "depsheet/pkg/errors"
	"depsheet/pkg/sheet"
)

// Config holds persistent defaults loaded from the user's config file.
// Flags always win over config values.
type Config struct {
	// Format is the default output format when --format is not given.
	Format string `toml:"format"`
}

func defaultConfig() Config {
	return Config{Format: string(sheet.FormatCSV)}
}

// loadConfig reads the TOML config file at path, or the default location
// when path is empty. A missing file at the default location is fine; a
// missing file the user asked for explicitly, or a file that does not
// parse, is a configuration error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, deperrors.Wrap(deperrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, deperrors.Wrap(deperrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if cfg.Format == "" {
		cfg.Format = string(sheet.FormatCSV)
	}
	return cfg, nil
}
