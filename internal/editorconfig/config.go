package editorconfig

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the engine parameters an embedder configures at startup.
// Fields use TOML tags so they load directly from a settings file shaped
// like:
//
//	max_line_len = 120
//	max_line_count = 500
//	tab_width = 4
type Config struct {
	MaxLineLen   uint32 `toml:"max_line_len"`
	MaxLineCount uint32 `toml:"max_line_count"`
	TabWidth     uint32 `toml:"tab_width"`
}

// Default returns the configuration used when no file is supplied: an
// 80-column line cap, a generous row ceiling, and a 4-column tab width.
func Default() Config {
	return Config{
		MaxLineLen:   80,
		MaxLineCount: 10000,
		TabWidth:     4,
	}
}

// Load reads and parses a TOML config file at path, overlaying its values
// onto Default(). A missing file is not an error: Default() is returned
// unchanged, treating "no settings file" as nothing to override rather
// than a failure.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// Validate reports ErrInvalidValue if any field is outside a usable range.
func (c Config) Validate() error {
	if c.MaxLineLen == 0 {
		return fmt.Errorf("%w: max_line_len must be positive", ErrInvalidValue)
	}
	if c.MaxLineCount == 0 {
		return fmt.Errorf("%w: max_line_count must be positive", ErrInvalidValue)
	}
	if c.TabWidth == 0 {
		return fmt.Errorf("%w: tab_width must be positive", ErrInvalidValue)
	}
	return nil
}
