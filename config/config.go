package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the selection overlay.
// Fields may be loaded from a JSON file and overridden by environment
// variables at startup.
type Config struct {
	Debug bool `json:"debug"`

	// Export behavior
	OutputDir     string `json:"output_dir"`      // empty: XDG Pictures directory
	CopyOnConfirm bool   `json:"copy_on_confirm"` // Enter copies instead of saving

	// Magnifier parameters
	MagnifierGrid   int `json:"magnifier_grid"`   // source pixels per side, odd
	MagnifierFactor int `json:"magnifier_factor"` // integer magnification
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		OutputDir:       "",
		CopyOnConfirm:   true,
		MagnifierGrid:   11,
		MagnifierFactor: 8,
	}
}

// Validate clamps values to safe ranges. The magnifier grid must be odd
// so one source pixel sits exactly centered.
func (c *Config) Validate() error {
	if c.MagnifierGrid < 3 {
		c.MagnifierGrid = 11
	}
	if c.MagnifierGrid%2 == 0 {
		c.MagnifierGrid++
	}
	if c.MagnifierFactor < 2 {
		c.MagnifierFactor = 8
	}
	if c.MagnifierFactor > 32 {
		c.MagnifierFactor = 32
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If
// the file does not exist it returns DefaultConfig(). On JSON error it
// returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}

// ApplyEnv overrides fields from environment variables when present.
// Recognized: SNIPSEL_DEBUG, SNIPSEL_OUTPUT_DIR.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv("SNIPSEL_DEBUG"); ok {
		c.Debug = v == "1" || v == "true"
	}
	if v, ok := os.LookupEnv("SNIPSEL_OUTPUT_DIR"); ok && v != "" {
		c.OutputDir = v
	}
}
