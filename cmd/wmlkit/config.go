package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"wmlkit/pkg/wordml"
)

// cliConfig combines the codec configuration with front-end preferences.
type cliConfig struct {
	Codec      *wordml.Config
	PrettyJSON bool
	SliceUnits int
	StreamStep int
}

// wmlkit.toml key mapping.
type fileConfig struct {
	LogLevel      string `toml:"log_level"`
	NormalizeText bool   `toml:"normalize_text"`
	PrettyJSON    bool   `toml:"pretty_json"`
	SliceUnits    int    `toml:"slice_units"`
	StreamStep    int    `toml:"stream_step"`
}

func defaultCLIConfig() *cliConfig {
	return &cliConfig{
		Codec:      wordml.ConfigFromEnvironment(),
		PrettyJSON: false,
		SliceUnits: 1,
		StreamStep: 1,
	}
}

// loadCLIConfig overlays a TOML config file onto the environment-derived
// defaults. An empty path falls back to $WMLKIT_CONFIG; no file at all is
// not an error.
func loadCLIConfig(path string) (*cliConfig, error) {
	cfg := defaultCLIConfig()

	if path == "" {
		path = os.Getenv("WMLKIT_CONFIG")
	}
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if meta.IsDefined("log_level") {
		cfg.Codec.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("normalize_text") {
		cfg.Codec.NormalizeText = raw.NormalizeText
	}
	if meta.IsDefined("pretty_json") {
		cfg.PrettyJSON = raw.PrettyJSON
	}
	if meta.IsDefined("slice_units") {
		if raw.SliceUnits < 1 {
			return nil, fmt.Errorf("load config: slice_units must be positive, got %d", raw.SliceUnits)
		}
		cfg.SliceUnits = raw.SliceUnits
	}
	if meta.IsDefined("stream_step") {
		if raw.StreamStep < 1 {
			return nil, fmt.Errorf("load config: stream_step must be positive, got %d", raw.StreamStep)
		}
		cfg.StreamStep = raw.StreamStep
	}
	return cfg, nil
}
