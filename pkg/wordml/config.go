package wordml

import (
	"os"
	"strings"
	"sync"
)

// Config contains the configuration options of the codec.
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off).
	LogLevel string
	// NormalizeText applies NFC normalization to extracted paragraph text.
	NormalizeText bool
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "info",
		NormalizeText: true,
	}
}

// ConfigFromEnvironment creates a configuration from WMLKIT_* environment
// variables, falling back to the defaults for anything unset.
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	if val := os.Getenv("WMLKIT_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}
	if val := os.Getenv("WMLKIT_NORMALIZE_TEXT"); val != "" {
		config.NormalizeText = parseBoolEnv(val)
	}
	return config
}

func parseBoolEnv(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "0", "false", "off", "no":
		return false
	}
	return true
}

// GetGlobalConfig returns the process-wide configuration, initializing it
// from the environment on first use.
func GetGlobalConfig() *Config {
	configOnce.Do(func() {
		globalConfigMutex.Lock()
		if globalConfig == nil {
			globalConfig = ConfigFromEnvironment()
		}
		globalConfigMutex.Unlock()
	})
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()
	return globalConfig
}

// SetGlobalConfig replaces the process-wide configuration.
func SetGlobalConfig(config *Config) {
	if config == nil {
		config = DefaultConfig()
	}
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()
}
