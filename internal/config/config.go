// Package config handles tool configuration loading using viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/johnwheeler/go-mxf/internal/log"
)

// DefaultSpecPath is the packaged RP210 dictionary excerpt used when neither
// configuration nor environment points anywhere else.
const DefaultSpecPath = "data/rp210.csv"

// Config is the top-level static configuration for the mxfdict tool.
type Config struct {
	Spec   SpecConfig   `mapstructure:"spec"`
	Vendor VendorConfig `mapstructure:"vendor"`
	Log    log.Config   `mapstructure:"log"`
}

// SpecConfig locates the RP210 specification feed. The path is an explicit
// construction parameter: the registry itself never consults the
// environment, only this value (which viper may have filled from
// MXFDICT_SPEC_PATH).
type SpecConfig struct {
	Path string `mapstructure:"path"`
}

// VendorConfig selects vendor overlays layered on the base registry after
// loading, before any lookups run.
type VendorConfig struct {
	// Avid enables the built-in Avid dark-metadata mappings.
	Avid bool `mapstructure:"avid"`
	// Overlays are YAML files mapping short UL fragments to entries.
	Overlays []string `mapstructure:"overlays"`
}

// Load reads configuration from the YAML file at path, applying defaults
// and MXFDICT_* environment overrides (e.g. MXFDICT_SPEC_PATH). An empty
// path skips the file and uses defaults plus environment only.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetEnvPrefix("MXFDICT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("spec.path", DefaultSpecPath)
	v.SetDefault("vendor.avid", false)
	v.SetDefault("log.level", "info")
}
