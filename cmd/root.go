// Package cmd implements the mxfdict CLI using the cobra framework.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnwheeler/go-mxf/internal/config"
	"github.com/johnwheeler/go-mxf/internal/log"
	"github.com/johnwheeler/go-mxf/pkg/rp210"
	"github.com/johnwheeler/go-mxf/pkg/rp210types"
)

var (
	// Global flags
	configFile string
	specPath   string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "mxfdict",
	Short: "mxfdict - SMPTE RP210 metadata dictionary and value converter",
	Long: `mxfdict resolves SMPTE Universal Labels against the RP210 metadata
dictionary and converts raw MXF field payloads to and from typed values.

The dictionary is built once at startup from the RP210 CSV feed (packaged
excerpt by default, overridable via --spec, config or MXFDICT_SPEC_PATH),
optionally layered with vendor mappings (Avid built-ins or YAML overlays).`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and runs it.
// Called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "",
		"config file path (optional)")
	rootCmd.PersistentFlags().StringVarP(&specPath, "spec", "s", "",
		"RP210 specification feed path (overrides config)")
}

// exitWithError prints an error message and exits with code 1.
func exitWithError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(1)
}

// buildRegistry loads configuration, initializes logging and builds the
// frozen registry: feed load, then vendor injection, then read-only use.
func buildRegistry() (*rp210.Registry, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if err := log.Init(cfg.Log); err != nil {
		return nil, err
	}
	logger := log.GetLogger()

	path := cfg.Spec.Path
	if specPath != "" {
		path = specPath
	}

	reg, err := rp210.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.WithField("path", path).WithField("entries", reg.Len()).Debug("registry loaded")

	if cfg.Vendor.Avid {
		reg.InjectAvid()
		logger.Debug("avid vendor mappings injected")
	}
	for _, overlay := range cfg.Vendor.Overlays {
		entries, err := config.LoadOverlay(overlay)
		if err != nil {
			return nil, err
		}
		reg.Inject(entries)
		logger.WithField("overlay", overlay).WithField("entries", len(entries)).Debug("vendor overlay injected")
	}

	return reg, nil
}

// buildDispatcher builds the registry plus a dispatcher over the default
// converter set.
func buildDispatcher() (*rp210.Registry, *rp210.Dispatcher, error) {
	reg, err := buildRegistry()
	if err != nil {
		return nil, nil, err
	}
	return reg, rp210.NewDispatcher(reg, rp210types.Default()), nil
}
