package cli

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mirror-gen",
	Short: "Compile-time reflection codegen for Go types",
	Long: `mirror-gen scans Go packages for //mirror: directive comments and
generates the reflection adapters, reconstruction functions and capability
registrations the mirror runtime consumes.`,
}

var (
	configPath string
	verbose    bool
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to mirrorgen.yaml")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "verbose output")
}

// newRunner builds the effective config from file plus flags and wires the
// logger.
func newRunner(args []string) (*Runner, error) {
	cfg, err := resolveConfig(configPath)
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Patterns = args
	}

	if verbose {
		cfg.Verbose = true
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "mirror-gen",
	})

	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return NewRunner(cfg, logger), nil
}
