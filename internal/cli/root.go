// Package cli implements the addrgen command-line interface.
//
// This package uses global variables to manage CLI state, which is the standard
// pattern for Cobra-based CLI applications. The globals are initialized in
// PersistentPreRunE and cleaned up in PersistentPostRun.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level state
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/addrgen/internal/config"
	"github.com/mrz1836/addrgen/internal/metrics"
	"github.com/mrz1836/addrgen/internal/output"
	"github.com/mrz1836/addrgen/internal/service/address"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// Command group identifiers for the root help output.
const (
	groupAddress = "address"
	groupServer  = "server"
	groupConfig  = "config"
)

var (
	// Global flags
	homeDir      string
	outputFormat string
	verbose      bool

	// Global state initialized in PersistentPreRunE
	cfg       *config.Config
	logger    *config.Logger
	formatter *output.Formatter

	// stdout is where command results go; tests swap it for a buffer.
	stdout io.Writer = os.Stdout
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "addrgen",
	Short: "Bitcoin segwit and P2SH multisig address generator",
	Long: `addrgen derives native segwit (P2WPKH) addresses from BIP39 seed phrases
along BIP32 paths, and builds P2SH multisig addresses from compressed public keys.

It runs one-off from the command line or as an HTTP API with "addrgen serve".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return initGlobals()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		cleanup()
	},
}

// Execute runs the root command with the given build information.
func Execute(info BuildInfo) error {
	buildInfo = info
	rootCmd.Version = formatVersion(info)

	err := rootCmd.Execute()
	if err != nil {
		if formatter != nil {
			_ = output.FormatError(os.Stderr, err, formatter.Format())
		} else {
			_ = output.FormatError(os.Stderr, err, output.FormatText)
		}
		return err
	}
	return nil
}

// ExitCode returns the appropriate exit code for an error.
func ExitCode(err error) int {
	return addrerr.ExitCode(err)
}

// initGlobals initializes global configuration, logger, and formatter.
func initGlobals() error {
	home := homeDir
	if home == "" {
		home = os.Getenv(config.EnvHome)
	}
	if home == "" {
		home = config.DefaultHome()
	}

	var err error
	cfg, err = config.LoadOrDefault(config.Path(home))
	if err != nil {
		return err
	}
	cfg.Home = home

	config.ApplyEnvironment(cfg)

	// Flags beat the environment
	if homeDir != "" {
		cfg.Home = homeDir
	}
	if verbose {
		cfg.Output.Verbose = true
		cfg.Logging.Level = config.LogLevelDebug.String()
	}
	if outputFormat != "" && outputFormat != string(output.FormatAuto) {
		cfg.Output.DefaultFormat = outputFormat
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err = config.NewLogger(config.ParseLogLevel(cfg.GetLoggingLevel()), cfg.GetLoggingFile(), cfg.LogOptions()...)
	if err != nil {
		// A log file that cannot be opened must not block address generation
		output.Warnf(os.Stderr, "logging disabled: %v", err)
		logger = config.NullLogger()
	}

	formatter = output.NewFormatter(output.ParseFormat(cfg.GetOutputFormat()), stdout)

	return nil
}

// cleanup releases resources.
func cleanup() {
	if logger != nil {
		_ = logger.Close()
	}
}

// newService builds the address service shared by every command.
func newService() *address.Service {
	return address.NewService(
		address.WithLogger(logger),
		address.WithMetrics(metrics.Global),
	)
}

// Config returns the global configuration.
func Config() *config.Config {
	return cfg
}

// Logger returns the global logger.
func Logger() *config.Logger {
	return logger
}

// Formatter returns the global output formatter.
func Formatter() *output.Formatter {
	return formatter
}

// out is a helper for CLI output.
//
//nolint:errcheck // CLI output writes are intentionally unchecked
func out(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// outln is a helper for CLI output with newline.
//
//nolint:errcheck // CLI output writes are intentionally unchecked
func outln(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for flag registration
func init() {
	rootCmd.PersistentFlags().StringVar(&homeDir, "home", "", "addrgen data directory (default: ~/.addrgen)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "auto", "output format: text, json, auto")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddGroup(
		&cobra.Group{ID: groupAddress, Title: "Address Generation:"},
		&cobra.Group{ID: groupServer, Title: "HTTP API:"},
		&cobra.Group{ID: groupConfig, Title: "Configuration:"},
	)
	rootCmd.SetHelpCommandGroupID(groupConfig)
}
