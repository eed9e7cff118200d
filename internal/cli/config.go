package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/addrgen/internal/config"
	"github.com/mrz1836/addrgen/internal/output"
	addrerr "github.com/mrz1836/addrgen/pkg/errors"
)

// configCmd is the parent command for configuration operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and initialize addrgen configuration.

Settings are read from config.yaml in the addrgen home directory, then
overridden by ADDRGEN_* environment variables and finally by flags.`,
}

// configInitCmd initializes the configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a default configuration file at ~/.addrgen/config.yaml.

If a configuration file already exists, this command will not overwrite it
unless --force is specified.`,
	Example: `  addrgen config init
  addrgen config init --force
  addrgen --home /srv/addrgen config init`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// configShowCmd shows the current configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the effective configuration after environment variables and flags
have been applied.`,
	Example: `  addrgen config show
  addrgen config show -o json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

// configGetCmd gets a specific configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Get a configuration value",
	Long: `Get a specific effective configuration value by its path.

The path uses dot notation and the key names of config.yaml.`,
	Example: `  addrgen config get server.listen
  addrgen config get server.rate_limit.requests_per_second
  addrgen config get logging.level`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var configForce bool

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.GroupID = groupConfig
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing configuration")

	enrichParentLong(configCmd)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath := config.Path(cfg.Home)

	if _, err := os.Stat(configPath); err == nil && !configForce {
		return addrerr.WithSuggestion(
			addrerr.ErrGeneral,
			fmt.Sprintf("configuration already exists at %s. Use --force to overwrite.", configPath),
		)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	defaultCfg := config.Defaults()
	defaultCfg.Home = cfg.Home

	if err := config.Save(defaultCfg, configPath); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	logger.Info("configuration initialized at %s", configPath)

	w := cmd.OutOrStdout()
	out(w, "Configuration initialized at %s\n", configPath)
	outln(w)
	outln(w, "Edit this file to configure:")
	outln(w, "  - server.listen: HTTP API listen address")
	outln(w, "  - server.rate_limit: Requests per second and burst per client")
	outln(w, "  - output.default_format: Output format (auto/text/json)")
	outln(w, "  - logging.level: Log level (off/error/info/debug)")

	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()

	if formatter.Format() == output.FormatJSON {
		return displayConfigJSON(w, cfg)
	}
	return displayConfigText(w, cfg)
}

func displayConfigJSON(w io.Writer, c *config.Config) error {
	return output.NewFormatter(output.FormatJSON, w).Emit("", c)
}

func displayConfigText(w io.Writer, c *config.Config) error {
	return output.NewFields().
		Add("home", c.Home).
		Add("server.listen", c.Server.Listen).
		Add("server.read_timeout", c.Server.ReadTimeout().String()).
		Add("server.write_timeout", c.Server.WriteTimeout().String()).
		Add("server.idle_timeout", c.Server.IdleTimeout().String()).
		Add("server.rate_limit", formatRateLimit(c.Server.RateLimit)).
		Add("server.metrics", fmt.Sprintf("%t", c.Server.Metrics)).
		Add("output.default_format", c.Output.DefaultFormat).
		Add("output.verbose", fmt.Sprintf("%t", c.Output.Verbose)).
		Add("logging.level", c.Logging.Level).
		Add("logging.file", c.Logging.File).
		Render(w)
}

func formatRateLimit(rl config.RateLimit) string {
	if rl.RequestsPerSecond <= 0 {
		return "disabled"
	}
	return fmt.Sprintf("%g/s burst %d", rl.RequestsPerSecond, rl.Burst)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	value, err := getConfigValue(cfg, args[0])
	if err != nil {
		return addrerr.WithSuggestion(
			err,
			fmt.Sprintf("configuration path '%s' not found; run 'addrgen config show' for the available keys", args[0]),
		)
	}

	outln(cmd.OutOrStdout(), value)
	return nil
}

// getConfigValue retrieves a value from the config using the dotted yaml key path.
func getConfigValue(c *config.Config, path string) (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}

	var node any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return "", fmt.Errorf("decoding config: %w", err)
	}

	for _, key := range strings.Split(path, ".") {
		section, ok := node.(map[string]any)
		if !ok {
			return "", unknownKey(path)
		}
		if node, ok = section[key]; !ok {
			return "", unknownKey(path)
		}
	}

	if _, ok := node.(map[string]any); ok {
		return "", addrerr.WithDetails(addrerr.ErrUnknownConfigKey, map[string]string{
			"path":   path,
			"reason": "path names a section, not a value",
		})
	}
	return fmt.Sprint(node), nil
}

func unknownKey(path string) error {
	return addrerr.WithDetails(addrerr.ErrUnknownConfigKey, map[string]string{"path": path})
}
