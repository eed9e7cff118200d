package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAllCommandsHaveShortDescription walks the entire command tree and
// verifies that every command has a non-empty Short description.
func TestAllCommandsHaveShortDescription(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		t.Run(cmd.CommandPath(), func(t *testing.T) {
			assert.NotEmpty(t, cmd.Short,
				"%s: missing Short description", cmd.CommandPath())
		})
	})
}

// TestAllCommandsHaveLongDescription walks the entire command tree and
// verifies that every command has a non-empty Long description.
func TestAllCommandsHaveLongDescription(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		t.Run(cmd.CommandPath(), func(t *testing.T) {
			assert.NotEmpty(t, cmd.Long,
				"%s: missing Long description", cmd.CommandPath())
		})
	})
}

// TestLeafCommandsHaveExamples verifies that every leaf command (one
// with RunE or Run) has a non-empty Example field.
func TestLeafCommandsHaveExamples(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		if cmd.RunE == nil && cmd.Run == nil {
			return
		}
		if cmd.Name() == "help" {
			return // cobra's own
		}
		t.Run(cmd.CommandPath(), func(t *testing.T) {
			assert.NotEmpty(t, cmd.Example,
				"%s: leaf command missing Example field", cmd.CommandPath())
		})
	})
}

// TestNoEmbeddedExamplesInLong ensures no command embeds "Example:" or
// "Examples:" text inside the Long field.
func TestNoEmbeddedExamplesInLong(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		t.Run(cmd.CommandPath(), func(t *testing.T) {
			assert.False(t,
				strings.Contains(cmd.Long, "\nExample:") ||
					strings.Contains(cmd.Long, "\nExamples:"),
				"%s: Long contains embedded examples; move to Example field",
				cmd.CommandPath())
		})
	})
}

// TestAllFlagsHaveDescriptions verifies every registered flag across all
// commands has a non-empty usage description string.
func TestAllFlagsHaveDescriptions(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			t.Run(cmd.CommandPath()+"/--"+f.Name, func(t *testing.T) {
				assert.NotEmpty(t, f.Usage,
					"flag --%s on %s has no description", f.Name, cmd.CommandPath())
			})
		})
	})
}

// TestCommandGroupsAssigned verifies all top-level commands have a GroupID
// set for organized help output.
func TestCommandGroupsAssigned(t *testing.T) {
	for _, cmd := range rootCmd.Commands() {
		if !cmd.IsAvailableCommand() || cmd.Name() == "help" {
			continue
		}
		t.Run(cmd.Name(), func(t *testing.T) {
			assert.NotEmpty(t, cmd.GroupID,
				"top-level command %q missing GroupID", cmd.Name())
		})
	}
}

// TestRootHelpContainsGroups verifies the root --help output shows the
// command groups rather than a flat "Available Commands:" list.
func TestRootHelpContainsGroups(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--help"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	help := buf.String()
	assert.Contains(t, help, "Address Generation:")
	assert.Contains(t, help, "HTTP API:")
	assert.Contains(t, help, "Configuration:")
}

// TestParentCommandsShowSubcommandsInHelp verifies the config command
// lists its subcommands in the rendered help and in Long.
func TestParentCommandsShowSubcommandsInHelp(t *testing.T) {
	buf := new(bytes.Buffer)
	configCmd.SetOut(buf)
	t.Cleanup(func() { configCmd.SetOut(nil) })
	require.NoError(t, configCmd.Help())
	helpOutput := buf.String()

	assert.Contains(t, helpOutput, "Available Commands:")
	assert.Contains(t, configCmd.Long, "Subcommands:")
	for _, sub := range configCmd.Commands() {
		if sub.IsAvailableCommand() {
			assert.Contains(t, helpOutput, sub.Name())
		}
	}
}

// TestLeafCommandHelpShowsExamplesSection verifies the rendered help of
// representative leaf commands includes an "Examples:" section.
func TestLeafCommandHelpShowsExamplesSection(t *testing.T) {
	for _, cmd := range []*cobra.Command{segwitCmd, multisigCmd, serveCmd, configInitCmd} {
		t.Run(cmd.CommandPath(), func(t *testing.T) {
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			t.Cleanup(func() { cmd.SetOut(nil) })

			require.NoError(t, cmd.Help())
			helpOutput := buf.String()

			assert.Contains(t, helpOutput, "Examples:")
			assert.Contains(t, helpOutput, "addrgen")
		})
	}
}

// TestWalkCommandsVisitsAll verifies walkCommands discovers every command.
func TestWalkCommandsVisitsAll(t *testing.T) {
	var visited []string
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		visited = append(visited, cmd.CommandPath())
	})

	for _, path := range []string{
		"addrgen",
		"addrgen segwit",
		"addrgen multisig",
		"addrgen serve",
		"addrgen config",
		"addrgen config init",
		"addrgen config show",
		"addrgen config get",
		"addrgen version",
		"addrgen completion",
	} {
		assert.Contains(t, visited, path)
	}
}

func TestEnrichParentLong_LeafUnchanged(t *testing.T) {
	leaf := &cobra.Command{Use: "leaf", Long: "unchanged"}
	enrichParentLong(leaf)
	assert.Equal(t, "unchanged", leaf.Long)
}
