package cli

import (
	"github.com/spf13/cobra"
)

// completionCmd generates shell completion scripts.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for addrgen.

Bash:
  $ source <(addrgen completion bash)

Zsh:
  # Completion must be enabled once with: autoload -U compinit; compinit
  $ addrgen completion zsh > "${fpath[1]}/_addrgen"

Fish:
  $ addrgen completion fish > ~/.config/fish/completions/addrgen.fish

PowerShell:
  PS> addrgen completion powershell | Out-String | Invoke-Expression`,
	Example: `  addrgen completion bash > /etc/bash_completion.d/addrgen
  addrgen completion zsh`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(w)
		case "zsh":
			return cmd.Root().GenZshCompletion(w)
		case "fish":
			return cmd.Root().GenFishCompletion(w, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(w)
		}
		return nil
	},
}

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(completionCmd)
	completionCmd.GroupID = groupConfig
}
