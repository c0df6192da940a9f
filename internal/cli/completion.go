package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for solarsys.

With completions loaded, "solarsys details <TAB>" offers the identifiers
served by the API (one catalog request per completion).

To load completions:

Bash:
  $ source <(solarsys completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ solarsys completion bash > /etc/bash_completion.d/solarsys
  # macOS:
  $ solarsys completion bash > $(brew --prefix)/etc/bash_completion.d/solarsys

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ solarsys completion zsh > "${fpath[1]}/_solarsys"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ solarsys completion fish | source

  # To load completions for each session, execute once:
  $ solarsys completion fish > ~/.config/fish/completions/solarsys.fish

PowerShell:
  PS> solarsys completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> solarsys completion powershell > solarsys.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}

// completeBodyIDs offers the identifiers of the catalog as arguments for
// details. Completion does not run the persistent pre-run, so the
// configuration is resolved here.
func (c *CLI) completeBodyIDs(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if _, err := c.resolveConfig(); err != nil {
		cobra.CompDebugln(err.Error(), false)
		return nil, cobra.ShellCompDirectiveError
	}

	bodies, err := c.newClient().ListBodies(cmd.Context())
	if err != nil {
		cobra.CompDebugln(err.Error(), false)
		return nil, cobra.ShellCompDirectiveError
	}

	var ids []cobra.Completion
	for _, b := range bodies {
		if strings.HasPrefix(b.ID, toComplete) {
			ids = append(ids, cobra.CompletionWithDesc(b.ID, b.Name))
		}
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
