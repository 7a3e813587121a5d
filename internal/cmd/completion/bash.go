package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdBash creates the bash completion command.
func NewCmdBash() *cobra.Command {
	return &cobra.Command{
		Use:   "bash",
		Short: "Generate bash completion script",
		Long: `Generate bash completion script for mds.

To load completions in your current shell session:

  source <(mds completion bash)

To load completions for every new session:

  # Linux
  mds completion bash > /etc/bash_completion.d/mds

  # macOS (requires bash-completion)
  mds completion bash > $(brew --prefix)/etc/bash_completion.d/mds`,
		Example: `  # Load in current session
  source <(mds completion bash)

  # Install permanently (Linux)
  mds completion bash | sudo tee /etc/bash_completion.d/mds > /dev/null

  # Install permanently (macOS with Homebrew)
  mds completion bash > $(brew --prefix)/etc/bash_completion.d/mds`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
		},
	}
}
