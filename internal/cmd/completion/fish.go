package completion

import (
	"github.com/spf13/cobra"
)

// NewCmdFish creates the fish completion command.
func NewCmdFish() *cobra.Command {
	return &cobra.Command{
		Use:   "fish",
		Short: "Generate fish completion script",
		Long: `Generate fish completion script for mds.

To load completions in your current shell session:

  mds completion fish | source

To load completions for every new session:

  mds completion fish > ~/.config/fish/completions/mds.fish`,
		Example: `  # Load in current session
  mds completion fish | source

  # Install permanently
  mds completion fish > ~/.config/fish/completions/mds.fish`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
		},
	}
}
