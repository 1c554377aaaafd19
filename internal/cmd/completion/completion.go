// Package completion provides shell completion generation commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

// shell describes how to generate and install completions for one shell.
type shell struct {
	name    string
	install string
	example string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name: "bash",
		install: `To load completions in your current shell session:

  source <(spotmd completion bash)

To load completions for every new session, write the script to your
bash-completion directory, e.g. /etc/bash_completion.d/spotmd on Linux or
$(brew --prefix)/etc/bash_completion.d/spotmd on macOS.`,
		example: `  # Load in current session
  source <(spotmd completion bash)

  # Install for all users on Linux
  spotmd completion bash | sudo tee /etc/bash_completion.d/spotmd > /dev/null`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletionV2(w, true)
		},
	},
	{
		name: "zsh",
		install: `To load completions in your current shell session:

  source <(spotmd completion zsh)

To load completions for every new session, make sure compinit runs in
~/.zshrc and place the script in a directory on your fpath:

  spotmd completion zsh > "${fpath[1]}/_spotmd"`,
		example: `  # Load in current session
  source <(spotmd completion zsh)

  # Install permanently
  mkdir -p ~/.zsh/completions
  spotmd completion zsh > ~/.zsh/completions/_spotmd`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name: "fish",
		install: `To load completions in your current shell session:

  spotmd completion fish | source

To load completions for every new session:

  spotmd completion fish > ~/.config/fish/completions/spotmd.fish`,
		example: `  # Install permanently
  spotmd completion fish > ~/.config/fish/completions/spotmd.fish`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name: "powershell",
		install: `To load completions in your current shell session:

  spotmd completion powershell | Out-String | Invoke-Expression

To load completions for every new session, append the output to your
PowerShell profile.`,
		example: `  # Add to profile
  spotmd completion powershell >> $PROFILE`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for spotmd.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, s := range shells {
		cmd.AddCommand(newShellCmd(s))
	}

	return cmd
}

func newShellCmd(s shell) *cobra.Command {
	return &cobra.Command{
		Use:                   s.name,
		Short:                 "Generate " + s.name + " completion script",
		Long:                  "Generate " + s.name + " completion script for spotmd.\n\n" + s.install,
		Example:               s.example,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
