package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// completionShell describes one generated completion script.
type completionShell struct {
	name  string
	load  string
	write func(root *cobra.Command, w io.Writer) error
}

// completionShells lists the supported shells in help order.
func completionShells() []completionShell {
	return []completionShell{
		{
			name:  "bash",
			load:  "source <(clockface completion bash)",
			write: func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
		},
		{
			name:  "zsh",
			load:  "source <(clockface completion zsh)",
			write: func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
		},
		{
			name:  "fish",
			load:  "clockface completion fish | source",
			write: func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
		},
		{
			name:  "powershell",
			load:  "clockface completion powershell | Out-String | Invoke-Expression",
			write: func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
		},
	}
}

// AddCompletionCommand replaces Cobra's default completion command with
// one subcommand per shell.
func AddCompletionCommand(rootCmd *cobra.Command) {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	completionCmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completions",
		Long: `Generate shell completion scripts for clockface.

  clockface completion bash
  clockface completion zsh
  clockface completion fish
  clockface completion powershell`,
	}

	for _, sh := range completionShells() {
		completionCmd.AddCommand(newShellCompletionCmd(sh))
	}

	rootCmd.AddCommand(completionCmd)
}

func newShellCompletionCmd(sh completionShell) *cobra.Command {
	return &cobra.Command{
		Use:   sh.name,
		Short: "Generate " + sh.name + " completion script",
		Long: "Generate the " + sh.name + ` completion script for clockface.

To load completions in the current session:
  ` + sh.load,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sh.write(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
