package cli

import (
	"github.com/spf13/cobra"

	deperrors "depsheet/pkg/errors"
)

// genCompletion writes a completion script for shell to the command's
// stdout and returns without reading standard input.
//
// To load completions:
//
//	Bash:  source <(depsheet --completion bash)
//	Zsh:   depsheet --completion zsh > "${fpath[1]}/_depsheet"
//	Fish:  depsheet --completion fish | source
func genCompletion(cmd *cobra.Command, shell string) error {
	out := cmd.OutOrStdout()
	switch shell {
	case "bash":
		return cmd.Root().GenBashCompletion(out)
	case "zsh":
		return cmd.Root().GenZshCompletion(out)
	case "fish":
		return cmd.Root().GenFishCompletion(out, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(out)
	default:
		return deperrors.New(deperrors.ErrCodeInvalidInput,
			"unsupported shell %q (supported: bash, zsh, fish, powershell)", shell)
	}
}
