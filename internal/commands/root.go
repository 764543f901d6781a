package commands

import (
	"runtime"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command with the flags shared by all
// subcommands.
func NewRootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "pvault [flags] command [flags]",
		Short: "Personal vault file encryption utility",
		Long: `A personal vault utility that encrypts files under a symmetric key with
CCA-secure authenticated encryption (AES-CTR with an AES-CBC-MAC over the
ciphertext). Provides commands for key generation, encryption, and decryption.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers in batch mode, defaults to number of CPUs")
	root.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-error output")
	root.PersistentFlags().Bool("stats", false, "Print processing statistics")
	root.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	root.AddCommand(NewEncryptCommand(), NewDecryptCommand(), NewKeygenCommand())

	return root
}

// Execute runs the CLI and returns any error for exit-code mapping.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}
