package commands

import (
	"github.com/spf13/cobra"

	"github.com/pvault/pvault/internal/logic"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] SK-FILE CTEXT-FILE PTEXT-FILE",
		Aliases: []string{"dec"},
		Short:   "Decrypt and verify files",
		Long: `Verify the authentication tag of CTEXT-FILE under the symmetric key in
SK-FILE and, only if it matches, place the recovered plaintext in
PTEXT-FILE. A tampered ciphertext is rejected without releasing a single
plaintext byte. With --suffix, every file after SK-FILE is decrypted to its
own name with the suffix stripped instead.`,
		Args:              minimumArgs(2),
		PersistentPreRunE: preRun,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := newConfig(args, true)
			if err != nil {
				return err
			}

			return logic.Run(cfg)
		},
	}

	cmd.Flags().StringP("suffix", "s", "", "Batch mode: decrypt each FILE<suffix> to FILE")
	cmd.Flags().BoolP("delete", "d", false, "Delete the ciphertext file after successful decryption")

	return cmd
}
