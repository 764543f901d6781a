package commands

import (
	"github.com/spf13/cobra"

	"github.com/pvault/pvault/internal/logic"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] SK-FILE PTEXT-FILE CTEXT-FILE",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Long: `Encrypt PTEXT-FILE under the symmetric key in SK-FILE and place the
resulting ciphertext in CTEXT-FILE. Any previous content of CTEXT-FILE is
lost. With --suffix, every file after SK-FILE is encrypted to its own name
plus the suffix instead.`,
		Args:              minimumArgs(2),
		PersistentPreRunE: preRun,
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := newConfig(args, false)
			if err != nil {
				return err
			}

			return logic.Run(cfg)
		},
	}

	cmd.Flags().StringP("suffix", "s", "", "Batch mode: encrypt each FILE to FILE<suffix>")
	cmd.Flags().BoolP("delete", "d", false, "Delete the original file after successful encryption")

	return cmd
}
