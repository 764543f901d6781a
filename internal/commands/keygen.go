package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvault/pvault/internal/config"
	"github.com/pvault/pvault/internal/encryption"
	"github.com/pvault/pvault/internal/keyfile"
)

// NewKeygenCommand creates a new cobra command for the keygen subcommand.
func NewKeygenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "keygen [flags] SK-FILE",
		Aliases: []string{"gen"},
		Short:   "Generate a new symmetric key",
		Long: `Generate a symmetric key blob and store it hex-encoded in SK-FILE,
readable only by the owner. The blob holds two key halves: one for
encryption and one for authentication. With --passphrase the key is
derived deterministically instead of drawn from the system CSPRNG.`,
		Args:              exactArgs(1),
		PersistentPreRunE: preRun,
		RunE: func(_ *cobra.Command, args []string) error {
			return runKeygen(args[0])
		},
	}

	cmd.Flags().IntP("bytes", "n", 32, "Total key blob size in bytes (two equal halves: 32, 48 or 64)")
	cmd.Flags().StringP("passphrase", "p", "", "Derive the key from a passphrase instead of random bytes")
	cmd.Flags().String("salt", "", "Hex-encoded salt for passphrase derivation")

	return cmd
}

func runKeygen(path string) error {
	size := viper.GetInt("bytes")
	passphrase := viper.GetString("passphrase")

	var rawKey keyfile.RawKey

	if passphrase != "" {
		salt, err := hex.DecodeString(viper.GetString("salt"))
		if err != nil {
			return fmt.Errorf("%w: invalid salt: %w", config.ErrUsage, err)
		}

		rawKey, err = keyfile.FromPassphrase(passphrase, salt, size)
		if err != nil {
			return err
		}
	} else {
		rawKey = keyfile.Generate(size)
	}

	defer rawKey.Scrub()

	// Reject sizes the encryption pipeline cannot split into two AES keys.
	if _, _, err := encryption.SplitKeys(rawKey); err != nil {
		return fmt.Errorf("%w: %w", config.ErrUsage, err)
	}

	if err := keyfile.Write(path, rawKey); err != nil {
		return err
	}

	if !viper.GetBool("quiet") {
		fmt.Printf("Wrote %d-byte key to %q\n", len(rawKey), path)
	}

	return nil
}
