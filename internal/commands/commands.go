package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pvault/pvault/internal/config"
)

// preRun binds flags (local and inherited) into viper and configures the
// log level. Installed as PersistentPreRunE on every subcommand.
func preRun(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	if err := viper.BindPFlags(cmd.InheritedFlags()); err != nil {
		return fmt.Errorf("binding inherited flags: %w", err)
	}

	if viper.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	return nil
}

// newConfig assembles the run configuration from bound flags and the
// positional arguments: SK-FILE first, then either INPUT OUTPUT (single
// file) or a list of inputs when --suffix selects batch mode.
func newConfig(args []string, decrypt bool) (*config.Config, error) {
	var cfg config.Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.Decrypt = decrypt
	cfg.KeyFile = args[0]

	if cfg.Suffix != "" {
		cfg.Files = args[1:]
	} else {
		const singleModeArgs = 3

		if len(args) != singleModeArgs {
			return nil, fmt.Errorf("%w: expected SK-FILE INPUT OUTPUT, or --suffix with a list of files", config.ErrUsage)
		}

		cfg.Files = args[1:2]
		cfg.Output = args[2]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// minimumArgs is cobra.MinimumNArgs with the error marked as a usage error.
func minimumArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return fmt.Errorf("%w: requires at least %d argument(s), received %d", config.ErrUsage, n, len(args))
		}

		return nil
	}
}

// exactArgs is cobra.ExactArgs with the error marked as a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: requires exactly %d argument(s), received %d", config.ErrUsage, n, len(args))
		}

		return nil
	}
}
