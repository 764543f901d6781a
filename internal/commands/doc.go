// Package commands provides the command-line interface for the pvault tool.
//
// It implements commands for:
//   - key generation
//   - encryption
//   - decryption
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra and viper.
package commands
