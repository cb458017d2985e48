package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"secretstore/internal/configs"
	"secretstore/internal/keyring"
	logger "secretstore/internal/logging"
	"secretstore/internal/store"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "secretstore",
		Short: "Share encrypted files through a directory of public keys",
		Long: `Secretstore coordinates multi-recipient file encryption for a small team.

It shells out to gpg for all cryptography and keeps a .secretstore
directory of exported public keys plus a keylist registry. Anyone whose
key is in the registry can decrypt files encrypted by anyone else.

Typical flow:
  secretstore export 0xDEADBEEF alice   # publish your public key
  secretstore import                    # load everyone else's keys
  secretstore encrypt notes.txt         # produce notes.txt.gpg for the team
  secretstore decrypt notes.txt.gpg     # get notes.txt back
  secretstore clean                     # drop plaintexts that have a .gpg`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing command with verbose=%t, debug=%t", verbose, debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation prints usage and exits non-zero.
			_ = cmd.Help()
			return ErrUsage
		},
		// Errors are reported by the commands themselves (or by main for
		// anything else); cobra should not print them a second time.
		SilenceErrors: true,
		SilenceUsage:  true,
	}
)

// ErrUsage signals a usage error whose help text was already printed; main
// exits 1 without printing it again.
var ErrUsage = errors.New("usage")

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(encryptCmd)
	RootCmd.AddCommand(decryptCmd)
	RootCmd.AddCommand(cleanCmd)
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(logCmd)
}

// setup resolves the store for the current working directory, the user
// config, and the gpg client it selects.
func setup() (store.Config, *keyring.GPG, *configs.UserConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return store.Config{}, nil, nil, err
	}

	cfg, err := store.Locate(wd)
	if err != nil {
		return store.Config{}, nil, nil, err
	}
	Logger.Debugf("Key directory: %s (%s)", cfg.KeyDir, cfg.Origin)

	userConfig, err := configs.EnsureUserConfig()
	if err != nil {
		return store.Config{}, nil, nil, err
	}

	client := keyring.NewGPG(userConfig.GPG.Binary)
	return cfg, client, userConfig, nil
}
