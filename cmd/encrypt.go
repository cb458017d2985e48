package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	serrors "secretstore/internal/errors"
	"secretstore/internal/ui"
	"secretstore/internal/workflows"
)

var encryptCmd = &cobra.Command{
	Use:   "encrypt FILE...",
	Short: "Encrypt files to every registered recipient",
	Long: `Encrypts each file to all key ids in the keylist at once, producing
FILE.gpg next to it. Any one of the corresponding private keys can decrypt
the result. Plaintext inputs are left in place; use clean to remove them.

Arguments may be literal paths or globs (** is supported).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting encrypt command")
		spinner, cleanup := startSpinner("Encrypting files...")
		defer cleanup()

		cfg, client, userConfig, err := setup()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up store: %v", err)
		}

		result, err := workflows.Encrypt(context.Background(), cfg, client, workflows.EncryptOptions{
			Patterns: args,
			Actor:    userConfig.User.UUID,
		})

		if result != nil {
			for _, f := range result.Encrypted {
				Logger.Infof("Encrypted %s", f)
			}
		}

		if err != nil {
			switch {
			case errors.Is(err, serrors.ErrRegistryNotFound), errors.Is(err, serrors.ErrRegistryEmpty):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " The keylist has no recipients\n" +
					ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("secretstore export KEYID [KEYNAME]") + " first"
				return err
			case errors.Is(err, serrors.ErrFileNotFound), errors.Is(err, serrors.ErrNoFilesFound):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " " + err.Error()
				return err
			default:
				return Logger.ErrorfAndReturn("failed to encrypt: %v", err)
			}
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Encrypted %d file(s) to %d recipient(s)", len(result.Encrypted), len(result.Recipients))
		return nil
	},
}
