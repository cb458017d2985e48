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

var decryptCmd = &cobra.Command{
	Use:   "decrypt FILE...",
	Short: "Decrypt .gpg files with your local keyring",
	Long: `Decrypts each FILE.gpg to FILE using whatever private keys your gpg
keyring holds. Ciphertext inputs are left in place.

Arguments may be literal paths or globs (** is supported).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting decrypt command")
		spinner, cleanup := startSpinner("Decrypting files...")
		defer cleanup()

		cfg, client, userConfig, err := setup()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up store: %v", err)
		}

		result, err := workflows.Decrypt(context.Background(), cfg, client, workflows.DecryptOptions{
			Patterns: args,
			Actor:    userConfig.User.UUID,
		})

		if result != nil {
			for _, f := range result.Decrypted {
				Logger.Infof("Decrypted %s", f)
			}
		}

		if err != nil {
			switch {
			case errors.Is(err, serrors.ErrNotCiphertext):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " " + err.Error() + "\n" +
					ui.Info.Sprint("→") + " Decrypt inputs must end in " + ui.Path.Sprint(".gpg")
				return err
			case errors.Is(err, serrors.ErrFileNotFound), errors.Is(err, serrors.ErrNoFilesFound):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " " + err.Error()
				return err
			default:
				return Logger.ErrorfAndReturn("failed to decrypt: %v", err)
			}
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Decrypted %d file(s)", len(result.Decrypted))
		return nil
	},
}
