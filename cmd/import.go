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

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import every public key from the store into your keyring",
	Long: `Loads all .pub files in the key directory into your local gpg keyring.

Re-importing a known key is harmless. The batch stops at the first key gpg
rejects.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting import command")
		spinner, cleanup := startSpinner("Importing public keys...")
		defer cleanup()

		cfg, client, userConfig, err := setup()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up store: %v", err)
		}

		result, err := workflows.Import(context.Background(), cfg, client, workflows.ImportOptions{
			Actor: userConfig.User.UUID,
		})

		if result != nil {
			for _, w := range result.Warnings {
				Logger.WarnfAlways("%s", w)
			}
			for _, f := range result.Imported {
				Logger.Infof("Imported %s", f)
			}
		}

		if err != nil {
			if errors.Is(err, serrors.ErrNoPublicKeys) {
				spinner.FinalMSG = ui.Warning.Sprint("⚠") + " No public key files in " + ui.Path.Sprint(cfg.KeyDir) + "\n" +
					ui.Info.Sprint("→") + " Teammates publish theirs with " + ui.Code.Sprint("secretstore export")
				return err
			}
			return Logger.ErrorfAndReturn("failed to import keys: %v", err)
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" Imported %d public key(s) into your keyring", len(result.Imported))
		return nil
	},
}
