package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	serrors "secretstore/internal/errors"
	"secretstore/internal/ui"
	"secretstore/internal/workflows"
)

var exportCmd = &cobra.Command{
	Use:   "export KEYID [KEYNAME]",
	Short: "Export a public key into the store and register it",
	Long: `Exports the identified public key from your local gpg keyring into the
key directory as KEYNAME.pub and appends "KEYID KEYNAME" to the keylist.

KEYNAME defaults to username@hostname. Exporting over an existing key file
is refused; remove the file and its keylist line by hand first.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting export command")
		spinner, cleanup := startSpinner("Exporting public key...")
		defer cleanup()

		cfg, client, userConfig, err := setup()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up store: %v", err)
		}

		opts := workflows.ExportOptions{
			KeyID:          args[0],
			DefaultKeyName: userConfig.User.DefaultKeyName,
			Actor:          userConfig.User.UUID,
		}
		if len(args) > 1 {
			opts.KeyName = args[1]
		}

		result, err := workflows.Export(context.Background(), cfg, client, opts)
		if err != nil {
			switch {
			case errors.Is(err, serrors.ErrKeyFileExists):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " A key named " + ui.Highlight.Sprint(opts.KeyName) + " was already exported\n" +
					ui.Info.Sprint("→") + " Remove the " + ui.Path.Sprint(".pub") + " file and its " + ui.Path.Sprint("keylist") + " line, then retry"
				return err
			case errors.Is(err, serrors.ErrKeyNotFound):
				spinner.FinalMSG = ui.Error.Sprint("✗") + " No key matching " + ui.Highlight.Sprint(opts.KeyID) + " in your local keyring"
				return err
			default:
				return Logger.ErrorfAndReturn("failed to export key: %v", err)
			}
		}

		Logger.Infof("Exported key %s as %s", result.KeyID, result.KeyName)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Exported " + ui.Highlight.Sprint(result.KeyName) + " to " + ui.Path.Sprint(result.KeyFilePath) + "\n" +
			ui.Info.Sprint("→") + " Commit the key directory so teammates can run " + ui.Code.Sprint("secretstore import")
		return nil
	},
}
