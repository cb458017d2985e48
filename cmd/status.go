package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"secretstore/internal/store"
	"secretstore/internal/ui"
	"secretstore/internal/workflows"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the store location, registry entries, and gpg availability",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting status command")

		cfg, client, _, err := setup()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up store: %v", err)
		}

		result, err := workflows.Status(cfg)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read store status: %v", err)
		}

		fmt.Println("Key directory: " + ui.Path.Sprint(result.KeyDir))
		switch result.Origin {
		case store.OriginEnv:
			fmt.Println("  set by " + ui.Code.Sprint(store.EnvKeyDir))
		case store.OriginFallback:
			fmt.Println("  no marker directory found; export will create this one")
		}
		if !result.KeyDirExists {
			fmt.Println("  " + ui.Warning.Sprint("(does not exist yet)"))
		}

		if gpgPath, err := client.LookPath(); err == nil {
			fmt.Println("gpg binary:    " + ui.Path.Sprint(gpgPath))
		} else {
			fmt.Println("gpg binary:    " + ui.Error.Sprint("not found on PATH"))
		}

		fmt.Printf("Public keys:   %d file(s)\n", result.PublicKeyCount)

		if len(result.Entries) == 0 {
			fmt.Println("Registry:      empty")
			return nil
		}
		fmt.Printf("Registry:      %d entry(ies)\n", len(result.Entries))
		for _, e := range result.Entries {
			fmt.Printf("  %-20s %s\n", e.KeyID, e.Name)
		}
		return nil
	},
}
