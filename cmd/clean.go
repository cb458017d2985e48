package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"secretstore/internal/ui"
	"secretstore/internal/workflows"
)

var (
	cleanForce  bool
	cleanDryRun bool
)

func init() {
	cleanCmd.Flags().BoolVar(&cleanForce, "force", false, "skip confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "show what would be removed without making changes")
}

var cleanCmd = &cobra.Command{
	Use:   "clean [DIR]",
	Short: "Delete plaintexts that have an encrypted sibling",
	Long: `Recursively scans DIR (default: current directory) for .gpg files and
deletes each plaintext counterpart that still exists alongside. Plaintexts
without a .gpg sibling are never touched; already-missing counterparts are
skipped silently.

Deletion is irreversible. Use --dry-run to preview.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting clean command")

		root := "."
		if len(args) > 0 {
			root = args[0]
		}
		root, err := filepath.Abs(root)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to resolve directory: %v", err)
		}
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			return Logger.ErrorfAndReturn("not a directory: %s", root)
		}

		cfg, _, userConfig, err := setup()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up store: %v", err)
		}

		targets, err := workflows.PlanClean(root)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to scan for encrypted files: %v", err)
		}

		if len(targets) == 0 {
			fmt.Println(ui.Success.Sprint("✓") + " No plaintext files with encrypted siblings. Nothing to clean.")
			return nil
		}

		if cleanDryRun {
			fmt.Printf("[dry-run] Would remove %d file(s):\n", len(targets))
		} else {
			fmt.Printf("Found %d plaintext file(s) with an encrypted sibling:\n", len(targets))
		}
		for _, t := range targets {
			rel, err := filepath.Rel(root, t.Plaintext)
			if err != nil {
				rel = t.Plaintext
			}
			fmt.Printf("  %s\n", rel)
		}

		if cleanDryRun {
			fmt.Println("\nNo changes made.")
			return nil
		}

		if !cleanForce {
			fmt.Println("\nThese files will be permanently deleted; only the .gpg versions remain.")
			if !confirm("Do you want to continue?") {
				fmt.Println("Aborted.")
				return nil
			}
		}

		removed, err := workflows.ApplyClean(cfg, userConfig.User.UUID, targets)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to clean: %v", err)
		}

		fmt.Printf("%s Removed %d file(s)\n", ui.Success.Sprint("✓"), removed)
		return nil
	},
}
