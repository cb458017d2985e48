package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"secretstore/internal/audit"
)

var (
	logLimit int
	logJSON  bool
)

func init() {
	logCmd.Flags().IntVarP(&logLimit, "number", "n", 0, "limit number of entries shown")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "output as JSON array")
}

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "View the store's audit log",
	Long: `Displays the audit trail of store operations, oldest first.

Examples:
  secretstore log          # full log
  secretstore log -n 10    # last 10 entries
  secretstore log --json   # JSON output`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		Logger.Infof("Starting log command")

		cfg, _, _, err := setup()
		if err != nil {
			return Logger.ErrorfAndReturn("failed to set up store: %v", err)
		}

		entries, err := audit.ReadEntries(cfg)
		if err != nil {
			return Logger.ErrorfAndReturn("failed to read audit log: %v", err)
		}

		if logLimit > 0 && len(entries) > logLimit {
			entries = entries[len(entries)-logLimit:]
		}

		if len(entries) == 0 {
			fmt.Println("No audit log entries found.")
			return nil
		}

		if logJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		for _, e := range entries {
			line := fmt.Sprintf("%s  %-8s", e.Timestamp, e.Operation)
			var details []string
			if e.KeyName != "" {
				details = append(details, fmt.Sprintf("key=%s (%s)", e.KeyName, e.KeyID))
			}
			if e.FilesCount > 0 {
				details = append(details, fmt.Sprintf("files=%d", e.FilesCount))
			}
			if e.Recipients > 0 {
				details = append(details, fmt.Sprintf("recipients=%d", e.Recipients))
			}
			if e.RemovedCount > 0 {
				details = append(details, fmt.Sprintf("removed=%d", e.RemovedCount))
			}
			if len(details) > 0 {
				line += "  " + strings.Join(details, " ")
			}
			fmt.Println(line)
		}
		return nil
	},
}
