package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cypherkit/tckrun/internal/diff"
)

var diffCmd = &cobra.Command{
	Use:   "diff [baseline.json current.json]",
	Short: "Compare two result files and show regressions",
	Long: `Compares scenario statuses between a baseline run and the current
run. Without arguments, picks golden.json from the results directory
as the baseline against the newest other result file, or the two
newest files when no golden baseline exists.`,
	Args: cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var baselinePath, currentPath string

		switch len(args) {
		case 2:
			baselinePath, currentPath = args[0], args[1]
		case 0:
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			baselinePath, currentPath, err = diff.AutoPick(cfg.Results.Directory)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("pass both a baseline and a current file, or neither")
		}

		baseline, err := diff.LoadStatuses(baselinePath)
		if err != nil {
			return err
		}
		current, err := diff.LoadStatuses(currentPath)
		if err != nil {
			return err
		}

		r := diff.Compare(baseline, current)
		r.BaselineFile = baselinePath
		r.CurrentFile = currentPath
		r.Render(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
