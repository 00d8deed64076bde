package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cypherkit/tckrun/internal/normalizer"
)

var (
	normalizeResultsDir string
	normalizeOutputDir  string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Rewrite raw result files into report-compatible form",
	Long: `Reads every JSON result file from the results directory, repairs the
fields the report renderer requires (feature uri/id, scenario id/line,
step results, doc strings), and writes the rewritten copies into the
patched-results directory. The patched directory is cleared first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		inputDir := cfg.Results.Directory
		if normalizeResultsDir != "" {
			inputDir = normalizeResultsDir
		}
		outputDir := cfg.Results.PatchedDirectory
		if normalizeOutputDir != "" {
			outputDir = normalizeOutputDir
		}

		return normalizer.New(log).Run(inputDir, outputDir)
	},
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeResultsDir, "results", "", "results directory (overrides config)")
	normalizeCmd.Flags().StringVar(&normalizeOutputDir, "out", "", "patched output directory (overrides config)")
	rootCmd.AddCommand(normalizeCmd)
}
