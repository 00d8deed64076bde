package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cypherkit/tckrun/internal/analyze"
	"github.com/cypherkit/tckrun/internal/normalizer"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Break down scenario failures by error category",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Analysis reads the normalized form (joined error messages,
		// doc-string queries), so normalize first.
		n := normalizer.New(log)
		if err := n.Run(cfg.Results.Directory, cfg.Results.PatchedDirectory); err != nil {
			return err
		}

		docs, err := normalizer.LoadDir(cfg.Results.PatchedDirectory)
		if err != nil {
			return err
		}

		analyze.Analyze(docs).Render(os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
