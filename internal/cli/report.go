package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cypherkit/tckrun/internal/normalizer"
	"github.com/cypherkit/tckrun/internal/report"
)

var (
	reportOutput string
	reportTitle  string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Normalize results and render a static HTML report",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		n := normalizer.New(log)
		if err := n.Run(cfg.Results.Directory, cfg.Results.PatchedDirectory); err != nil {
			return err
		}

		docs, err := normalizer.LoadDir(cfg.Results.PatchedDirectory)
		if err != nil {
			return err
		}

		engine, err := report.NewEngine(cfg.Report.Templates.Directory, cfg.Report.Templates.Default)
		if err != nil {
			return err
		}

		opts := report.Options{
			OutputPath: cfg.Report.Output,
			Title:      cfg.Report.Title,
			Project:    cfg.Report.Project,
			NotesFile:  cfg.Report.NotesFile,
			Timestamp:  time.Now(),
		}
		if reportOutput != "" {
			opts.OutputPath = reportOutput
		}
		if reportTitle != "" {
			opts.Title = reportTitle
		}

		return report.NewGenerator(engine, log).Generate(docs, opts)
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportOutput, "out", "", "report output path (overrides config)")
	reportCmd.Flags().StringVar(&reportTitle, "title", "", "report page title (overrides config)")
	rootCmd.AddCommand(reportCmd)
}
