package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/cypherkit/tckrun/internal/domain"
	"github.com/cypherkit/tckrun/internal/history"
	"github.com/cypherkit/tckrun/internal/normalizer"
)

var (
	historyLabel string
	trendLimit   int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Track pass-rate trends across runs",
}

var historyRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record the current results as one run in the history database",
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

		store, err := history.Open(cfg.History.Database)
		if err != nil {
			return err
		}
		defer store.Close()

		label := historyLabel
		if label == "" {
			label = cfg.Report.Project
		}

		run := history.FromSummary(label, time.Now(), domain.Summarize(docs))
		id, err := store.Record(run)
		if err != nil {
			return err
		}

		log.Infof("Recorded run %d: %d/%d passed", id, run.Passed, run.Total)
		return nil
	},
}

var historyTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show recorded runs with pass deltas",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err := history.Open(cfg.History.Database)
		if err != nil {
			return err
		}
		defer store.Close()

		runs, err := store.Trend(trendLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet. Run `tckrun history record` first.")
			return nil
		}

		history.RenderTrend(os.Stdout, runs)
		return nil
	},
}

func init() {
	historyRecordCmd.Flags().StringVar(&historyLabel, "label", "", "label for this run (defaults to report.project)")
	historyTrendCmd.Flags().IntVar(&trendLimit, "limit", 20, "number of recent runs to show (0 = all)")
	historyCmd.AddCommand(historyRecordCmd)
	historyCmd.AddCommand(historyTrendCmd)
	rootCmd.AddCommand(historyCmd)
}
