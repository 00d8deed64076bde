package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cypherkit/tckrun/internal/features"
)

var featuresSource string

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Copy .feature files from an openCypher TCK checkout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		source := cfg.Features.Source
		if featuresSource != "" {
			source = featuresSource
		}
		if source == "" {
			return fmt.Errorf("no TCK source directory given; pass --source or set features.source in %s", cfgFile)
		}

		_, err = features.Copy(source, cfg.Features.Target, log)
		return err
	},
}

func init() {
	featuresCmd.Flags().StringVar(&featuresSource, "source", "", "path to the TCK features directory")
	rootCmd.AddCommand(featuresCmd)
}
