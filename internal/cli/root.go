package cli

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cypherkit/tckrun/internal/config"
)

var (
	cfgFile string
	verbose bool
	log     *logrus.Logger
)

// rootCmd is the base command for tckrun.
var rootCmd = &cobra.Command{
	Use:   "tckrun",
	Short: "openCypher TCK result tooling",
	Long: `tckrun normalizes openCypher TCK result files produced by the
behavior-driven test runner, renders static HTML reports from them,
and tracks pass-rate trends across runs.

Everything is driven by a YAML configuration file (tckrun.yaml).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "tckrun.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	log = logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the config file, falling back to defaults when the
// default config file is simply not there. An explicitly passed path
// must exist.
func loadConfig() (*config.Config, error) {
	if _, err := os.Stat(cfgFile); os.IsNotExist(err) && cfgFile == "tckrun.yaml" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	applyLogLevel(cfg)
	return cfg, nil
}

func applyLogLevel(cfg *config.Config) {
	if verbose {
		return // --verbose wins
	}
	switch cfg.Logging.Level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	case "info", "":
		log.SetLevel(logrus.InfoLevel)
	}
}
