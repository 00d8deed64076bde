package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Results: ResultsConfig{
			Directory:        "results",
			PatchedDirectory: ".results-patched",
		},
		Report: ReportConfig{
			Output:  "tck-report.html",
			Title:   "openCypher TCK Results",
			Project: "cypher-tck",
			Templates: TemplateConfig{
				Directory: "templates",
				Default:   "report_default",
			},
		},
		History: HistoryConfig{
			Database: ".tckrun/history.db",
		},
		Features: FeaturesConfig{
			Target: "features",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
