package config

import (
	"fmt"
	"strings"

	"github.com/cypherkit/tckrun/internal/domain"
)

// Validate checks the Config for required fields and valid values.
func Validate(cfg *Config) error {
	var errs []string

	if cfg.Results.Directory == "" {
		errs = append(errs, "results.directory must not be empty")
	}
	if cfg.Results.PatchedDirectory == "" {
		errs = append(errs, "results.patched_directory must not be empty")
	}
	if cfg.Results.Directory != "" && cfg.Results.Directory == cfg.Results.PatchedDirectory {
		errs = append(errs, "results.patched_directory must differ from results.directory")
	}

	if cfg.Report.Output == "" {
		errs = append(errs, "report.output must not be empty")
	}
	if cfg.Report.Templates.Directory == "" {
		errs = append(errs, "report.templates.directory must not be empty")
	}
	if cfg.Report.Templates.Default == "" {
		errs = append(errs, "report.templates.default must not be empty")
	}

	if cfg.History.Database == "" {
		errs = append(errs, "history.database must not be empty")
	}

	if cfg.Logging.Level != "" {
		validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
		if !validLevels[cfg.Logging.Level] {
			errs = append(errs, fmt.Sprintf("logging.level must be one of: debug, info, warn, error (got %q)", cfg.Logging.Level))
		}
	}

	if len(errs) > 0 {
		return domain.NewError("config", "", fmt.Sprintf("validation failed: %s", strings.Join(errs, "; ")), nil)
	}

	return nil
}
