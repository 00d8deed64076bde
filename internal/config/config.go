package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cypherkit/tckrun/internal/domain"
)

// Config is the top-level configuration struct.
type Config struct {
	Results  ResultsConfig  `yaml:"results"`
	Report   ReportConfig   `yaml:"report"`
	History  HistoryConfig  `yaml:"history"`
	Features FeaturesConfig `yaml:"features"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ResultsConfig locates the raw runner output and the normalized copy.
type ResultsConfig struct {
	Directory        string `yaml:"directory"`
	PatchedDirectory string `yaml:"patched_directory"`
}

// ReportConfig carries the presentational options handed to the HTML
// report renderer. None of these affect normalization.
type ReportConfig struct {
	Output    string         `yaml:"output"`
	Title     string         `yaml:"title"`
	Project   string         `yaml:"project"`
	NotesFile string         `yaml:"notes_file"`
	Templates TemplateConfig `yaml:"templates"`
}

type TemplateConfig struct {
	Directory string `yaml:"directory"`
	Default   string `yaml:"default"`
}

type HistoryConfig struct {
	Database string `yaml:"database"`
}

type FeaturesConfig struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML configuration file and returns a Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewError("config", path, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, domain.NewError("config", path, "failed to parse config file", err)
	}

	return cfg, nil
}
