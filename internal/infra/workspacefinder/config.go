package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/aalvaropc/prefixer/internal/domain"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the workspace marker and configuration file name.
const ConfigFile = "prefixer.yaml"

// LoadConfig loads prefixer.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Prefixer.Defaults.Sequence != "" {
		cfg.Defaults.Sequence = y.Prefixer.Defaults.Sequence
	}
	if y.Prefixer.Paths.SequencesDir != "" {
		cfg.Paths.SequencesDir = y.Prefixer.Paths.SequencesDir
	}
	if y.Prefixer.Paths.RunsDir != "" {
		cfg.Paths.RunsDir = y.Prefixer.Paths.RunsDir
	}
	if y.Prefixer.Runs.Index != nil {
		cfg.Runs.Index = *y.Prefixer.Runs.Index
	}

	return cfg, nil
}

type yamlConfig struct {
	Prefixer struct {
		Defaults struct {
			Sequence string `yaml:"sequence"`
		} `yaml:"defaults"`

		Paths struct {
			SequencesDir string `yaml:"sequences_dir"`
			RunsDir      string `yaml:"runs_dir"`
		} `yaml:"paths"`

		Runs struct {
			Index *bool `yaml:"index"`
		} `yaml:"runs"`
	} `yaml:"prefixer"`
}
