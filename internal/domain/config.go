package domain

// Config represents the prefixer configuration loaded from prefixer.yaml.
type Config struct {
	Defaults DefaultsConfig
	Paths    PathsConfig
	Runs     RunsConfig
}

type DefaultsConfig struct {
	Sequence string
}

type PathsConfig struct {
	SequencesDir string
	RunsDir      string
}

type RunsConfig struct {
	// Index appends one line per saved run to runs/index.jsonl.
	Index bool
}

// DefaultConfig provides sane defaults if prefixer.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Sequence: "sample",
		},
		Paths: PathsConfig{
			SequencesDir: "sequences",
			RunsDir:      "runs",
		},
		Runs: RunsConfig{Index: true},
	}
}
