package config

import "time"

// Config represents the complete stubgen configuration.
// It can be loaded from stubgen.yml with environment variable overrides.
type Config struct {
	Source SourceConfig `yaml:"source" mapstructure:"source"`
	Scan   ScanConfig   `yaml:"scan" mapstructure:"scan"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// SourceConfig pins the upstream stubs repository to acquire.
type SourceConfig struct {
	Repo         string        `yaml:"repo" mapstructure:"repo"`                   // clone URL
	Branch       string        `yaml:"branch" mapstructure:"branch"`               // pinned branch
	CloneTimeout time.Duration `yaml:"clone_timeout" mapstructure:"clone_timeout"` // max time for the shallow clone
}

// ScanConfig defines which files to scan and how.
type ScanConfig struct {
	SkipDirs          []string `yaml:"skip_dirs" mapstructure:"skip_dirs"`                   // directory names excluded from the walk
	IncludeExtensions []string `yaml:"include_extensions" mapstructure:"include_extensions"` // PHP extension areas to scan; empty = all
	Workers           int      `yaml:"workers" mapstructure:"workers"`                       // extraction workers; 1 = sequential
}

// OutputConfig defines where the artifact is written.
type OutputConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // output JSON file path
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Source: SourceConfig{
			Repo:         "https://github.com/JetBrains/phpstorm-stubs.git",
			Branch:       "master",
			CloneTimeout: 10 * time.Minute,
		},
		Scan: ScanConfig{
			SkipDirs:          []string{".git", ".github", "tests", "meta", ".idea"},
			IncludeExtensions: nil,
			Workers:           1,
		},
		Output: OutputConfig{
			Path: "data/php_builtins.json",
		},
	}
}
