package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (STUBGEN_*)
// 2. Config file (stubgen.yml in the working directory, or cfgFile if given)
// 3. Default values
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("stubgen")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("STUBGEN")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., STUBGEN_SOURCE_BRANCH)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("source.repo")
	v.BindEnv("source.branch")
	v.BindEnv("source.clone_timeout")
	v.BindEnv("scan.workers")
	v.BindEnv("output.path")

	setDefaults(v)

	// Config file not found is acceptable - defaults + env vars apply
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile == "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("source.repo", defaults.Source.Repo)
	v.SetDefault("source.branch", defaults.Source.Branch)
	v.SetDefault("source.clone_timeout", defaults.Source.CloneTimeout)
	v.SetDefault("scan.skip_dirs", defaults.Scan.SkipDirs)
	v.SetDefault("scan.include_extensions", defaults.Scan.IncludeExtensions)
	v.SetDefault("scan.workers", defaults.Scan.Workers)
	v.SetDefault("output.path", defaults.Output.Path)
}
