package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyRepo indicates a missing source repository URL
	ErrEmptyRepo = errors.New("empty source repo")

	// ErrEmptyBranch indicates a missing source branch
	ErrEmptyBranch = errors.New("empty source branch")

	// ErrInvalidTimeout indicates a non-positive clone timeout
	ErrInvalidTimeout = errors.New("invalid clone timeout")

	// ErrInvalidWorkers indicates a non-positive worker count
	ErrInvalidWorkers = errors.New("invalid worker count")

	// ErrEmptyOutputPath indicates a missing output path
	ErrEmptyOutputPath = errors.New("empty output path")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if strings.TrimSpace(cfg.Source.Repo) == "" {
		errs = append(errs, ErrEmptyRepo)
	}
	if strings.TrimSpace(cfg.Source.Branch) == "" {
		errs = append(errs, ErrEmptyBranch)
	}
	if cfg.Source.CloneTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: %v", ErrInvalidTimeout, cfg.Source.CloneTimeout))
	}
	if cfg.Scan.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidWorkers, cfg.Scan.Workers))
	}
	if strings.TrimSpace(cfg.Output.Path) == "" {
		errs = append(errs, ErrEmptyOutputPath)
	}

	return errors.Join(errs...)
}
