// Package config provides the configuration loader for webpin.
package config

import (
	"os"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/zerr"
	"go.webpin.dev/webpin/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file plus
// WEBPIN_* environment overrides.
type FileConfigLoader struct{}

// Load reads a configuration file from the given path and returns the
// resolved domain.Config.
func (l *FileConfigLoader) Load(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file webpinFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	cfg := &domain.Config{
		Origin:       file.Origin,
		LockfilePath: file.Lockfile,
		CacheDir:     file.CacheDir,
		Dependencies: file.Dependencies,
	}

	if cfg.Origin == "" {
		cfg.Origin = domain.DefaultOrigin
	}
	if cfg.LockfilePath == "" {
		cfg.LockfilePath = domain.DefaultLockfileName
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = domain.DefaultModuleCachePath()
	}
	if cfg.Dependencies == nil {
		cfg.Dependencies = map[string]string{}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *domain.Config) error {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return zerr.Wrap(err, "failed to parse environment overrides")
	}

	if overrides.Origin != "" {
		cfg.Origin = overrides.Origin
	}
	if overrides.CacheDir != "" {
		cfg.CacheDir = overrides.CacheDir
	}
	if overrides.Lockfile != "" {
		cfg.LockfilePath = overrides.Lockfile
	}
	return nil
}
