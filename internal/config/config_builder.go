package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
)

// configBuilder collects partial configs from each source and merges them in
// the order they were added.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := mergo.Merge(config, Defaults()); err != nil {
		return nil, fmt.Errorf("error applying default configs: %w", err)
	}

	config.normalize()
	return config, config.validate()
}

// normalize brings operator-friendly spellings into the canonical form the
// front controller compares against: "/" and "/crm/" become "" and "/crm",
// redirect targets gain a leading slash, mode names are lower-cased.
func (cfg *StructuredConfig) normalize() {
	cfg.App.RootPath = strings.TrimRight(strings.TrimSpace(cfg.App.RootPath), "/")
	cfg.App.DashboardPath = withLeadingSlash(cfg.App.DashboardPath)
	cfg.App.SetupPath = withLeadingSlash(cfg.App.SetupPath)
	cfg.App.RuntimeErrorPath = withLeadingSlash(cfg.App.RuntimeErrorPath)
	cfg.Auth.LoginPath = withLeadingSlash(cfg.Auth.LoginPath)
	cfg.App.AssetMatch = strings.ToLower(strings.TrimSpace(cfg.App.AssetMatch))
	cfg.App.DebugFormat = strings.ToLower(strings.TrimSpace(cfg.App.DebugFormat))
}

func withLeadingSlash(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || strings.HasPrefix(p, "/") {
		return p
	}
	return "/" + p
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flagCfg, err := ParseFlags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// withJSON loads the file named by the last source that set CONFIG / -c.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
