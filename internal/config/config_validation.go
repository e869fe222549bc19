// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// package sentinel errors otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.ControllerName == "" || strings.Contains(cfg.App.ControllerName, "/") {
		return fmt.Errorf("%w: controller name %q", ErrInvalidAppConfigs, cfg.App.ControllerName)
	}

	if cfg.App.RootPath != "" && (!strings.HasPrefix(cfg.App.RootPath, "/") || strings.HasSuffix(cfg.App.RootPath, "/")) {
		return fmt.Errorf("%w: root path %q must start with '/' and must not end with '/'", ErrInvalidAppConfigs, cfg.App.RootPath)
	}

	switch cfg.App.AssetMatch {
	case AssetMatchSubstring, AssetMatchExtension:
	default:
		return fmt.Errorf("%w: asset match mode %q", ErrInvalidAppConfigs, cfg.App.AssetMatch)
	}

	switch cfg.App.DebugFormat {
	case DebugFormatHTML, DebugFormatText:
	default:
		return fmt.Errorf("%w: debug format %q", ErrInvalidAppConfigs, cfg.App.DebugFormat)
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Session.CookieName == "" || cfg.Session.TTL <= 0 || cfg.Session.PurgeInterval <= 0 {
		return ErrInvalidSessionConfigs
	}

	return nil
}
