// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Asset match modes accepted in [App.AssetMatch].
const (
	AssetMatchSubstring = "substring"
	AssetMatchExtension = "extension"
)

// Diagnostic page formats accepted in [App.DebugFormat].
const (
	DebugFormatHTML = "html"
	DebugFormatText = "text"
)

// Defaults returns the values used for every field left empty after all
// configuration sources have been merged. Secrets have no default.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			ControllerName:   "index.php",
			ScriptSuffix:     ".php",
			DashboardPath:    "/v2/dashboard",
			SetupPath:        "/setup",
			RuntimeErrorPath: "/runtime-error",
			ManifestPath:     "manifest.json",
			SiteConfigPath:   "Include/config.yaml",
			PagesDir:         "pages",
			StaticDir:        "public",
			AssetMatch:       AssetMatchSubstring,
			DebugFormat:      DebugFormatHTML,
			Version:          "dev",
		},
		Auth: Auth{
			TokenIssuer:   "go-crm-front",
			TokenDuration: 8 * time.Hour,
			LoginPath:     "/session/begin",
		},
		Session: Session{
			CookieName: "CRMSESSID",
			TTL:        24 * time.Hour,

			PurgeInterval: time.Hour,
		},
		Storage: Storage{
			DB: DB{
				DSN: "crm.db",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
	}
}
