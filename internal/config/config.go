// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-crm-front server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file, with defaults filled in last.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the front controller settings: root path, naming convention,
	// fixed redirect targets and the locations of the manifest, site config,
	// page templates and static assets.
	App App `envPrefix:"APP_"`

	// Auth holds the token parameters used by the authentication manager.
	Auth Auth `envPrefix:"AUTH_"`

	// Session holds the session cookie settings.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds configuration for the session and user database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds settings of the front controller itself.
type App struct {
	// RootPath is the URL prefix the application is mounted under
	// (e.g. "/crm"). Empty means the application is served from "/".
	// Env: APP_ROOT_PATH
	RootPath string `env:"ROOT_PATH"`

	// ControllerName is the name the front controller answers to. Requests
	// naming it directly are redirected to the dashboard.
	// Env: APP_CONTROLLER_NAME
	ControllerName string `env:"CONTROLLER_NAME"`

	// ScriptSuffix is appended to camel-cased request names when looking up
	// legacy script entries in the route registry.
	// Env: APP_SCRIPT_SUFFIX
	ScriptSuffix string `env:"SCRIPT_SUFFIX"`

	// DashboardPath, SetupPath and RuntimeErrorPath are the fixed redirect
	// targets, relative to RootPath.
	DashboardPath    string `env:"DASHBOARD_PATH"`
	SetupPath        string `env:"SETUP_PATH"`
	RuntimeErrorPath string `env:"RUNTIME_ERROR_PATH"`

	// ManifestPath points to the JSON manifest declaring the minimum
	// runtime version.
	// Env: APP_MANIFEST_PATH
	ManifestPath string `env:"MANIFEST_PATH"`

	// SiteConfigPath points to the YAML site configuration written by the
	// setup flow. Its absence means the site is not installed.
	// Env: APP_SITE_CONFIG_PATH
	SiteConfigPath string `env:"SITE_CONFIG_PATH"`

	// PagesDir holds *.html page templates registered at startup.
	// Env: APP_PAGES_DIR
	PagesDir string `env:"PAGES_DIR"`

	// StaticDir holds static assets registered at startup.
	// Env: APP_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`

	// AssetMatch selects how unresolved static asset requests are detected:
	// "substring" or "extension".
	// Env: APP_ASSET_MATCH
	AssetMatch string `env:"ASSET_MATCH"`

	// DebugFormat selects the diagnostic page format: "html" or "text".
	// Env: APP_DEBUG_FORMAT
	DebugFormat string `env:"DEBUG_FORMAT"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Auth holds token settings of the authentication manager.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LoginPath is the login page, relative to App.RootPath.
	// Env: AUTH_LOGIN_PATH
	LoginPath string `env:"LOGIN_PATH"`
}

// Session holds the session cookie settings.
type Session struct {
	// CookieName is the name of the session id cookie.
	// Env: SESSION_COOKIE_NAME
	CookieName string `env:"COOKIE_NAME"`

	// TTL is how long an idle session is kept.
	// Env: SESSION_TTL
	TTL time.Duration `env:"TTL"`

	// Secure marks the session cookie as HTTPS-only.
	// Env: SESSION_SECURE
	Secure bool `env:"SECURE"`

	// PurgeInterval is how often the janitor deletes expired sessions.
	// Env: SESSION_PURGE_INTERVAL
	PurgeInterval time.Duration `env:"PURGE_INTERVAL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health endpoint.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the session and user database.
type DB struct {
	// DSN selects the driver: "postgres://" and "postgresql://" DSNs open
	// PostgreSQL through pgx, anything else is treated as a SQLite file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Zero fields left after merging are filled from [Defaults].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
