// Package http implements the HTTP transport layer of go-crm-front.
//
// The central piece is [FrontController]: every request that no fixed route
// claims goes through its bootstrap stage (runtime requirement, site
// configuration, path normalization, authentication) and is then dispatched
// to a handler from the route registry. The fixed routes cover the setup
// flow, the login form, the runtime error page, the dashboard, health and
// version endpoints. Tracing, access logging, compression and sessions are
// handled by middleware in this package.
package http
