package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
)

// NetAddress is a host:port listen address usable as a flag value. An empty
// host means every interface (":8080").
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the process command line. See [parseFlags].
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[0], os.Args[1:], os.Stderr)
}

// parseFlags parses args into a partial config. Unset flags stay zero so they
// do not override other sources.
//
//	-a                      http listen address [host]:port
//	-grpc-address           grpc health listen address [host]:port
//	-d                      database DSN (postgres:// or a SQLite file)
//	-c, -config             JSON config file
//	-root-path              URL prefix the application is mounted under
//	-controller-name        name the front controller answers to
//	-manifest               manifest declaring the runtime requirement
//	-site-config            site config file written by setup
//	-pages-dir              page templates directory
//	-static-dir             static assets directory
//	-asset-match            substring | extension
//	-debug-format           html | text
//	-token-sign-key         session token signing key
//	-token-issuer           session token issuer
//	-token-duration         session token lifetime
//	-session-ttl            idle session lifetime
//	-session-secure         HTTPS-only session cookie
//	-session-purge-interval expired session purge interval
//	-request-timeout        per-request timeout
func parseFlags(name string, args []string, output io.Writer) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	cfg := &StructuredConfig{}
	var httpAddress, grpcAddress NetAddress

	fs.Var(&httpAddress, "a", "HTTP listen address [host]:port")
	fs.Var(&grpcAddress, "grpc-address", "gRPC health listen address [host]:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN (postgres:// or a SQLite file)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias of -c)")

	fs.StringVar(&cfg.App.RootPath, "root-path", "", "URL prefix the application is mounted under")
	fs.StringVar(&cfg.App.ControllerName, "controller-name", "", "Name the front controller answers to")
	fs.StringVar(&cfg.App.ManifestPath, "manifest", "", "Manifest file path")
	fs.StringVar(&cfg.App.SiteConfigPath, "site-config", "", "Site config file path")
	fs.StringVar(&cfg.App.PagesDir, "pages-dir", "", "Page templates directory")
	fs.StringVar(&cfg.App.StaticDir, "static-dir", "", "Static assets directory")
	fs.StringVar(&cfg.App.AssetMatch, "asset-match", "", "Asset detection mode (substring, extension)")
	fs.StringVar(&cfg.App.DebugFormat, "debug-format", "", "Diagnostic page format (html, text)")

	fs.StringVar(&cfg.Auth.TokenSignKey, "token-sign-key", "", "Session token signing key")
	fs.StringVar(&cfg.Auth.TokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&cfg.Auth.TokenDuration, "token-duration", 0, "Session token lifetime (e.g. 8h)")

	fs.DurationVar(&cfg.Session.TTL, "session-ttl", 0, "Idle session lifetime (e.g. 24h)")
	fs.BoolVar(&cfg.Session.Secure, "session-secure", false, "Mark the session cookie HTTPS-only")
	fs.DurationVar(&cfg.Session.PurgeInterval, "session-purge-interval", 0, "Expired session purge interval (e.g. 1h)")

	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = httpAddress.String()
	cfg.Server.GRPCAddress = grpcAddress.String()

	return cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses [host]:port. The host may be empty, "localhost" or an IP
// address (IPv6 in brackets).
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("need address in a form `host:port`: %w", err)
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", portStr, err)
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
