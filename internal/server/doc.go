// Package server binds the front controller's listeners and runs them.
//
// The HTTP listener serves every page, the optional gRPC listener serves the
// health service, and background workers (the session janitor) share the
// same lifetime: the first SIGINT or SIGTERM stops all of them.
package server
