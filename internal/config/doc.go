// Package config assembles the front controller settings.
//
// Environment variables are read first, then command-line flags, then the
// JSON file named by CONFIG or -c; a later source wins for every field it
// sets. Remaining empty fields come from [Defaults], paths are normalized and
// the result is validated. Use [GetStructuredConfig].
package config
