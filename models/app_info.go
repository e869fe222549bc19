package models

// AppInfo is served by the version endpoint.
type AppInfo struct {
	Version     string `json:"version"`
	GoVersion   string `json:"go_version"`
	BuildDate   string `json:"build_date"`
	BuildCommit string `json:"build_commit"`
}
