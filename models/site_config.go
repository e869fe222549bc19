package models

// SiteConfig is the per-installation configuration written by the setup
// flow. Its presence on disk means the site is installed.
type SiteConfig struct {
	// SiteName is shown in page titles and on the dashboard.
	SiteName string `yaml:"site_name" json:"site_name"`

	// URL is the public base URL of the installation.
	URL string `yaml:"url" json:"url"`

	// Locale is a BCP 47 language tag (e.g. "en-US").
	Locale string `yaml:"locale" json:"locale"`

	// Timezone is an IANA zone name (e.g. "Europe/Berlin").
	Timezone string `yaml:"timezone" json:"timezone"`
}
