// Package siteconfig reads and writes the per-installation site
// configuration file.
//
// The file is YAML:
//
//	site_name: Grace Community Church
//	url: https://crm.example.org
//	locale: en-US
//	timezone: America/Chicago
//
// Its absence means the application has not been installed yet and the
// front controller sends every request to the setup page.
package siteconfig
