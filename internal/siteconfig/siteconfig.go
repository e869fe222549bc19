// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package siteconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/MKhiriev/go-crm-front/models"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// File is the site configuration stored at a fixed path.
type File struct {
	path string
}

// New returns a File bound to path.
func New(path string) *File {
	return &File{path: path}
}

// Path returns the location of the file.
func (f *File) Path() string {
	return f.path
}

// Exists reports whether the file is present. Errors other than "not
// exist" are returned so that an unreadable file is not mistaken for an
// uninstalled site.
func (f *File) Exists() (bool, error) {
	_, err := os.Stat(f.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("error checking site configuration %q: %w", f.path, err)
}

// Load reads, decodes and validates the file.
func (f *File) Load() (models.SiteConfig, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.SiteConfig{}, ErrNotInstalled
		}
		return models.SiteConfig{}, fmt.Errorf("error reading site configuration %q: %w", f.path, err)
	}

	var cfg models.SiteConfig
	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return models.SiteConfig{}, fmt.Errorf("%w: %v", ErrInvalidSiteConfig, err)
	}

	return Normalize(cfg)
}

// Create validates cfg and writes it, failing with ErrAlreadyInstalled if
// the file is already present. Parent directories are created as needed.
func (f *File) Create(cfg models.SiteConfig) (models.SiteConfig, error) {
	cfg, err := Normalize(cfg)
	if err != nil {
		return models.SiteConfig{}, err
	}

	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("error encoding site configuration: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(f.path), 0o750); err != nil {
		return models.SiteConfig{}, fmt.Errorf("error creating site configuration directory: %w", err)
	}

	out, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return models.SiteConfig{}, ErrAlreadyInstalled
		}
		return models.SiteConfig{}, fmt.Errorf("error creating site configuration %q: %w", f.path, err)
	}
	defer out.Close()

	if _, err = out.Write(raw); err != nil {
		return models.SiteConfig{}, fmt.Errorf("error writing site configuration %q: %w", f.path, err)
	}

	return cfg, nil
}

// Remove deletes the file. Used to roll back a failed installation.
func (f *File) Remove() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing site configuration %q: %w", f.path, err)
	}
	return nil
}

// Normalize trims every field, canonicalizes the locale tag and checks the
// timezone and URL. Empty locale and timezone default to "en-US" and "UTC".
func Normalize(cfg models.SiteConfig) (models.SiteConfig, error) {
	cfg.SiteName = strings.TrimSpace(cfg.SiteName)
	cfg.URL = strings.TrimSpace(cfg.URL)
	cfg.Locale = strings.TrimSpace(cfg.Locale)
	cfg.Timezone = strings.TrimSpace(cfg.Timezone)

	if cfg.SiteName == "" {
		return models.SiteConfig{}, fmt.Errorf("%w: site name is required", ErrInvalidSiteConfig)
	}

	if cfg.URL != "" {
		u, err := url.Parse(cfg.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return models.SiteConfig{}, fmt.Errorf("%w: url %q must be absolute", ErrInvalidSiteConfig, cfg.URL)
		}
	}

	if cfg.Locale == "" {
		cfg.Locale = "en-US"
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return models.SiteConfig{}, fmt.Errorf("%w: locale %q: %v", ErrInvalidSiteConfig, cfg.Locale, err)
	}
	cfg.Locale = tag.String()

	if cfg.Timezone == "" {
		cfg.Timezone = "UTC"
	}
	if _, err = time.LoadLocation(cfg.Timezone); err != nil {
		return models.SiteConfig{}, fmt.Errorf("%w: timezone %q: %v", ErrInvalidSiteConfig, cfg.Timezone, err)
	}

	return cfg, nil
}
