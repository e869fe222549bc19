// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// RuntimeKey is the "require" entry naming the Go runtime.
const RuntimeKey = "go"

// Manifest is the decoded manifest file.
type Manifest struct {
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Require map[string]string `json:"require"`
}

// Requirement is the parsed runtime requirement of a manifest.
type Requirement struct {
	// Raw is the constraint as written in the manifest (e.g. ">=1.22").
	Raw string
	// Constraint is the parsed constraint.
	Constraint *semver.Constraints
	// Minimum is the lowest version accepted by Constraint.
	Minimum *semver.Version
}

var (
	versionTerm    = regexp.MustCompile(`(>=|<=|!=|~>|>|<|=|\^|~)?\s*v?(\d+(?:\.\d+){0,2})`)
	runtimeVersion = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?`)
)

// Load reads and decodes the manifest at path. Any failure is reported as
// [ErrRequirementUnknown] since nothing can be said about the requirement.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("%w: reading manifest: %w", ErrRequirementUnknown, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("%w: decoding manifest %s: %w", ErrRequirementUnknown, path, err)
	}

	return m, nil
}

// RuntimeRequirement parses the "go" requirement of the manifest.
func (m Manifest) RuntimeRequirement() (Requirement, error) {
	raw := strings.TrimSpace(m.Require[RuntimeKey])
	if raw == "" {
		return Requirement{}, fmt.Errorf("%w: no %q entry in manifest require section", ErrRequirementUnknown, RuntimeKey)
	}

	constraint, err := semver.NewConstraint(raw)
	if err != nil {
		return Requirement{}, fmt.Errorf("%w: parsing constraint %q: %w", ErrRequirementUnknown, raw, err)
	}

	minimum, err := minimumOf(raw)
	if err != nil {
		return Requirement{}, err
	}

	return Requirement{Raw: raw, Constraint: constraint, Minimum: minimum}, nil
}

// RequiredRuntime loads the manifest at path and returns its runtime
// requirement.
func RequiredRuntime(path string) (Requirement, error) {
	m, err := Load(path)
	if err != nil {
		return Requirement{}, err
	}
	return m.RuntimeRequirement()
}

// ParseRuntimeVersion turns a Go runtime version string as reported by
// runtime.Version ("go1.26.1", "go1.27rc1", "devel go1.27-abcdef ...") into
// a semantic version. Pre-release suffixes are dropped.
func ParseRuntimeVersion(raw string) (*semver.Version, error) {
	v := strings.TrimSpace(raw)
	v = strings.TrimPrefix(v, "devel ")
	v = strings.TrimPrefix(v, "go")

	parts := runtimeVersion.FindStringSubmatch(v)
	if parts == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRuntimeVersion, raw)
	}

	normalized := parts[1]
	for _, p := range parts[2:] {
		if p == "" {
			p = "0"
		}
		normalized += "." + p
	}

	version, err := semver.NewVersion(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidRuntimeVersion, raw, err)
	}

	return version, nil
}

// minimumOf returns the smallest version mentioned as a lower bound in the
// constraint. Upper-only constraints such as "<2.0" have no minimum.
func minimumOf(raw string) (*semver.Version, error) {
	var minimum *semver.Version
	for _, match := range versionTerm.FindAllStringSubmatch(raw, -1) {
		switch match[1] {
		case "<", "<=", "!=":
			continue
		}

		v, err := semver.NewVersion(match[2])
		if err != nil {
			continue
		}
		if minimum == nil || v.LessThan(minimum) {
			minimum = v
		}
	}

	if minimum == nil {
		return nil, fmt.Errorf("%w: constraint %q has no lower bound", ErrRequirementUnknown, raw)
	}

	return minimum, nil
}
