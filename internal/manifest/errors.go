// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import "errors"

var (
	// ErrRequirementUnknown is returned when the minimum runtime version
	// cannot be determined: the manifest is missing or unreadable, it has no
	// "go" requirement, or the requirement has no lower bound.
	ErrRequirementUnknown = errors.New("unable to determine required runtime version")

	// ErrInvalidRuntimeVersion is returned when a running runtime version
	// string cannot be parsed.
	ErrInvalidRuntimeVersion = errors.New("invalid runtime version")
)
