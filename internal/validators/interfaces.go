// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches storage.
//
// A Validator validates a value as a whole or only the named fields of it,
// so that the same rules serve both sign-in (presence only) and account
// creation (full policy).
package validators

import "context"

// Validator checks a value. With field names it checks only those fields;
// without, it applies every rule.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
