// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//
// Rules are declared as go-playground/validator tags. Services call Validate
// with the whole value for forms such as registration, or with a list of
// field names when only part of a record changes.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Field names restrict validation to the named fields; none means all.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
