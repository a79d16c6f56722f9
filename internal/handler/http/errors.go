// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used when reading the session and flash cookies. Callers
// can match against them with [errors.Is].
var (
	// ErrNoSessionCookie is returned when the request carries no session
	// cookie at all.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrInvalidFlashCookie is returned when the flash cookie is malformed
	// or its signature does not match.
	ErrInvalidFlashCookie = errors.New("invalid flash cookie")
)
