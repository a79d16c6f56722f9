// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated is returned by NewHandlers when no HTTP address
	// is configured. This is a fatal misconfiguration at startup.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	// errNoRenderer is returned by NewHandlers when the page renderer is nil.
	errNoRenderer = errors.New("page renderer is not provided")
)
