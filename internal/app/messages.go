// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages shown to dashboard users
// as flash notifications and inline form errors.
//
// Keeping them in one place keeps the wording consistent between handlers
// and their tests.
package app

const (
	// MsgRegistrationSuccessful follows a created account on the login page.
	MsgRegistrationSuccessful = "Registration successful! Please login."

	// MsgUserAlreadyExists is shown when the username or email is taken.
	MsgUserAlreadyExists = "Username or email already exists"

	// MsgInvalidRegistration is shown when a registration field fails
	// validation and no more specific message applies.
	MsgInvalidRegistration = "Please provide a username of 3 to 64 characters, a valid email and a password of at least 6 characters"

	// MsgInvalidLoginPassword is shown for every failed login, whether the
	// username is unknown or the password is wrong.
	MsgInvalidLoginPassword = "Invalid username or password"

	MsgLoginSuccessful = "Login successful!"
	MsgLoggedOut       = "You have been logged out"

	// MsgLoginRequired is shown after an anonymous request to a protected
	// page was redirected to the login form.
	MsgLoginRequired = "Please login to access this page"

	// MsgCityUpdated is a format string taking the new city.
	MsgCityUpdated = "City updated to %s"

	MsgCityTooLong = "City name must be at most 100 characters"

	MsgPreferencesUpdated = "Preferences updated successfully"
)
