// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-crm-front handlers.
//
// All Msg* constants are human-readable message strings shown on the login
// and setup forms to describe why a submission was rejected. Keeping them in
// one place ensures consistent wording throughout the built-in pages.
package app

const (
	// MsgInvalidDataProvided is shown when a form misses a required field
	// or a field has an unusable value.
	MsgInvalidDataProvided = "Some of the provided values are missing or invalid."

	// MsgInvalidLoginPassword is shown when the supplied username/password
	// combination does not match any user.
	MsgInvalidLoginPassword = "Invalid username or password."

	// MsgWeakPassword is shown when a new password is shorter than the
	// minimum length.
	MsgWeakPassword = "The password must be at least 8 characters long."

	// MsgPasswordTooLong is shown when a new password exceeds the bcrypt
	// input limit of 72 bytes.
	MsgPasswordTooLong = "The password must not be longer than 72 bytes."

	// MsgInvalidUsername is shown when a username contains whitespace or
	// control characters, or is longer than 64 characters.
	MsgInvalidUsername = "The username must be 1 to 64 characters without spaces."

	// MsgInvalidSiteConfig is shown when the site name, URL, locale or
	// timezone of the installer form is rejected.
	MsgInvalidSiteConfig = "Check the site name, URL, locale and timezone."

	// MsgLoginAlreadyExists is shown when the administrator username is
	// already taken.
	MsgLoginAlreadyExists = "This username already exists."

	// MsgAlreadyInstalled is shown when setup runs on an installed site.
	MsgAlreadyInstalled = "The site is already installed."

	// MsgInternalServerError is shown when an unexpected server-side
	// failure occurs that the visitor cannot resolve.
	MsgInternalServerError = "Internal Server Error"
)
