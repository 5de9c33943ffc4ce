// SPDX-License-Identifier: MPL-2.0

// Package platform provides cross-platform compatibility utilities.
//
// It centralizes OS family classification and the resolution of the
// per-user data and configuration directories that the file sink and
// the config loader build their paths under. Platforms outside the
// known families are rejected with ErrUnsupportedPlatform before any
// filesystem access happens.
package platform
