// SPDX-License-Identifier: MPL-2.0

// Package modrepo implements the repository and module maintenance
// helpers: a local registry of PowerShell repositories persisted as
// TOML, manifest version bumping, and install/uninstall operations
// composed as PowerShell payloads and executed through the isolated
// runner.
package modrepo
