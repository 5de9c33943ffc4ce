// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for modkit.
//
// This package implements the Cobra command hierarchy for the modkit
// CLI: the root command, isolated script execution, the logging engine
// front end, and repository and module maintenance.
package cmd
