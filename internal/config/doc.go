// SPDX-License-Identifier: MPL-2.0

// Package config loads modkit's configuration: a CUE file validated
// against an embedded schema, merged over documented defaults via
// viper. Settings cover the logging engine's default thresholds and
// sink toggles, the default isolated runner, and the repository
// registry location.
package config
