// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error presentation: a registry of
// known failure conditions with markdown help text, and an
// ActionableError type that carries operation context and fix
// suggestions through error chains.
package issue
