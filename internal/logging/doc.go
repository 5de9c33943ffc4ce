// SPDX-License-Identifier: MPL-2.0

// Package logging implements the structured logging engine: leveled
// events filtered against independent console and file thresholds,
// message templates with named or positional parameter binding,
// per-value-kind colorized console rendering with optional in-place
// line redraw, and a daily per-process log file.
//
// The engine is deliberately small: one console sink, one file sink,
// no sampling and no fan-out. A Logger owns the process-scoped redraw
// and caller-identity state; per-call behavior (thresholds, sink
// toggles, redraw mode) comes from an explicit Config value.
package logging
