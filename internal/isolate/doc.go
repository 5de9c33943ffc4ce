// SPDX-License-Identifier: MPL-2.0

// Package isolate runs script payloads in fresh, state-free
// interpreters and captures their output deterministically.
//
// Two runners are provided: the native runner spawns a brand-new shell
// process with profile loading disabled, and the virtual runner executes
// the payload in an embedded POSIX interpreter without leaving the
// process. Both drain stdout and stderr concurrently while the payload
// runs and return the streams as separate ordered line sequences; a
// child that exits non-zero or writes to stderr is a result, not an
// error.
package isolate
