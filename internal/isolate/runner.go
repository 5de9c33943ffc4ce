// SPDX-License-Identifier: MPL-2.0

package isolate

import (
	"context"
	"fmt"
	"time"
)

// Runner kind constants for the registry.
const (
	KindNative  Kind = "native"
	KindVirtual Kind = "virtual"
)

type (
	// Kind identifies a runner implementation.
	Kind string

	// Options configures one isolated execution. The zero value runs in
	// the current directory with no extra environment and no deadline.
	Options struct {
		// WorkDir is the child's working directory; empty means inherit.
		WorkDir string
		// Env is extra environment passed to the payload.
		Env map[string]string
		// Timeout bounds the execution; zero means wait indefinitely.
		// On expiry the child is terminated and the call returns an
		// error wrapping context.DeadlineExceeded.
		Timeout time.Duration
	}

	// Runner executes a script payload in isolation.
	Runner interface {
		// Name returns the runner name.
		Name() string
		// Available reports whether this runner can execute on the host.
		Available() bool
		// Run executes the payload and captures its output. Child
		// failures (non-zero exit, stderr output) are reported through
		// the Result; an error means the payload could not be run at all.
		Run(ctx context.Context, payload string, opts Options) (*Result, error)
	}

	// Registry holds the available runners.
	Registry struct {
		runners map[Kind]Runner
	}
)

// NewRegistry creates a registry with the standard runners registered.
func NewRegistry() *Registry {
	r := &Registry{runners: make(map[Kind]Runner)}
	r.Register(KindNative, NewNativeRunner())
	r.Register(KindVirtual, NewVirtualRunner())
	return r
}

// Register adds a runner to the registry.
func (r *Registry) Register(kind Kind, runner Runner) {
	r.runners[kind] = runner
}

// Get returns a runner by kind.
func (r *Registry) Get(kind Kind) (Runner, error) {
	runner, ok := r.runners[kind]
	if !ok {
		return nil, fmt.Errorf("runner %q not registered", kind)
	}
	return runner, nil
}

// Available returns the kinds that can execute on this host.
func (r *Registry) Available() []Kind {
	var kinds []Kind
	for kind, runner := range r.runners {
		if runner.Available() {
			kinds = append(kinds, kind)
		}
	}
	return kinds
}

// withTimeout derives the execution context from opts.
func withTimeout(ctx context.Context, opts Options) (context.Context, context.CancelFunc) {
	if opts.Timeout > 0 {
		return context.WithTimeout(ctx, opts.Timeout)
	}
	return context.WithCancel(ctx)
}
