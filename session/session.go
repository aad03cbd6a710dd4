// Package session owns the client state that lives for one loaded world
//
// A Context is created at world load and reset when the world unloads.
// It replaces process-wide caches: everything a dispatcher mutates is reached through it.
package session

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/lixenwraith/cchooks/audio"
	"github.com/lixenwraith/cchooks/core"
	"github.com/lixenwraith/cchooks/monitor"
	"github.com/lixenwraith/cchooks/pocket"
	"github.com/lixenwraith/cchooks/service"
)

// Context is the state of one client session
type Context struct {
	id         uuid.UUID
	storageDir string
	local      bool

	Monitors *monitor.Cache
	Speakers *audio.Registry
	Pockets  *pocket.Cache

	lead  []service.Registry
	extra []service.Registry
	log   *zap.Logger
}

// Option configures a Context
type Option func(*Context)

// WithLogger sets the session logger
func WithLogger(log *zap.Logger) Option {
	return func(c *Context) {
		if log != nil {
			c.log = log
		}
	}
}

// WithRegistry adds a host-owned registry reset alongside the built-in ones
func WithRegistry(r service.Registry) Option {
	return func(c *Context) {
		if r != nil {
			c.extra = append(c.extra, r)
		}
	}
}

// WithLeadingRegistry adds a host-owned registry reset before the built-in ones
func WithLeadingRegistry(r service.Registry) Option {
	return func(c *Context) {
		if r != nil {
			c.lead = append(c.lead, r)
		}
	}
}

// New creates a session backed by a local server whose storage lives at storageDir
func New(storageDir string, opts ...Option) *Context {
	c := newContext(opts)
	c.storageDir = storageDir
	c.local = storageDir != ""
	return c
}

// Remote creates a session connected to a remote server; it has no storage root
func Remote(opts ...Option) *Context {
	return newContext(opts)
}

func newContext(opts []Option) *Context {
	c := &Context{
		id:       uuid.New(),
		Monitors: monitor.NewCache(),
		Pockets:  pocket.NewCache(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(zap.Stringer("session", c.id))
	c.Speakers = audio.NewRegistry(c.log)
	return c
}

// ID returns the session id
func (c *Context) ID() uuid.UUID {
	return c.id
}

// StorageDir returns the local server's storage root
// ok is false for remote sessions
func (c *Context) StorageDir() (string, bool) {
	if c == nil || !c.local {
		return "", false
	}
	return c.storageDir, true
}

// Registries returns every registry in reset order: leading, built-in, then added
func (c *Context) Registries() []service.Registry {
	regs := make([]service.Registry, 0, len(c.lead)+3+len(c.extra))
	regs = append(regs, c.lead...)
	regs = append(regs, c.Monitors, c.Speakers, c.Pockets)
	return append(regs, c.extra...)
}

// ResetError reports a registry that failed or panicked during Reset
type ResetError struct {
	Registry string
	Err      error
}

func (e *ResetError) Error() string {
	return fmt.Sprintf("reset %s: %v", e.Registry, e.Err)
}

func (e *ResetError) Unwrap() error {
	return e.Err
}

// Reset resets every registry
// Registries are independent: each runs even if an earlier one failed or panicked
// The returned error combines every *ResetError, use multierr.Errors to split it
func (c *Context) Reset() error {
	if c == nil {
		return nil
	}

	var errs error
	for _, r := range c.Registries() {
		if err := core.Guard(r.Reset); err != nil {
			errs = multierr.Append(errs, &ResetError{Registry: r.Name(), Err: err})
		}
	}
	return errs
}
