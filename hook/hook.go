// Package hook implements the ordered callback pipelines that run around each
// hash computation.
//
// Callbacks are registered per Event and run in registration order. Every
// callback in a chain receives the same *Context, so mutations made by one
// callback are visible to the next and to the computation that follows.
//
// There are two execution contracts. Run drives the context-aware events
// (BeforeHash, AfterHash) and may invoke both Func and SyncFunc callbacks.
// RunSync drives the blocking events (BeforeHashSync, AfterHashSync) and only
// ever invokes SyncFunc callbacks; registering a Func on a blocking event is
// rejected.
package hook

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Event names a lifecycle point.
type Event string

// Lifecycle points.
const (
	BeforeHash     Event = "before:hash"
	AfterHash      Event = "after:hash"
	BeforeHashSync Event = "before:hashSync"
	AfterHashSync  Event = "after:hashSync"
)

// Blocking reports whether e belongs to the blocking pipeline.
func (e Event) Blocking() bool {
	return e == BeforeHashSync || e == AfterHashSync
}

func (e Event) valid() bool {
	switch e {
	case BeforeHash, AfterHash, BeforeHashSync, AfterHashSync:
		return true
	}
	return false
}

var (
	// ErrUnknownEvent is returned when registering for an undefined event.
	ErrUnknownEvent = errors.New("unknown hook event")

	// ErrAsyncOnSyncEvent is returned when a context-aware callback is
	// registered for a blocking event.
	ErrAsyncOnSyncEvent = errors.New("context-aware hook cannot run on a blocking event")
)

// Context is the record shared by every callback of one chain.
//
// Before events see Value, Algorithm and MaxLength; after events additionally
// see Hash, which is what the caller receives once the chain completes.
type Context struct {
	Value     any
	Algorithm string
	// MaxLength truncates the digest when > 0.
	MaxLength int
	Hash      string
}

// Func is a callback that may block on ctx.
type Func func(ctx context.Context, hc *Context) error

// SyncFunc is a callback that must run to completion without blocking.
type SyncFunc func(hc *Context) error

// ID identifies a registration for Off.
type ID uint64

type registration struct {
	id     ID
	fn     Func
	syncFn SyncFunc
}

// Error reports a failing callback.
type Error struct {
	Event Event
	// Index is the position of the callback in the chain at run time.
	Index int
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("hook %s[%d] failed: %v", e.Event, e.Index, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Policy controls how a chain reacts to a failing callback.
type Policy struct {
	// Propagate aborts the chain on the first failure and returns it.
	// Otherwise the failing callback's changes to the Context are rolled back
	// and the chain continues.
	Propagate bool
	// OnFailure, if set, observes every failure (propagated or not).
	OnFailure func(err *Error)
}

// Registry holds the callbacks for all events. It is safe for concurrent use;
// a running chain works on a snapshot taken when it starts.
type Registry struct {
	mu     sync.RWMutex
	nextID ID
	hooks  map[Event][]registration
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{hooks: make(map[Event][]registration)}
}

// On registers a context-aware callback for a non-blocking event.
func (r *Registry) On(event Event, fn Func) (ID, error) {
	if !event.valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	if event.Blocking() {
		return 0, fmt.Errorf("%w: %q", ErrAsyncOnSyncEvent, event)
	}
	return r.register(event, registration{fn: fn}), nil
}

// OnSync registers a blocking callback. It may be used with any event.
func (r *Registry) OnSync(event Event, fn SyncFunc) (ID, error) {
	if !event.valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	return r.register(event, registration{syncFn: fn}), nil
}

func (r *Registry) register(event Event, reg registration) ID {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	reg.id = r.nextID
	r.hooks[event] = append(r.hooks[event], reg)
	return reg.id
}

// Off removes the registration id from event and reports whether it existed.
func (r *Registry) Off(event Event, id ID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	regs := r.hooks[event]
	i := slices.IndexFunc(regs, func(reg registration) bool { return reg.id == id })
	if i < 0 {
		return false
	}
	r.hooks[event] = slices.Delete(slices.Clone(regs), i, i+1)
	return true
}

// Len returns the number of callbacks registered for event.
func (r *Registry) Len(event Event) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hooks[event])
}

// Clear removes all callbacks of the given events, or of every event if none
// are given.
func (r *Registry) Clear(events ...Event) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(events) == 0 {
		r.hooks = make(map[Event][]registration)
		return
	}
	for _, e := range events {
		delete(r.hooks, e)
	}
}

func (r *Registry) snapshot(event Event) []registration {
	r.mu.RLock()
	defer r.mu.RUnlock()
	// Off replaces the slice instead of editing it, so sharing is safe.
	return r.hooks[event]
}

// Run invokes the callbacks of event in order, waiting for each to return
// before starting the next.
func (r *Registry) Run(ctx context.Context, event Event, hc *Context, p Policy) error {
	for i, reg := range r.snapshot(event) {
		err := invoke(hc, func() error {
			if reg.fn != nil {
				return reg.fn(ctx, hc)
			}
			return reg.syncFn(hc)
		})
		if herr := handle(event, i, err, p); herr != nil {
			return herr
		}
	}
	return nil
}

// RunSync invokes the blocking callbacks of event in order.
func (r *Registry) RunSync(event Event, hc *Context, p Policy) error {
	for i, reg := range r.snapshot(event) {
		if reg.syncFn == nil {
			continue
		}
		err := invoke(hc, func() error { return reg.syncFn(hc) })
		if herr := handle(event, i, err, p); herr != nil {
			return herr
		}
	}
	return nil
}

// invoke runs call, converting a panic into an error and restoring hc if the
// callback failed.
func invoke(hc *Context, call func() error) (err error) {
	saved := *hc
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
		if err != nil {
			*hc = saved
		}
	}()
	return call()
}

func handle(event Event, index int, err error, p Policy) error {
	if err == nil {
		return nil
	}
	herr := &Error{Event: event, Index: index, Err: err}
	if p.OnFailure != nil {
		p.OnFailure(herr)
	}
	if p.Propagate {
		return herr
	}
	return nil
}
