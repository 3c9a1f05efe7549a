//
// Copyright 2025 Frontier3 Tech
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package async

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

type State int

const (
	Initial State = iota
	Idle
	Pending
	Stale
)

func (s State) String() string {
	switch s {
	case Initial:
		return "initial"
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Stale:
		return "stale"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of a Resource at one point of its lifecycle.
type Snapshot[T any] struct {
	State  State
	Result T
	Err    error
}

// Producer computes the value of a Resource. It is re-invoked on every Notify.
type Producer[T any] func(ctx context.Context) (T, error)

// Resource wraps an asynchronous producer and keeps the result of the most
// recently started attempt. Attempts are never aborted when superseded; a
// generation number captured at start decides whether a completion may commit.
//
// Subscribers are called in commit order, one at a time, and never under the
// resource lock: they may read the resource and call Notify.
type Resource[T any] struct {
	initial    T
	produce    Producer[T]
	allowStale bool

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	snap       Snapshot[T]
	generation uint64
	closed     bool
	deps       []func()

	// committed snapshots awaiting delivery, in commit order
	queue      []Snapshot[T]
	delivering bool

	subsMu  sync.Mutex
	subs    map[int]func(Snapshot[T])
	nextSub int

	inflight sync.WaitGroup
}

// New creates a resource in the Initial state holding initial. With allowStale
// a failed attempt keeps the previous result and moves to Stale; without it the
// result is reset to initial.
func New[T any](ctx context.Context, initial T, produce Producer[T], allowStale bool) *Resource[T] {
	ctx, cancel := context.WithCancel(ctx)
	return &Resource[T]{
		initial:    initial,
		produce:    produce,
		allowStale: allowStale,
		ctx:        ctx,
		cancel:     cancel,
		snap:       Snapshot[T]{State: Initial, Result: initial},
		subs:       make(map[int]func(Snapshot[T])),
	}
}

func (r *Resource[T]) Value() T {
	return r.Peek().Result
}

func (r *Resource[T]) State() State {
	return r.Peek().State
}

func (r *Resource[T]) Err() error {
	return r.Peek().Err
}

func (r *Resource[T]) Peek() Snapshot[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// Subscribe registers fn for every state change. The returned function removes it.
func (r *Resource[T]) Subscribe(fn func(Snapshot[T])) func() {
	r.subsMu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.subsMu.Lock()
			delete(r.subs, id)
			r.subsMu.Unlock()
		})
	}
}

// DependOn re-runs the producer whenever any of signals changes.
func (r *Resource[T]) DependOn(signals ...Signal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	for _, s := range signals {
		r.deps = append(r.deps, s.Subscribe(r.Notify))
	}
}

// Notify starts a new attempt. The previous result stays visible while Pending.
func (r *Resource[T]) Notify() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.generation++
	gen := r.generation
	r.snap = Snapshot[T]{State: Pending, Result: r.snap.Result, Err: r.snap.Err}
	r.inflight.Add(1)
	drain := r.enqueue()
	r.mu.Unlock()

	go r.attempt(gen)
	if drain {
		r.drain()
	}
}

// Close detaches the resource from its dependencies and drops every completion
// that arrives afterwards.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	deps := r.deps
	r.deps = nil
	r.mu.Unlock()

	for _, unsubscribe := range deps {
		unsubscribe()
	}
	r.cancel()
}

// Wait blocks until every started attempt has returned and every committed
// snapshot has been delivered.
func (r *Resource[T]) Wait() {
	r.inflight.Wait()
}

func (r *Resource[T]) attempt(gen uint64) {
	defer r.inflight.Done()

	result, err := r.run()

	r.mu.Lock()
	if r.closed || gen != r.generation {
		r.mu.Unlock()
		return
	}
	switch {
	case err == nil:
		r.snap = Snapshot[T]{State: Idle, Result: result}
	case r.allowStale:
		r.snap = Snapshot[T]{State: Stale, Result: r.snap.Result, Err: err}
	default:
		r.snap = Snapshot[T]{State: Idle, Result: r.initial, Err: err}
	}
	drain := r.enqueue()
	r.mu.Unlock()

	if drain {
		r.drain()
	}
}

// enqueue schedules the current snapshot for delivery and reports whether the
// caller has to deliver the queue. Must be called with mu held.
func (r *Resource[T]) enqueue() bool {
	r.inflight.Add(1)
	r.queue = append(r.queue, r.snap)
	if r.delivering {
		return false
	}
	r.delivering = true
	return true
}

// drain delivers queued snapshots until the queue is empty. Only one goroutine
// drains at a time, so subscribers see snapshots in commit order.
func (r *Resource[T]) drain() {
	for {
		r.mu.Lock()
		if len(r.queue) == 0 {
			r.delivering = false
			r.mu.Unlock()
			return
		}
		snap := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()

		r.emit(snap)
		r.inflight.Done()
	}
}

func (r *Resource[T]) run() (result T, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = errors.Errorf("producer panicked: %v", p)
		}
	}()
	return r.produce(r.ctx)
}

func (r *Resource[T]) emit(snap Snapshot[T]) {
	r.subsMu.Lock()
	fns := make([]func(Snapshot[T]), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.subsMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
