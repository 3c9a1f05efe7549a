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
	"sync"
)

// Signal is a reactive value that reports changes to its subscribers.
// Subscribers are never told the new value; they re-read what they need.
type Signal interface {
	Subscribe(fn func()) (unsubscribe func())
}

type listeners struct {
	mu   sync.Mutex
	next int
	fns  map[int]func()
}

func (l *listeners) add(fn func()) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = make(map[int]func())
	}
	id := l.next
	l.next++
	l.fns[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

func (l *listeners) snapshot() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]func(), 0, len(l.fns))
	for _, fn := range l.fns {
		out = append(out, fn)
	}
	return out
}

func (l *listeners) fire() {
	for _, fn := range l.snapshot() {
		fn()
	}
}

// Var is an observable variable. Set notifies subscribers only when the value changes.
type Var[T comparable] struct {
	mu    sync.RWMutex
	value T
	subs  listeners
}

func NewVar[T comparable](initial T) *Var[T] {
	return &Var[T]{value: initial}
}

func (v *Var[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores value and reports whether it differed from the previous one.
func (v *Var[T]) Set(value T) bool {
	v.mu.Lock()
	if v.value == value {
		v.mu.Unlock()
		return false
	}
	v.value = value
	v.mu.Unlock()

	v.subs.fire()
	return true
}

func (v *Var[T]) Subscribe(fn func()) func() {
	return v.subs.add(fn)
}

// Counter is a monotonically increasing change signal. Consumers react to
// increments and never inspect the value itself.
type Counter struct {
	mu    sync.Mutex
	value uint64
	subs  listeners
}

func NewCounter() *Counter {
	return &Counter{}
}

// Bump increments the counter and notifies subscribers.
func (c *Counter) Bump() uint64 {
	c.mu.Lock()
	c.value++
	v := c.value
	c.mu.Unlock()

	c.subs.fire()
	return v
}

func (c *Counter) Value() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *Counter) Subscribe(fn func()) func() {
	return c.subs.add(fn)
}
