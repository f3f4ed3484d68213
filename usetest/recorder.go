// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package usetest

import (
	"sync"

	"github.com/xmidt-org/use"
)

// Call is a single plugin invocation observed by a Recorder.
type Call struct {
	// Name is the name given to the recording plugin.
	Name string

	// Value is what the plugin was invoked with.
	Value any
}

// Recorder creates plugins that record each invocation, in order.
// The zero value is ready to use.
type Recorder struct {
	lock  sync.Mutex
	calls []Call
}

// Immediate returns a plugin that records a Call and defers nothing.
func (r *Recorder) Immediate(name string) use.Plugin {
	return func(v any) use.Result {
		r.record(name, v)
		return use.Immediate()
	}
}

// Deferred returns a plugin that records a Call and defers a plugin
// recording under deferredName.
func (r *Recorder) Deferred(name, deferredName string) use.Plugin {
	return func(v any) use.Result {
		r.record(name, v)
		return use.Defer(r.Immediate(deferredName))
	}
}

// Self returns a plugin that records a Call and defers itself.
func (r *Recorder) Self(name string) use.Plugin {
	return use.Self(func(v any) error {
		r.record(name, v)
		return nil
	})
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Call(nil), r.calls...)
}

// Names returns the names of the recorded calls, in order.
func (r *Recorder) Names() []string {
	r.lock.Lock()
	defer r.lock.Unlock()

	names := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		names = append(names, c.Name)
	}

	return names
}

// Reset discards all recorded calls.
func (r *Recorder) Reset() {
	r.lock.Lock()
	r.calls = nil
	r.lock.Unlock()
}

func (r *Recorder) record(name string, v any) {
	r.lock.Lock()
	r.calls = append(r.calls, Call{Name: name, Value: v})
	r.lock.Unlock()
}
