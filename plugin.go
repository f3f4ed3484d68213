// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use

import "reflect"

// Plugin is a function registered against a value with Use.  It is invoked
// immediately with that value, and it may hand back a deferred Plugin via
// its Result.  Deferred plugins are replayed onto other values by Run.
type Plugin func(v any) Result

// Result is the tagged outcome of invoking a Plugin.  The zero value is
// the same as Immediate().
type Result struct {
	deferred Plugin
	err      error
}

// Immediate is the Result of a plugin that has nothing further to contribute.
func Immediate() Result {
	return Result{}
}

// Defer is the Result of a plugin that wants p kept on the value's plugin list
// for later replay.  Defer(nil) is the same as Immediate().
func Defer(p Plugin) Result {
	return Result{deferred: p}
}

// Fail is the Result of a plugin that could not be applied.  The error is
// reported through the App that invoked the plugin.
func Fail(err error) Result {
	return Result{err: err}
}

// Deferred returns the plugin to keep for replay, or nil.
func (r Result) Deferred() Plugin {
	return r.deferred
}

// Err returns the error from Fail, or nil.
func (r Result) Err() error {
	return r.err
}

// Nop is a Plugin that does nothing.
func Nop(any) Result {
	return Immediate()
}

// Chain returns a Plugin that invokes each of p in order against the same
// value.  The deferred plugins they return are combined, in order, into a
// single deferred plugin.  The first failure stops the chain.
func Chain(p ...Plugin) Plugin {
	plugins := append([]Plugin(nil), p...)
	return func(v any) Result {
		var deferred []Plugin
		for _, f := range plugins {
			if f == nil {
				return Fail(&InvalidPluginError{Type: reflect.TypeOf(f)})
			}

			r := f(v)
			if r.err != nil {
				return r
			}

			if r.deferred != nil {
				deferred = append(deferred, r.deferred)
			}
		}

		switch len(deferred) {
		case 0:
			return Immediate()

		case 1:
			return Defer(deferred[0])

		default:
			return Defer(Chain(deferred...))
		}
	}
}

// Self returns a Plugin that runs f and then defers itself, so that f
// follows every Run down a tree of values.
func Self(f func(v any) error) Plugin {
	var p Plugin
	p = func(v any) Result {
		if err := f(v); err != nil {
			return Fail(err)
		}

		return Defer(p)
	}

	return p
}
