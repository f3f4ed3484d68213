// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use

import (
	"reflect"
	"sync"

	"github.com/xmidt-org/use/internal/usereflect"
	"github.com/xmidt-org/use/useoption"
)

type registryKey struct {
	identity usereflect.Identity
	prop     string
}

// Registry tracks which values have been decorated.  A value is decorated
// at most once per plugin list name, and its App lives as long as the Registry.
//
// Scoping a tree of values to its own Registry lets the whole tree be
// garbage collected together.
type Registry struct {
	lock sync.Mutex
	apps map[registryKey]*App
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		apps: make(map[registryKey]*App),
	}
}

var defaultRegistry = NewRegistry()

// DefaultRegistry returns the Registry used by the package-level functions.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Decorate returns the App for target under the configured plugin list name,
// creating it with an empty list if needed.  Decorating an already decorated
// value is a no-op: the existing App is returned and the options are ignored.
// An *App passed as target is returned as is.
//
// A target that is already a Host keeps its own UsePlugin: the App forwards
// every plugin to it and keeps no list of its own.
//
// Only non-nil pointers, maps, channels, and functions can be decorated.
// Pointers to zero-size types are rejected because distinct values of such
// types can share an address.  Anything else results in an *InvalidTargetError.
func (r *Registry) Decorate(target any, o ...Option) (*App, error) {
	if app, ok := target.(*App); ok && app != nil {
		return app, nil
	}

	var opts Options
	if _, err := useoption.ApplyOptions(&opts, o...); err != nil {
		return nil, err
	}

	return r.decorate(target, opts)
}

// Ensure returns v itself if it is a Host.  Otherwise, v is decorated under
// DefaultProp, without a hook.
func (r *Registry) Ensure(v any) (Host, error) {
	return r.ensure(v, Options{})
}

// Lookup returns the App for target under the given plugin list name, if
// target has been decorated.  An empty prop selects DefaultProp.
func (r *Registry) Lookup(target any, prop string) (*App, bool) {
	id, ok := usereflect.IdentityOf(target)
	if !ok {
		return nil, false
	}

	r.lock.Lock()
	defer r.lock.Unlock()
	app, ok := r.apps[registryKey{identity: id, prop: Options{Prop: prop}.prop()}]
	return app, ok
}

// Len returns the number of decorations in this Registry.
func (r *Registry) Len() int {
	r.lock.Lock()
	defer r.lock.Unlock()
	return len(r.apps)
}

func (r *Registry) ensure(v any, o Options) (Host, error) {
	if h, ok := v.(Host); ok {
		if h = usereflect.Safe[Host](h, nil); h == nil {
			return nil, &InvalidTargetError{Type: reflect.TypeOf(v)}
		}

		return h, nil
	}

	return r.decorate(v, o)
}

func (r *Registry) decorate(target any, o Options) (*App, error) {
	id, ok := usereflect.IdentityOf(target)
	if !ok {
		return nil, &InvalidTargetError{Type: reflect.TypeOf(target)}
	}

	key := registryKey{identity: id, prop: o.prop()}

	r.lock.Lock()
	if app, ok := r.apps[key]; ok {
		r.lock.Unlock()
		return app, nil
	}

	app := newApp(r, target, o)
	r.apps[key] = app
	r.lock.Unlock()

	app.printer.Printf("DECORATE\t[%s] %s => %T", app.id, key.prop, target)
	return app, nil
}

// Decorate uses DefaultRegistry to decorate target.
func Decorate(target any, o ...Option) (*App, error) {
	return defaultRegistry.Decorate(target, o...)
}

// MustDecorate is like Decorate, but panics on any error.  Intended for
// package-level initialization.
func MustDecorate(target any, o ...Option) *App {
	app, err := Decorate(target, o...)
	if err != nil {
		panic(err)
	}

	return app
}

// Ensure uses DefaultRegistry to ensure v can accept plugins.
func Ensure(v any) (Host, error) {
	return defaultRegistry.Ensure(v)
}

// Lookup uses DefaultRegistry to find the App for target under DefaultProp.
func Lookup(target any) (*App, bool) {
	return defaultRegistry.Lookup(target, DefaultProp)
}
