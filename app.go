// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use

import (
	"reflect"
	"sync"

	"github.com/google/uuid"
	"github.com/xmidt-org/use/internal/usereflect"
	"go.uber.org/multierr"
)

// Host is implemented by anything that accepts plugins.  Run hands its
// plugins to a Host as-is, without decorating it, so a type with its own
// UsePlugin fully controls what happens to them.
type Host interface {
	// UsePlugin invokes p against this host immediately.
	UsePlugin(p Plugin) error
}

// App is a decorated value: the value itself together with the ordered
// list of deferred plugins collected by Use.
//
// Apps are created by Decorate and are never copied.  The list only grows.
type App struct {
	id       uuid.UUID
	target   any
	options  Options
	printer  Printer
	registry *Registry

	// host is set when the target accepts plugins itself
	host Host

	lock    sync.Mutex
	plugins []Plugin
	err     error
}

var _ Host = (*App)(nil)

func newApp(r *Registry, target any, o Options) *App {
	o.Prop = o.prop()
	app := &App{
		id:       uuid.New(),
		target:   target,
		options:  o,
		printer:  NewModulePrinter(Module, usereflect.Safe[Printer](o.Printer, DefaultPrinter())),
		registry: r,
	}

	if h, ok := target.(Host); ok {
		app.host = h
	}

	return app
}

// ID is a unique identifier for this decoration, used in informational output.
func (a *App) ID() uuid.UUID {
	return a.id
}

// Target returns the decorated value.
func (a *App) Target() any {
	return a.target
}

// Prop returns the name of this App's plugin list.
func (a *App) Prop() string {
	return a.options.Prop
}

// Registry returns the Registry that holds this App.
func (a *App) Registry() *Registry {
	return a.registry
}

// Plugins returns a copy of the deferred plugins, in the order they were added.
func (a *App) Plugins() []Plugin {
	a.lock.Lock()
	defer a.lock.Unlock()
	return append([]Plugin(nil), a.plugins...)
}

// Len returns the number of deferred plugins.
func (a *App) Len() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return len(a.plugins)
}

// Err returns every error recorded by Use and Run so far, aggregated
// with multierr.  Use multierr.Errors to split the result.
func (a *App) Err() error {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.err
}

// Use invokes p immediately against the target.  If a Hook was configured,
// it is called first with the target and args, and a hook error prevents p
// from running.  A plugin deferred by p is appended to the plugin list.
// If the target is a Host, p goes to the target's UsePlugin instead.
//
// Errors are recorded rather than returned so that calls can be chained:
//
//	app.Use(logging).Use(metrics, MetricsOptions{Namespace: "xmidt"})
//	if err := app.Err(); err != nil {
//	  // ...
//	}
func (a *App) Use(p Plugin, args ...any) *App {
	a.record(a.use(p, args))
	return a
}

// UsePlugin is Use without hook arguments, returning the error instead
// of recording it.  This is how Run hands plugins to a child.
func (a *App) UsePlugin(p Plugin) error {
	return a.use(p, nil)
}

// Run replays every deferred plugin onto v, in order.  If v is a Host,
// its own UsePlugin receives the plugins.  Otherwise, v is decorated in
// this App's Registry under DefaultProp, without a hook, and the resulting
// App receives them.  Anything the replayed plugins defer lands on v's list.
//
// Replay stops at the first failure, which is recorded on this App.
func (a *App) Run(v any) *App {
	a.record(a.run(v))
	return a
}

// Replay is Run without recording: the error, if any, is returned and
// App.Err is unaffected.
func (a *App) Replay(v any) error {
	return a.run(v)
}

func (a *App) use(p Plugin, args []any) error {
	if p == nil {
		return &InvalidPluginError{Type: reflect.TypeOf(p)}
	}

	if a.options.Hook != nil {
		if err := a.options.Hook(a.target, args...); err != nil {
			return err
		}
	}

	if a.host != nil {
		a.printer.Printf("USE\t[%s] => host %T", a.id, a.target)
		return a.host.UsePlugin(p)
	}

	a.printer.Printf("USE\t[%s] => %T", a.id, a.target)
	r := p(a.target)
	if d := r.Deferred(); d != nil {
		a.lock.Lock()
		a.plugins = append(a.plugins, d)
		count := len(a.plugins)
		a.lock.Unlock()

		a.printer.Printf("DEFER\t[%s] %s(%d)", a.id, a.options.Prop, count)
	}

	return r.Err()
}

func (a *App) run(v any) error {
	h, err := a.registry.ensure(v, Options{Printer: a.options.Printer})
	if err != nil {
		return err
	}

	plugins := a.Plugins()
	a.printer.Printf("RUN\t[%s] %s(%d) => %T", a.id, a.options.Prop, len(plugins), v)
	for _, p := range plugins {
		if err := h.UsePlugin(p); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) record(err error) {
	if err != nil {
		a.lock.Lock()
		a.err = multierr.Append(a.err, err)
		a.lock.Unlock()
	}
}
