// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use

import "github.com/xmidt-org/use/useoption"

// DefaultProp is the name of the plugin list when no Prop option is given.
const DefaultProp = "fns"

// Options holds the settings for one decoration.
type Options struct {
	// Prop names the plugin list.  Decorations of the same value under
	// different names are independent of each other.  Defaults to DefaultProp.
	Prop string

	// Hook is invoked before every plugin passed to Use.
	Hook Hook

	// Printer receives informational output.  Defaults to DefaultPrinter().
	Printer Printer
}

// Option is a functional option applied to Options during decoration.
type Option = useoption.Option[Options]

// Prop sets the name of the plugin list.  An empty name selects DefaultProp.
func Prop(name string) Option {
	return useoption.AsOption[Options](func(o *Options) {
		o.Prop = name
	})
}

// WithHook sets the hook invoked before each plugin.  Multiple hooks can be
// combined with Hooks.
func WithHook(h Hook) Option {
	return useoption.AsOption[Options](func(o *Options) {
		o.Hook = h
	})
}

// WithPrinter sets the Printer for informational output.
func WithPrinter(p Printer) Option {
	return useoption.AsOption[Options](func(o *Options) {
		o.Printer = p
	})
}

// prop returns the effective plugin list name
func (o Options) prop() string {
	if len(o.Prop) == 0 {
		return DefaultProp
	}

	return o.Prop
}
