// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use

import (
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Hook runs before each plugin passed to App.Use.  It receives the decorated
// value and any extra arguments given to Use.  A non-nil error prevents the
// plugin from running and is recorded on the App.
type Hook func(target any, args ...any) error

// Hooks combines several hooks into one that calls each in order,
// stopping at the first error.
func Hooks(h ...Hook) Hook {
	hooks := append([]Hook(nil), h...)
	return func(target any, args ...any) error {
		for _, f := range hooks {
			if f == nil {
				continue
			}

			if err := f(target, args...); err != nil {
				return err
			}
		}

		return nil
	}
}

// Merge returns a Hook that decodes each extra argument to Use into the
// target's own options with mapstructure.  The dst closure selects what to
// decode into, typically a pointer to an options field of the target.  If
// dst is nil, arguments are decoded into the target itself.  Nil arguments
// are skipped.
//
//	type Server struct {
//	  Options ServerOptions
//	}
//
//	s := new(Server)
//	app, _ := use.Decorate(s, use.WithHook(use.Merge(
//	  func(t any) any { return &t.(*Server).Options },
//	)))
//
//	app.Use(tlsPlugin, map[string]any{"certFile": "server.crt"})
//
// Fields absent from an argument are left as they were, so successive
// calls to Use accumulate options.
func Merge(dst func(target any) any, o ...viper.DecoderConfigOption) Hook {
	opts := append([]viper.DecoderConfigOption(nil), o...)
	return func(target any, args ...any) error {
		result := target
		if dst != nil {
			result = dst(target)
		}

		for _, arg := range args {
			if arg == nil {
				continue
			}

			dc := mapstructure.DecoderConfig{
				DecodeHook: mapstructure.ComposeDecodeHookFunc(
					mapstructure.StringToTimeDurationHookFunc(),
					mapstructure.StringToSliceHookFunc(","),
				),
			}

			for _, f := range opts {
				f(&dc)
			}

			dc.Result = result
			d, err := mapstructure.NewDecoder(&dc)
			if err == nil {
				err = d.Decode(arg)
			}

			if err != nil {
				return err
			}
		}

		return nil
	}
}

// ErrorUnused sets the DecoderConfig.ErrorUnused flag, rejecting
// arguments that carry keys with no corresponding field.
func ErrorUnused(f bool) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = f
	}
}

// Exact is a synonym for ErrorUnused(true).
func Exact(dc *mapstructure.DecoderConfig) {
	dc.ErrorUnused = true
}

// WeaklyTypedInput sets the DecoderConfig.WeaklyTypedInput flag
func WeaklyTypedInput(f bool) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = f
	}
}

// TagName sets the struct tag used to match argument keys to fields.
// The default, and the value restored by TagName(""), is "mapstructure".
func TagName(v string) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = v
	}
}

// Squash sets the DecoderConfig.Squash flag, which affects how embedded
// struct fields are handled
func Squash(f bool) viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.Squash = f
	}
}
