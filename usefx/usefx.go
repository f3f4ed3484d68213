// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package usefx

import (
	"github.com/spf13/viper"
	"github.com/xmidt-org/use"
	"github.com/xmidt-org/use/internal/usereflect"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// DecorateIn is the set of optional dependencies used by Decorate and DecorateKey.
type DecorateIn struct {
	fx.In

	// Viper is the source of configuration for DecorateKey.  It is required
	// only when a key is used.
	Viper *viper.Viper `optional:"true"`

	// Registry is where the target is decorated.  If not supplied,
	// use.DefaultRegistry() is used.
	Registry *use.Registry `optional:"true"`

	// Printer receives informational output from the App.  If not supplied,
	// the App's printer is the package default.
	Printer use.Printer `optional:"true"`
}

// Decorate provides a *use.App component for target.  Options given here
// are applied after any component-supplied defaults.
func Decorate(target any, o ...use.Option) fx.Option {
	return DecorateKey("", target, o...)
}

// DecorateKey is like Decorate, but first reads a use.Config from the given
// viper key.  Explicit options override the configuration.  An empty key
// skips configuration entirely.
func DecorateKey(key string, target any, o ...use.Option) fx.Option {
	options := append([]use.Option(nil), o...)
	return fx.Provide(
		func(in DecorateIn) (*use.App, error) {
			var decorateOptions []use.Option
			if len(key) > 0 {
				cfg, err := use.UnmarshalConfig(in.Viper, key)
				if err != nil {
					return nil, err
				}

				decorateOptions = append(decorateOptions, cfg.Options()...)
			}

			if in.Printer != nil {
				decorateOptions = append(decorateOptions, use.WithPrinter(in.Printer))
			}

			registry := usereflect.Safe(in.Registry, use.DefaultRegistry())
			return registry.Decorate(target, append(decorateOptions, options...)...)
		},
	)
}

// Use invokes each plugin, in order, against the *use.App component.
// Any error recorded on the App fails the enclosing fx.App.
func Use(p ...use.Plugin) fx.Option {
	plugins := append([]use.Plugin(nil), p...)
	return fx.Invoke(
		func(app *use.App) error {
			for _, f := range plugins {
				app.Use(f)
			}

			return app.Err()
		},
	)
}

// Run replays the *use.App component's plugins onto each value, in order.
func Run(v ...any) fx.Option {
	values := append([]any(nil), v...)
	return fx.Invoke(
		func(app *use.App) error {
			for _, value := range values {
				app.Run(value)
			}

			return app.Err()
		},
	)
}

// Logger sends both fx events and use informational output to l.  The
// use.Printer component logs at the INFO level through l's SugaredLogger.
func Logger(l *zap.Logger) fx.Option {
	return fx.Options(
		fx.WithLogger(
			func() fxevent.Logger {
				return &fxevent.ZapLogger{Logger: l}
			},
		),
		fx.Provide(
			func() use.Printer {
				return use.PrinterFunc(l.Sugar().Infof)
			},
		),
	)
}
