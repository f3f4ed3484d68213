// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package useoption

import (
	"fmt"
	"reflect"

	"go.uber.org/multierr"
)

// Option is a functional option that applies to a target of type T.
type Option[T any] interface {
	// Apply modifies the given target.  Implementations must not retain t.
	Apply(t *T) error
}

// Func is the closure form of Option.
type Func[T any] func(*T) error

// Apply implements Option.
func (f Func[T]) Apply(t *T) error { return f(t) }

// AsOption converts a closure into an Option.  The closure may or may
// not return an error.  Named function types with either underlying
// signature are also accepted.
func AsOption[T any, F ~func(*T) error | ~func(*T)](f F) Option[T] {
	switch ft := any(f).(type) {
	case Func[T]:
		return ft

	case func(*T) error:
		return Func[T](ft)

	case func(*T):
		return noErrorFunc(ft)
	}

	// a named type: convert to the unnamed signature
	fv := reflect.ValueOf(f)
	if ft := reflect.TypeOf((func(*T) error)(nil)); fv.Type().ConvertibleTo(ft) {
		return Func[T](fv.Convert(ft).Interface().(func(*T) error))
	}

	return noErrorFunc(
		fv.Convert(reflect.TypeOf((func(*T))(nil))).Interface().(func(*T)),
	)
}

func noErrorFunc[T any](f func(*T)) Option[T] {
	return Func[T](func(t *T) error {
		f(t)
		return nil
	})
}

// InvalidOption returns an Option that always fails with the given error.
// Useful when an option's own arguments are detected as bad before
// the option is ever applied.
func InvalidOption[T any](err error) Option[T] {
	return Func[T](func(*T) error {
		return err
	})
}

// Options is an aggregate Option that applies each element in order.
type Options[T any] []Option[T]

// Apply implements Option.  Every option is applied, and all errors
// are aggregated with multierr.
func (o Options[T]) Apply(t *T) (err error) {
	for i, opt := range o {
		if opt == nil {
			err = multierr.Append(err, fmt.Errorf("option %d of type %T is nil", i, t))
			continue
		}

		err = multierr.Append(err, opt.Apply(t))
	}

	return
}

// ApplyOptions applies each option to t and returns t for chaining.
func ApplyOptions[T any](t *T, opts ...Option[T]) (*T, error) {
	return t, Options[T](opts).Apply(t)
}
