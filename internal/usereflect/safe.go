// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package usereflect

import (
	"reflect"
)

// Safe returns candidate if it is a valid, non-nil instance.  Otherwise,
// def is returned.  Candidates of kinds that cannot be nil are always used.
//
// The primary use is defaulting optional collaborators such as printers:
//
//	var p Printer // unset
//	p = Safe[Printer](p, DefaultPrinter())
func Safe[T any](candidate, def T) (result T) {
	result = def
	defer func() {
		// allow IsNil to panic instead of trying all possible kinds
		if r := recover(); r != nil {
			result = candidate
		}
	}()

	if cv := reflect.ValueOf(candidate); cv.IsValid() && !cv.IsNil() {
		result = candidate
	}

	return
}

// Identity is the comparable identity of a reference value: its dynamic
// type together with the address it refers to.  Two Identity values are
// equal when both refer to the same object.
type Identity struct {
	Type    reflect.Type
	Pointer uintptr
}

// IdentityOf returns the identity of v.  The second return is false if v
// is not a non-nil pointer, map, channel, or function.  Pointers to zero-size
// types are also rejected, since distinct values of such types may share
// one address.
//
// Function identity is the code pointer reported by reflect.  Whether two
// closures created from one literal share it is up to the compiler, so only
// the same func value reliably maps to the same identity.
func IdentityOf(v any) (Identity, bool) {
	vv, ok := v.(reflect.Value)
	if !ok {
		vv = reflect.ValueOf(v)
	}

	if !vv.IsValid() {
		return Identity{}, false
	}

	switch vv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if vv.IsNil() {
			return Identity{}, false
		}

		if vv.Kind() == reflect.Ptr && vv.Type().Elem().Size() == 0 {
			return Identity{}, false
		}

		return Identity{
			Type:    vv.Type(),
			Pointer: vv.Pointer(),
		}, true

	default:
		return Identity{}, false
	}
}
