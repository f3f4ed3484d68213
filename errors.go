// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidTarget is matched by every InvalidTargetError via errors.Is.
	ErrInvalidTarget = errors.New("expect `app` be an object or function")

	// ErrInvalidPlugin is matched by every InvalidPluginError via errors.Is.
	ErrInvalidPlugin = errors.New("expect `fn` be function")
)

// InvalidTargetError indicates that a value could not be decorated.  Only
// non-nil pointers, maps, channels, and functions can be decorated.
type InvalidTargetError struct {
	// Type is the type of the rejected value.  It is nil when the value
	// itself was nil.
	Type reflect.Type
}

// Error satisfies the error interface.
func (ite *InvalidTargetError) Error() string {
	return fmt.Sprintf("%s: got %v", ErrInvalidTarget, ite.Type)
}

// Unwrap returns ErrInvalidTarget.
func (ite *InvalidTargetError) Unwrap() error {
	return ErrInvalidTarget
}

// InvalidPluginError indicates that something other than a usable
// Plugin was passed to Use.
type InvalidPluginError struct {
	// Type is the type of the rejected plugin.
	Type reflect.Type
}

// Error satisfies the error interface.
func (ipe *InvalidPluginError) Error() string {
	return fmt.Sprintf("%s: got %v", ErrInvalidPlugin, ipe.Type)
}

// Unwrap returns ErrInvalidPlugin.
func (ipe *InvalidPluginError) Unwrap() error {
	return ErrInvalidPlugin
}

// SymbolError reports a Go plugin symbol that could not be converted into a Plugin.
type SymbolError struct {
	Path   string
	Symbol string
	Type   reflect.Type
}

func (se *SymbolError) Error() string {
	return fmt.Sprintf("symbol [%s] in [%s] is not a plugin: %v", se.Symbol, se.Path, se.Type)
}

// Unwrap returns ErrInvalidPlugin.
func (se *SymbolError) Unwrap() error {
	return ErrInvalidPlugin
}
