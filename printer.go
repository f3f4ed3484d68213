// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use

import (
	"fmt"
	"io"
)

// Module is what code in this package passes to Prepend as its module parameter
const Module = "Use"

// Prepend creates the standard format for informational output that uber/fx uses.
// It returns a string of the form "[module] template".
func Prepend(module, template string) string {
	return "[" + module + "] " + template
}

// Printer is the sink for informational output.  Its method set matches
// fx.Printer and *log.Logger, so either can be used directly.
type Printer interface {
	Printf(string, ...interface{})
}

// PrinterFunc is a function type that implements Printer.  This is useful
// for passing functions as printers, such as a zap SugaredLogger's Infof.
type PrinterFunc func(string, ...interface{})

// Printf implements Printer.  Note that this method does not append
// a newline to the output.
func (pf PrinterFunc) Printf(template string, args ...interface{}) {
	pf(template, args...)
}

// PrinterWriter creates a Printer that sends all output to the specified
// Writer.  Each write has a newline appended.  Only one (1) write is performed
// for each call to Printf.
//
// Any error from Write() results in a panic.
func PrinterWriter(w io.Writer) Printer {
	return PrinterFunc(func(template string, args ...interface{}) {
		_, err := fmt.Fprintf(w, template+"\n", args...)
		if err != nil {
			panic(err)
		}
	})
}

var defaultPrinter Printer = PrinterFunc(func(string, ...interface{}) {})

// DefaultPrinter returns the Printer used when none is configured.
// It discards everything, since decoration happens on hot paths.
func DefaultPrinter() Printer {
	return defaultPrinter
}

// modulePrinter prefixes each template with the module
type modulePrinter struct {
	module string
	next   Printer
}

func (mp modulePrinter) Printf(template string, args ...interface{}) {
	mp.next.Printf(Prepend(mp.module, template), args...)
}

// NewModulePrinter returns a Printer that decorates next so that each
// line is prefixed with the given module.  If next is nil, DefaultPrinter
// is used.
func NewModulePrinter(module string, next Printer) Printer {
	if next == nil {
		next = DefaultPrinter()
	}

	return modulePrinter{
		module: module,
		next:   next,
	}
}

// t is implemented by both *testing.T and *testing.B
type t interface {
	Name() string
	Logf(string, ...interface{})
}

// TestPrinter returns a Printer that writes to a *testing.T or *testing.B.
func TestPrinter(t t) Printer {
	return PrinterFunc(
		func(template string, args ...interface{}) {
			t.Logf(t.Name()+" "+template, args...)
		},
	)
}
