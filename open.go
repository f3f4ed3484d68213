// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

//go:build linux || darwin || freebsd

package use

import (
	"fmt"
	"plugin"

	"go.uber.org/multierr"
)

// Supported indicates whether Go plugins can be opened on this platform.
// Useful with If to include Open conditionally.
func Supported() bool { return true }

// Open loads a Go plugin and returns the named symbols as Plugins, in order.
// Each symbol must be a Plugin, a *Plugin, or a func(any) Result.
//
// Symbols that cannot be found or converted do not stop loading.  Every
// problem is reported through the aggregate error, along with the plugins
// that did load.
func Open(path string, symbols ...string) (plugins []Plugin, err error) {
	p, openErr := plugin.Open(path)
	if openErr != nil {
		err = fmt.Errorf("unable to load plugin [%s]: %w", path, openErr)
		return
	}

	for _, name := range symbols {
		s, lookupErr := p.Lookup(name)
		if lookupErr != nil {
			err = multierr.Append(err, lookupErr)
			continue
		}

		if pl, symErr := asPlugin(path, name, s); symErr != nil {
			err = multierr.Append(err, symErr)
		} else {
			plugins = append(plugins, pl)
		}
	}

	return
}
