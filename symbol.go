// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use

import "reflect"

// asPlugin converts a symbol exported by a Go plugin into a Plugin.
// Exported variables arrive as pointers, exported functions as values.
func asPlugin(path, name string, s any) (Plugin, error) {
	var p Plugin
	switch st := s.(type) {
	case Plugin:
		p = st

	case *Plugin:
		if st != nil {
			p = *st
		}

	case func(any) Result:
		p = st
	}

	if p == nil {
		return nil, &SymbolError{
			Path:   path,
			Symbol: name,
			Type:   reflect.TypeOf(s),
		}
	}

	return p, nil
}
