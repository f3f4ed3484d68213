// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use

import (
	"fmt"
	"sort"
)

func ExampleApp_Run() {
	root := map[string]any{"name": "root"}
	app, _ := NewRegistry().Decorate(root)

	app.Use(func(v any) Result {
		fmt.Println("immediately applied to", v.(map[string]any)["name"])
		return Defer(func(child any) Result {
			child.(map[string]any)["region"] = "us-east"
			return Immediate()
		})
	})

	child := map[string]any{"name": "child"}
	if err := app.Run(child).Err(); err != nil {
		fmt.Println(err)
		return
	}

	keys := make([]string, 0, len(child))
	for k := range child {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	for _, k := range keys {
		fmt.Println(k, "=", child[k])
	}

	// Output:
	// immediately applied to root
	// name = child
	// region = us-east
}

// layer is a value that creates the next layer of a chain
type layer struct {
	name string
	app  *App
}

func newLayer(r *Registry, name string) *layer {
	l := &layer{name: name}
	l.app, _ = r.Decorate(l)
	return l
}

func ExampleSelf() {
	var (
		r     = NewRegistry()
		names []string
		a     = newLayer(r, "a")
	)

	a.app.Use(Self(func(v any) error {
		if l, ok := v.(*layer); ok {
			names = append(names, l.name)
		}

		return nil
	}))

	current := a
	for _, name := range []string{"b", "c", "d", "e", "f"} {
		next := newLayer(r, name)
		current.app.Run(next)
		current = next
	}

	// the plugin follows the chain all the way to a plain config
	config := map[string]any{}
	current.app.Run(config)

	fmt.Println(names)
	fmt.Println(current.app.Len(), current.app.Err())

	// Output:
	// [a b c d e f]
	// 1 <nil>
}
