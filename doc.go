// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package use registers plugins against arbitrary values and cascades them
// down a tree of related values.
//
// # Decoration
//
// Decorate attaches an ordered plugin list to a pointer, map, channel, or
// function and returns the *App that owns it.  Decorating the same value
// again returns the same App.
//
// # Plugins
//
// App.Use invokes a Plugin immediately against the decorated value.  A plugin
// that returns Defer(p) contributes p to the plugin list.  App.Run replays that
// list, in order, onto another value, decorating it first unless it is a Host.
//
//	root := &Config{}
//	app := use.MustDecorate(root)
//	app.Use(func(v any) use.Result {
//	  // configure root now ...
//	  return use.Defer(func(child any) use.Result {
//	    // ... and every child later
//	    return use.Immediate()
//	  })
//	})
//
//	app.Run(&Config{Name: "child"})
//
// Errors from Use and Run are recorded so that calls chain; check App.Err.
package use
