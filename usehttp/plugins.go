// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package usehttp

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/httpaux"
	"github.com/xmidt-org/use"
)

// Middleware returns a plugin that adds mw to routers and servers.  For a
// *mux.Router, mw is passed to the router's Use method.  For an *http.Server,
// the server's Handler is wrapped so that mw[0] is the outermost decorator,
// which is the same order a router applies.  A server with no Handler gets
// http.DefaultServeMux.
//
// All other values are left untouched, but the plugin still defers itself
// so that it reaches routers and servers further down a tree.
func Middleware(mw ...mux.MiddlewareFunc) use.Plugin {
	middleware := append([]mux.MiddlewareFunc(nil), mw...)
	return use.Self(func(v any) error {
		switch t := v.(type) {
		case *mux.Router:
			t.Use(middleware...)

		case *http.Server:
			h := t.Handler
			if h == nil {
				h = http.DefaultServeMux
			}

			for i := len(middleware) - 1; i >= 0; i-- {
				h = middleware[i](h)
			}

			t.Handler = h
		}

		return nil
	})
}

// Chain returns a plugin that decorates routers and servers with an alice chain.
func Chain(c alice.Chain) use.Plugin {
	return Middleware(c.Then)
}

// Header returns a plugin that adds the given headers to every response
// from routers and servers.
func Header(h http.Header) use.Plugin {
	return Middleware(httpaux.NewHeader(h).Then)
}

// NewRouter creates a *mux.Router with all of app's plugins replayed onto it.
//
// The router is decorated in app's Registry and is retained for as long as
// that Registry is.  Decorate the root in a use.NewRegistry() when routers
// should be collected along with it.
func NewRouter(app *use.App) (*mux.Router, error) {
	r := mux.NewRouter()
	if err := app.Replay(r); err != nil {
		return nil, err
	}

	return r, nil
}

// NewServer creates an *http.Server for the given address and handler with
// all of app's plugins replayed onto it.  Like NewRouter, the server is
// retained by app's Registry.
func NewServer(app *use.App, address string, h http.Handler) (*http.Server, error) {
	s := &http.Server{
		Addr:    address,
		Handler: h,
	}

	if err := app.Replay(s); err != nil {
		return nil, err
	}

	return s, nil
}
