// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package usehttp contains plugins that decorate HTTP routers and servers.
//
// Each plugin here applies itself to *mux.Router and *http.Server values and
// defers itself, so registering it once on a root App gives every router and
// server created from that App the same middleware:
//
//	app := use.MustDecorate(cfg)
//	app.Use(usehttp.Header(http.Header{"X-Service": {"devices"}}))
//	app.Use(usehttp.Chain(alice.New(recovery, logging)))
//
//	main, _ := usehttp.NewRouter(app)
//	health, _ := usehttp.NewRouter(app)
package usehttp
