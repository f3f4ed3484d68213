// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

// Package usefx integrates decorated values with go.uber.org/fx.
//
// A single *use.App component is provided by Decorate or DecorateKey.
// Use and Run then apply plugins and replay them as ordered fx.Invoke
// options, so the plugin order is the order in which the options are
// given to fx.New:
//
//	fx.New(
//	  usefx.Logger(logger),
//	  fx.Supply(v), // *viper.Viper
//	  usefx.DecorateKey("use", root),
//	  usefx.Use(auditPlugin, metricsPlugin),
//	  usefx.Run(main, health),
//	)
package usefx
