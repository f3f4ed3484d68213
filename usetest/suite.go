// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package usetest

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/use"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// Suite is an embeddable type for tests that decorate values.  Each test
// gets its own viper instance and its own use.Registry, so decorations
// never leak between tests.
type Suite struct {
	suite.Suite

	viper    *viper.Viper
	registry *use.Registry
}

var _ suite.SetupTestSuite = (*Suite)(nil)

// SetupTest initializes a new viper instance and registry for each test
func (suite *Suite) SetupTest() {
	suite.viper = viper.New()
	suite.registry = use.NewRegistry()
}

// SetupSubTest does the same as SetupTest for each subtest
func (suite *Suite) SetupSubTest() {
	suite.SetupTest()
}

// Viper returns the viper instance for the current test.
func (suite *Suite) Viper() *viper.Viper {
	return suite.viper
}

// Registry returns the registry for the current test.
func (suite *Suite) Registry() *use.Registry {
	return suite.registry
}

// YAML is a shorthand for bootstrapping the current test's viper environment
// with a given YAML configuration
func (suite *Suite) YAML(v string) {
	suite.viper.SetConfigType("yaml")

	suite.Require().NoError(
		suite.viper.ReadConfig(strings.NewReader(v)),
	)
}

// JSON is a shorthand for bootstrapping the current test's viper environment
// with a given JSON configuration
func (suite *Suite) JSON(v string) {
	suite.viper.SetConfigType("json")

	suite.Require().NoError(
		suite.viper.ReadConfig(strings.NewReader(v)),
	)
}

// Decorate decorates target in the current test's registry, routing
// informational output to the test log.  Any error fails the test.
func (suite *Suite) Decorate(target any, o ...use.Option) *use.App {
	app, err := suite.registry.Decorate(
		target,
		append(
			[]use.Option{use.WithPrinter(use.TestPrinter(suite.T()))},
			o...,
		)...,
	)

	suite.Require().NoError(err)
	suite.Require().NotNil(app)
	return app
}

// Fxtest is a convenience for doing fxtest.New(...) with the current
// viper environment, registry, test printer, and the additional fx.Options.
func (suite *Suite) Fxtest(more ...fx.Option) *fxtest.App {
	return NewApp(
		suite,
		append(
			[]fx.Option{
				fx.Supply(suite.viper, suite.registry),
				fx.Provide(
					func() use.Printer {
						return use.TestPrinter(suite.T())
					},
				),
			},
			more...,
		)...,
	)
}
