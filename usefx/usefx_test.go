// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package usefx

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/use"
	"github.com/xmidt-org/use/usetest"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type UsefxSuite struct {
	usetest.Suite
}

func (suite *UsefxSuite) TestDecorate() {
	var (
		r     usetest.Recorder
		root  = map[string]any{"name": "root"}
		child = map[string]any{"name": "child"}
		app   *use.App
	)

	fxApp := suite.Fxtest(
		Decorate(root),
		Use(r.Immediate("first"), r.Deferred("second", "replayed")),
		Run(child),
		fx.Populate(&app),
	)

	fxApp.RequireStart()
	defer fxApp.RequireStop()

	suite.Require().NotNil(app)
	suite.Equal(use.DefaultProp, app.Prop())
	suite.Equal(1, app.Len())
	suite.Equal([]string{"first", "second", "replayed"}, r.Names())

	found, ok := suite.Registry().Lookup(root, use.DefaultProp)
	suite.True(ok)
	suite.Same(app, found)

	_, ok = suite.Registry().Lookup(child, use.DefaultProp)
	suite.True(ok)
}

func (suite *UsefxSuite) TestDecorateKey() {
	type target struct {
		Port int
	}

	suite.YAML(`
use:
  prop: plugins
  merge: true
  weaklyTypedInput: true
`)

	var (
		t   = new(target)
		app *use.App
	)

	fxApp := suite.Fxtest(
		DecorateKey("use", t),
		fx.Populate(&app),
	)

	fxApp.RequireStart()
	defer fxApp.RequireStop()

	suite.Equal("plugins", app.Prop())
	app.Use(use.Nop, map[string]any{"port": "8080"})
	suite.NoError(app.Err())
	suite.Equal(8080, t.Port)
}

func (suite *UsefxSuite) TestDecorateKeyOverride() {
	suite.YAML(`
use:
  prop: plugins
`)

	var app *use.App
	fxApp := suite.Fxtest(
		DecorateKey("use", new(int), use.Prop("custom")),
		fx.Populate(&app),
	)

	fxApp.RequireStart()
	defer fxApp.RequireStop()
	suite.Equal("custom", app.Prop())
}

func (suite *UsefxSuite) TestDecorateKeyNoViper() {
	var app *use.App
	fxApp := usetest.NewErrApp(
		suite,
		DecorateKey("use", new(int)),
		fx.Populate(&app),
	)

	usetest.AssertErrorIs(suite, fxApp, use.ErrNilViper)
}

func (suite *UsefxSuite) TestDecorateInvalidTarget() {
	var app *use.App
	fxApp := usetest.NewErrApp(
		suite,
		fx.Supply(suite.Registry()),
		Decorate(123),
		fx.Populate(&app),
	)

	usetest.AssertErrorIs(suite, fxApp, use.ErrInvalidTarget)
}

func (suite *UsefxSuite) TestUseNilPlugin() {
	fxApp := usetest.NewErrApp(
		suite,
		fx.Supply(suite.Registry()),
		Decorate(new(int)),
		Use(nil),
	)

	usetest.AssertErrorIs(suite, fxApp, use.ErrInvalidPlugin)
}

func (suite *UsefxSuite) TestRunInvalidValue() {
	fxApp := usetest.NewErrApp(
		suite,
		fx.Supply(suite.Registry()),
		Decorate(new(int)),
		Run("not a target"),
	)

	usetest.AssertErrorIs(suite, fxApp, use.ErrInvalidTarget)
}

func (suite *UsefxSuite) TestLogger() {
	var (
		core, logs = observer.New(zapcore.InfoLevel)
		app        *use.App
	)

	fxApp := usetest.NewApp(
		suite,
		Logger(zap.New(core)),
		fx.Supply(suite.Registry()),
		Decorate(map[string]any{}),
		Use(use.Nop),
		fx.Populate(&app),
	)

	fxApp.RequireStart()
	defer fxApp.RequireStop()

	suite.NotZero(
		logs.FilterMessageSnippet("[Use] DECORATE").Len(),
		"use output should go to the zap logger",
	)

	suite.NotZero(
		logs.FilterMessageSnippet("[Use] USE").Len(),
	)

	suite.NotZero(
		logs.FilterMessage("provided").Len(),
		"fx events should go to the zap logger",
	)
}

func TestUsefx(t *testing.T) {
	suite.Run(t, new(UsefxSuite))
}
