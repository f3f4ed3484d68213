// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/use"
	"github.com/xmidt-org/use/useoption"
	"github.com/xmidt-org/use/usetest"
)

type OptionsSuite struct {
	usetest.OptionSuite[use.Options]
}

func (suite *OptionsSuite) TestProp() {
	for _, name := range []string{"", "fns", "plugins"} {
		suite.Run(name, func() {
			suite.NoError(use.Prop(name).Apply(suite.Target))
			suite.Equal(name, suite.Target.Prop)
		})
	}
}

func (suite *OptionsSuite) TestWithHook() {
	called := false
	suite.NoError(use.WithHook(func(any, ...any) error {
		called = true
		return nil
	}).Apply(suite.Target))

	suite.Require().NotNil(suite.Target.Hook)
	suite.NoError(suite.Target.Hook(nil))
	suite.True(called)
}

func (suite *OptionsSuite) TestWithPrinter() {
	var output bytes.Buffer
	p := use.PrinterWriter(&output)
	suite.NoError(use.WithPrinter(p).Apply(suite.Target))
	suite.NotNil(suite.Target.Printer)

	suite.Target.Printer.Printf("hello")
	suite.Equal("hello\n", output.String())
}

func (suite *OptionsSuite) TestApplyInOrder() {
	_, err := useoption.ApplyOptions(
		suite.Target,
		use.Prop("first"),
		use.Prop("second"),
	)

	suite.NoError(err)
	suite.Equal("second", suite.Target.Prop)
}

func TestOptions(t *testing.T) {
	suite.Run(t, new(OptionsSuite))
}
