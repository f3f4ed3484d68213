// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package usetest

import "github.com/stretchr/testify/suite"

// OptionSuite is an embeddable suite for testing functional options.
// Each test and subtest gets a fresh Target.
type OptionSuite[T any] struct {
	suite.Suite
	Target *T
}

func (suite *OptionSuite[T]) SetupTest() {
	suite.Target = new(T)
}

func (suite *OptionSuite[T]) SetupSubTest() {
	suite.Target = new(T)
}
