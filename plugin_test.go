// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestResult(t *testing.T) {
	var (
		assert   = assert.New(t)
		expected = errors.New("expected")
	)

	assert.Nil(Immediate().Deferred())
	assert.NoError(Immediate().Err())
	assert.Equal(Immediate(), Result{})

	assert.NotNil(Defer(Nop).Deferred())
	assert.NoError(Defer(Nop).Err())
	assert.Nil(Defer(nil).Deferred())

	assert.Nil(Fail(expected).Deferred())
	assert.Same(expected, Fail(expected).Err())

	assert.Equal(Immediate(), Nop("anything"))
}

type ChainSuite struct {
	suite.Suite
}

// recorder returns a plugin that appends name to order, optionally
// deferring another recorder
func (suite *ChainSuite) recorder(order *[]string, name string, deferred bool) Plugin {
	return func(v any) Result {
		*order = append(*order, name)
		if deferred {
			return Defer(suite.recorder(order, name+"'", false))
		}

		return Immediate()
	}
}

func (suite *ChainSuite) TestEmpty() {
	suite.Equal(Immediate(), Chain()(nil))
}

func (suite *ChainSuite) testOrder(count int) {
	var (
		order    []string
		plugins  []Plugin
		expected []string
	)

	for i := 0; i < count; i++ {
		name := fmt.Sprintf("p%d", i)
		plugins = append(plugins, suite.recorder(&order, name, i%2 == 0))
		expected = append(expected, name)
	}

	r := Chain(plugins...)(nil)
	suite.NoError(r.Err())
	suite.Equal(expected, order)

	if count == 0 {
		suite.Nil(r.Deferred())
		return
	}

	suite.Require().NotNil(r.Deferred())
	order = nil
	suite.Equal(Immediate(), r.Deferred()(nil))

	var deferred []string
	for i := 0; i < count; i += 2 {
		deferred = append(deferred, fmt.Sprintf("p%d'", i))
	}

	suite.Equal(deferred, order)
}

func (suite *ChainSuite) TestOrder() {
	for _, count := range []int{0, 1, 2, 5} {
		suite.Run(fmt.Sprintf("count=%d", count), func() {
			suite.testOrder(count)
		})
	}
}

func (suite *ChainSuite) TestFailure() {
	var (
		order    []string
		expected = errors.New("expected")
		p        = Chain(
			suite.recorder(&order, "first", true),
			func(any) Result { return Fail(expected) },
			suite.recorder(&order, "last", false),
		)
	)

	r := p(nil)
	suite.Same(expected, r.Err())
	suite.Nil(r.Deferred())
	suite.Equal([]string{"first"}, order)
}

func (suite *ChainSuite) TestNilPlugin() {
	r := Chain(Nop, nil)(nil)
	suite.ErrorIs(r.Err(), ErrInvalidPlugin)
}

func TestChain(t *testing.T) {
	suite.Run(t, new(ChainSuite))
}

func TestSelf(t *testing.T) {
	var (
		assert   = assert.New(t)
		seen     []any
		expected = errors.New("expected")
		p        = Self(func(v any) error {
			seen = append(seen, v)
			if v == "bad" {
				return expected
			}

			return nil
		})
	)

	r := p("first")
	assert.NoError(r.Err())
	assert.NotNil(r.Deferred())

	r = r.Deferred()("second")
	assert.NoError(r.Err())
	assert.NotNil(r.Deferred())

	r = p("bad")
	assert.Same(expected, r.Err())
	assert.Nil(r.Deferred())

	assert.Equal([]any{"first", "second", "bad"}, seen)
}

func TestConditional(t *testing.T) {
	testData := []struct {
		condition      *Conditional
		expectCalled   bool
		expectDeferred bool
	}{
		{If(true), true, true},
		{If(false), false, false},
		{IfNot(false), true, true},
		{IfNot(true), false, false},
	}

	for i, record := range testData {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var (
				assert = assert.New(t)
				called bool
			)

			r := record.condition.Then(func(any) Result {
				called = true
				return Defer(Nop)
			})(nil)

			assert.Equal(record.expectCalled, called)
			assert.Equal(record.expectDeferred, r.Deferred() != nil)
		})
	}
}
