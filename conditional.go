// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use

// Conditional is a simple strategy for including plugins based on
// a condition known when the plugins are assembled.
type Conditional struct {
}

// Then returns the Chain of the given plugins if this Conditional is not nil.
// If this Conditional is nil, it returns Nop.
func (c *Conditional) Then(p ...Plugin) Plugin {
	if c != nil {
		return Chain(p...)
	}

	return Nop
}

// If returns a non-nil Conditional if its sole argument is true.
//
//	v := viper.New() // initialize
//	app.Use(
//	  use.If(v.GetBool("audit.enabled")).Then(
//	    auditPlugin,
//	    use.Self(recordAuditTrail),
//	  ),
//	)
func If(f bool) *Conditional {
	if f {
		return new(Conditional)
	}

	return nil
}

// IfNot is the boolean inverse of If
func IfNot(f bool) *Conditional {
	if !f {
		return new(Conditional)
	}

	return nil
}
