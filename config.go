// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package use

import (
	"errors"

	"github.com/spf13/viper"
)

var (
	// ErrNilViper is returned when a nil Viper instance is used for configuration
	ErrNilViper = errors.New("the viper instance cannot be nil")
)

// Config is the externally configurable part of Options.
//
//	use:
//	  prop: plugins
//	  merge: true
//	  weaklyTypedInput: true
type Config struct {
	// Prop is the name of the plugin list.  See the Prop option.
	Prop string `json:"prop" yaml:"prop" mapstructure:"prop"`

	// Merge installs a Merge hook that decodes extra Use arguments
	// directly into the decorated value.
	Merge bool `json:"merge" yaml:"merge" mapstructure:"merge"`

	// WeaklyTypedInput relaxes type checking for the Merge hook.
	WeaklyTypedInput bool `json:"weaklyTypedInput" yaml:"weaklyTypedInput" mapstructure:"weaklyTypedInput"`

	// ErrorUnused makes the Merge hook reject unknown keys.
	ErrorUnused bool `json:"errorUnused" yaml:"errorUnused" mapstructure:"errorUnused"`
}

// Options converts this configuration into decoration options.
func (c Config) Options() []Option {
	o := []Option{
		Prop(c.Prop),
	}

	if c.Merge {
		o = append(o, WithHook(
			Merge(
				nil,
				WeaklyTypedInput(c.WeaklyTypedInput),
				ErrorUnused(c.ErrorUnused),
			),
		))
	}

	return o
}

// UnmarshalConfig reads a Config from v.  If key is empty, the whole of v
// is unmarshaled.  Otherwise, only the given key is used.
func UnmarshalConfig(v *viper.Viper, key string, o ...viper.DecoderConfigOption) (c Config, err error) {
	switch {
	case v == nil:
		err = ErrNilViper

	case len(key) > 0:
		err = v.UnmarshalKey(key, &c, o...)

	default:
		err = v.Unmarshal(&c, o...)
	}

	return
}
