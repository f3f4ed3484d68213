// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

//go:build !linux && !darwin && !freebsd

package use

import "fmt"

// Supported indicates whether Go plugins can be opened on this platform.
// Useful with If to include Open conditionally.
func Supported() bool { return false }

// Open always fails on this platform.
func Open(path string, _ ...string) ([]Plugin, error) {
	return nil, fmt.Errorf("unable to load plugin [%s]: plugins are not supported on this platform", path)
}
