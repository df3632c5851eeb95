// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package display

const (
	Tool    = "hotreload"
	CodeURL = "https://github.com/platform-engineering-labs/hotreload"
)
