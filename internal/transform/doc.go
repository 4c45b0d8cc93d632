// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package transform provides the fixed set of byte renderers shown by nvis.
//
// Every transformer is a pure function from a byte buffer to display text.
// A transformer that has nothing meaningful to show returns Placeholder;
// no error ever leaves this package.
//
// # Key Types
//
//   - Kind: closed enumeration of the sixteen transformers
//   - Registry: ordered, label-unique collection of kinds
//   - Panel: a label paired with its rendered text
//
// # Usage
//
//	reg := transform.Default()
//	for _, p := range reg.Render([]byte{0x01, 0x00}) {
//	    fmt.Println(p.Label, p.Text)
//	}
package transform
