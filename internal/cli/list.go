// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// list.go - Transformer listing.
package cli

import (
	"fmt"
	"strconv"

	"github.com/jeranaias/nvis/internal/transform"
	"github.com/jeranaias/nvis/internal/util"
)

// HandleList prints every transformer with its index and input width.
func HandleList(stdio IO) error {
	return writeList(transform.Default(), stdio)
}

func writeList(reg *transform.Registry, stdio IO) error {
	fmt.Fprintln(stdio.Out, TitleStyle.Render("Transformers"))
	fmt.Fprintln(stdio.Out, RenderSeparator(30))
	for i, k := range reg.Kinds() {
		width := "any"
		if w := k.Width(); w > 0 {
			width = strconv.Itoa(w) + " bytes"
		}
		fmt.Fprintf(stdio.Out, "%s %s %s\n",
			DimStyle.Render(fmt.Sprintf("%2d", i)),
			LabelStyle.Render(util.PadWidth(k.Label(), 8)),
			ValueStyle.Render(width))
	}
	return nil
}
