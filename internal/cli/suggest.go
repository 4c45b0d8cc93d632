// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Command suggestion for typo correction.
package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// validCommands is the list of all valid nvis commands and aliases.
var validCommands = []string{
	"tui",
	"view",
	"render",
	"repl",
	"list",
	"config",
	"version",
	"help",
}

// SuggestCommand returns the command closest to input, or "" when nothing
// is close enough to be a typo.
func SuggestCommand(input string) string {
	input = strings.ToLower(input)

	// Don't suggest for very short inputs
	if len(input) < 2 {
		return ""
	}

	// Short words tolerate one edit, longer ones two.
	maxDistance := 1
	if len(input) >= 4 {
		maxDistance = 2
	}

	bestMatch := ""
	bestDistance := -1
	for _, cmd := range validCommands {
		distance := levenshtein.ComputeDistance(input, cmd)
		if distance == 0 {
			return ""
		}
		if distance <= maxDistance && (bestDistance == -1 || distance < bestDistance) {
			bestDistance = distance
			bestMatch = cmd
		}
	}
	return bestMatch
}
