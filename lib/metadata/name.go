// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metadata

import (
	"strings"
	"unicode"
)

// ToCanonical converts a dash separated path segment such as
// "total-issuance" into the identifier casing used by the node
// metadata, "TotalIssuance". Leading dashes are skipped.
func ToCanonical(term string) string {
	var builder strings.Builder
	builder.Grow(len(term))

	atNewWord := true
	for _, r := range strings.TrimLeft(term, "-") {
		switch {
		case r == '-':
			atNewWord = true
		case atNewWord:
			builder.WriteRune(unicode.ToUpper(r))
			atNewWord = false
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}
