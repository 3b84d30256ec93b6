// Copyright (c) 2026 InsightSource. All rights reserved.

// Package slug generates ASCII URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are the public identifiers of categories and reports
// (e.g., "global-energy-outlook"). The transform is deterministic and
// idempotent: applying [From] to its own output returns the same string.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Separator joins the words of a slug.
const Separator = "-"

var (
	// nonAlphanumeric matches any run of characters outside the slug alphabet.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
)

// From converts an arbitrary Unicode string into a URL-safe ASCII slug.
//
// # Transformation Pipeline
//
// 1. Converts to lowercase.
// 2. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 3. Removes combining marks (accents).
// 4. Collapses every run of non [a-z0-9] characters into a single hyphen.
// 5. Trims leading/trailing hyphens.
func From(s string) string {
	// 1. Lowercase first so that case mappings producing marks are stripped too
	result := strings.ToLower(s)

	// 2. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ = transform.String(t, result)

	// 3. Collapse everything else into separators
	result = nonAlphanumeric.ReplaceAllString(result, Separator)

	return strings.Trim(result, Separator)
}

// Valid reports whether s is already in canonical slug form.
func Valid(s string) bool {
	return s != "" && From(s) == s
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
