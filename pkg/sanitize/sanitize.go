// Copyright (c) 2026 InsightSource. All rights reserved.

// Package sanitize reduces untrusted user input to plain text.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strict drops every tag. Policies are safe for concurrent use once built.
var strict = bluemonday.StrictPolicy()

// Text strips all markup from s, decodes entities, and trims surrounding space.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
