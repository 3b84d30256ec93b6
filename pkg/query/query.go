// Copyright (c) 2026 InsightSource. All rights reserved.

// Package query holds helpers for turning URL query parameters into SQL
// predicates.
package query

import (
	"net/http"
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Text returns the trimmed value of a single query parameter.
func Text(request *http.Request, key string) string {
	return strings.TrimSpace(request.URL.Query().Get(key))
}

// EscapeLike escapes LIKE/ILIKE wildcards so user text matches literally
// under PostgreSQL's default backslash escape.
func EscapeLike(value string) string {
	return likeEscaper.Replace(value)
}

// ContainsPattern builds a substring ILIKE pattern for value.
func ContainsPattern(value string) string {
	return "%" + EscapeLike(value) + "%"
}
