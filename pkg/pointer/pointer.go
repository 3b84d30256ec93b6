// Copyright (c) 2026 InsightSource. All rights reserved.

/*
Package pointer provides helpers for the optional fields of sparse update
payloads, where nil means "not supplied".

Key Functions:
  - To: Creates a pointer from a value literal.
  - Val: Safely dereferences a pointer, returning the zero value if nil.
  - NonBlank: Trims optional text, collapsing blank input to nil.
*/
package pointer

import "strings"

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}

// Val safely dereferences a pointer.
// If the pointer is nil, it returns the zero value of the underlying type.
func Val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// NonBlank returns a pointer to the trimmed text, or nil when the input is
// nil or only whitespace.
func NonBlank(p *string) *string {
	if p == nil {
		return nil
	}
	clean := strings.TrimSpace(*p)
	if clean == "" {
		return nil
	}
	return &clean
}
