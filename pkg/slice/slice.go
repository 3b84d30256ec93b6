// Copyright (c) 2026 InsightSource. All rights reserved.

/*
Package slice compliments the standard [slices] package by providing functional
programming utilities (Map, Filter, UniqueBy) leveraging generics.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}

	return result
}

// Filter returns the elements where predicate is true. The result is never
// nil, so it serializes as an empty JSON array.
func Filter[T any](input []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(input))
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}

	return result
}

// UniqueBy keeps the first element for each key, preserving order.
func UniqueBy[T any, K comparable](input []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(input))
	result := make([]T, 0, len(input))
	for _, v := range input {
		k := key(v)
		if _, found := seen[k]; found {
			continue
		}
		seen[k] = struct{}{}
		result = append(result, v)
	}

	return result
}
