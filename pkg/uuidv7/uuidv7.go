// Copyright (c) 2026 InsightSource. All rights reserved.

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// Every catalog row and assistant session is keyed by one. Being time-sortable
// they keep PostgreSQL primary key indexes append-mostly and break ties in
// newest-first listings deterministically.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only if the OS random source is unavailable.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

// Valid reports whether value parses as a UUID of any version.
func Valid(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
