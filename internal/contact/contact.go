// Copyright (c) 2026 InsightSource. All rights reserved.

// Package contact records the enquiries submitted through the storefront
// contact form. Messages are append-only.
package contact

import "time"

// Message is a single stored enquiry.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateInput is the contact form payload.
type CreateInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Field names for validation
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Field limits
const (
	NameMinLen    = 2
	NameMaxLen    = 120
	EmailMaxLen   = 254
	SubjectMinLen = 2
	SubjectMaxLen = 200
	MessageMinLen = 10
	MessageMaxLen = 5000
)
