// Copyright (c) 2026 InsightSource. All rights reserved.

/*
Package assistant answers shoppers' questions about the catalog through a hosted
generative model.

Every turn is grounded on a fresh snapshot of the report catalog, so answers
never mention reports that were deleted or miss ones that were just added.
Conversation transcripts live in Redis and expire when a session goes idle.
*/
package assistant

import (
	"context"

	"github.com/insightsource/catalog/internal/catalog/report"
)

// Transcript roles
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one message of a conversation.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// MessageInput is the payload of a user turn. An empty SessionID starts a new conversation.
type MessageInput struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// Reply is the assistant's answer together with the session to continue it.
type Reply struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply"`
}

// ContextView exposes the instruction the model currently receives.
type ContextView struct {
	Reports int    `json:"reports"`
	Context string `json:"context"`
}

// Catalog supplies the reports the assistant may talk about.
type Catalog interface {
	Snapshot(context context.Context) ([]*report.Report, error)
}

// Generator produces the model's answer to message given the instruction and prior turns.
type Generator interface {
	Generate(context context.Context, instruction string, history []Turn, message string) (string, error)
}

// HistoryStore persists conversation transcripts.
type HistoryStore interface {
	Load(context context.Context, sessionID string) ([]Turn, error)
	Append(context context.Context, sessionID string, turns ...Turn) error
}

// Field names for validation
const (
	FieldSessionID = "sessionId"
	FieldMessage   = "message"
)
