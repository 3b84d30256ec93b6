package assistant

import (
	"context"
	"log/slog"
	"strings"

	"github.com/insightsource/catalog/internal/platform/apperr"
	"github.com/insightsource/catalog/internal/platform/constants"
	"github.com/insightsource/catalog/internal/platform/validate"
	"github.com/insightsource/catalog/pkg/uuidv7"
)

// ErrDisabled is returned when no model credentials are configured.
var ErrDisabled = apperr.ServiceUnavailable("Assistant is not configured", nil)

type Service struct {
	catalog   Catalog
	generator Generator
	history   HistoryStore
	logger    *slog.Logger
}

// NewService wires the assistant. A nil generator disables replies but keeps
// the context endpoint available.
func NewService(catalog Catalog, generator Generator, history HistoryStore, logger *slog.Logger) *Service {
	return &Service{
		catalog:   catalog,
		generator: generator,
		history:   history,
		logger:    logger,
	}
}

// Context renders the instruction from the current catalog.
func (service *Service) Context(context context.Context) (*ContextView, error) {
	reports, err := service.catalog.Snapshot(context)
	if err != nil {
		return nil, err
	}
	return &ContextView{Reports: len(reports), Context: BuildContext(reports)}, nil
}

// Reply answers one user message, continuing the session when it is known.
func (service *Service) Reply(context context.Context, input MessageInput) (*Reply, error) {
	message := strings.TrimSpace(input.Message)
	sessionID := strings.TrimSpace(input.SessionID)

	validator := &validate.Validator{}
	validator.Required(FieldMessage, message).MaxLen(FieldMessage, message, constants.AssistantMaxMessageLen)
	if sessionID != "" {
		validator.Custom(FieldSessionID, !uuidv7.Valid(sessionID), "Must be a session id returned by a previous reply")
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if service.generator == nil {
		return nil, ErrDisabled
	}

	if sessionID == "" {
		sessionID = uuidv7.New()
	}

	view, err := service.Context(context)
	if err != nil {
		return nil, err
	}

	history, err := service.history.Load(context, sessionID)
	if err != nil {
		service.logger.Warn("assistant_history_unavailable", slog.String("session_id", sessionID), slog.Any("error", err))
		history = nil
	}

	answer, err := service.generator.Generate(context, view.Context, history, message)
	if err != nil {
		return nil, apperr.ServiceUnavailable("Assistant is temporarily unavailable", err)
	}

	err = service.history.Append(context, sessionID,
		Turn{Role: RoleUser, Text: message},
		Turn{Role: RoleModel, Text: answer},
	)
	if err != nil {
		service.logger.Warn("assistant_history_not_saved", slog.String("session_id", sessionID), slog.Any("error", err))
	}

	service.logger.Info("assistant_replied",
		slog.String("session_id", sessionID),
		slog.Int("history_turns", len(history)),
		slog.Int("catalog_reports", view.Reports),
	)
	return &Reply{SessionID: sessionID, Reply: answer}, nil
}
