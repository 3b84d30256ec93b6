package contact

import (
	"context"
	"log/slog"
	"strings"

	"github.com/insightsource/catalog/internal/platform/validate"
	"github.com/insightsource/catalog/pkg/pagination"
	"github.com/insightsource/catalog/pkg/sanitize"
	"github.com/insightsource/catalog/pkg/uuidv7"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListMessages(context context.Context, params pagination.Params) ([]*Message, int, error) {
	return service.repo.ListMessages(context, params.Limit, params.Offset())
}

// CreateMessage stores a contact form submission after stripping markup from
// its free-text fields.
func (service *Service) CreateMessage(context context.Context, input CreateInput) (*Message, error) {
	message := &Message{
		ID:      uuidv7.New(),
		Name:    sanitize.Text(input.Name),
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Subject: sanitize.Text(input.Subject),
		Message: sanitize.Text(input.Message),
	}

	validator := &validate.Validator{}

	validator.Required(FieldName, message.Name).
		MinLen(FieldName, message.Name, NameMinLen).
		MaxLen(FieldName, message.Name, NameMaxLen)

	validator.Required(FieldEmail, message.Email).
		Email(FieldEmail, message.Email).
		MaxLen(FieldEmail, message.Email, EmailMaxLen)

	validator.Required(FieldSubject, message.Subject).
		MinLen(FieldSubject, message.Subject, SubjectMinLen).
		MaxLen(FieldSubject, message.Subject, SubjectMaxLen)

	validator.Required(FieldMessage, message.Message).
		MinLen(FieldMessage, message.Message, MessageMinLen).
		MaxLen(FieldMessage, message.Message, MessageMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.CreateMessage(context, message); err != nil {
		return nil, err
	}

	service.logger.Info("contact_message_created", slog.String("message_id", message.ID))
	return message, nil
}
