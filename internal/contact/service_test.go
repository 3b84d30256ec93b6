package contact

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insightsource/catalog/internal/platform/apperr"
	"github.com/insightsource/catalog/pkg/pagination"
)

type memoryRepository struct {
	mu       sync.Mutex
	messages []*Message
	clock    time.Time
}

func (repository *memoryRepository) ListMessages(_ context.Context, limit, offset int) ([]*Message, int, error) {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	newestFirst := []*Message{}
	for i := len(repository.messages) - 1; i >= 0; i-- {
		newestFirst = append(newestFirst, repository.messages[i])
	}

	total := len(newestFirst)
	if offset >= total {
		return []*Message{}, total, nil
	}
	return newestFirst[offset:min(offset+limit, total)], total, nil
}

func (repository *memoryRepository) CreateMessage(_ context.Context, message *Message) error {
	repository.mu.Lock()
	defer repository.mu.Unlock()

	repository.clock = repository.clock.Add(time.Second)
	message.CreatedAt = repository.clock
	repository.messages = append(repository.messages, message)
	return nil
}

func newTestService() (*Service, *memoryRepository) {
	repository := &memoryRepository{clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	return NewService(repository, slog.New(slog.NewJSONHandler(io.Discard, nil))), repository
}

func validInput() CreateInput {
	return CreateInput{
		Name:    "Olivia Martinez",
		Email:   "  Olivia.M@GreenTec.com ",
		Subject: "Flexible Packaging Inquiry",
		Message: "Could you share regional data breakdowns for Asia-Pacific?",
	}
}

func TestCreateMessage_StoresNormalizedRecord(t *testing.T) {
	service, repository := newTestService()

	message, err := service.CreateMessage(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotEmpty(t, message.ID)
	assert.Equal(t, "olivia.m@greentec.com", message.Email)
	assert.False(t, message.CreatedAt.IsZero())
	assert.Len(t, repository.messages, 1)
}

func TestCreateMessage_StripsMarkup(t *testing.T) {
	service, _ := newTestService()

	input := validInput()
	input.Subject = "<i>Pricing</i>"
	input.Message = "<script>steal()</script>Please send the <b>price list</b>."

	message, err := service.CreateMessage(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "Pricing", message.Subject)
	assert.Equal(t, "Please send the price list.", message.Message)
}

func TestCreateMessage_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateInput)
		field  string
	}{
		{"not_an_email", func(in *CreateInput) { in.Email = "not-an-email" }, FieldEmail},
		{"email_without_tld", func(in *CreateInput) { in.Email = "a@b" }, FieldEmail},
		{"empty_message", func(in *CreateInput) { in.Message = "" }, FieldMessage},
		{"short_message", func(in *CreateInput) { in.Message = "Hi there" }, FieldMessage},
		{"markup_only_message", func(in *CreateInput) { in.Message = "<p><br></p>" }, FieldMessage},
		{"short_name", func(in *CreateInput) { in.Name = " O " }, FieldName},
		{"blank_subject", func(in *CreateInput) { in.Subject = "   " }, FieldSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repository := newTestService()
			input := validInput()
			tt.mutate(&input)

			_, err := service.CreateMessage(context.Background(), input)

			appError := apperr.As(err)
			require.NotNil(t, appError)
			assert.Equal(t, apperr.CodeValidation, appError.Code)
			assert.Equal(t, tt.field, appError.Details[0].Field)
			assert.Empty(t, repository.messages)
		})
	}
}

func TestListMessages_NewestFirst(t *testing.T) {
	service, _ := newTestService()
	ctx := context.Background()

	for _, subject := range []string{"First enquiry", "Second enquiry", "Third enquiry"} {
		input := validInput()
		input.Subject = subject
		_, err := service.CreateMessage(ctx, input)
		require.NoError(t, err)
	}

	messages, total, err := service.ListMessages(ctx, pagination.New(1, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, messages, 2)
	assert.Equal(t, "Third enquiry", messages[0].Subject)

	messages, _, err = service.ListMessages(ctx, pagination.New(2, 2))
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "First enquiry", messages[0].Subject)
}
