package contact

import "context"

type Repository interface {
	ListMessages(context context.Context, limit, offset int) ([]*Message, int, error)
	CreateMessage(context context.Context, message *Message) error
}
