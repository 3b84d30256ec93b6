package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/insightsource/catalog/internal/platform/database/schema"
	"github.com/insightsource/catalog/internal/platform/dberr"
	"github.com/insightsource/catalog/internal/platform/postgres"
)

const resource = "Contact message"

type PostgresRepository struct {
	db           *pgxpool.Pool
	queryTimeout time.Duration
}

func NewPostgresRepository(db *pgxpool.Pool, queryTimeout time.Duration) *PostgresRepository {
	return &PostgresRepository{db: db, queryTimeout: queryTimeout}
}

func (repository *PostgresRepository) ListMessages(context context.Context, limit, offset int) ([]*Message, int, error) {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CatalogContactMessage.Table)
	if err := repository.db.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resource, "count_contact_messages")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s DESC, %s DESC
		LIMIT $1 OFFSET $2
	`,
		schema.List("", schema.CatalogContactMessage.Columns()), schema.CatalogContactMessage.Table,
		schema.CatalogContactMessage.CreatedAt, schema.CatalogContactMessage.ID,
	)

	rows, err := repository.db.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resource, "list_contact_messages")
	}
	defer rows.Close()

	messages := []*Message{}
	for rows.Next() {
		m := &Message{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.CreatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, resource, "scan_contact_message")
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resource, "list_contact_messages")
	}

	return messages, total, nil
}

func (repository *PostgresRepository) CreateMessage(context context.Context, message *Message) error {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s
	`,
		schema.CatalogContactMessage.Table, schema.CatalogContactMessage.ID, schema.CatalogContactMessage.Name,
		schema.CatalogContactMessage.Email, schema.CatalogContactMessage.Subject, schema.CatalogContactMessage.Message,
		schema.CatalogContactMessage.CreatedAt, schema.CatalogContactMessage.CreatedAt,
	)

	err := repository.db.QueryRow(context, query,
		message.ID, message.Name, message.Email, message.Subject, message.Message,
	).Scan(&message.CreatedAt)

	return dberr.Wrap(err, resource, "create_contact_message")
}
