package category

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/insightsource/catalog/internal/platform/apperr"
	"github.com/insightsource/catalog/internal/platform/database/schema"
	"github.com/insightsource/catalog/internal/platform/dberr"
	"github.com/insightsource/catalog/internal/platform/postgres"
)

const resource = "Category"

// ErrHasReports is returned when a category is still referenced by reports.
var ErrHasReports = apperr.Conflict("Category still has reports")

type PostgresRepository struct {
	db           *pgxpool.Pool
	queryTimeout time.Duration
}

func NewPostgresRepository(db *pgxpool.Pool, queryTimeout time.Duration) *PostgresRepository {
	return &PostgresRepository{db: db, queryTimeout: queryTimeout}
}

func (repository *PostgresRepository) ListCategories(context context.Context) ([]*Category, error) {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s DESC, %s DESC`,
		schema.List("", schema.CatalogCategory.Columns()), schema.CatalogCategory.Table,
		schema.CatalogCategory.CreatedAt, schema.CatalogCategory.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, resource, "list_categories")
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resource, "scan_category")
		}
		categories = append(categories, category)
	}

	return categories, dberr.Wrap(rows.Err(), resource, "list_categories")
}

func (repository *PostgresRepository) GetCategoryBySlug(context context.Context, slug string) (*Category, error) {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.List("", schema.CatalogCategory.Columns()), schema.CatalogCategory.Table, schema.CatalogCategory.Slug,
	)

	category, err := scanCategory(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, resource, "get_category")
	}
	return category, nil
}

func (repository *PostgresRepository) CreateCategory(context context.Context, category *Category) error {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogCategory.Table, schema.CatalogCategory.ID, schema.CatalogCategory.Name, schema.CatalogCategory.Slug,
		schema.CatalogCategory.Description, schema.CatalogCategory.ThumbnailURL,
		schema.CatalogCategory.CreatedAt, schema.CatalogCategory.UpdatedAt,
		schema.CatalogCategory.CreatedAt, schema.CatalogCategory.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		category.ID, category.Name, category.Slug, category.Description, category.ThumbnailURL,
	).Scan(&category.CreatedAt, &category.UpdatedAt)

	return dberr.Wrap(err, resource, "create_category")
}

func (repository *PostgresRepository) UpdateCategory(context context.Context, category *Category) error {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogCategory.Table, schema.CatalogCategory.Name, schema.CatalogCategory.Slug,
		schema.CatalogCategory.Description, schema.CatalogCategory.ThumbnailURL, schema.CatalogCategory.UpdatedAt,
		schema.CatalogCategory.ID, schema.CatalogCategory.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		category.ID, category.Name, category.Slug, category.Description, category.ThumbnailURL,
	).Scan(&category.UpdatedAt)

	return dberr.Wrap(err, resource, "update_category")
}

func (repository *PostgresRepository) DeleteCategory(context context.Context, id string) (*Category, error) {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 RETURNING %s`,
		schema.CatalogCategory.Table, schema.CatalogCategory.ID, schema.List("", schema.CatalogCategory.Columns()),
	)

	category, err := scanCategory(repository.db.QueryRow(context, query, id))
	if dberr.IsForeignKeyViolation(err) {
		return nil, ErrHasReports
	}
	if err != nil {
		return nil, dberr.Wrap(err, resource, "delete_category")
	}
	return category, nil
}

func (repository *PostgresRepository) CountReports(context context.Context, id string) (int, error) {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.CatalogReport.Table, schema.CatalogReport.CategoryID)

	var total int
	if err := repository.db.QueryRow(context, query, id).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, resource, "count_category_reports")
	}
	return total, nil
}

// scanCategory reads one row in [schema.CatalogCategoryTable.Columns] order.
func scanCategory(row pgx.Row) (*Category, error) {
	category := &Category{}
	err := row.Scan(
		&category.ID, &category.Name, &category.Slug, &category.Description,
		&category.ThumbnailURL, &category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return category, nil
}
