package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/insightsource/catalog/internal/platform/database/schema"
	"github.com/insightsource/catalog/internal/platform/dberr"
	"github.com/insightsource/catalog/internal/platform/postgres"
	"github.com/insightsource/catalog/pkg/query"
)

const resource = "Report"

type PostgresRepository struct {
	db           *pgxpool.Pool
	queryTimeout time.Duration
}

func NewPostgresRepository(db *pgxpool.Pool, queryTimeout time.Duration) *PostgresRepository {
	return &PostgresRepository{db: db, queryTimeout: queryTimeout}
}

// selectFrom returns the populated projection over source, which must be
// aliased "r" and expose catalog.report columns.
func selectFrom(source string) string {
	return fmt.Sprintf(`
		SELECT %s, c.%s, c.%s
		FROM %s
		JOIN %s c ON c.%s = r.%s
	`,
		schema.List("r", schema.CatalogReport.Columns()), schema.CatalogCategory.Name, schema.CatalogCategory.Slug,
		source,
		schema.CatalogCategory.Table, schema.CatalogCategory.ID, schema.CatalogReport.CategoryID,
	)
}

// buildWhere translates a [Query] into a predicate over alias "r" and its arguments.
func buildWhere(q Query) (string, []any) {
	conditions := []string{}
	args := []any{}

	if q.CategoryID != "" {
		args = append(args, q.CategoryID)
		conditions = append(conditions, fmt.Sprintf("r.%s = $%d", schema.CatalogReport.CategoryID, len(args)))
	}

	if q.Search != "" {
		args = append(args, query.ContainsPattern(q.Search))
		placeholder := fmt.Sprintf("$%d", len(args))
		conditions = append(conditions, fmt.Sprintf(
			`(r.%[1]s ILIKE %[5]s OR r.%[2]s ILIKE %[5]s OR r.%[3]s ILIKE %[5]s OR EXISTS (SELECT 1 FROM unnest(r.%[4]s) AS keyword WHERE keyword ILIKE %[5]s))`,
			schema.CatalogReport.Title, schema.CatalogReport.Description, schema.CatalogReport.Summary,
			schema.CatalogReport.MetaKeywords, placeholder,
		))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func (repository *PostgresRepository) ListReports(context context.Context, q Query, limit, offset int) ([]*Report, int, error) {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	where, args := buildWhere(q)

	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s r %s`, schema.CatalogReport.Table, where)

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resource, "count_reports")
	}

	listQuery := selectFrom(schema.CatalogReport.Table+" r") + where +
		fmt.Sprintf(" ORDER BY r.%s DESC, r.%s DESC LIMIT $%d OFFSET $%d",
			schema.CatalogReport.CreatedAt, schema.CatalogReport.ID, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, listQuery, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resource, "list_reports")
	}
	defer rows.Close()

	reports := []*Report{}
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resource, "scan_report")
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resource, "list_reports")
	}

	return reports, total, nil
}

func (repository *PostgresRepository) GetReportByID(context context.Context, id string) (*Report, error) {
	return repository.getReport(context, schema.CatalogReport.ID, id)
}

func (repository *PostgresRepository) GetReportBySlug(context context.Context, slug string) (*Report, error) {
	return repository.getReport(context, schema.CatalogReport.Slug, slug)
}

func (repository *PostgresRepository) getReport(context context.Context, column, value string) (*Report, error) {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	report, err := scanReport(repository.db.QueryRow(context,
		selectFrom(schema.CatalogReport.Table+" r")+fmt.Sprintf("WHERE r.%s = $1", column), value,
	))
	if err != nil {
		return nil, dberr.Wrap(err, resource, "get_report")
	}
	return report, nil
}

func (repository *PostgresRepository) CreateReport(context context.Context, report *Report) error {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING %s, %s
	`,
		schema.CatalogReport.Table, schema.List("", schema.CatalogReport.Columns()[:13]),
		schema.CatalogReport.CreatedAt, schema.CatalogReport.UpdatedAt,
		schema.CatalogReport.CreatedAt, schema.CatalogReport.UpdatedAt,
	)

	err := repository.db.QueryRow(context, insert,
		report.ID, report.Title, report.Slug, report.CategoryID, report.Description, report.Summary,
		report.PublishDate, report.ImageURL, report.Price, report.KeyHighlights, report.TableOfContent,
		report.Meta.Keywords, report.Meta.SEODescription,
	).Scan(&report.CreatedAt, &report.UpdatedAt)

	return dberr.Wrap(err, resource, "create_report")
}

func (repository *PostgresRepository) UpdateReport(context context.Context, report *Report) error {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	update := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8,
		    %s = $9, %s = $10, %s = $11, %s = $12, %s = $13, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.CatalogReport.Table, schema.CatalogReport.Title, schema.CatalogReport.Slug, schema.CatalogReport.CategoryID,
		schema.CatalogReport.Description, schema.CatalogReport.Summary, schema.CatalogReport.PublishDate,
		schema.CatalogReport.ImageURL, schema.CatalogReport.Price, schema.CatalogReport.KeyHighlights,
		schema.CatalogReport.TableOfContent, schema.CatalogReport.MetaKeywords, schema.CatalogReport.SEODescription,
		schema.CatalogReport.UpdatedAt, schema.CatalogReport.ID, schema.CatalogReport.UpdatedAt,
	)

	err := repository.db.QueryRow(context, update,
		report.ID, report.Title, report.Slug, report.CategoryID, report.Description, report.Summary,
		report.PublishDate, report.ImageURL, report.Price, report.KeyHighlights, report.TableOfContent,
		report.Meta.Keywords, report.Meta.SEODescription,
	).Scan(&report.UpdatedAt)

	return dberr.Wrap(err, resource, "update_report")
}

func (repository *PostgresRepository) DeleteReport(context context.Context, id string) (*Report, error) {
	context, cancel := postgres.Bounded(context, repository.queryTimeout)
	defer cancel()

	deleted := fmt.Sprintf(`WITH deleted AS (DELETE FROM %s WHERE %s = $1 RETURNING *)`,
		schema.CatalogReport.Table, schema.CatalogReport.ID,
	)

	report, err := scanReport(repository.db.QueryRow(context, deleted+selectFrom("deleted r"), id))
	if err != nil {
		return nil, dberr.Wrap(err, resource, "delete_report")
	}
	return report, nil
}

// scanReport reads one row produced by [selectFrom].
func scanReport(row pgx.Row) (*Report, error) {
	report := &Report{Category: &CategoryRef{}}
	err := row.Scan(
		&report.ID, &report.Title, &report.Slug, &report.CategoryID, &report.Description, &report.Summary,
		&report.PublishDate, &report.ImageURL, &report.Price, &report.KeyHighlights, &report.TableOfContent,
		&report.Meta.Keywords, &report.Meta.SEODescription, &report.CreatedAt, &report.UpdatedAt,
		&report.Category.Name, &report.Category.Slug,
	)
	if err != nil {
		return nil, err
	}

	report.Category.ID = report.CategoryID
	normalizeLists(report)
	return report, nil
}
