package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/insightsource/catalog/internal/catalog/category"
	"github.com/insightsource/catalog/internal/platform/apperr"
	"github.com/insightsource/catalog/internal/platform/constants"
	"github.com/insightsource/catalog/internal/platform/validate"
	"github.com/insightsource/catalog/pkg/pagination"
	"github.com/insightsource/catalog/pkg/pointer"
	"github.com/insightsource/catalog/pkg/slice"
	"github.com/insightsource/catalog/pkg/slug"
	"github.com/insightsource/catalog/pkg/uuidv7"
)

// CategoryLookup resolves the public category slug a report refers to.
type CategoryLookup interface {
	GetCategoryBySlug(context context.Context, slug string) (*category.Category, error)
}

type Service struct {
	repo       Repository
	categories CategoryLookup
	logger     *slog.Logger
}

func NewService(repo Repository, categories CategoryLookup, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

// ListReports returns one page of reports, newest first, and the total number of matches.
// An unknown category slug fails the whole query with NOT_FOUND.
func (service *Service) ListReports(context context.Context, filter Filter, params pagination.Params) ([]*Report, int, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)

	validator := &validate.Validator{}
	validator.MaxLen("search", filter.Search, SearchMaxLen)
	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	q := Query{Search: filter.Search}
	if filter.Category != "" {
		resolved, err := service.resolveCategory(context, filter.Category)
		if err != nil {
			return nil, 0, err
		}
		q.CategoryID = resolved.ID
	}

	return service.repo.ListReports(context, q, params.Limit, params.Offset())
}

// Snapshot returns every report, newest first, reading the store in pages.
func (service *Service) Snapshot(context context.Context) ([]*Report, error) {
	var reports []*Report
	for {
		page, total, err := service.repo.ListReports(context, Query{}, constants.AssistantSnapshotPageSize, len(reports))
		if err != nil {
			return nil, err
		}
		reports = append(reports, page...)
		if len(page) == 0 || len(reports) >= total {
			return reports, nil
		}
	}
}

// GetReport fetches a report by UUID or slug.
func (service *Service) GetReport(context context.Context, identifier string) (*Report, error) {
	if uuidv7.Valid(identifier) {
		return service.repo.GetReportByID(context, identifier)
	}
	return service.repo.GetReportBySlug(context, identifier)
}

func (service *Service) CreateReport(context context.Context, input CreateInput) (*Report, error) {
	report := &Report{
		ID:             uuidv7.New(),
		Title:          strings.TrimSpace(input.Title),
		Description:    strings.TrimSpace(input.Description),
		Summary:        strings.TrimSpace(input.Summary),
		ImageURL:       pointer.NonBlank(input.ImageURL),
		Price:          input.Price,
		KeyHighlights:  cleanList(input.KeyHighlights),
		TableOfContent: cleanList(input.TableOfContent),
	}
	applyMeta(report, input.Meta)

	report.Slug = slug.From(report.Title)
	if input.Slug != "" {
		report.Slug = slug.From(input.Slug)
	}

	validator := &validate.Validator{}
	validator.Required(FieldCategory, input.Category)
	report.PublishDate = parsePublishDate(validator, input.PublishDate)
	validateReport(validator, report)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	resolved, err := service.resolveCategory(context, strings.TrimSpace(input.Category))
	if err != nil {
		return nil, err
	}
	report.CategoryID = resolved.ID
	report.Category = refOf(resolved)

	if err := service.repo.CreateReport(context, report); err != nil {
		return nil, err
	}

	service.logger.Info("report_created",
		slog.String("report_id", report.ID),
		slog.String("slug", report.Slug),
		slog.String("category", resolved.Slug),
	)
	return report, nil
}

// UpdateReport applies only the supplied fields to the report addressed by identifier.
// A changed title re-derives the slug unless a slug is supplied explicitly.
func (service *Service) UpdateReport(context context.Context, identifier string, input UpdateInput) (*Report, error) {
	report, err := service.GetReport(context, identifier)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title != report.Title {
			report.Title = title
			report.Slug = slug.From(title)
		}
	}
	if input.Slug != nil {
		report.Slug = slug.From(*input.Slug)
	}
	if report.Slug == "" {
		report.Slug = slug.From(report.Title)
	}
	if input.Description != nil {
		report.Description = strings.TrimSpace(*input.Description)
	}
	if input.Summary != nil {
		report.Summary = strings.TrimSpace(*input.Summary)
	}
	if input.ImageURL != nil {
		report.ImageURL = pointer.NonBlank(input.ImageURL)
	}
	if input.Price != nil {
		report.Price = *input.Price
	}
	if input.KeyHighlights != nil {
		report.KeyHighlights = cleanList(*input.KeyHighlights)
	}
	if input.TableOfContent != nil {
		report.TableOfContent = cleanList(*input.TableOfContent)
	}
	applyMeta(report, input.Meta)

	validator := &validate.Validator{}
	if input.PublishDate != nil {
		report.PublishDate = parsePublishDate(validator, *input.PublishDate)
	}
	if input.Category != nil {
		validator.Required(FieldCategory, *input.Category)
	}
	validateReport(validator, report)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Category != nil {
		resolved, err := service.resolveCategory(context, strings.TrimSpace(*input.Category))
		if err != nil {
			return nil, err
		}
		report.CategoryID = resolved.ID
		report.Category = refOf(resolved)
	}

	if err := service.repo.UpdateReport(context, report); err != nil {
		return nil, err
	}

	service.logger.Info("report_updated", slog.String("report_id", report.ID), slog.String("slug", report.Slug))
	return report, nil
}

// DeleteReport removes the report addressed by UUID or slug and returns it.
func (service *Service) DeleteReport(context context.Context, identifier string) (*Report, error) {
	report, err := service.GetReport(context, identifier)
	if err != nil {
		return nil, err
	}

	deleted, err := service.repo.DeleteReport(context, report.ID)
	if err != nil {
		return nil, err
	}

	service.logger.Warn("report_deleted", slog.String("report_id", deleted.ID), slog.String("slug", deleted.Slug))
	return deleted, nil
}

// resolveCategory maps a category slug to its record; absence is reported as a missing category.
func (service *Service) resolveCategory(context context.Context, categorySlug string) (*category.Category, error) {
	resolved, err := service.categories.GetCategoryBySlug(context, categorySlug)
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return nil, apperr.NotFound("Category")
	}
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func validateReport(validator *validate.Validator, report *Report) {
	validator.Required(FieldTitle, report.Title).
		MinLen(FieldTitle, report.Title, TitleMinLen).
		MaxLen(FieldTitle, report.Title, TitleMaxLen)

	validator.Custom(FieldSlug, report.Slug == "", "Must contain at least one letter or digit").
		MaxLen(FieldSlug, report.Slug, SlugMaxLen).
		Custom(FieldSlug, uuidv7.Valid(report.Slug), "Must not be shaped like a report id")
	validator.MaxLen(FieldDescription, report.Description, DescriptionMaxLen)
	validator.MaxLen(FieldSummary, report.Summary, SummaryMaxLen)
	validator.NonNegative(FieldPrice, report.Price).
		Custom(FieldPrice, report.Price > PriceMax, fmt.Sprintf("Maximum %.2f", PriceMax))
	validator.MaxLen(FieldSEODescription, report.Meta.SEODescription, SEODescriptionMaxLen)

	if report.ImageURL != nil {
		validator.URL(FieldImageURL, *report.ImageURL)
	}

	lists := []struct {
		field string
		items []string
	}{
		{FieldKeyHighlights, report.KeyHighlights},
		{FieldTableOfContent, report.TableOfContent},
		{FieldKeywords, report.Meta.Keywords},
	}
	for _, list := range lists {
		validator.Custom(list.field, len(list.items) > ListMaxItems, "Too many items")
		for _, item := range list.items {
			validator.MaxLen(list.field, item, ListItemMaxLen)
		}
	}
}

// parsePublishDate accepts RFC 3339 or YYYY-MM-DD; blank clears the date.
func parsePublishDate(validator *validate.Validator, raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	for _, layout := range []string{time.RFC3339, dateOnly} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			parsed = parsed.UTC()
			return &parsed
		}
	}

	validator.Custom(FieldPublishDate, true, "Must be an RFC 3339 timestamp or YYYY-MM-DD date")
	return nil
}

func applyMeta(report *Report, input *MetaInput) {
	if input == nil {
		normalizeLists(report)
		return
	}
	if input.Keywords != nil {
		report.Meta.Keywords = slice.UniqueBy(cleanList(*input.Keywords), strings.ToLower)
	}
	if input.SEODescription != nil {
		report.Meta.SEODescription = strings.TrimSpace(*input.SEODescription)
	}
	normalizeLists(report)
}

// cleanList trims every entry and drops blanks.
func cleanList(items []string) []string {
	return slice.Filter(slice.Map(items, strings.TrimSpace), func(item string) bool {
		return item != ""
	})
}

// normalizeLists guarantees list fields serialize as [] rather than null.
func normalizeLists(report *Report) {
	if report.KeyHighlights == nil {
		report.KeyHighlights = []string{}
	}
	if report.TableOfContent == nil {
		report.TableOfContent = []string{}
	}
	if report.Meta.Keywords == nil {
		report.Meta.Keywords = []string{}
	}
}

func refOf(resolved *category.Category) *CategoryRef {
	return &CategoryRef{ID: resolved.ID, Name: resolved.Name, Slug: resolved.Slug}
}
