package category

import (
	"context"
	"log/slog"
	"strings"

	"github.com/insightsource/catalog/internal/platform/validate"
	"github.com/insightsource/catalog/pkg/pointer"
	"github.com/insightsource/catalog/pkg/slug"
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

func (service *Service) ListCategories(context context.Context) ([]*Category, error) {
	return service.repo.ListCategories(context)
}

func (service *Service) GetCategory(context context.Context, slug string) (*Category, error) {
	return service.repo.GetCategoryBySlug(context, slug)
}

func (service *Service) CreateCategory(context context.Context, input CreateInput) (*Category, error) {
	category := &Category{
		ID:           uuidv7.New(),
		Name:         strings.TrimSpace(input.Name),
		Description:  pointer.NonBlank(input.Description),
		ThumbnailURL: pointer.NonBlank(input.ThumbnailURL),
	}

	category.Slug = slug.From(category.Name)
	if input.Slug != "" {
		category.Slug = slug.From(input.Slug)
	}

	if err := validateCategory(category); err != nil {
		return nil, err
	}

	if err := service.repo.CreateCategory(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_created", slog.String("category_id", category.ID), slog.String("slug", category.Slug))
	return category, nil
}

// UpdateCategory applies the supplied fields to the category addressed by slug.
// A changed name re-derives the slug unless a slug is supplied explicitly.
func (service *Service) UpdateCategory(context context.Context, currentSlug string, input UpdateInput) (*Category, error) {
	category, err := service.repo.GetCategoryBySlug(context, currentSlug)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name != category.Name {
			category.Name = name
			category.Slug = slug.From(name)
		}
	}
	if input.Slug != nil {
		category.Slug = slug.From(*input.Slug)
	}
	if category.Slug == "" {
		category.Slug = slug.From(category.Name)
	}
	if input.Description != nil {
		category.Description = pointer.NonBlank(input.Description)
	}
	if input.ThumbnailURL != nil {
		category.ThumbnailURL = pointer.NonBlank(input.ThumbnailURL)
	}

	if err := validateCategory(category); err != nil {
		return nil, err
	}

	if err := service.repo.UpdateCategory(context, category); err != nil {
		return nil, err
	}

	service.logger.Info("category_updated", slog.String("category_id", category.ID), slog.String("slug", category.Slug))
	return category, nil
}

// DeleteCategory removes a category that no report references and returns it.
func (service *Service) DeleteCategory(context context.Context, slug string) (*Category, error) {
	category, err := service.repo.GetCategoryBySlug(context, slug)
	if err != nil {
		return nil, err
	}

	reports, err := service.repo.CountReports(context, category.ID)
	if err != nil {
		return nil, err
	}
	if reports > 0 {
		return nil, ErrHasReports
	}

	deleted, err := service.repo.DeleteCategory(context, category.ID)
	if err != nil {
		return nil, err
	}

	service.logger.Warn("category_deleted", slog.String("category_id", deleted.ID), slog.String("slug", deleted.Slug))
	return deleted, nil
}

func validateCategory(category *Category) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, category.Name).
		MinLen(FieldName, category.Name, NameMinLen).
		MaxLen(FieldName, category.Name, NameMaxLen)

	validator.Custom(FieldSlug, category.Slug == "", "Must contain at least one letter or digit").
		MaxLen(FieldSlug, category.Slug, SlugMaxLen)

	if category.Description != nil {
		validator.MaxLen(FieldDescription, *category.Description, DescriptionMaxLen)
	}
	if category.ThumbnailURL != nil {
		validator.URL(FieldThumbnailURL, *category.ThumbnailURL)
	}

	return validator.Err()
}
