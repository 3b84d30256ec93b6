// Copyright (c) 2026 InsightSource. All rights reserved.

// Package category manages the top-level groupings that every report belongs to.
package category

import "time"

// Category is a named grouping of reports, addressed publicly by its slug.
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  *string   `json:"description"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateInput is the payload accepted when creating a category.
// Slug is optional; when empty it is derived from Name.
type CreateInput struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

// UpdateInput is a sparse update: nil fields are left untouched.
type UpdateInput struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

// Field names for validation
const (
	FieldName         = "name"
	FieldSlug         = "slug"
	FieldDescription  = "description"
	FieldThumbnailURL = "thumbnailUrl"
)

// Field limits
const (
	NameMinLen        = 2
	NameMaxLen        = 120
	SlugMaxLen        = 160
	DescriptionMaxLen = 2000
)
