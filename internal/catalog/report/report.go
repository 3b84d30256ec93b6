// Copyright (c) 2026 InsightSource. All rights reserved.

// Package report manages the purchasable market-research reports of the catalog
// and the filtered, paginated queries over them.
package report

import "time"

// Report is a purchasable research document belonging to exactly one category.
type Report struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	Slug           string       `json:"slug"`
	CategoryID     string       `json:"-"`
	Category       *CategoryRef `json:"category"`
	Description    string       `json:"description"`
	Summary        string       `json:"summary"`
	PublishDate    *time.Time   `json:"publishDate"`
	ImageURL       *string      `json:"imageUrl"`
	Price          float64      `json:"price"`
	KeyHighlights  []string     `json:"keyHighlights"`
	TableOfContent []string     `json:"tableOfContent"`
	Meta           Meta         `json:"meta"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

// CategoryRef is the populated category embedded in report responses.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Meta carries search-engine metadata. Keywords are also matched by search.
type Meta struct {
	Keywords       []string `json:"keywords"`
	SEODescription string   `json:"seoDescription"`
}

// Filter holds the caller-facing list parameters.
type Filter struct {
	Category string // category slug; must resolve when set
	Search   string // case-insensitive substring
}

// Query is the resolved form of [Filter] handed to the store.
type Query struct {
	CategoryID string
	Search     string
}

// CreateInput is the payload accepted when creating a report.
// Category is the slug of an existing category.
type CreateInput struct {
	Title          string     `json:"title"`
	Slug           string     `json:"slug"`
	Category       string     `json:"category"`
	Description    string     `json:"description"`
	Summary        string     `json:"summary"`
	PublishDate    string     `json:"publishDate"`
	ImageURL       *string    `json:"imageUrl"`
	Price          float64    `json:"price"`
	KeyHighlights  []string   `json:"keyHighlights"`
	TableOfContent []string   `json:"tableOfContent"`
	Meta           *MetaInput `json:"meta"`
}

// UpdateInput is a sparse update: nil fields are left untouched.
type UpdateInput struct {
	Title          *string    `json:"title"`
	Slug           *string    `json:"slug"`
	Category       *string    `json:"category"`
	Description    *string    `json:"description"`
	Summary        *string    `json:"summary"`
	PublishDate    *string    `json:"publishDate"`
	ImageURL       *string    `json:"imageUrl"`
	Price          *float64   `json:"price"`
	KeyHighlights  *[]string  `json:"keyHighlights"`
	TableOfContent *[]string  `json:"tableOfContent"`
	Meta           *MetaInput `json:"meta"`
}

// MetaInput is the sparse form of [Meta].
type MetaInput struct {
	Keywords       *[]string `json:"keywords"`
	SEODescription *string   `json:"seoDescription"`
}

// Field names for validation
const (
	FieldTitle          = "title"
	FieldSlug           = "slug"
	FieldCategory       = "category"
	FieldDescription    = "description"
	FieldSummary        = "summary"
	FieldPublishDate    = "publishDate"
	FieldImageURL       = "imageUrl"
	FieldPrice          = "price"
	FieldKeyHighlights  = "keyHighlights"
	FieldTableOfContent = "tableOfContent"
	FieldKeywords       = "meta.keywords"
	FieldSEODescription = "meta.seoDescription"
)

// Field limits
const (
	TitleMinLen          = 2
	TitleMaxLen          = 300
	SlugMaxLen           = 340
	SummaryMaxLen        = 2000
	DescriptionMaxLen    = 20000
	SEODescriptionMaxLen = 320
	ListItemMaxLen       = 300
	ListMaxItems         = 100
	SearchMaxLen         = 200
)

// PriceMax is the largest price NUMERIC(12,2) can hold.
const PriceMax = 9999999999.99

// dateOnly is the short publish date layout accepted alongside RFC 3339.
const dateOnly = "2006-01-02"
