package category

import "context"

type Repository interface {
	ListCategories(context context.Context) ([]*Category, error)
	GetCategoryBySlug(context context.Context, slug string) (*Category, error)
	CreateCategory(context context.Context, category *Category) error
	UpdateCategory(context context.Context, category *Category) error
	DeleteCategory(context context.Context, id string) (*Category, error)
	CountReports(context context.Context, id string) (int, error)
}
