package schema

// CatalogCategoryTable represents the 'catalog.category' table
type CatalogCategoryTable struct {
	Table        string
	ID           string
	Name         string
	Slug         string
	Description  string
	ThumbnailURL string
	CreatedAt    string
	UpdatedAt    string
}

// CatalogCategory is the schema definition for catalog.category
var CatalogCategory = CatalogCategoryTable{
	Table:        "catalog.category",
	ID:           "id",
	Name:         "name",
	Slug:         "slug",
	Description:  "description",
	ThumbnailURL: "thumbnailurl",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

func (t CatalogCategoryTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.Description, t.ThumbnailURL, t.CreatedAt, t.UpdatedAt}
}
