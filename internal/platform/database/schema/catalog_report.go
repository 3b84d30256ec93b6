package schema

// CatalogReportTable represents the 'catalog.report' table
type CatalogReportTable struct {
	Table          string
	ID             string
	Title          string
	Slug           string
	CategoryID     string
	Description    string
	Summary        string
	PublishDate    string
	ImageURL       string
	Price          string
	KeyHighlights  string
	TableOfContent string
	MetaKeywords   string
	SEODescription string
	CreatedAt      string
	UpdatedAt      string
}

// CatalogReport is the schema definition for catalog.report
var CatalogReport = CatalogReportTable{
	Table:          "catalog.report",
	ID:             "id",
	Title:          "title",
	Slug:           "slug",
	CategoryID:     "categoryid",
	Description:    "description",
	Summary:        "summary",
	PublishDate:    "publishdate",
	ImageURL:       "imageurl",
	Price:          "price",
	KeyHighlights:  "keyhighlights",
	TableOfContent: "tableofcontent",
	MetaKeywords:   "metakeywords",
	SEODescription: "seodescription",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

func (t CatalogReportTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Slug, t.CategoryID, t.Description, t.Summary, t.PublishDate, t.ImageURL,
		t.Price, t.KeyHighlights, t.TableOfContent, t.MetaKeywords, t.SEODescription, t.CreatedAt, t.UpdatedAt,
	}
}
