package schema

// CatalogContactMessageTable represents the 'catalog.contactmessage' table
type CatalogContactMessageTable struct {
	Table     string
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	CreatedAt string
}

// CatalogContactMessage is the schema definition for catalog.contactmessage
var CatalogContactMessage = CatalogContactMessageTable{
	Table:     "catalog.contactmessage",
	ID:        "id",
	Name:      "name",
	Email:     "email",
	Subject:   "subject",
	Message:   "message",
	CreatedAt: "createdat",
}

func (t CatalogContactMessageTable) Columns() []string {
	return []string{t.ID, t.Name, t.Email, t.Subject, t.Message, t.CreatedAt}
}
