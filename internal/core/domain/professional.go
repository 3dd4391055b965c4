package domain

// ProfessionalCategory groups professionals for statement layout purposes.
type ProfessionalCategory string

const (
	CategoryORL         ProfessionalCategory = "ORL"
	CategoryAnestesista ProfessionalCategory = "Anestesista"
)

// StatementLayout is the default rendering of a statement for a category.
type StatementLayout string

const (
	LayoutDetailed   StatementLayout = "detallado"
	LayoutSimplified StatementLayout = "simplificado"
)

// Layout returns the default statement layout for the category.
// Anesthetists get the simplified statement; everyone else the detailed one.
func (c ProfessionalCategory) Layout() StatementLayout {
	if c == CategoryAnestesista {
		return LayoutSimplified
	}
	return LayoutDetailed
}

// Professional is a practitioner who can occupy share slots. Name is the match key.
type Professional struct {
	Name     string               `json:"name"`
	OwnerID  string               `json:"ownerID"`
	Category ProfessionalCategory `json:"category"`
	AuditFields
}
