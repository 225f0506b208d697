package models

// SportType tags a top-level category for the "shop by sport" listings
type SportType string

const (
	SportTeam       SportType = "team"
	SportIndividual SportType = "individual"
	SportFitness    SportType = "fitness"
	SportIndoor     SportType = "indoor"
	SportApparel    SportType = "apparel"
)

// Valid reports whether t is one of the known sport types
func (t SportType) Valid() bool {
	switch t {
	case SportTeam, SportIndividual, SportFitness, SportIndoor, SportApparel:
		return true
	}
	return false
}

// Category represents both top-level categories and subcategories.
// A subcategory is a category with a non-empty ParentID.
type Category struct {
	ID             string    `json:"id" yaml:"id"`
	Name           string    `json:"name" yaml:"name"`
	Slug           string    `json:"slug" yaml:"slug"`
	Description    string    `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID       string    `json:"parentId,omitempty" yaml:"parentId,omitempty"`
	Image          string    `json:"image,omitempty" yaml:"image,omitempty"`
	Order          int       `json:"order" yaml:"order"`
	Active         bool      `json:"active" yaml:"active"`
	SportType      SportType `json:"sportType,omitempty" yaml:"sportType,omitempty"`
	SEOTitle       string    `json:"seoTitle,omitempty" yaml:"seoTitle,omitempty"`
	SEODescription string    `json:"seoDescription,omitempty" yaml:"seoDescription,omitempty"`
}

// IsSubcategory reports whether the category hangs under a parent
func (c Category) IsSubcategory() bool {
	return c.ParentID != ""
}

func (c Category) GetID() string   { return c.ID }
func (c Category) GetSlug() string { return c.Slug }
func (c Category) IsActive() bool  { return c.Active }
func (c Category) GetOrder() int   { return c.Order }
