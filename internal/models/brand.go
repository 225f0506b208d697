package models

// Brand represents a manufacturer whose products the store carries
type Brand struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Slug        string `json:"slug" yaml:"slug"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Logo        string `json:"logo,omitempty" yaml:"logo,omitempty"`
	Featured    bool   `json:"featured" yaml:"featured"`
	Active      bool   `json:"active" yaml:"active"`
	Order       int    `json:"order" yaml:"order"`
}

func (b Brand) GetID() string   { return b.ID }
func (b Brand) GetSlug() string { return b.Slug }
func (b Brand) IsActive() bool  { return b.Active }
func (b Brand) GetOrder() int   { return b.Order }
