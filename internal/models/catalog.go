package models

// Issue represents a linked problem, solution and parts triple within one category.
type Issue struct {
	Problem  string   `yaml:"problem" json:"problem"`
	Solution string   `yaml:"solution" json:"solution"`
	Parts    []string `yaml:"parts" json:"parts"`
}

// Category represents a group of equipment with its models and known issues.
type Category struct {
	Name   string   `yaml:"name" json:"name"`
	Models []string `yaml:"models" json:"models"`
	Issues []Issue  `yaml:"issues" json:"issues"`
}

// Technician represents a field service technician on the roster.
type Technician struct {
	Name string `yaml:"name" json:"name" bson:"name" validate:"required,printable"`
	ID   string `yaml:"id" json:"id" bson:"id" validate:"required,printable"`
	Cert string `yaml:"cert" json:"cert" bson:"cert" validate:"required,printable"`
}

// Catalog is the static reference data used to generate service records.
type Catalog struct {
	Categories  []Category   `yaml:"categories" json:"categories"`
	Technicians []Technician `yaml:"technicians" json:"technicians"`
	Companies   []string     `yaml:"companies" json:"companies"`
}

// Category returns the category with the given name.
func (c *Catalog) Category(name string) (*Category, bool) {
	for i := range c.Categories {
		if c.Categories[i].Name == name {
			return &c.Categories[i], true
		}
	}
	return nil, false
}
