// Package catalog loads and validates the static equipment, issue and roster
// data that service records are generated from.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ukydev/service-docs/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned when the catalog cannot produce a valid record.
var ErrInvalidCatalog = errors.New("invalid catalog")

//go:embed catalog.yaml
var defaultData []byte

// Default returns the built-in catalog.
func Default() (*models.Catalog, error) {
	return Parse(defaultData)
}

// Load reads a catalog from a YAML file on disk.
func Load(path string) (*models.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates catalog YAML.
func Parse(data []byte) (*models.Catalog, error) {
	var cat models.Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := Validate(&cat); err != nil {
		return nil, err
	}
	return &cat, nil
}

// Validate checks the invariants every generated record relies on.
func Validate(cat *models.Catalog) error {
	if cat == nil || len(cat.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidCatalog)
	}
	if len(cat.Technicians) == 0 {
		return fmt.Errorf("%w: no technicians", ErrInvalidCatalog)
	}
	if len(cat.Companies) == 0 {
		return fmt.Errorf("%w: no companies", ErrInvalidCatalog)
	}
	for _, t := range cat.Technicians {
		if err := printable("technician", t.Name, t.ID, t.Cert); err != nil {
			return err
		}
	}
	if err := printable("company", cat.Companies...); err != nil {
		return err
	}

	names := make(map[string]bool, len(cat.Categories))
	for _, c := range cat.Categories {
		if c.Name == "" {
			return fmt.Errorf("%w: category without a name", ErrInvalidCatalog)
		}
		if names[c.Name] {
			return fmt.Errorf("%w: duplicate category %q", ErrInvalidCatalog, c.Name)
		}
		names[c.Name] = true
		if err := printable("category", c.Name); err != nil {
			return err
		}

		if err := validateCategory(c); err != nil {
			return err
		}
	}
	return nil
}

func validateCategory(c models.Category) error {
	if len(c.Models) == 0 {
		return fmt.Errorf("%w: category %q has no models", ErrInvalidCatalog, c.Name)
	}
	if len(c.Issues) == 0 {
		return fmt.Errorf("%w: category %q has no issues", ErrInvalidCatalog, c.Name)
	}

	seen := make(map[string]bool, len(c.Models))
	for _, m := range c.Models {
		if m == "" {
			return fmt.Errorf("%w: category %q has an empty model name", ErrInvalidCatalog, c.Name)
		}
		if seen[m] {
			return fmt.Errorf("%w: category %q lists model %q twice", ErrInvalidCatalog, c.Name, m)
		}
		seen[m] = true
	}
	if err := printable("model", c.Models...); err != nil {
		return err
	}

	for i, issue := range c.Issues {
		if issue.Problem == "" || issue.Solution == "" {
			return fmt.Errorf("%w: category %q issue %d is missing problem or solution", ErrInvalidCatalog, c.Name, i)
		}
		if len(issue.Parts) == 0 {
			return fmt.Errorf("%w: category %q issue %d has no parts", ErrInvalidCatalog, c.Name, i)
		}
		if err := printable("issue text", issue.Problem, issue.Solution); err != nil {
			return err
		}
		if err := printable("part", issue.Parts...); err != nil {
			return err
		}
		for _, part := range issue.Parts {
			if part == "" {
				return fmt.Errorf("%w: category %q issue %d has an empty part", ErrInvalidCatalog, c.Name, i)
			}
			// Parts are joined with the separator and split again when rendered
			if strings.Contains(part, models.PartsSeparator) {
				return fmt.Errorf("%w: part %q contains %q", ErrInvalidCatalog, part, models.PartsSeparator)
			}
		}
	}
	return nil
}

// printable rejects text the report fonts would not draw verbatim.
func printable(kind string, values ...string) error {
	for _, v := range values {
		if !models.Printable(v) {
			return fmt.Errorf("%w: %s %q contains characters outside the Windows-1252 set", ErrInvalidCatalog, kind, v)
		}
	}
	return nil
}
