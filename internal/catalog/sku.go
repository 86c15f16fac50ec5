package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukydev/service-docs/internal/models"
)

// ErrPartNotFound is returned when no catalog part matches a SKU.
var ErrPartNotFound = errors.New("part not found")

// PartMatch identifies one part together with the issue and category it belongs to.
type PartMatch struct {
	Category models.Category
	Issue    models.Issue
	Part     string
}

// SKUEntry is one SKU-bearing part in the catalog.
type SKUEntry struct {
	SKU      string
	Category string
	Part     string
}

// FindPartBySKU returns the first part whose description starts with sku,
// compared case-insensitively.
func FindPartBySKU(cat *models.Catalog, sku string) (PartMatch, error) {
	prefix := strings.ToLower(strings.TrimSpace(sku))
	if prefix == "" {
		return PartMatch{}, fmt.Errorf("%w: empty SKU", ErrPartNotFound)
	}
	for _, c := range cat.Categories {
		for _, issue := range c.Issues {
			for _, part := range issue.Parts {
				if strings.HasPrefix(strings.ToLower(part), prefix) {
					return PartMatch{Category: c, Issue: issue, Part: part}, nil
				}
			}
		}
	}
	return PartMatch{}, fmt.Errorf("%w: %s", ErrPartNotFound, sku)
}

// ListSKUs returns every part carrying a structured SKU, in catalog order.
func ListSKUs(cat *models.Catalog) []SKUEntry {
	var entries []SKUEntry
	for _, c := range cat.Categories {
		for _, issue := range c.Issues {
			for _, part := range issue.Parts {
				sku, ok := models.ParseSKU(part)
				if !ok {
					continue
				}
				entries = append(entries, SKUEntry{SKU: sku, Category: c.Name, Part: part})
			}
		}
	}
	return entries
}
