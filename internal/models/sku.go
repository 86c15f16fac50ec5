package models

import (
	"regexp"
	"strings"
)

// skuPattern matches the structured prefix "SKU-XX-######" of a part description.
var skuPattern = regexp.MustCompile(`^SKU-[A-Z]{2}-[0-9]{6}`)

// skuSeparator divides the SKU from the free text part name.
const skuSeparator = " - "

// ParseSKU extracts the SKU prefix from a part description.
// It reports false when the part carries no structured SKU.
func ParseSKU(part string) (string, bool) {
	sku := skuPattern.FindString(part)
	if sku == "" {
		return "", false
	}
	rest := part[len(sku):]
	if rest != "" && !strings.HasPrefix(rest, skuSeparator) {
		return "", false
	}
	return sku, true
}

// PartName returns the free text portion of a part description, without its SKU.
func PartName(part string) string {
	if _, ok := ParseSKU(part); !ok {
		return part
	}
	if i := strings.Index(part, skuSeparator); i >= 0 {
		return part[i+len(skuSeparator):]
	}
	return part
}
