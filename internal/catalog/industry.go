package catalog

import "strings"

// Industry is a business category that selects which question set applies.
type Industry string

const (
	IndustryBoutique   Industry = "Boutique"
	IndustryCoffeeShop Industry = "Coffee Shop"
	IndustryLegal      Industry = "Legal"
	IndustryDental     Industry = "Dental"
	IndustryArtGallery Industry = "Art Gallery"
)

// Industries returns all industries in display order.
func Industries() []Industry {
	return []Industry{
		IndustryBoutique,
		IndustryCoffeeShop,
		IndustryLegal,
		IndustryDental,
		IndustryArtGallery,
	}
}

// Slug returns the flag-friendly form of the industry name.
func (i Industry) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(i)), " ", "-")
}

// Known reports whether i is one of the fixed industries.
func (i Industry) Known() bool {
	for _, ind := range Industries() {
		if ind == i {
			return true
		}
	}
	return false
}

// ParseIndustry matches s against industry names and slugs, ignoring case.
func ParseIndustry(s string) (Industry, bool) {
	s = strings.TrimSpace(s)
	for _, ind := range Industries() {
		if strings.EqualFold(s, string(ind)) || strings.EqualFold(s, ind.Slug()) {
			return ind, true
		}
	}
	return "", false
}
