package scraper

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// amenityKeywords maps an amenity name to the page-text keywords that
// indicate its presence.
var amenityKeywords = map[string][]string{
	"pool":             {"pool", "swimming"},
	"security":         {"security", "24-hour", "access control", "secure"},
	"gym":              {"gym", "fitness", "exercise"},
	"parking":          {"parking", "garage", "carport"},
	"garden":           {"garden", "landscaped", "outdoor space"},
	"balcony":          {"balcony", "terrace", "patio"},
	"view":             {"view", "mountain view", "sea view", "city view"},
	"kitchen":          {"kitchen", "modern kitchen", "fitted kitchen"},
	"laundry":          {"laundry", "washing"},
	"elevator":         {"elevator", "lift"},
	"air_conditioning": {"air conditioning", "aircon", "climate control"},
	"fireplace":        {"fireplace", "braai"},
}

// extractAmenities scans the full page text for amenity keywords and
// returns the amenity names found, sorted for stable note output.
func extractAmenities(doc *goquery.Document) []string {
	pageText := strings.ToLower(doc.Text())

	var found []string
	for amenity, keywords := range amenityKeywords {
		for _, keyword := range keywords {
			if strings.Contains(pageText, keyword) {
				found = append(found, amenity)
				break
			}
		}
	}

	sort.Strings(found)
	return found
}
