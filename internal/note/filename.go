package note

import (
	"regexp"
	"strings"

	"github.com/Jason-Joannou/Property24-to-Obsidan/internal/scraper"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/constants"
)

var (
	unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Filename builds a vault-safe filename from the listing name, suffixed
// with the listing ID for uniqueness.
func Filename(listing *scraper.Listing) string {
	base := listing.ListingName
	if base == "" {
		base = "Property"
	}

	base = unsafeChars.ReplaceAllString(base, "")
	base = whitespace.ReplaceAllString(strings.TrimSpace(base), "_")
	if len(base) > constants.MaxFilenameBaseLength {
		base = base[:constants.MaxFilenameBaseLength]
	}
	if base == "" {
		base = "Property"
	}

	if listing.ListingID != "" {
		base = base + "_" + listing.ListingID
	}

	return base + ".md"
}
