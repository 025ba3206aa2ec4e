// Package scraper fetches a Property24 listing page and normalizes it into
// a Listing record.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/constants"
)

var (
	// Rand amounts with space-grouped thousands, e.g. "R 1 500 000".
	pricePattern = regexp.MustCompile(`R\s*([\d\s,]+)`)

	bedroomsPattern  = regexp.MustCompile(`(?i)(\d+)\s*(?:bed|bedroom)`)
	bathroomsPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:bath|bathroom)`)
	parkingPattern   = regexp.MustCompile(`(?i)(\d+)\s*(?:parking|garage)`)
	floorSizePattern = regexp.MustCompile(`(\d+)\s*m²`)

	separatorPattern = regexp.MustCompile(`[\s,]`)
)

// Scraper fetches and parses Property24 listing pages.
type Scraper struct {
	client    *http.Client
	userAgent string
	logger    *zap.Logger
}

// Option customizes a Scraper.
type Option func(*Scraper)

// WithHTTPClient overrides the HTTP client, e.g. for tests.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) {
		s.client = client
	}
}

// WithUserAgent overrides the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(s *Scraper) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// New creates a Scraper. If logger is nil a no-op logger is used.
func New(logger *zap.Logger, opts ...Option) *Scraper {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Scraper{
		client:    &http.Client{Timeout: constants.DefaultScrapeTimeoutSeconds * time.Second},
		userAgent: constants.DefaultUserAgent,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scrape fetches a Property24 listing page and returns the normalized
// listing record. Only property24.com URLs are supported.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*Listing, error) {
	if !strings.Contains(strings.ToLower(rawURL), "property24") {
		return nil, fmt.Errorf("unsupported listing URL %s: only Property24 is supported", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, rawURL)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}

	return s.parse(doc, rawURL), nil
}

// parse extracts the listing from a parsed document. JSON-LD wins where
// present; plain-text regex fallbacks cover the rest.
func (s *Scraper) parse(doc *goquery.Document, rawURL string) *Listing {
	listing := &Listing{
		URL:       rawURL,
		Source:    constants.DefaultSource,
		ScrapedAt: time.Now(),
	}

	applyLocationFromURL(rawURL, listing)

	if applyJSONLD(doc, listing) {
		s.logger.Debug("extracted listing from JSON-LD",
			zap.String("op", "scraper.Scrape"),
			zap.String("listing", listing.ListingName),
		)
	} else {
		s.logger.Debug("no JSON-LD found, relying on HTML fallbacks",
			zap.String("op", "scraper.Scrape"),
			zap.String("url", rawURL),
		)
	}

	pageText := doc.Text()

	if listing.Price == "" {
		listing.Price = fallbackPrice(pageText)
	}
	if listing.Bedrooms == "" {
		listing.Bedrooms = firstMatch(bedroomsPattern, pageText)
	}
	if listing.Bathrooms == "" {
		listing.Bathrooms = firstMatch(bathroomsPattern, pageText)
	}
	if listing.Parking == "" {
		listing.Parking = firstMatch(parkingPattern, pageText)
	}
	if listing.FloorSize == "" {
		listing.FloorSize = firstMatch(floorSizePattern, pageText)
	}

	s.applyOverviewRows(doc, listing)
	listing.Amenities = extractAmenities(doc)

	if listing.Agent.Name == "" {
		listing.Agent.Name = fallbackAgentName(doc)
	}

	if listing.Price == "" {
		s.logger.Warn("listing has no scrapeable price, estimates will be zero",
			zap.String("op", "scraper.Scrape"),
			zap.String("url", rawURL),
		)
	}

	return listing
}

// applyOverviewRows walks the property overview key/value rows for the
// fields that never appear in JSON-LD: levies, rates, erf size, and the
// listing number.
func (s *Scraper) applyOverviewRows(doc *goquery.Document, listing *Listing) {
	doc.Find(".p24_propertyOverviewRow, .p24_listingFeatures li").Each(func(_ int, row *goquery.Selection) {
		key := strings.TrimSpace(row.Find(".p24_propertyOverviewKey, .p24_feature").First().Text())
		value := strings.TrimSpace(row.Find(".p24_info, .p24_featureAmount").First().Text())
		if key == "" || value == "" {
			return
		}

		switch {
		case strings.EqualFold(key, "Levies"):
			listing.Levies = value
		case strings.EqualFold(key, "Rates and Taxes"), strings.EqualFold(key, "Rates & Taxes"):
			listing.RatesAndTaxes = value
		case strings.EqualFold(key, "Erf Size"):
			listing.ErfSize = value
		case strings.EqualFold(key, "Floor Size") && listing.FloorSize == "":
			listing.FloorSize = value
		case strings.EqualFold(key, "Listing Number"):
			listing.ListingID = value
		case strings.EqualFold(key, "Type of Property") && listing.PropertyType == "":
			listing.PropertyType = value
		case strings.EqualFold(key, "Pets Allowed") && listing.PetsAllowed == "":
			listing.PetsAllowed = value
		}
	})
}

// applyLocationFromURL derives suburb, city, and province from the listing
// URL path, which Property24 structures as
// /for-sale/<suburb>/<city>/<province>/<area-id>/<listing-id>.
func applyLocationFromURL(rawURL string, listing *Listing) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) < 4 || (segments[0] != "for-sale" && segments[0] != "to-rent") {
		return
	}

	listing.Suburb = titleFromSlug(segments[1])
	listing.City = titleFromSlug(segments[2])
	listing.Province = titleFromSlug(segments[3])
	if len(segments) >= 6 {
		listing.ListingID = segments[5]
	}
}

// titleFromSlug converts a URL slug like "cape-town" into "Cape Town".
func titleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// fallbackPrice scans the page text for the first plausible Rand amount.
// Amounts under six digits are ignored; those are floor sizes and room
// counts, not sale prices.
func fallbackPrice(pageText string) string {
	for _, match := range pricePattern.FindAllStringSubmatch(pageText, -1) {
		cleaned := separatorPattern.ReplaceAllString(match[1], "")
		if len(cleaned) >= 6 {
			return cleaned
		}
	}
	return ""
}

// fallbackAgentName pulls the first plausible line out of the agent
// details block.
func fallbackAgentName(doc *goquery.Document) string {
	agentText := doc.Find(".p24_agentDetails").First().Text()
	for _, line := range strings.Split(agentText, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > 3 && !strings.Contains(strings.ToLower(line), "show") {
			return line
		}
	}
	return ""
}

func firstMatch(pattern *regexp.Regexp, text string) string {
	if m := pattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}
