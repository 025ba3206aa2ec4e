package scraper

import "time"

// Agent identifies the listing agent and agency.
type Agent struct {
	Name       string
	Agency     string
	ProfileURL string
	AgencyURL  string
}

// Listing is the normalized property record produced by a scrape. Cost
// fields keep the raw scraped strings (e.g. "R 1 500 000"); consumers
// normalize them with the numeric package so that partially scraped
// listings still flow through estimation and rendering.
type Listing struct {
	URL       string
	Source    string
	ScrapedAt time.Time

	ListingName string
	ListingID   string
	ListedDate  string

	Price         string
	Levies        string
	RatesAndTaxes string

	Address  string
	Suburb   string
	City     string
	Province string

	PropertyType string
	Bedrooms     string
	Bathrooms    string
	Parking      string
	FloorSize    string
	ErfSize      string
	PetsAllowed  string
	Description  string

	Agent     Agent
	Amenities []string
}
