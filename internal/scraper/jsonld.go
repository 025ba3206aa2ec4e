package scraper

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Property24 embeds a schema.org graph in each listing page; it is the most
// reliable source for the structured fields, so it is tried before any HTML
// fallbacks.

type ldDocument struct {
	Graph []ldListing `json:"@graph"`
}

type ldListing struct {
	Type        string     `json:"@type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	DatePosted  string     `json:"datePosted"`
	Image       any        `json:"image"`
	About       ldProperty `json:"about"`
	Offers      ldOffer    `json:"offers"`
}

type ldProperty struct {
	Type              string     `json:"@type"`
	NumberOfBedrooms  any        `json:"numberOfBedrooms"`
	NumberOfBathrooms any        `json:"numberOfBathroomsTotal"`
	FloorSize         ldQuantity `json:"floorSize"`
	Address           ldAddress  `json:"address"`
	PetsAllowed       any        `json:"petsAllowed"`
}

type ldQuantity struct {
	Value any `json:"value"`
}

type ldAddress struct {
	StreetAddress   string `json:"streetAddress"`
	AddressLocality string `json:"addressLocality"`
	AddressRegion   string `json:"addressRegion"`
}

type ldOffer struct {
	URL                string      `json:"url"`
	PriceSpecification ldPriceSpec `json:"priceSpecification"`
	OfferedBy          ldAgent     `json:"offeredBy"`
}

type ldPriceSpec struct {
	Price         any    `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
}

type ldAgent struct {
	Name     string   `json:"name"`
	URL      string   `json:"url"`
	WorksFor ldAgency `json:"worksFor"`
}

type ldAgency struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ldString renders a JSON-LD scalar that may arrive as a string or number.
func ldString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// applyJSONLD fills the listing from the page's JSON-LD graph. Returns
// false if no RealEstateListing node was found.
func applyJSONLD(doc *goquery.Document, listing *Listing) bool {
	found := false

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var ld ldDocument
		if err := json.Unmarshal([]byte(s.Text()), &ld); err != nil {
			return true // malformed block, try the next one
		}

		for _, item := range ld.Graph {
			if item.Type != "RealEstateListing" {
				continue
			}

			listing.ListingName = item.Name
			listing.Description = item.Description
			listing.ListedDate = item.DatePosted
			listing.Price = ldString(item.Offers.PriceSpecification.Price)
			listing.Bedrooms = ldString(item.About.NumberOfBedrooms)
			listing.Bathrooms = ldString(item.About.NumberOfBathrooms)
			listing.FloorSize = ldString(item.About.FloorSize.Value)
			listing.PropertyType = item.About.Type
			listing.Address = item.About.Address.StreetAddress
			listing.PetsAllowed = ldString(item.About.PetsAllowed)
			listing.Agent = Agent{
				Name:       item.Offers.OfferedBy.Name,
				ProfileURL: item.Offers.OfferedBy.URL,
				Agency:     item.Offers.OfferedBy.WorksFor.Name,
				AgencyURL:  item.Offers.OfferedBy.WorksFor.URL,
			}
			if listing.Suburb == "" {
				listing.Suburb = item.About.Address.AddressLocality
			}
			if listing.Province == "" {
				listing.Province = item.About.Address.AddressRegion
			}

			found = true
			return false
		}
		return true
	})

	return found
}
