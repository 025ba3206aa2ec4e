// Package note renders scraped listings into Obsidian Markdown notes with
// YAML frontmatter and financial analysis tables.
package note

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Jason-Joannou/Property24-to-Obsidan/internal/scraper"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/affordability"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/constants"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/format"
	"github.com/Jason-Joannou/Property24-to-Obsidan/pkg/numeric"
)

// Note is a rendered Markdown note plus the metadata needed to file it in
// the vault.
type Note struct {
	Filename string
	Content  string

	Province string
	City     string
	Suburb   string

	Price        float64
	MonthlyTotal float64
}

// frontmatter is the YAML block at the head of each note, shaped for
// Obsidian dataview queries.
type frontmatter struct {
	Date         string   `yaml:"date"`
	Tags         []string `yaml:"tags"`
	CSSClasses   []string `yaml:"cssclasses"`
	PropertyType string   `yaml:"property_type"`
	Status       string   `yaml:"status"`
	Source       string   `yaml:"source"`
	Province     string   `yaml:"province"`
	City         string   `yaml:"city"`
	Suburb       string   `yaml:"suburb"`
	Bedrooms     string   `yaml:"bedrooms"`
	Bathrooms    string   `yaml:"bathrooms"`
	Amenities    []string `yaml:"amenities,omitempty"`
}

// Generator renders listings into notes using an affordability engine for
// the financial tables.
type Generator struct {
	engine *affordability.Engine
	logger *zap.Logger
	now    func() time.Time
}

// NewGenerator creates a note generator. If logger is nil a no-op logger
// is used.
func NewGenerator(engine *affordability.Engine, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		engine: engine,
		logger: logger,
		now:    time.Now,
	}
}

// Generate renders a listing into a complete note. Missing or malformed
// cost fields degrade to zero so the note is always renderable.
func (g *Generator) Generate(listing *scraper.Listing) (*Note, error) {
	if listing == nil {
		return nil, fmt.Errorf("cannot generate a note from a nil listing")
	}

	price := numeric.AmountString(listing.Price)
	levies := numeric.AmountString(listing.Levies)
	ratesTaxes := numeric.AmountString(listing.RatesAndTaxes)

	estimate := g.engine.EstimateCosts(price, levies, ratesTaxes)

	g.logger.Debug("estimated listing costs",
		zap.String("op", "note.Generate"),
		zap.Float64("price", price),
		zap.Float64("onceOffTotal", estimate.OnceOff.Total),
		zap.Float64("monthlyTotal", estimate.Monthly.Total),
	)

	head, err := g.renderFrontmatter(listing)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(head)
	g.renderBasicInfo(&b, listing)
	g.renderFinancials(&b, listing, estimate)
	g.renderSpecifications(&b, listing, levies, ratesTaxes)
	g.renderAgent(&b, listing)
	g.renderAssessment(&b)
	g.renderFooter(&b, listing)

	return &Note{
		Filename:     Filename(listing),
		Content:      b.String(),
		Province:     listing.Province,
		City:         listing.City,
		Suburb:       listing.Suburb,
		Price:        price,
		MonthlyTotal: estimate.Monthly.Total,
	}, nil
}

func (g *Generator) renderFrontmatter(listing *scraper.Listing) (string, error) {
	fm := frontmatter{
		Date:         g.now().Format(constants.NoteTimestampLayout),
		Tags:         []string{"property", "portfolio"},
		CSSClasses:   []string{"page-manila", "pen-black"},
		PropertyType: listing.PropertyType,
		Status:       "interested",
		Source:       listing.Source,
		Province:     listing.Province,
		City:         listing.City,
		Suburb:       listing.Suburb,
		Bedrooms:     listing.Bedrooms,
		Bathrooms:    listing.Bathrooms,
		Amenities:    listing.Amenities,
	}

	data, err := yaml.Marshal(fm)
	if err != nil {
		return "", fmt.Errorf("failed to marshal frontmatter: %w", err)
	}
	return "---\n" + string(data) + "---\n", nil
}

func (g *Generator) renderBasicInfo(b *strings.Builder, listing *scraper.Listing) {
	title := listing.ListingName
	if title == "" {
		title = "Unknown Property"
	}

	fmt.Fprintf(b, "\n# %s\n\n", title)
	b.WriteString("## Location & Basic Info\n\n")
	b.WriteString("| Field | Value |\n|-------|-------|\n")
	fmt.Fprintf(b, "| **Address** | %s |\n", orNA(listing.Address))
	fmt.Fprintf(b, "| **Suburb** | [[%s]] |\n", orNA(listing.Suburb))
	fmt.Fprintf(b, "| **City** | %s |\n", orNA(listing.City))
	fmt.Fprintf(b, "| **Province** | %s |\n", orNA(listing.Province))
	fmt.Fprintf(b, "| **Property Type** | %s |\n", orNA(listing.PropertyType))
	fmt.Fprintf(b, "| **Listing ID** | %s |\n", orNA(listing.ListingID))
	fmt.Fprintf(b, "| **Listed Date** | %s |\n", orNA(listing.ListedDate))
}

func (g *Generator) renderFinancials(b *strings.Builder, listing *scraper.Listing, est affordability.Estimate) {
	cfg := g.engine.Config()

	b.WriteString("\n## Financial Analysis\n\n")

	b.WriteString("### Purchase Costs\n\n")
	b.WriteString("| Item | Amount |\n|------|--------|\n")
	fmt.Fprintf(b, "| **Purchase Price** | %s |\n", format.Rand(est.Price))
	fmt.Fprintf(b, "| **Deposit (%.0f%%)** | %s |\n", cfg.DepositRate, format.Rand(est.OnceOff.Deposit))
	fmt.Fprintf(b, "| **Transfer Duty** | %s |\n", format.Rand(est.OnceOff.TransferDuty))
	fmt.Fprintf(b, "| **Bond Registration** | %s |\n", format.Rand(est.OnceOff.BondRegistration))
	fmt.Fprintf(b, "| **Transfer Costs** | %s |\n", format.Rand(est.OnceOff.TransferCosts))
	fmt.Fprintf(b, "| **Attorney Fees** | %s |\n", format.Rand(est.OnceOff.AttorneyFees))
	fmt.Fprintf(b, "| **Bond Origination** | %s |\n", format.Rand(est.OnceOff.BondOrigination))
	fmt.Fprintf(b, "| **Moving Costs** | %s |\n", format.Rand(est.OnceOff.MovingCosts))
	fmt.Fprintf(b, "| **Security Setup** | %s |\n", format.Rand(est.OnceOff.SecuritySetup))
	fmt.Fprintf(b, "| **Immediate Repairs** | %s |\n", format.Rand(est.OnceOff.ImmediateRepairs))
	fmt.Fprintf(b, "| **Total Once-Off Costs** | %s |\n", format.Rand(est.OnceOff.Total))
	fmt.Fprintf(b, "| **Total Purchase Cost** | %s |\n", format.Rand(est.OnceOff.GrandTotal))

	b.WriteString("\n### Bond Calculations\n\n")
	b.WriteString("| Item | Amount |\n|------|--------|\n")
	fmt.Fprintf(b, "| **Deposit (%.0f%%)** | %s |\n", cfg.DepositRate, format.Rand(est.Deposit))
	fmt.Fprintf(b, "| **Bond Amount** | %s |\n", format.Rand(est.BondAmount))
	fmt.Fprintf(b, "| **Interest Rate** | %.2f%% (prime) |\n", cfg.InterestRate)
	fmt.Fprintf(b, "| **Bond Term** | %d years |\n", cfg.TermYears)
	fmt.Fprintf(b, "| **Monthly Payment** | %s |\n", format.Rand(est.Monthly.BondPayment))

	b.WriteString("\n### Monthly Costs\n\n")
	b.WriteString("| Item | Amount |\n|------|--------|\n")
	fmt.Fprintf(b, "| **Bond Payment** | %s |\n", format.Rand(est.Monthly.BondPayment))
	fmt.Fprintf(b, "| **Levies** | %s |\n", format.Rand(est.Monthly.Levies))
	fmt.Fprintf(b, "| **Rates & Taxes** | %s |\n", format.Rand(est.Monthly.RatesTaxes))
	fmt.Fprintf(b, "| **Insurance** | %s |\n", format.Rand(est.Monthly.Insurance))
	fmt.Fprintf(b, "| **Maintenance** | %s |\n", format.Rand(est.Monthly.Maintenance))
	if !cfg.ExcludeUtilities {
		fmt.Fprintf(b, "| **Utilities** | %s |\n", format.Rand(est.Monthly.Utilities))
	}
	if !cfg.ExcludeSecurity {
		fmt.Fprintf(b, "| **Security** | %s |\n", format.Rand(est.Monthly.Security))
	}
	fmt.Fprintf(b, "| **Total Monthly** | %s |\n", format.Rand(est.Monthly.Total))

	b.WriteString("\n### Investment Metrics\n\n")
	b.WriteString("| Metric | Value |\n|--------|-------|\n")
	fmt.Fprintf(b, "| **Break-even Rental** | %s |\n", format.Rand(est.Monthly.Total))
}

func (g *Generator) renderSpecifications(b *strings.Builder, listing *scraper.Listing, levies, ratesTaxes float64) {
	b.WriteString("\n## Property Features\n\n")
	b.WriteString("### Property Specifications\n\n")
	b.WriteString("| Specification | Value |\n|---------------|-------|\n")
	fmt.Fprintf(b, "| **Floor Size** | %s m² |\n", orNA(listing.FloorSize))
	fmt.Fprintf(b, "| **Erf Size** | %s |\n", orNA(listing.ErfSize))
	fmt.Fprintf(b, "| **Bedrooms** | %s |\n", orNA(listing.Bedrooms))
	fmt.Fprintf(b, "| **Bathrooms** | %s |\n", orNA(listing.Bathrooms))
	fmt.Fprintf(b, "| **Parking** | %s |\n", orNA(listing.Parking))
	fmt.Fprintf(b, "| **Levies** | %s |\n", format.Rand(levies))
	fmt.Fprintf(b, "| **Rates & Taxes** | %s |\n", format.Rand(ratesTaxes))
	fmt.Fprintf(b, "| **Pets Allowed** | %s |\n", orNA(listing.PetsAllowed))

	if len(listing.Amenities) > 0 {
		b.WriteString("\n### Key Features\n\n")
		for _, amenity := range listing.Amenities {
			fmt.Fprintf(b, "- %s\n", titleCase(amenity))
		}
	}

	if listing.Description != "" {
		b.WriteString("\n### Description\n\n")
		b.WriteString(listing.Description)
		b.WriteString("\n")
	}
}

func (g *Generator) renderAgent(b *strings.Builder, listing *scraper.Listing) {
	b.WriteString("\n## Agent Information\n\n")
	b.WriteString("| Field | Value |\n|-------|-------|\n")
	fmt.Fprintf(b, "| **Agent Name** | %s |\n", orNA(listing.Agent.Name))
	fmt.Fprintf(b, "| **Agency** | %s |\n", orNA(listing.Agent.Agency))
	if listing.Agent.ProfileURL != "" {
		fmt.Fprintf(b, "| **Agent Profile** | [%s](%s) |\n", orNA(listing.Agent.Name), listing.Agent.ProfileURL)
	}
	if listing.Agent.AgencyURL != "" {
		fmt.Fprintf(b, "| **Agency Profile** | [%s](%s) |\n", orNA(listing.Agent.Agency), listing.Agent.AgencyURL)
	}
}

func (g *Generator) renderAssessment(b *strings.Builder) {
	b.WriteString(`
## Viewing & Assessment

### Viewing Details
- **Viewing Date**:
- **Viewing Time**:
- **Viewing Notes**:

### Property Assessment
- **Overall Condition**:
- **Score (1-10)**:
- **Pros**:
  -
- **Cons**:
  -

### Decision
- **Status**:
- **Decision**:
- **Reason**:
- **Next Steps**:

## Documents & Links

### Required Documents
- [ ] Title Deed
- [ ] Rates Certificate
- [ ] Electrical Certificate
- [ ] Plumbing Certificate
- [ ] Building Plans
- [ ] Body Corporate Rules (if applicable)
`)
}

func (g *Generator) renderFooter(b *strings.Builder, listing *scraper.Listing) {
	b.WriteString("\n### Links\n\n")
	fmt.Fprintf(b, "- **Property Listing**: [View on %s](%s)\n", listing.Source, listing.URL)
	b.WriteString("\n---\n")
	fmt.Fprintf(b, "*Last updated: %s*  \n", g.now().Format(constants.NoteTimestampLayout))
	fmt.Fprintf(b, "*Scraped from: %s on %s*\n", listing.Source,
		listing.ScrapedAt.Format(constants.NoteTimestampLayout))
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return "N/A"
	}
	return value
}

// titleCase turns an amenity key like "air_conditioning" into "Air Conditioning".
func titleCase(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
