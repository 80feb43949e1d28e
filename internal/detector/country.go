package detector

import "regexp"

// countryGazetteer lists country names recognized for context. Country
// mentions are reported but the redactor's policy never replaces them;
// stripping them tends to destroy conversational meaning.
var countryGazetteer = []string{
	"United States", "United Kingdom", "New Zealand", "South Korea",
	"South Africa", "Canada", "Mexico", "England", "France", "Germany",
	"Spain", "Italy", "Portugal", "Netherlands", "Belgium",
	"Switzerland", "Austria", "Sweden", "Norway", "Denmark", "Finland",
	"Ireland", "Poland", "Russia", "China", "Japan", "India", "Brazil",
	"Argentina", "Australia", "Egypt", "Kenya", "Nigeria",
}

// CountryDetector matches known country names from a fixed gazetteer.
type CountryDetector struct {
	regexes []*regexp.Regexp
}

// NewCountryDetector compiles one case-insensitive literal matcher per
// gazetteer entry, same scheme as the city detector.
func NewCountryDetector() *CountryDetector {
	d := &CountryDetector{}
	for _, name := range countryGazetteer {
		if re := compile(`(?i)` + regexp.QuoteMeta(name)); re != nil {
			d.regexes = append(d.regexes, re)
		}
	}
	return d
}

// Name implements Detector.
func (d *CountryDetector) Name() string { return "country" }

// Category implements Detector.
func (d *CountryDetector) Category() Category { return CategoryCountry }

// Detect implements Detector.
func (d *CountryDetector) Detect(text string) []Span {
	var spans []Span
	for _, re := range d.regexes {
		spans = append(spans, findAll(re, text, CategoryCountry, 0.70)...)
	}
	return spans
}
