package detector

import "regexp"

// cityGazetteer lists major US cities matched by exact, case-insensitive
// substring search. Every occurrence of every entry is reported, not just
// the first.
var cityGazetteer = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"San Francisco", "Indianapolis", "Seattle", "Denver", "Washington",
	"Boston", "El Paso", "Nashville", "Detroit", "Oklahoma City",
	"Portland", "Las Vegas", "Memphis", "Louisville", "Baltimore",
	"Milwaukee", "Albuquerque", "Tucson", "Fresno", "Sacramento",
	"Kansas City", "Mesa", "Atlanta", "Omaha", "Colorado Springs",
	"Raleigh", "Miami", "Long Beach", "Virginia Beach", "Oakland",
	"Minneapolis", "Tulsa", "Arlington",
}

// CityDetector matches known city names from a fixed gazetteer.
type CityDetector struct {
	regexes []*regexp.Regexp
}

// NewCityDetector compiles one case-insensitive literal matcher per
// gazetteer entry. Compiling per entry keeps byte offsets exact without
// lowercasing the input (which can change byte lengths outside ASCII).
func NewCityDetector() *CityDetector {
	d := &CityDetector{}
	for _, name := range cityGazetteer {
		if re := compile(`(?i)` + regexp.QuoteMeta(name)); re != nil {
			d.regexes = append(d.regexes, re)
		}
	}
	return d
}

// Name implements Detector.
func (d *CityDetector) Name() string { return "city" }

// Category implements Detector.
func (d *CityDetector) Category() Category { return CategoryCity }

// Detect implements Detector.
func (d *CityDetector) Detect(text string) []Span {
	var spans []Span
	for _, re := range d.regexes {
		spans = append(spans, findAll(re, text, CategoryCity, 0.75)...)
	}
	return spans
}
