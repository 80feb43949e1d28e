package detector

import "regexp"

// SSN-style identifiers, hyphen or space separated.
var govIDRegexes = []*regexp.Regexp{
	compile(`\b\d{3}-\d{2}-\d{4}\b`),
	compile(`\b\d{3} \d{2} \d{4}\b`),
}

// GovernmentIDDetector matches US Social Security numbers.
type GovernmentIDDetector struct{}

// Name implements Detector.
func (GovernmentIDDetector) Name() string { return "government-id" }

// Category implements Detector.
func (GovernmentIDDetector) Category() Category { return CategoryGovernmentID }

// Detect implements Detector.
func (GovernmentIDDetector) Detect(text string) []Span {
	var spans []Span
	for _, re := range govIDRegexes {
		spans = append(spans, findAll(re, text, CategoryGovernmentID, 0.95)...)
	}
	return dedupeExact(spans)
}
