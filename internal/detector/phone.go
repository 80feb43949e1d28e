package detector

import "regexp"

// Phone formats are tried in sequence; a number found by more than one
// pattern counts once (exact-range dedup).
var phoneRegexes = []*regexp.Regexp{
	compile(`\b\d{3}[-.\s]\d{3}[-.\s]\d{4}\b`),            // 555-123-4567
	compile(`\(\d{3}\)\s?\d{3}[-.\s]?\d{4}\b`),            // (555) 123-4567
	compile(`\+\d{1,3}[-.\s]?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}\b`), // +1 555-123-4567
	compile(`\b\d{10}\b`),                                  // bare 10-digit run
}

// PhoneDetector matches North-American style phone numbers in several
// common layouts.
type PhoneDetector struct{}

// Name implements Detector.
func (PhoneDetector) Name() string { return "phone" }

// Category implements Detector.
func (PhoneDetector) Category() Category { return CategoryPhone }

// Detect implements Detector. Matches whose digit count falls outside
// [10, 15] are rejected; they are fragments of longer digit runs, not
// dialable numbers.
func (PhoneDetector) Detect(text string) []Span {
	var spans []Span
	for _, re := range phoneRegexes {
		spans = append(spans, findAll(re, text, CategoryPhone, 0.90)...)
	}

	var valid []Span
	for _, s := range dedupeExact(spans) {
		n := len(digitsOnly(s.MatchedText))
		if n >= 10 && n <= 15 {
			valid = append(valid, s)
		}
	}
	return valid
}
