package detector

// streetRegex requires a leading house number, one or more capitalized
// words, and a street-type token, optionally followed by a period.
var streetRegex = compile(`\b\d+\s+(?:[A-Z][A-Za-z]*\s+)+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Circle|Cir|Way|Place|Pl)\b\.?`)

// StreetAddressDetector matches US-style street addresses such as
// "123 Main Street" or "456 Oak Park Ave.".
type StreetAddressDetector struct{}

// Name implements Detector.
func (StreetAddressDetector) Name() string { return "street-address" }

// Category implements Detector.
func (StreetAddressDetector) Category() Category { return CategoryStreetAddress }

// Detect implements Detector.
func (StreetAddressDetector) Detect(text string) []Span {
	return findAll(streetRegex, text, CategoryStreetAddress, 0.85)
}

// postalRegex accepts 5-digit ZIP codes with an optional +4 extension.
// It also fires on plain 5-digit numbers that are not postal codes; the
// orchestrator's overlap resolution keeps longer matches (credit cards,
// phone numbers) ahead of it, but isolated 5-digit numbers are still
// flagged. Known imprecision.
var postalRegex = compile(`\b\d{5}(?:-\d{4})?\b`)

// PostalCodeDetector matches US ZIP and ZIP+4 codes.
type PostalCodeDetector struct{}

// Name implements Detector.
func (PostalCodeDetector) Name() string { return "postal-code" }

// Category implements Detector.
func (PostalCodeDetector) Category() Category { return CategoryPostalCode }

// Detect implements Detector.
func (PostalCodeDetector) Detect(text string) []Span {
	return findAll(postalRegex, text, CategoryPostalCode, 0.80)
}
