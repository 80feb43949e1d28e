package detector

import "regexp"

// Per-network candidate patterns plus a generic 16-digit fallback.
// Every candidate must also pass the Luhn checksum before it is
// reported, so a Visa-shaped number with a bad check digit is ignored.
var cardRegexes = []*regexp.Regexp{
	compile(`\b4\d{3}(?:[ -]?\d{4}){3}\b`),        // Visa
	compile(`\b5[1-5]\d{2}(?:[ -]?\d{4}){3}\b`),   // Mastercard
	compile(`\b3[47]\d{2}[ -]?\d{6}[ -]?\d{5}\b`), // American Express
	compile(`\b6011(?:[ -]?\d{4}){3}\b`),          // Discover
	compile(`\b(?:\d{4}[ -]?){3}\d{4}\b`),         // generic 16-digit
}

// CreditCardDetector matches payment card numbers and validates each
// candidate with the Luhn checksum.
type CreditCardDetector struct{}

// Name implements Detector.
func (CreditCardDetector) Name() string { return "credit-card" }

// Category implements Detector.
func (CreditCardDetector) Category() Category { return CategoryCreditCard }

// Detect implements Detector.
func (CreditCardDetector) Detect(text string) []Span {
	var spans []Span
	for _, re := range cardRegexes {
		spans = append(spans, findAll(re, text, CategoryCreditCard, 0.95)...)
	}

	var valid []Span
	for _, s := range dedupeExact(spans) {
		digits := digitsOnly(s.MatchedText)
		if len(digits) < 13 || len(digits) > 19 {
			continue
		}
		if !luhnValid(digits) {
			continue
		}
		valid = append(valid, s)
	}
	return valid
}

// luhnValid reports whether digits passes the Luhn checksum: from the
// rightmost digit, double every second digit, subtract 9 when the result
// exceeds 9, and require the total to be divisible by 10.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		n := int(digits[i] - '0')
		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		double = !double
	}
	return sum%10 == 0
}
