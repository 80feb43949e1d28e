package detector

// Category identifies the kind of personally identifiable information a
// span covers. The set is closed; adding a category means adding a
// detector here and a policy entry in the redactor.
type Category string

const (
	CategoryEmail          Category = "EMAIL"
	CategoryPhone          Category = "PHONE"
	CategoryStreetAddress  Category = "STREET_ADDRESS"
	CategoryCity           Category = "CITY"
	CategoryStateProvince  Category = "STATE_PROVINCE"
	CategoryPostalCode     Category = "POSTAL_CODE"
	CategoryCountry        Category = "COUNTRY"
	CategoryCreditCard     Category = "CREDIT_CARD"
	CategoryGovernmentID   Category = "GOVERNMENT_ID"
	CategoryGenericAddress Category = "GENERIC_ADDRESS"
)

// Span represents a single candidate detection inside the input text.
// Start and End are byte offsets into the original string, half-open.
// They always fall on UTF-8 rune boundaries because every detector
// matches over the same Go string; no other offset space is used
// anywhere in the pipeline.
type Span struct {
	Category    Category `json:"category"`
	Start       int      `json:"start"`
	End         int      `json:"end"`
	MatchedText string   `json:"matchedText"`
	Confidence  float64  `json:"confidence,omitempty"`
}

// Len returns the span width in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Overlaps reports whether two spans share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End && other.Start < s.End
}

// Detector is implemented by modules that scan text for one PII category.
// Implementations are stateless values; Detect is safe for concurrent use
// with different inputs.
type Detector interface {
	Name() string
	Category() Category
	Detect(text string) []Span
}
