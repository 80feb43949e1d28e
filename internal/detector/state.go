package detector

import "strings"

// stateNames holds full US state names. Names that contain another name
// as a prefix ("West Virginia" vs "Virginia") are listed first so the
// alternation prefers the longer form.
var stateNames = []string{
	"West Virginia", "New Hampshire", "New Jersey", "New Mexico",
	"New York", "North Carolina", "North Dakota", "South Carolina",
	"South Dakota", "Rhode Island", "Alabama", "Alaska", "Arizona",
	"Arkansas", "California", "Colorado", "Connecticut", "Delaware",
	"Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana",
	"Iowa", "Kansas", "Kentucky", "Louisiana", "Maine", "Maryland",
	"Massachusetts", "Michigan", "Minnesota", "Mississippi", "Missouri",
	"Montana", "Nebraska", "Nevada", "Ohio", "Oklahoma", "Oregon",
	"Pennsylvania", "Tennessee", "Texas", "Utah", "Vermont", "Virginia",
	"Washington", "Wisconsin", "Wyoming",
}

var stateAbbreviations = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "FL", "GA",
	"HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "MA", "MD",
	"ME", "MI", "MN", "MO", "MS", "MT", "NC", "ND", "NE", "NH",
	"NJ", "NM", "NV", "NY", "OH", "OK", "OR", "PA", "RI", "SC",
	"SD", "TN", "TX", "UT", "VA", "VT", "WA", "WI", "WV", "WY",
}

// stateRegex matches full names and two-letter abbreviations on word
// boundaries, case-sensitively. Abbreviations that double as English
// words in lowercase ("in", "or") therefore do not fire.
var stateRegex = compile(`\b(?:` +
	strings.Join(stateNames, "|") + `|` +
	strings.Join(stateAbbreviations, "|") + `)\b`)

// StateProvinceDetector matches US state names and abbreviations.
type StateProvinceDetector struct{}

// Name implements Detector.
func (StateProvinceDetector) Name() string { return "state-province" }

// Category implements Detector.
func (StateProvinceDetector) Category() Category { return CategoryStateProvince }

// Detect implements Detector.
func (StateProvinceDetector) Detect(text string) []Span {
	return findAll(stateRegex, text, CategoryStateProvince, 0.80)
}
