package redactor

import "github.com/example/pii-redact/internal/detector"

// Policy is the static per-category rule deciding whether a detected
// category is ever replaced in output, and which placeholder prefix is
// used when it is.
type Policy struct {
	Redact bool
	Prefix string
}

// Country mentions are detected for the report but always preserved in
// the output text.
var policies = map[detector.Category]Policy{
	detector.CategoryEmail:          {Redact: true, Prefix: "EMAIL"},
	detector.CategoryPhone:          {Redact: true, Prefix: "PHONE"},
	detector.CategoryStreetAddress:  {Redact: true, Prefix: "STREET"},
	detector.CategoryCity:           {Redact: true, Prefix: "CITY"},
	detector.CategoryStateProvince:  {Redact: true, Prefix: "STATE"},
	detector.CategoryPostalCode:     {Redact: true, Prefix: "ZIP"},
	detector.CategoryCountry:        {Redact: false, Prefix: "COUNTRY"},
	detector.CategoryCreditCard:     {Redact: true, Prefix: "CREDIT_CARD"},
	detector.CategoryGovernmentID:   {Redact: true, Prefix: "SSN"},
	detector.CategoryGenericAddress: {Redact: true, Prefix: "ADDRESS"},
}

// PolicyFor returns the policy for a category. Unknown categories are
// treated as non-redactable so an unexpected span can never corrupt the
// output.
func PolicyFor(cat detector.Category) Policy {
	if p, ok := policies[cat]; ok {
		return p
	}
	return Policy{Redact: false, Prefix: string(cat)}
}
