package detector

import (
	"fmt"
	"sort"
)

// Registry maps detector names to constructors.
type Registry map[string]Factory

// Factory builds a detector instance.
type Factory func() Detector

// DefaultRegistry contains the built-in detectors.
var DefaultRegistry = Registry{
	"email":          func() Detector { return EmailDetector{} },
	"phone":          func() Detector { return PhoneDetector{} },
	"street-address": func() Detector { return StreetAddressDetector{} },
	"postal-code":    func() Detector { return PostalCodeDetector{} },
	"city":           func() Detector { return NewCityDetector() },
	"state-province": func() Detector { return StateProvinceDetector{} },
	"credit-card":    func() Detector { return CreditCardDetector{} },
	"government-id":  func() Detector { return GovernmentIDDetector{} },
	"country":        func() Detector { return NewCountryDetector() },
}

// Names returns the registered detector names sorted alphabetically.
// The order is deterministic so repeated runs over the same input build
// detectors, and therefore candidate spans, in the same sequence.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildDetectors instantiates detectors from the provided names.
// Duplicates are skipped; unknown names are an error.
func (r Registry) BuildDetectors(names []string) ([]Detector, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var detectors []Detector
	seen := map[string]struct{}{}
	for _, name := range names {
		factory, ok := r[name]
		if !ok {
			return nil, fmt.Errorf("unknown detector: %s", name)
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		detectors = append(detectors, factory())
	}
	return detectors, nil
}

// BuildAll instantiates every registered detector.
func (r Registry) BuildAll() []Detector {
	detectors, _ := r.BuildDetectors(r.Names())
	return detectors
}

// Run executes every detector over the text and collects all candidate
// spans. A detector that panics contributes zero spans; the others are
// unaffected. Worst case the pipeline under-detects, it never aborts.
func Run(detectors []Detector, text string) []Span {
	var spans []Span
	for _, d := range detectors {
		spans = append(spans, SafeDetect(d, text)...)
	}
	return spans
}

// SafeDetect invokes d.Detect with panic isolation.
func SafeDetect(d Detector, text string) (spans []Span) {
	defer func() {
		if r := recover(); r != nil {
			spans = nil
		}
	}()
	return d.Detect(text)
}
