package detector

import "testing"

type fakeDetector struct {
	name  string
	cat   Category
	spans []Span
	panic bool
}

func (f fakeDetector) Name() string       { return f.name }
func (f fakeDetector) Category() Category { return f.cat }

func (f fakeDetector) Detect(text string) []Span {
	if f.panic {
		panic("detector blew up")
	}
	return f.spans
}

func TestRunCollectsAllSpans(t *testing.T) {
	dets := []Detector{
		fakeDetector{name: "one", cat: CategoryEmail, spans: []Span{{Category: CategoryEmail, Start: 0, End: 4}}},
		fakeDetector{name: "two", cat: CategoryPhone, spans: []Span{{Category: CategoryPhone, Start: 5, End: 9}}},
	}

	spans := Run(dets, "whatever")
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}
}

func TestRunIsolatesPanickingDetector(t *testing.T) {
	dets := []Detector{
		fakeDetector{name: "bad", cat: CategoryEmail, panic: true},
		fakeDetector{name: "good", cat: CategoryPhone, spans: []Span{{Category: CategoryPhone, Start: 0, End: 3}}},
	}

	spans := Run(dets, "whatever")
	if len(spans) != 1 || spans[0].Category != CategoryPhone {
		t.Fatalf("panicking detector should contribute zero spans, got %+v", spans)
	}
}

func TestRegistryBuildDetectors(t *testing.T) {
	dets, err := DefaultRegistry.BuildDetectors([]string{"email", "phone", "email"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dets) != 2 {
		t.Fatalf("duplicates should be skipped, got %d detectors", len(dets))
	}

	if _, err := DefaultRegistry.BuildDetectors([]string{"nope"}); err == nil {
		t.Fatal("expected error for unknown detector")
	}
}

func TestRegistryBuildAllCoversEveryName(t *testing.T) {
	dets := DefaultRegistry.BuildAll()
	if len(dets) != len(DefaultRegistry) {
		t.Fatalf("expected %d detectors, got %d", len(DefaultRegistry), len(dets))
	}

	seen := map[Category]bool{}
	for _, d := range dets {
		seen[d.Category()] = true
	}
	for _, cat := range []Category{CategoryEmail, CategoryPhone, CategoryCountry, CategoryCreditCard} {
		if !seen[cat] {
			t.Fatalf("category %s missing from default registry", cat)
		}
	}
}

func TestCompileSwallowsBadPattern(t *testing.T) {
	if re := compile(`(`); re != nil {
		t.Fatal("malformed pattern should yield nil, not panic")
	}
	if spans := findAll(nil, "text", CategoryEmail, 1.0); spans != nil {
		t.Fatalf("nil regex should yield no spans, got %+v", spans)
	}
}
