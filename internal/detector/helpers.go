package detector

import "regexp"

// compile wraps regexp.Compile so that a malformed pattern degrades to a
// nil regex instead of aborting construction. findAll treats nil as "no
// matches", which isolates a bad pattern to its own detector.
func compile(expr string) *regexp.Regexp {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return re
}

// findAll collects every match of re as a Span with the given category
// and confidence.
func findAll(re *regexp.Regexp, text string, cat Category, conf float64) []Span {
	if re == nil {
		return nil
	}

	var spans []Span
	for _, loc := range re.FindAllStringIndex(text, -1) {
		spans = append(spans, Span{
			Category:    cat,
			Start:       loc[0],
			End:         loc[1],
			MatchedText: text[loc[0]:loc[1]],
			Confidence:  conf,
		})
	}
	return spans
}

// dedupeExact drops spans whose (start, end) pair was already seen. Used
// by detectors that try several patterns in sequence, where two patterns
// can report the identical range.
func dedupeExact(spans []Span) []Span {
	if len(spans) < 2 {
		return spans
	}

	type key struct{ start, end int }
	seen := make(map[key]struct{}, len(spans))
	var out []Span
	for _, s := range spans {
		k := key{s.Start, s.End}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

// digitsOnly strips everything except ASCII digits.
func digitsOnly(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
