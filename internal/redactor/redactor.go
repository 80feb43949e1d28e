// Package redactor merges candidate spans from the detector layer into a
// non-overlapping redaction plan and applies it to the original text.
//
// The engine is a pure, synchronous text transform: no state survives a
// call, and concurrent calls with different inputs need no locking. A
// failing detector contributes zero spans; the worst case for any
// internal failure is under-redaction, never a crash or corrupted
// output. Callers must not treat an empty report as proof the text is
// free of PII.
package redactor

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/example/pii-redact/internal/detector"
)

// Engine runs the detector set and produces redacted text plus a report.
// The zero value is not usable; construct with New or Default.
type Engine struct {
	detectors []detector.Detector
}

// New builds an engine over an explicit detector set.
func New(detectors []detector.Detector) *Engine {
	return &Engine{detectors: detectors}
}

// Default builds an engine with every registered detector.
func Default() *Engine {
	return New(detector.DefaultRegistry.BuildAll())
}

// planned is a span accepted into the redaction plan together with its
// assigned placeholder.
type planned struct {
	detector.Span
	Placeholder string
}

// Redact scans text, resolves overlapping candidates, and replaces every
// accepted span with a per-category numbered placeholder such as
// [EMAIL_1]. The returned report describes what was replaced and why.
func (e *Engine) Redact(text string) (string, Report) {
	report := Report{}
	report.Trace = append(report.Trace, "Scanning text for personal information")

	// Stage 1: run every detector, tagging spans with their category.
	var candidates []detector.Span
	for _, d := range e.detectors {
		spans := detector.SafeDetect(d, text)
		if len(spans) > 0 {
			report.Trace = append(report.Trace,
				fmt.Sprintf("%s: found %d candidate(s)", d.Name(), len(spans)))
		}
		candidates = append(candidates, spans...)
	}

	// Stage 2: drop categories whose policy never redacts, but note them.
	kept := map[detector.Category]int{}
	var redactable []detector.Span
	for _, s := range candidates {
		if PolicyFor(s.Category).Redact {
			redactable = append(redactable, s)
		} else {
			kept[s.Category]++
		}
	}
	for _, cat := range sortedCategories(kept) {
		report.Trace = append(report.Trace,
			fmt.Sprintf("keeping %d %s mention(s) for context (never redacted)", kept[cat], cat))
	}

	// Stage 3: resolve overlaps; stage 4: assign placeholders.
	plan := assignPlaceholders(resolveOverlaps(redactable))

	// Stage 5: apply back to front so pending offsets stay valid.
	out, applied := applyPlan(text, plan)

	report.PerCategory = map[detector.Category]int{}
	for _, p := range applied {
		report.PerCategory[p.Category]++
		report.TotalRedacted++
		report.Trace = append(report.Trace,
			fmt.Sprintf("redacting %s %q -> %s", p.Category, preview(p.MatchedText), p.Placeholder))
	}
	if len(report.PerCategory) == 0 {
		report.PerCategory = nil
	}
	report.AnyRedacted = report.TotalRedacted > 0
	report.Trace = append(report.Trace,
		fmt.Sprintf("redaction complete: %d item(s) replaced", report.TotalRedacted))

	return out, report
}

// ContainsPII reports whether any redactable category matches the text.
// It short-circuits on the first hit but consults every redactable
// detector before returning false.
func (e *Engine) ContainsPII(text string) bool {
	for _, d := range e.detectors {
		if !PolicyFor(d.Category()).Redact {
			continue
		}
		if len(detector.SafeDetect(d, text)) > 0 {
			return true
		}
	}
	return false
}

// Analyze returns raw per-category candidate counts for redactable
// categories. Overlaps are not resolved; this is a survey, not a
// redaction preview. Only non-zero counts appear.
func (e *Engine) Analyze(text string) map[detector.Category]int {
	counts := map[detector.Category]int{}
	for _, d := range e.detectors {
		if !PolicyFor(d.Category()).Redact {
			continue
		}
		if n := len(detector.SafeDetect(d, text)); n > 0 {
			counts[d.Category()] += n
		}
	}
	return counts
}

// resolveOverlaps sorts candidates by (start ascending, length
// descending) and walks the order, accepting a span only when it does
// not overlap an already-accepted one. Earlier-starting spans block
// later-overlapping ones; among equal starts the longer match wins.
// Whole spans are accepted or rejected, never truncated.
func resolveOverlaps(spans []detector.Span) []detector.Span {
	if len(spans) == 0 {
		return nil
	}

	sorted := make([]detector.Span, len(spans))
	copy(sorted, spans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].Len() > sorted[j].Len()
	})

	var accepted []detector.Span
	// With starts ascending, a span can only overlap the furthest end
	// accepted so far.
	maxEnd := -1
	for _, s := range sorted {
		if s.Start < maxEnd {
			continue
		}
		accepted = append(accepted, s)
		if s.End > maxEnd {
			maxEnd = s.End
		}
	}
	return accepted
}

// assignPlaceholders numbers accepted spans per category, 1-based, in
// left-to-right order of their start offsets.
func assignPlaceholders(spans []detector.Span) []planned {
	byCategory := map[detector.Category][]detector.Span{}
	for _, s := range spans {
		byCategory[s.Category] = append(byCategory[s.Category], s)
	}

	var plan []planned
	for cat, group := range byCategory {
		sort.Slice(group, func(i, j int) bool { return group[i].Start < group[j].Start })
		prefix := PolicyFor(cat).Prefix
		for i, s := range group {
			plan = append(plan, planned{
				Span:        s,
				Placeholder: fmt.Sprintf("[%s_%d]", prefix, i+1),
			})
		}
	}

	sort.Slice(plan, func(i, j int) bool { return plan[i].Start < plan[j].Start })
	return plan
}

// applyPlan replaces spans in descending start order so that already
// applied replacements never invalidate pending offsets. Spans with
// out-of-range or non-boundary offsets are skipped rather than applied;
// with correct detectors this never happens.
func applyPlan(text string, plan []planned) (string, []planned) {
	if len(plan) == 0 {
		return text, nil
	}

	descending := make([]planned, len(plan))
	copy(descending, plan)
	sort.Slice(descending, func(i, j int) bool { return descending[i].Start > descending[j].Start })

	out := text
	skipped := map[int]bool{}
	for _, p := range descending {
		if p.Start < 0 || p.End > len(out) || p.Start >= p.End {
			skipped[p.Start] = true
			continue
		}
		if !utf8.RuneStart(out[p.Start]) || (p.End < len(out) && !utf8.RuneStart(out[p.End])) {
			skipped[p.Start] = true
			continue
		}
		out = out[:p.Start] + p.Placeholder + out[p.End:]
	}

	var applied []planned
	for _, p := range plan {
		if !skipped[p.Start] {
			applied = append(applied, p)
		}
	}
	return out, applied
}

// sortedCategories returns map keys in lexical order for deterministic
// trace output.
func sortedCategories(m map[detector.Category]int) []detector.Category {
	cats := make([]detector.Category, 0, len(m))
	for cat := range m {
		cats = append(cats, cat)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}
