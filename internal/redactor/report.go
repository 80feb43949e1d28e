package redactor

import (
	"github.com/example/pii-redact/internal/detector"
	"github.com/mattn/go-runewidth"
)

// Report summarizes a single redaction run.
type Report struct {
	// TotalRedacted is the number of spans replaced in the output.
	TotalRedacted int `json:"totalRedacted"`
	// PerCategory counts replaced spans per category; only categories
	// that were actually redacted appear as keys.
	PerCategory map[detector.Category]int `json:"perCategory,omitempty"`
	// AnyRedacted is true when at least one span was replaced.
	AnyRedacted bool `json:"anyRedacted"`
	// Trace narrates the decisions made during the run. Advisory: it
	// reflects what happened but its wording is not a stable contract.
	Trace []string `json:"trace,omitempty"`
}

// matchPreviewWidth caps how much of a matched text appears in trace
// lines, measured in display cells.
const matchPreviewWidth = 30

// preview truncates s for trace display, appending an ellipsis when the
// text was cut.
func preview(s string) string {
	return runewidth.Truncate(s, matchPreviewWidth, "...")
}
