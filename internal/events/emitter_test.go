package events

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestEmitWritesNDJSON(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitter(&buf)

	if err := emitter.Emit(Event{Type: "redact-start", Message: "starting", Fields: map[string]interface{}{"inputs": 2}}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if err := emitter.Emit(Event{Type: "redact-finished"}); err != nil {
		t.Fatalf("emit: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 NDJSON lines, got %d", len(lines))
	}

	var first Event
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("first line is not JSON: %v", err)
	}

	if first.Type != "redact-start" || first.Timestamp.IsZero() {
		t.Fatalf("unexpected event: %+v", first)
	}
}

func TestEmitPreservesExplicitTimestamp(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitter(&buf)

	stamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if err := emitter.Emit(Event{Type: "artifact-written", Timestamp: stamp}); err != nil {
		t.Fatalf("emit: %v", err)
	}

	var evt Event
	if err := json.Unmarshal(buf.Bytes(), &evt); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !evt.Timestamp.Equal(stamp) {
		t.Fatalf("timestamp should be preserved, got %v", evt.Timestamp)
	}
}

func TestEmitIsSafeForConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEmitter(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = emitter.Emit(Event{Type: "tick"})
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 16 {
		t.Fatalf("expected 16 lines, got %d", len(lines))
	}
	for _, line := range lines {
		var evt Event
		if err := json.Unmarshal([]byte(line), &evt); err != nil {
			t.Fatalf("interleaved write produced invalid JSON: %v", err)
		}
	}
}
