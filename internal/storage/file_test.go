package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileRecorder_AppendAndLoad(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "logs", "log.jsonl")
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}

	ev1 := Event{ID: "a", Timestamp: time.Unix(1, 0).UTC(), UserID: 1, UserMessage: "hi", AssistantResponse: "hello", Intent: "general.greeting", Matched: true}
	ev2 := Event{ID: "b", Timestamp: time.Unix(2, 0).UTC(), UserID: 2, UserMessage: "foo", AssistantResponse: "bar", Intent: "fallback"}
	if err := rec.AppendInteraction(ev1); err != nil {
		t.Fatalf("append1: %v", err)
	}
	if err := rec.AppendInteraction(ev2); err != nil {
		t.Fatalf("append2: %v", err)
	}

	events, err := rec.LoadInteractions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("want 2, got %d", len(events))
	}
	if events[0] != ev1 || events[1] != ev2 {
		t.Fatalf("round trip mismatch: %+v", events)
	}

	st, err := os.Stat(p)
	if err != nil || st.Size() == 0 {
		t.Fatalf("file not written")
	}
}

func TestFileRecorder_SkipsMalformedLines(t *testing.T) {
	p := filepath.Join(t.TempDir(), "log.jsonl")
	rec, err := NewFileRecorder(p)
	if err != nil {
		t.Fatalf("init recorder: %v", err)
	}
	if err := rec.AppendInteraction(Event{ID: "a", UserID: 7}); err != nil {
		t.Fatalf("append: %v", err)
	}
	f, err := os.OpenFile(p, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	_, _ = f.WriteString("{not json\n\n")
	_ = f.Close()
	if err := rec.AppendInteraction(Event{ID: "b", UserID: 8}); err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := rec.LoadInteractions()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(events) != 2 || events[0].UserID != 7 || events[1].UserID != 8 {
		t.Fatalf("unexpected events: %+v", events)
	}
}

func TestNewEvent(t *testing.T) {
	before := time.Now().UTC()
	ev := NewEvent(42, "q", "a", "packages.count", true)
	if ev.ID == "" {
		t.Fatal("expected id")
	}
	if ev.Timestamp.Before(before.Add(-time.Second)) || ev.Timestamp.Location() != time.UTC {
		t.Fatalf("unexpected timestamp %v", ev.Timestamp)
	}
	if other := NewEvent(42, "q", "a", "", false); other.ID == ev.ID {
		t.Fatal("ids must be unique")
	}
}
