package telemetry

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestWriteReservedKeysWin(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	defer SetOutput(prev)

	Warn("unknown label", map[string]any{"level": "spoofed", "kind": "stress"})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["level"] != "warn" || entry["msg"] != "unknown label" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if entry["kind"] != "stress" {
		t.Fatalf("expected field kind to be kept, got %v", entry)
	}
}
