package grammar

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// TestGrammarDrift compares the live grammar against the committed snapshot.
// If a flag is added, removed, or changes shape, this fails until the
// snapshot in testdata is regenerated, which forces the help text, lexer
// tests, and documentation to be reviewed together.
func TestGrammarDrift(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "grammar_snapshot.json"))
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}

	var want Snapshot
	if err := json.Unmarshal(data, &want); err != nil {
		t.Fatalf("failed to unmarshal snapshot: %v", err)
	}

	got := GetSnapshot()
	if len(got.Flags) != len(want.Flags) {
		t.Fatalf("grammar has %d flags, snapshot has %d", len(got.Flags), len(want.Flags))
	}

	for i := range got.Flags {
		if !reflect.DeepEqual(got.Flags[i], want.Flags[i]) {
			t.Errorf("flag %d drifted:\n  got:  %+v\n  want: %+v", i, got.Flags[i], want.Flags[i])
		}
	}
}

func TestGetSnapshotJSONRoundTrip(t *testing.T) {
	data, err := GetSnapshotJSON()
	if err != nil {
		t.Fatalf("GetSnapshotJSON() error: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("snapshot JSON does not round-trip: %v", err)
	}
	if !reflect.DeepEqual(snap, GetSnapshot()) {
		t.Error("snapshot changed across a marshal/unmarshal round trip")
	}
}
