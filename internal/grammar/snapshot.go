package grammar

import "encoding/json"

// Snapshot represents a snapshot of the grammar for drift detection.
type Snapshot struct {
	Flags []FlagSnapshot `json:"flags"`
}

// FlagSnapshot represents a flag in the snapshot.
type FlagSnapshot struct {
	Short      string   `json:"short"`
	Long       string   `json:"long"`
	Aliases    []string `json:"aliases,omitempty"`
	Kind       string   `json:"kind"`
	TakesValue bool     `json:"takes_value"`
	Repeatable bool     `json:"repeatable"`
}

// GetSnapshot returns a JSON-serializable snapshot of the grammar.
func GetSnapshot() Snapshot {
	g := GetGrammar()

	flags := make([]FlagSnapshot, len(g.Flags))
	for i, f := range g.Flags {
		flags[i] = FlagSnapshot{
			Short:      f.Short,
			Long:       f.Long,
			Aliases:    f.Aliases,
			Kind:       f.Kind.String(),
			TakesValue: f.TakesValue,
			Repeatable: f.Repeatable,
		}
	}

	return Snapshot{Flags: flags}
}

// GetSnapshotJSON returns the snapshot as JSON bytes.
func GetSnapshotJSON() ([]byte, error) {
	snapshot := GetSnapshot()
	return json.MarshalIndent(snapshot, "", "  ")
}
