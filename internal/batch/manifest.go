package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry summarizes one bound scene in the output manifest.
type ManifestEntry struct {
	Scene    string   `json:"scene"`
	Output   string   `json:"output,omitempty"`
	Preview  string   `json:"preview,omitempty"`
	Assigned int      `json:"assigned"`
	Blended  int      `json:"blended"`
	Skipped  []string `json:"skipped_volumes,omitempty"`
	Error    string   `json:"error,omitempty"`
}

// WriteManifest writes manifest.json to the output directory so callers
// can see per-scene assignment counts and the blended-vertex totals
// without reopening the documents.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Scene:    r.Path,
			Output:   r.Output,
			Preview:  r.Preview,
			Assigned: r.Assigned,
			Blended:  r.Blended,
			Skipped:  r.Skipped,
			Error:    r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
