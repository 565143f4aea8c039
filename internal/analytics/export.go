package analytics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const exportTimestampLayout = "20060102_150405"

// ExportFile writes the current snapshot and full conversation window to a
// timestamped JSON file under dir and returns the file path.
func (r *Recorder) ExportFile(dir string) (string, error) {
	doc := Export{
		ExportTimestamp: time.Now().Format(time.RFC3339),
		Analytics:       r.Snapshot(),
		Conversations:   r.History(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal analytics export: %w", err)
	}

	filename := fmt.Sprintf("conversations_%s.json", time.Now().Format(exportTimestampLayout))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write analytics export: %w", err)
	}

	return path, nil
}
