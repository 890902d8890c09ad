package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/KodaEd/cinema-tui/pkg/ritz"
)

// Snapshot is the persisted form of a schedule: the full title-to-showtimes
// mapping plus the moment it was captured. It is replaced wholesale after
// every successful acquisition, never mutated in place.
type Snapshot struct {
	Schedule    ritz.Schedule `json:"schedule"`
	LastUpdated time.Time     `json:"lastUpdated"`
}

func cachePath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, "cinema-tui")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(dir, "showtimes.json"), nil
}

// Load reads the cached snapshot from disk. Any failure (missing file,
// unreadable directory, malformed JSON) just means there is no cache; the
// caller starts with an empty schedule and fetches fresh data on demand.
func Load() (Snapshot, bool) {
	path, err := cachePath()
	if err != nil {
		return Snapshot{}, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, false
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, false
	}

	return snapshot, true
}

// Save writes the snapshot to disk, best effort. The in-memory schedule
// stays authoritative for the running process whether or not the write
// lands.
func Save(snapshot Snapshot) {
	path, err := cachePath()
	if err != nil {
		return
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}
