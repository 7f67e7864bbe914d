package report

import (
	"time"

	"github.com/solardome/mpg-dashboard/internal/dashboard"
	"github.com/solardome/mpg-dashboard/internal/dataset"
)

// Snapshot is the one-shot JSON artifact produced by snapshot mode: the full
// dataset, its per-class aggregates, and input provenance.
type Snapshot struct {
	GeneratedAt   string                   `json:"generated_at"`
	DatasetSource string                   `json:"dataset_source"`
	DatasetSHA256 string                   `json:"dataset_sha256"`
	RecordCount   int                      `json:"record_count"`
	Records       []dataset.Record         `json:"records"`
	Aggregates    []dashboard.AggregateRow `json:"aggregates"`
}

// BuildSnapshot assembles a snapshot over the unfiltered dataset.
func BuildSnapshot(store *dataset.Store, now time.Time) Snapshot {
	return Snapshot{
		GeneratedAt:   now.UTC().Format(time.RFC3339),
		DatasetSource: store.Source,
		DatasetSHA256: store.SHA256,
		RecordCount:   len(store.Records),
		Records:       store.Records,
		Aggregates:    dashboard.Aggregate(store.Records),
	}
}

// WriteSnapshot writes the snapshot JSON and its sibling checksums file.
func WriteSnapshot(path string, snap Snapshot) error {
	if err := WriteJSON(path, snap); err != nil {
		return err
	}
	return WriteChecksums(DefaultChecksumsPath(path), []string{path})
}
