package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultChecksumsPath places the checksums file next to the snapshot.
func DefaultChecksumsPath(snapshotPath string) string {
	if strings.TrimSpace(snapshotPath) == "" {
		snapshotPath = "snapshot.json"
	}
	return filepath.Join(filepath.Dir(snapshotPath), "checksums.sha256")
}

// DefaultRunLogPath places the run log next to the snapshot.
func DefaultRunLogPath(snapshotPath string) string {
	if strings.TrimSpace(snapshotPath) == "" {
		snapshotPath = "snapshot.json"
	}
	return filepath.Join(filepath.Dir(snapshotPath), "mpg-dashboard.run.log")
}

// WriteChecksums writes "sha256  basename" lines for the given artifacts,
// sorted by path for determinism.
func WriteChecksums(checksumsPath string, artifactPaths []string) error {
	clean := make([]string, 0, len(artifactPaths))
	for _, p := range artifactPaths {
		if strings.TrimSpace(p) != "" {
			clean = append(clean, p)
		}
	}
	sort.Strings(clean)

	lines := make([]string, 0, len(clean))
	for _, p := range clean {
		sum, err := fileSHA256(p)
		if err != nil {
			return fmt.Errorf("checksum read failed for %s: %w", p, err)
		}
		lines = append(lines, fmt.Sprintf("%s  %s", sum, filepath.Base(p)))
	}
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}

	dir := filepath.Dir(checksumsPath)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return err
	}
	return os.WriteFile(checksumsPath, []byte(content), 0o644)
}

func fileSHA256(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:]), nil
}
