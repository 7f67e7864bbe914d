package dataset

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func TestLoadDefaultDataset(t *testing.T) {
	store, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if len(store.Records) == 0 {
		t.Fatalf("embedded dataset has no rows")
	}
	if store.Source != "embedded" {
		t.Fatalf("source=%q want embedded", store.Source)
	}
	if len(store.SHA256) != 64 {
		t.Fatalf("sha256=%q not a hex digest", store.SHA256)
	}
	for i, r := range store.Records {
		if r.Manufacturer == "" || r.Transmission == "" || r.Class == "" {
			t.Fatalf("row %d has empty string field: %+v", i, r)
		}
		if r.Cylinders <= 0 || r.Displacement <= 0 || r.HighwayMPG <= 0 {
			t.Fatalf("row %d has non-positive numeric field: %+v", i, r)
		}
	}
}

func TestLoadDefaultDigestStable(t *testing.T) {
	a, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	b, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if a.SHA256 != b.SHA256 {
		t.Fatalf("digest not stable: %s vs %s", a.SHA256, b.SHA256)
	}
}

func TestDistinctValuesSorted(t *testing.T) {
	store, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}

	manufacturers := store.Manufacturers()
	if !sort.StringsAreSorted(manufacturers) {
		t.Fatalf("manufacturers not sorted: %v", manufacturers)
	}
	if len(manufacturers) < 2 {
		t.Fatalf("expected several manufacturers, got %v", manufacturers)
	}

	transmissions := store.Transmissions()
	if !sort.StringsAreSorted(transmissions) {
		t.Fatalf("transmissions not sorted: %v", transmissions)
	}

	cylinders := store.Cylinders()
	seen := map[string]bool{}
	for _, c := range cylinders {
		if seen[c] {
			t.Fatalf("duplicate cylinder option %q in %v", c, cylinders)
		}
		seen[c] = true
	}
}

func TestLoadFile(t *testing.T) {
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "data.csv")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write temp dataset: %v", err)
		}
		return path
	}

	t.Run("valid", func(t *testing.T) {
		path := write(t, "manufacturer,cylinders,transmission,displacement,highway_mpg,class\naudi,4,manual,1.8,29,compact\n")
		store, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile: %v", err)
		}
		if len(store.Records) != 1 {
			t.Fatalf("records=%d want 1", len(store.Records))
		}
		got := store.Records[0]
		want := Record{Manufacturer: "audi", Cylinders: 4, Transmission: "manual", Displacement: 1.8, HighwayMPG: 29, Class: "compact"}
		if got != want {
			t.Fatalf("record=%+v want %+v", got, want)
		}
	})

	t.Run("bad header", func(t *testing.T) {
		path := write(t, "maker,cylinders,transmission,displacement,highway_mpg,class\naudi,4,manual,1.8,29,compact\n")
		if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "header column 1") {
			t.Fatalf("expected header error, got %v", err)
		}
	})

	t.Run("bad numeric field reports row", func(t *testing.T) {
		path := write(t, "manufacturer,cylinders,transmission,displacement,highway_mpg,class\naudi,4,manual,1.8,29,compact\nford,eight,auto,4.6,17,suv\n")
		if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "row 3") {
			t.Fatalf("expected row 3 error, got %v", err)
		}
	})

	t.Run("no data rows", func(t *testing.T) {
		path := write(t, "manufacturer,cylinders,transmission,displacement,highway_mpg,class\n")
		if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "no data rows") {
			t.Fatalf("expected no-data error, got %v", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
			t.Fatalf("expected error for missing file")
		}
	})
}
