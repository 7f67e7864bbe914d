package dashboard

import (
	"strconv"
	"testing"

	"github.com/solardome/mpg-dashboard/internal/dataset"
)

func gridRecords(n int) []dataset.Record {
	out := make([]dataset.Record, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, dataset.Record{Manufacturer: "m" + strconv.Itoa(i), Cylinders: 4, Transmission: "auto", Displacement: 2, HighwayMPG: 30, Class: "compact"})
	}
	return out
}

func TestPaginate(t *testing.T) {
	cases := []struct {
		name       string
		total      int
		page       int
		size       int
		wantRows   int
		wantPage   int
		wantPages  int
		wantPrev   bool
		wantNext   bool
		wantFirst  string
	}{
		{"first full page", 25, 1, 10, 10, 1, 3, false, true, "m0"},
		{"middle page", 25, 2, 10, 10, 2, 3, true, true, "m10"},
		{"short last page", 25, 3, 10, 5, 3, 3, true, false, "m20"},
		{"page clamped high", 25, 9, 10, 5, 3, 3, true, false, "m20"},
		{"page clamped low", 25, 0, 10, 10, 1, 3, false, true, "m0"},
		{"empty subset", 0, 1, 10, 0, 1, 1, false, false, ""},
		{"size defaulted", 25, 1, 0, 10, 1, 3, false, true, "m0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(gridRecords(tc.total), tc.page, tc.size)
			if len(got.Rows) != tc.wantRows {
				t.Fatalf("rows=%d want=%d", len(got.Rows), tc.wantRows)
			}
			if got.Page != tc.wantPage || got.TotalPages != tc.wantPages {
				t.Fatalf("page=%d/%d want=%d/%d", got.Page, got.TotalPages, tc.wantPage, tc.wantPages)
			}
			if got.HasPrev != tc.wantPrev || got.HasNext != tc.wantNext {
				t.Fatalf("prev=%v next=%v want prev=%v next=%v", got.HasPrev, got.HasNext, tc.wantPrev, tc.wantNext)
			}
			if got.TotalRows != tc.total {
				t.Fatalf("totalRows=%d want=%d", got.TotalRows, tc.total)
			}
			if tc.wantRows > 0 && got.Rows[0].Manufacturer != tc.wantFirst {
				t.Fatalf("first row=%q want=%q", got.Rows[0].Manufacturer, tc.wantFirst)
			}
		})
	}
}

func TestBuildView(t *testing.T) {
	store := &dataset.Store{Records: sampleRecords(), Source: "test"}

	view := BuildView(store, FilterState{Manufacturer: "ford"}, 1, 10)
	if len(view.Filtered) != 2 {
		t.Fatalf("filtered=%d want=2", len(view.Filtered))
	}
	if len(view.Aggregates) != 2 {
		t.Fatalf("aggregates=%d want=2", len(view.Aggregates))
	}
	if view.Grid.TotalRows != 2 || view.Grid.Page != 1 {
		t.Fatalf("grid=%+v", view.Grid)
	}
	if len(view.ManufacturerOptions) != 3 {
		t.Fatalf("manufacturer options=%v", view.ManufacturerOptions)
	}
	if view.Filters.Cylinders != Sentinel {
		t.Fatalf("filters not normalized: %+v", view.Filters)
	}

	empty := BuildView(store, FilterState{Manufacturer: "lada"}, 1, 10)
	if len(empty.Filtered) != 0 || len(empty.Aggregates) != 0 || len(empty.Grid.Rows) != 0 {
		t.Fatalf("empty filter result should render empty views: %+v", empty)
	}
}
