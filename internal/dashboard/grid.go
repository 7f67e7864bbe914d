package dashboard

import "github.com/solardome/mpg-dashboard/internal/dataset"

// DefaultGridPageSize is the fixed page size of the data grid.
const DefaultGridPageSize = 10

// GridPage is one page of the data grid plus the pagination controls' state.
type GridPage struct {
	Rows       []dataset.Record
	Page       int
	PageSize   int
	TotalRows  int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// Paginate slices the subset into a 1-based page of the given size. Page
// indexes outside the valid range are clamped; an empty subset yields a
// single empty page.
func Paginate(subset []dataset.Record, page, size int) GridPage {
	if size <= 0 {
		size = DefaultGridPageSize
	}
	total := len(subset)
	totalPages := (total + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return GridPage{
		Rows:       subset[start:end],
		Page:       page,
		PageSize:   size,
		TotalRows:  total,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
