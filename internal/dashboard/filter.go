package dashboard

import (
	"strconv"
	"strings"

	"github.com/solardome/mpg-dashboard/internal/dataset"
)

// Sentinel is the filter value meaning "do not constrain on this field".
const Sentinel = "All"

// FilterState carries the three dropdown selections. The zero value
// normalizes to all-sentinel, i.e. the unfiltered dataset.
type FilterState struct {
	Manufacturer string
	Cylinders    string
	Transmission string
}

// Normalized maps empty fields to the sentinel.
func (f FilterState) Normalized() FilterState {
	if strings.TrimSpace(f.Manufacturer) == "" {
		f.Manufacturer = Sentinel
	}
	if strings.TrimSpace(f.Cylinders) == "" {
		f.Cylinders = Sentinel
	}
	if strings.TrimSpace(f.Transmission) == "" {
		f.Transmission = Sentinel
	}
	return f
}

// IsUnfiltered reports whether every field is the sentinel.
func (f FilterState) IsUnfiltered() bool {
	f = f.Normalized()
	return f.Manufacturer == Sentinel && f.Cylinders == Sentinel && f.Transmission == Sentinel
}

// Filter returns the records matching every non-sentinel field exactly.
// An empty result is valid and rendered as-is downstream.
func Filter(records []dataset.Record, f FilterState) []dataset.Record {
	f = f.Normalized()
	out := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if f.Manufacturer != Sentinel && r.Manufacturer != f.Manufacturer {
			continue
		}
		if f.Cylinders != Sentinel && strconv.Itoa(r.Cylinders) != f.Cylinders {
			continue
		}
		if f.Transmission != Sentinel && r.Transmission != f.Transmission {
			continue
		}
		out = append(out, r)
	}
	return out
}
