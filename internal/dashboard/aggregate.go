package dashboard

import (
	"sort"

	"github.com/solardome/mpg-dashboard/internal/dataset"
)

// AggregateRow is the per-class summary feeding the bar chart.
type AggregateRow struct {
	Class          string  `json:"class"`
	MeanHighwayMPG float64 `json:"mean_highway_mpg"`
	Count          int     `json:"count"`
}

// Aggregate groups the subset by class and computes the arithmetic mean of
// highway MPG and the row count per group. Empty groups are dropped, so every
// returned row has Count >= 1. Rows are sorted ascending by mean, ties broken
// by class name so the output is deterministic.
func Aggregate(subset []dataset.Record) []AggregateRow {
	type acc struct {
		sum   float64
		count int
	}
	groups := map[string]*acc{}
	for _, r := range subset {
		g, ok := groups[r.Class]
		if !ok {
			g = &acc{}
			groups[r.Class] = g
		}
		g.sum += r.HighwayMPG
		g.count++
	}

	rows := make([]AggregateRow, 0, len(groups))
	for class, g := range groups {
		if g.count == 0 {
			continue
		}
		rows = append(rows, AggregateRow{
			Class:          class,
			MeanHighwayMPG: g.sum / float64(g.count),
			Count:          g.count,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MeanHighwayMPG != rows[j].MeanHighwayMPG {
			return rows[i].MeanHighwayMPG < rows[j].MeanHighwayMPG
		}
		return rows[i].Class < rows[j].Class
	})
	return rows
}
