package server

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/solardome/mpg-dashboard/internal/dashboard"
	"github.com/solardome/mpg-dashboard/internal/dataset"
)

// handleScatterChart renders displacement vs highway MPG, one series per
// class. Served as a standalone chart page embedded by the dashboard iframe.
func (s *Server) handleScatterChart(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromValues(r.URL.Query().Get)
	subset := dashboard.Filter(s.store.Records, filters)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Displacement vs Highway MPG",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Displacement (L)",
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Highway MPG",
			Type: "value",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  s.cfg.Charts.Width,
			Height: s.cfg.Charts.Height,
		}),
	)

	for _, class := range classesIn(subset) {
		var data []opts.ScatterData
		for _, rec := range subset {
			if rec.Class != class {
				continue
			}
			data = append(data, opts.ScatterData{
				Value:      []interface{}{rec.Displacement, rec.HighwayMPG},
				SymbolSize: 10,
			})
		}
		scatter.AddSeries(class, data)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := scatter.Render(w); err != nil {
		s.log.Error("charts.scatter.render", map[string]interface{}{"error": err.Error()})
	}
}

// handleBarChart renders mean highway MPG per class, ascending by mean.
func (s *Server) handleBarChart(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromValues(r.URL.Query().Get)
	rows := dashboard.Aggregate(dashboard.Filter(s.store.Records, filters))

	labels := make([]string, 0, len(rows))
	data := make([]opts.BarData, 0, len(rows))
	for _, row := range rows {
		labels = append(labels, row.Class)
		data = append(data, opts.BarData{
			Name:  fmt.Sprintf("%s (n=%d)", row.Class, row.Count),
			Value: row.MeanHighwayMPG,
		})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Mean Highway MPG by Class",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Class",
			Type: "category",
			AxisLabel: &opts.AxisLabel{
				Rotate: 30,
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Mean Highway MPG",
			Type: "value",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Width:  s.cfg.Charts.Width,
			Height: s.cfg.Charts.Height,
		}),
	)
	bar.SetXAxis(labels).AddSeries("Mean highway MPG", data)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := bar.Render(w); err != nil {
		s.log.Error("charts.bar.render", map[string]interface{}{"error": err.Error()})
	}
}

func classesIn(subset []dataset.Record) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range subset {
		if !seen[r.Class] {
			seen[r.Class] = true
			out = append(out, r.Class)
		}
	}
	sort.Strings(out)
	return out
}
