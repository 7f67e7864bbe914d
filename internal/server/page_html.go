package server

import (
	"fmt"
	"html"
	"strings"

	"github.com/solardome/mpg-dashboard/internal/dashboard"
	"github.com/solardome/mpg-dashboard/internal/styling"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// sanitizeStyleText keeps the injected payload from closing the reserved
// style element. Everything else passes through untouched.
func sanitizeStyleText(css string) string {
	return strings.ReplaceAll(css, "</style", "")
}

const baseCSS = `
:root {
  --bg: #0b1322;
  --panel: #101b30;
  --panel-2: #0d1626;
  --ink: #e8f2ff;
  --muted: #9ab0cf;
  --line: #263753;
  --line-strong: #33507a;
  --brand: #86f3ff;
  --heading: #d1e5ff;
  --ok: #52f3a6;
  --warn: #ffd166;
  --err: #ff6b93;
  --ok-bg: rgba(82, 243, 166, 0.12);
  --warn-bg: rgba(255, 209, 102, 0.12);
  --err-bg: rgba(255, 107, 147, 0.12);
  --chip: #111d33;
  --table-head: #122038;
  --radius: 14px;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  background: var(--bg);
  color: var(--ink);
  font-family: "IBM Plex Sans", "Segoe UI", system-ui, sans-serif;
  line-height: 1.55;
}
.shell { max-width: 1260px; margin: 0 auto; padding: 22px; }
h1 {
  margin: 0;
  font-size: 1.6rem;
  letter-spacing: 0.01em;
  color: var(--brand);
}
.meta { margin-top: 6px; color: var(--muted); font-size: 0.92rem; }
.mono { font-family: "JetBrains Mono", ui-monospace, monospace; }
.card {
  background: var(--panel);
  border: 1px solid var(--line);
  border-radius: var(--radius);
  padding: 14px;
  margin-top: 14px;
}
.card-header {
  display: flex;
  align-items: center;
  justify-content: space-between;
  gap: 10px;
  margin-bottom: 10px;
}
.card-header h2 { margin: 0; font-size: 1.01rem; color: var(--heading); }
.badge {
  display: inline-block;
  border-radius: 999px;
  padding: 0.16rem 0.58rem;
  font-size: 0.79rem;
  font-weight: 700;
  background: var(--chip);
  border: 1px solid var(--line);
  color: var(--muted);
}
.pill {
  display: inline-flex;
  align-items: center;
  border-radius: 999px;
  padding: 0.2rem 0.66rem;
  font-size: 0.82rem;
  font-weight: 700;
  border: 1px solid var(--line);
  background: var(--chip);
}
.pill.ok { background: var(--ok-bg); color: var(--ok); }
.pill.busy { background: var(--warn-bg); color: var(--warn); }
.pill.err { background: var(--err-bg); color: var(--err); }
.filter-row { display: flex; flex-wrap: wrap; gap: 14px; align-items: flex-end; }
.form-group { display: grid; gap: 4px; }
.form-group label { color: var(--muted); font-size: 0.82rem; font-weight: 700; }
.select-group select {
  min-width: 170px;
  background: var(--panel-2);
  color: var(--ink);
  border: 1px solid var(--line-strong);
  border-radius: 8px;
  padding: 7px 9px;
  font-size: 0.92rem;
}
textarea {
  width: 100%;
  min-height: 84px;
  background: var(--panel-2);
  color: var(--ink);
  border: 1px solid var(--line-strong);
  border-radius: 8px;
  padding: 9px;
  font-size: 0.92rem;
  resize: vertical;
}
button {
  border: 1px solid var(--line-strong);
  background: var(--chip);
  color: var(--ink);
  border-radius: 8px;
  padding: 8px 14px;
  font-size: 0.9rem;
  font-weight: 700;
  cursor: pointer;
}
button:hover { filter: brightness(1.12); }
.charts { display: grid; grid-template-columns: 1fr 1fr; gap: 14px; }
.charts .card { margin-top: 0; }
.plot-frame {
  width: 100%;
  height: 470px;
  border: 1px solid var(--line);
  border-radius: 10px;
  background: #ffffff;
}
.grid-wrap { overflow-x: auto; }
table { width: 100%; border-collapse: collapse; }
caption { text-align: left; color: var(--muted); font-size: 0.85rem; margin-bottom: 6px; }
th, td { padding: 7px 9px; border-bottom: 1px solid var(--line); text-align: left; font-size: 0.9rem; }
thead th { background: var(--table-head); color: var(--heading); }
.num { text-align: right; }
.pagination { display: flex; align-items: center; gap: 10px; margin-top: 10px; color: var(--muted); font-size: 0.9rem; }
.pagination a {
  color: var(--brand);
  text-decoration: none;
  border: 1px solid var(--line-strong);
  border-radius: 8px;
  padding: 5px 10px;
}
.pagination .disabled { opacity: 0.45; }
.note { color: var(--muted); font-size: 0.85rem; }
details pre {
  white-space: pre-wrap;
  overflow-wrap: anywhere;
  margin: 8px 0 0;
  font-size: 0.85rem;
  color: var(--ink);
}
footer { margin-top: 14px; color: var(--muted); font-size: 0.88rem; text-align: center; }
@media (max-width: 980px) {
  .charts { grid-template-columns: 1fr; }
}
`

func (s *Server) renderPage(view dashboard.View, snap styling.Snapshot, aiCSS string) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html><html lang=\"en\"><head><meta charset=\"utf-8\"><meta name=\"viewport\" content=\"width=device-width,initial-scale=1\">")
	b.WriteString("<title>MPG Dashboard</title>")
	b.WriteString("<style>")
	b.WriteString(baseCSS)
	b.WriteString("</style>")
	// Reserved stylesheet element for the AI theme. Its full content is
	// replaced on every successful styling request.
	fmt.Fprintf(&b, "<style id=\"ai-style\">%s</style>", sanitizeStyleText(aiCSS))
	b.WriteString("</head><body><main class=\"shell\">")

	fmt.Fprintf(&b, "<h1>Vehicle MPG Dashboard</h1><div class=\"meta\">Dataset: <span class=\"mono\">%s</span> (%d records)</div>",
		esc(s.store.Source), len(s.store.Records))

	s.writeFilterCard(&b, view)
	s.writeChartCards(&b, view)
	writeAggregatesCard(&b, view)
	writeGridCard(&b, view)
	writeStylingCard(&b, view, snap)

	fmt.Fprintf(&b, "<footer>Run <span class=\"mono\">%s</span> &middot; dataset sha256 <span class=\"mono\">%s</span></footer>",
		esc(s.runID), esc(shortDigest(s.store.SHA256)))

	b.WriteString("</main></body></html>")
	return b.String()
}

func (s *Server) writeFilterCard(b *strings.Builder, view dashboard.View) {
	b.WriteString("<section class=\"card\"><div class=\"card-header\"><h2>Filters</h2>")
	fmt.Fprintf(b, "<span class=\"badge\">%d of %d rows</span></div>", len(view.Filtered), len(s.store.Records))
	b.WriteString("<form method=\"get\" action=\"/\"><div class=\"filter-row\">")

	writeSelect(b, "manufacturer", "Manufacturer", view.ManufacturerOptions, view.Filters.Manufacturer)
	writeSelect(b, "cylinders", "Cylinders", view.CylinderOptions, view.Filters.Cylinders)
	writeSelect(b, "transmission", "Transmission", view.TransmissionOptions, view.Filters.Transmission)

	b.WriteString("<div class=\"form-group\"><button type=\"submit\">Apply Filters</button></div>")
	b.WriteString("</div></form></section>")
}

func writeSelect(b *strings.Builder, name, label string, options []string, selected string) {
	fmt.Fprintf(b, "<div class=\"form-group select-group\"><label for=\"%s\">%s</label><select id=\"%s\" name=\"%s\" onchange=\"this.form.submit()\">", name, esc(label), name, name)
	fmt.Fprintf(b, "<option value=\"%s\"%s>%s</option>", dashboard.Sentinel, selectedAttr(selected == dashboard.Sentinel), dashboard.Sentinel)
	for _, opt := range options {
		fmt.Fprintf(b, "<option value=\"%s\"%s>%s</option>", esc(opt), selectedAttr(selected == opt), esc(opt))
	}
	b.WriteString("</select></div>")
}

func selectedAttr(selected bool) string {
	if selected {
		return " selected"
	}
	return ""
}

func (s *Server) writeChartCards(b *strings.Builder, view dashboard.View) {
	query := filterQuery(view.Filters, 1).Encode()
	b.WriteString("<section class=\"card\"><div class=\"charts\">")
	fmt.Fprintf(b, "<article class=\"card\"><div class=\"card-header\"><h2>Displacement vs Highway MPG</h2><span class=\"badge\">colored by class</span></div><iframe class=\"plot-frame\" title=\"Scatter chart\" src=\"/charts/scatter?%s\"></iframe></article>", query)
	fmt.Fprintf(b, "<article class=\"card\"><div class=\"card-header\"><h2>Mean Highway MPG by Class</h2><span class=\"badge\">ascending</span></div><iframe class=\"plot-frame\" title=\"Bar chart\" src=\"/charts/bar?%s\"></iframe></article>", query)
	b.WriteString("</div></section>")
}

func writeAggregatesCard(b *strings.Builder, view dashboard.View) {
	b.WriteString("<section class=\"card\"><div class=\"card-header\"><h2>Class Summary</h2>")
	fmt.Fprintf(b, "<span class=\"badge\">%d classes</span></div>", len(view.Aggregates))
	if len(view.Aggregates) == 0 {
		b.WriteString("<p class=\"note\">No rows match the current filters.</p></section>")
		return
	}
	b.WriteString("<div class=\"grid-wrap\"><table><caption>Per-class mean highway MPG, ascending</caption><thead><tr><th scope=\"col\">class</th><th scope=\"col\" class=\"num\">mean highway MPG</th><th scope=\"col\" class=\"num\">count</th></tr></thead><tbody>")
	for _, row := range view.Aggregates {
		fmt.Fprintf(b, "<tr><td>%s</td><td class=\"num\">%.1f</td><td class=\"num\">%d</td></tr>", esc(row.Class), row.MeanHighwayMPG, row.Count)
	}
	b.WriteString("</tbody></table></div></section>")
}

func writeGridCard(b *strings.Builder, view dashboard.View) {
	grid := view.Grid
	b.WriteString("<section class=\"card\"><div class=\"card-header\"><h2>Records</h2>")
	fmt.Fprintf(b, "<span class=\"badge\">page %d of %d</span></div>", grid.Page, grid.TotalPages)

	b.WriteString("<div class=\"grid-wrap\"><table><caption>Filtered records</caption><thead><tr><th scope=\"col\">manufacturer</th><th scope=\"col\" class=\"num\">cylinders</th><th scope=\"col\">transmission</th><th scope=\"col\" class=\"num\">displacement</th><th scope=\"col\" class=\"num\">highway MPG</th><th scope=\"col\">class</th></tr></thead><tbody>")
	for _, r := range grid.Rows {
		fmt.Fprintf(b, "<tr><td>%s</td><td class=\"num\">%d</td><td>%s</td><td class=\"num\">%.1f</td><td class=\"num\">%.0f</td><td>%s</td></tr>",
			esc(r.Manufacturer), r.Cylinders, esc(r.Transmission), r.Displacement, r.HighwayMPG, esc(r.Class))
	}
	b.WriteString("</tbody></table></div>")

	b.WriteString("<div class=\"pagination\">")
	if grid.HasPrev {
		fmt.Fprintf(b, "<a href=\"/?%s\">&laquo; Prev</a>", filterQuery(view.Filters, grid.Page-1).Encode())
	} else {
		b.WriteString("<span class=\"disabled\">&laquo; Prev</span>")
	}
	fmt.Fprintf(b, "<span>%d rows</span>", grid.TotalRows)
	if grid.HasNext {
		fmt.Fprintf(b, "<a href=\"/?%s\">Next &raquo;</a>", filterQuery(view.Filters, grid.Page+1).Encode())
	} else {
		b.WriteString("<span class=\"disabled\">Next &raquo;</span>")
	}
	b.WriteString("</div></section>")
}

func writeStylingCard(b *strings.Builder, view dashboard.View, snap styling.Snapshot) {
	b.WriteString("<section class=\"card\"><div class=\"card-header\"><h2>AI Styling</h2>")
	if snap.Status != "" {
		fmt.Fprintf(b, "<span class=\"pill %s\">%s</span>", statusClass(snap.State), esc(snap.Status))
	} else {
		b.WriteString("<span class=\"badge\">no styling applied</span>")
	}
	b.WriteString("</div>")

	b.WriteString("<form method=\"post\" action=\"/styling\"><div class=\"form-group\">")
	b.WriteString("<label for=\"prompt\">Describe the look you want</label>")
	b.WriteString("<textarea id=\"prompt\" name=\"prompt\" placeholder=\"e.g. neon cyberpunk with hot pink accents\"></textarea>")
	b.WriteString("</div>")
	hidden := []struct{ name, value string }{
		{"manufacturer", view.Filters.Manufacturer},
		{"cylinders", view.Filters.Cylinders},
		{"transmission", view.Filters.Transmission},
	}
	for _, h := range hidden {
		fmt.Fprintf(b, "<input type=\"hidden\" name=\"%s\" value=\"%s\">", h.name, esc(h.value))
	}
	b.WriteString("<button type=\"submit\">Apply AI Styling</button></form>")

	if snap.LastCSS != "" {
		fmt.Fprintf(b, "<details><summary class=\"note\">Last applied CSS</summary><pre class=\"mono\">%s</pre></details>", esc(snap.LastCSS))
	}
	b.WriteString("</section>")
}

func statusClass(state styling.State) string {
	switch state {
	case styling.StateApplied:
		return "ok"
	case styling.StateRequesting:
		return "busy"
	case styling.StateFailed:
		return "err"
	default:
		return ""
	}
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
