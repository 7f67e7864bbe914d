package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/solardome/mpg-dashboard/internal/dashboard"
	"github.com/solardome/mpg-dashboard/internal/dataset"
)

func filtersFromValues(get func(string) string) dashboard.FilterState {
	return dashboard.FilterState{
		Manufacturer: get("manufacturer"),
		Cylinders:    get("cylinders"),
		Transmission: get("transmission"),
	}.Normalized()
}

func pageFromValues(get func(string) string) int {
	page, err := strconv.Atoi(get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// filterQuery rebuilds the canonical query string for links, redirects and
// the chart iframes, so filter state survives every navigation.
func filterQuery(f dashboard.FilterState, page int) url.Values {
	q := url.Values{}
	q.Set("manufacturer", f.Manufacturer)
	q.Set("cylinders", f.Cylinders)
	q.Set("transmission", f.Transmission)
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	return q
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filters := filtersFromValues(query.Get)
	page := pageFromValues(query.Get)

	view := dashboard.BuildView(s.store, filters, page, s.cfg.GridPageSize)
	html := s.renderPage(view, s.manager.Snapshot(), s.styles.Current())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *Server) handleStyling(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	filters := filtersFromValues(r.PostFormValue)
	page := pageFromValues(r.PostFormValue)

	// The redirect is sent once the request reaches a terminal state. Empty
	// prompts and re-triggers while a request is in flight change nothing.
	_ = s.manager.Trigger(r.Context(), r.PostFormValue("prompt"))

	http.Redirect(w, r, "/?"+filterQuery(filters, page).Encode(), http.StatusSeeOther)
}

type recordsResponse struct {
	Filters    filtersPayload           `json:"filters"`
	Count      int                      `json:"count"`
	Records    []dataset.Record         `json:"records"`
	Aggregates []dashboard.AggregateRow `json:"aggregates"`
}

type filtersPayload struct {
	Manufacturer string `json:"manufacturer"`
	Cylinders    string `json:"cylinders"`
	Transmission string `json:"transmission"`
}

func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromValues(r.URL.Query().Get)
	filtered := dashboard.Filter(s.store.Records, filters)

	resp := recordsResponse{
		Filters: filtersPayload{
			Manufacturer: filters.Manufacturer,
			Cylinders:    filters.Cylinders,
			Transmission: filters.Transmission,
		},
		Count:      len(filtered),
		Records:    filtered,
		Aggregates: dashboard.Aggregate(filtered),
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		s.log.Error("api.records.encode", map[string]interface{}{"error": err.Error()})
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}
