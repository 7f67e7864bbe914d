package dashboard

import "github.com/solardome/mpg-dashboard/internal/dataset"

// View is the complete data model behind one render of the dashboard page.
type View struct {
	Filters FilterState

	ManufacturerOptions []string
	CylinderOptions     []string
	TransmissionOptions []string

	Filtered   []dataset.Record
	Aggregates []AggregateRow
	Grid       GridPage
}

// BuildView runs the filter engine and aggregation over the store and
// assembles the page view model.
func BuildView(store *dataset.Store, filters FilterState, page, pageSize int) View {
	filters = filters.Normalized()
	filtered := Filter(store.Records, filters)
	return View{
		Filters:             filters,
		ManufacturerOptions: store.Manufacturers(),
		CylinderOptions:     store.Cylinders(),
		TransmissionOptions: store.Transmissions(),
		Filtered:            filtered,
		Aggregates:          Aggregate(filtered),
		Grid:                Paginate(filtered, page, pageSize),
	}
}
