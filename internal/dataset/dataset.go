package dataset

import (
	"sort"
	"strconv"
)

// Record is one row of the vehicle dataset. Immutable after load.
type Record struct {
	Manufacturer string  `json:"manufacturer"`
	Cylinders    int     `json:"cylinders"`
	Transmission string  `json:"transmission"`
	Displacement float64 `json:"displacement"`
	HighwayMPG   float64 `json:"highway_mpg"`
	Class        string  `json:"class"`
}

// Store holds the loaded dataset together with its provenance.
type Store struct {
	Records []Record
	Source  string
	SHA256  string
}

// Manufacturers returns the sorted distinct manufacturer names.
func (s *Store) Manufacturers() []string {
	return distinctStrings(s.Records, func(r Record) string { return r.Manufacturer })
}

// Transmissions returns the sorted distinct transmission values.
func (s *Store) Transmissions() []string {
	return distinctStrings(s.Records, func(r Record) string { return r.Transmission })
}

// Cylinders returns the distinct cylinder counts in ascending numeric order,
// formatted for use as select options.
func (s *Store) Cylinders() []string {
	seen := map[int]bool{}
	var vals []int
	for _, r := range s.Records {
		if !seen[r.Cylinders] {
			seen[r.Cylinders] = true
			vals = append(vals, r.Cylinders)
		}
	}
	sort.Ints(vals)
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, strconv.Itoa(v))
	}
	return out
}

func distinctStrings(records []Record, field func(Record) string) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range records {
		v := field(r)
		if v != "" && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
