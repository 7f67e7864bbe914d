package dataset

import (
	"crypto/sha256"
	"embed"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//go:embed default.csv
var defaultFS embed.FS

var expectedHeader = []string{"manufacturer", "cylinders", "transmission", "displacement", "highway_mpg", "class"}

// LoadDefault loads the dataset embedded in the binary.
func LoadDefault() (*Store, error) {
	b, err := defaultFS.ReadFile("default.csv")
	if err != nil {
		return nil, fmt.Errorf("read embedded dataset: %w", err)
	}
	return parse("embedded", b)
}

// LoadFile loads the dataset from an external CSV file.
func LoadFile(path string) (*Store, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	return parse(path, b)
}

func parse(source string, b []byte) (*Store, error) {
	sum := sha256.Sum256(b)

	r := csv.NewReader(strings.NewReader(string(b)))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("parse %s: read header: %w", source, err)
	}
	if err := validateHeader(header); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}

	var records []Record
	row := 1
	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("parse %s: row %d: %w", source, row, err)
		}
		rec, err := parseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("parse %s: row %d: %w", source, row, err)
		}
		records = append(records, rec)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: no data rows", source)
	}

	return &Store{
		Records: records,
		Source:  source,
		SHA256:  hex.EncodeToString(sum[:]),
	}, nil
}

func validateHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return fmt.Errorf("header has %d columns, want %d", len(header), len(expectedHeader))
	}
	for i, want := range expectedHeader {
		got := strings.TrimSpace(strings.ToLower(header[i]))
		if got != want {
			return fmt.Errorf("header column %d is %q, want %q", i+1, header[i], want)
		}
	}
	return nil
}

func parseRow(fields []string) (Record, error) {
	if len(fields) != len(expectedHeader) {
		return Record{}, fmt.Errorf("has %d columns, want %d", len(fields), len(expectedHeader))
	}
	manufacturer := strings.TrimSpace(fields[0])
	if manufacturer == "" {
		return Record{}, fmt.Errorf("empty manufacturer")
	}
	cylinders, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || cylinders <= 0 {
		return Record{}, fmt.Errorf("invalid cylinders %q", fields[1])
	}
	transmission := strings.TrimSpace(fields[2])
	if transmission == "" {
		return Record{}, fmt.Errorf("empty transmission")
	}
	displacement, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
	if err != nil || displacement <= 0 {
		return Record{}, fmt.Errorf("invalid displacement %q", fields[3])
	}
	highway, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil || highway <= 0 {
		return Record{}, fmt.Errorf("invalid highway_mpg %q", fields[4])
	}
	class := strings.TrimSpace(fields[5])
	if class == "" {
		return Record{}, fmt.Errorf("empty class")
	}
	return Record{
		Manufacturer: manufacturer,
		Cylinders:    cylinders,
		Transmission: transmission,
		Displacement: displacement,
		HighwayMPG:   highway,
		Class:        class,
	}, nil
}
