package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// LoadError describes a failure to load a dataset file. It aborts the run
// before the assessment engine is invoked.
type LoadError struct {
	Path   string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Path, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LoadCSV reads a CSV file into a Table. The first record is the header;
// every cell is normalized through ParseValue so missing markers and numeric
// text get a single typed representation.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "cannot open file", Err: err}
	}
	defer f.Close()

	return loadCSV(path, f)
}

func loadCSV(path string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &LoadError{Path: path, Reason: "file is empty"}
	}
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "malformed header", Err: err}
	}

	cols := make([]*Column, len(header))
	for i, name := range header {
		cols[i] = &Column{Name: name}
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &LoadError{Path: path, Reason: fmt.Sprintf("malformed row %d", parseErr.Line), Err: err}
		}
		if err != nil {
			return nil, &LoadError{Path: path, Reason: "read failed", Err: err}
		}
		for i, cell := range record {
			cols[i].Values = append(cols[i].Values, ParseValue(cell))
		}
	}

	t, err := New(cols)
	if err != nil {
		return nil, &LoadError{Path: path, Reason: "invalid table", Err: err}
	}
	return t, nil
}
