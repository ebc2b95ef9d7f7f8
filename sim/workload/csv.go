package workload

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/inference-sim/cpusched/sim"
)

// ErrInvalidCSV is returned for rows that are not "id,arrival,burst".
var ErrInvalidCSV = errors.New("invalid process csv")

// ReadProcessesCSV reads process records, one "id,arrival,burst" row each.
// A first row whose arrival column is not a number is treated as a header.
// Records are returned in file order and are not validated.
func ReadProcessesCSV(r io.Reader) ([]sim.Process, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCSV, err)
	}

	procs := make([]sim.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want 3", ErrInvalidCSV, i+1, len(row))
		}
		arrival, err := strconv.ParseInt(strings.TrimSpace(row[1]), 10, 64)
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("%w: row %d arrival %q", ErrInvalidCSV, i+1, row[1])
		}
		burst, err := strconv.ParseInt(strings.TrimSpace(row[2]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d burst %q", ErrInvalidCSV, i+1, row[2])
		}
		procs = append(procs, sim.Process{
			ID:      strings.TrimSpace(row[0]),
			Arrival: arrival,
			Burst:   burst,
		})
	}
	return procs, nil
}
