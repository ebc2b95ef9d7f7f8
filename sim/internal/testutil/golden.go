// Package testutil provides shared test infrastructure for the scheduling simulator.
// It holds the golden dataset types and assertion helpers used by the sim
// test packages. It must not import sim/.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenProcess mirrors one process record of a golden test case.
type GoldenProcess struct {
	ID      string `json:"id"`
	Arrival int64  `json:"arrival"`
	Burst   int64  `json:"burst"`
}

// GoldenTestCase represents a single hand-computed scenario.
type GoldenTestCase struct {
	Name          string          `json:"name"`
	Policy        string          `json:"policy"`
	Quantum       int64           `json:"quantum"`
	ContextSwitch int64           `json:"context_switch"`
	Processes     []GoldenProcess `json:"processes"`
	Expected      GoldenExpected  `json:"expected"`
}

// GoldenExpected holds the expected outcome, per-process values in input order.
type GoldenExpected struct {
	Labels      []string `json:"labels"`
	Completions []int64  `json:"completions"`
	Waitings    []int64  `json:"waitings"`
	Turnarounds []int64  `json:"turnarounds"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// Case returns the named test case or fails the test.
func (d *GoldenDataset) Case(t *testing.T, name string) GoldenTestCase {
	t.Helper()
	for _, tc := range d.Tests {
		if tc.Name == name {
			return tc
		}
	}
	t.Fatalf("golden case %q not found", name)
	return GoldenTestCase{}
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
