// Package trace provides scheduling decision recording for policy analysis.
// This package has no dependencies on sim/. It stores pure data types.
package trace

// Admission phases used by round-robin.
const (
	PhasePreDispatch = "pre-dispatch" // swept in before choosing the next process
	PhasePostSlice   = "post-slice"   // arrived while the previous slice ran
)

// AdmissionRecord captures a process entering the ready queue.
type AdmissionRecord struct {
	Slot      int    `json:"slot"`
	ProcessID string `json:"process_id"`
	Clock     int64  `json:"clock"`
	Phase     string `json:"phase"`
}

// DispatchRecord captures a single dispatch decision.
type DispatchRecord struct {
	Slot       int    `json:"slot"`
	ProcessID  string `json:"process_id"`
	Clock      int64  `json:"clock"`       // instant of the decision, before any context switch
	RunFor     int64  `json:"run_for"`     // granted service time
	ReadyCount int    `json:"ready_count"`      // candidates considered, including the chosen one
	Queued     []int  `json:"queued,omitempty"` // slots still waiting, front first (round-robin)
	Reason     string `json:"reason"`
}

// IdleRecord captures a clock jump over a period with nothing ready.
type IdleRecord struct {
	From int64 `json:"from"`
	To   int64 `json:"to"`
}
