// Defines the Process record (static input) and the Ledger that tracks a
// process through one simulation run.

package sim

import (
	"fmt"
)

// Process is an immutable scheduling input. ID is an opaque label and is not
// required to be unique across a process set.
type Process struct {
	ID      string `json:"id" yaml:"id"`
	Arrival int64  `json:"arrival" yaml:"arrival"` // instant the process becomes ready
	Burst   int64  `json:"burst" yaml:"burst"`     // total CPU service time required
}

// Validate reports whether the process can be simulated.
func (p Process) Validate() error {
	if p.Burst <= 0 {
		return fmt.Errorf("process %q: %w, got %d", p.ID, ErrInvalidBurst, p.Burst)
	}
	if p.Arrival < 0 {
		return fmt.Errorf("process %q: %w, got %d", p.ID, ErrInvalidArrival, p.Arrival)
	}
	return nil
}

func (p Process) String() string {
	return fmt.Sprintf("Process: (ID: %s, Arrival: %d, Burst: %d)", p.ID, p.Arrival, p.Burst)
}

// Ledger is the per-run mutable state of one process.
// Slot is the process's position in the input slice and is its identity for
// the whole run. Turnaround, Waiting and Response are only meaningful once
// Finished (resp. Started) is set.
type Ledger struct {
	Slot    int     `json:"slot" yaml:"slot"`
	Process Process `json:"process" yaml:"process"`

	Remaining  int64 `json:"remaining" yaml:"remaining"`
	Finished   bool  `json:"finished" yaml:"finished"`
	Completion int64 `json:"completion" yaml:"completion"`
	Turnaround int64 `json:"turnaround" yaml:"turnaround"`
	Waiting    int64 `json:"waiting" yaml:"waiting"`

	Started  bool  `json:"started" yaml:"started"`
	FirstRun int64 `json:"first_run" yaml:"first_run"` // start of the first execution segment
	Response int64 `json:"response" yaml:"response"`   // FirstRun - Arrival
}

// newLedgers allocates fresh ledgers in input order.
func newLedgers(procs []Process) []Ledger {
	ledgers := make([]Ledger, len(procs))
	for i, p := range procs {
		ledgers[i] = Ledger{
			Slot:      i,
			Process:   p,
			Remaining: p.Burst,
		}
	}
	return ledgers
}

// complete stamps the completion instant and the derived times.
// Panics if called twice: completion is never revised.
func (l *Ledger) complete(clock int64) {
	if l.Finished {
		panic(fmt.Sprintf("ledger slot %d completed twice", l.Slot))
	}
	l.Finished = true
	l.Completion = clock
	l.Turnaround = l.Completion - l.Process.Arrival
	l.Waiting = l.Turnaround - l.Process.Burst
}

func (l *Ledger) start(clock int64) {
	if l.Started {
		return
	}
	l.Started = true
	l.FirstRun = clock
	l.Response = clock - l.Process.Arrival
}

// validateProcesses fails fast on the first invalid record.
func validateProcesses(procs []Process) error {
	for i, p := range procs {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return nil
}
