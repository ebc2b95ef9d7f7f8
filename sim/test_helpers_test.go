package sim

import (
	"testing"

	"github.com/inference-sim/cpusched/sim/internal/testutil"
)

// lectureProcesses is the three-process example used throughout the tests.
func lectureProcesses() []Process {
	return []Process{
		{ID: "P1", Arrival: 0, Burst: 5},
		{ID: "P2", Arrival: 1, Burst: 3},
		{ID: "P3", Arrival: 2, Burst: 7},
	}
}

// duplicateIDProcesses reuses IDs across distinct records.
func duplicateIDProcesses() []Process {
	return []Process{
		{ID: "P1", Arrival: 0, Burst: 5},
		{ID: "P2", Arrival: 1, Burst: 3},
		{ID: "P3", Arrival: 2, Burst: 7},
		{ID: "P1", Arrival: 4, Burst: 5},
		{ID: "P2", Arrival: 6, Burst: 3},
	}
}

func goldenProcesses(tc testutil.GoldenTestCase) []Process {
	procs := make([]Process, len(tc.Processes))
	for i, p := range tc.Processes {
		procs[i] = Process{ID: p.ID, Arrival: p.Arrival, Burst: p.Burst}
	}
	return procs
}

// allPolicies returns one instance of each policy with the given parameters.
func allPolicies(quantum, contextSwitch int64) []Policy {
	cfg := PolicyConfig{ContextSwitch: contextSwitch, Quantum: quantum}
	policies := make([]Policy, 0, len(ValidPolicyNames()))
	for _, name := range ValidPolicyNames() {
		policies = append(policies, NewPolicy(name, cfg))
	}
	return policies
}

func completions(res *Result) []int64 {
	out := make([]int64, len(res.Ledgers))
	for i, l := range res.Ledgers {
		out[i] = l.Completion
	}
	return out
}

// assertRunInvariants checks the properties every valid run must satisfy.
func assertRunInvariants(t *testing.T, procs []Process, res *Result, contextSwitch int64) {
	t.Helper()

	if len(res.Ledgers) != len(procs) {
		t.Fatalf("ledger count: got %d, want %d", len(res.Ledgers), len(procs))
	}

	var totalBurst int64
	for i, l := range res.Ledgers {
		totalBurst += procs[i].Burst
		if l.Slot != i || l.Process != procs[i] {
			t.Errorf("ledger %d: not aligned with input (slot %d, process %v)", i, l.Slot, l.Process)
		}
		if !l.Finished || l.Remaining != 0 {
			t.Errorf("ledger %d: not finished (remaining %d)", i, l.Remaining)
		}
		if l.Turnaround != l.Completion-l.Process.Arrival {
			t.Errorf("ledger %d: turnaround %d != completion %d - arrival %d", i, l.Turnaround, l.Completion, l.Process.Arrival)
		}
		if l.Waiting != l.Turnaround-l.Process.Burst {
			t.Errorf("ledger %d: waiting %d != turnaround %d - burst %d", i, l.Waiting, l.Turnaround, l.Process.Burst)
		}
		if l.Waiting < 0 || l.Turnaround < l.Process.Burst {
			t.Errorf("ledger %d: negative waiting %d", i, l.Waiting)
		}
		if l.Response < 0 || l.Response > l.Waiting {
			t.Errorf("ledger %d: response %d outside [0, waiting %d]", i, l.Response, l.Waiting)
		}
	}

	var prevEnd int64
	var lastExecSlot = noSlot
	for i, s := range res.Timeline {
		if s.Start < prevEnd {
			t.Errorf("segment %d %v starts before previous end %d", i, s, prevEnd)
		}
		if s.End < s.Start {
			t.Errorf("segment %d %v has negative duration", i, s)
		}
		switch s.Kind {
		case SegmentContextSwitch:
			if s.Duration() != contextSwitch || s.Label != ContextSwitchLabel {
				t.Errorf("segment %d %v: bad context switch", i, s)
			}
			if i+1 >= len(res.Timeline) || res.Timeline[i+1].Start != s.End {
				t.Errorf("segment %d: context switch not immediately followed by execution", i)
			}
		case SegmentExec:
			if s.Start < procs[s.Slot].Arrival {
				t.Errorf("segment %d %v runs before arrival %d", i, s, procs[s.Slot].Arrival)
			}
			if lastExecSlot != noSlot && lastExecSlot != s.Slot {
				if i == 0 || res.Timeline[i-1].Kind != SegmentContextSwitch {
					t.Errorf("segment %d %v: switch from slot %d without context switch", i, s, lastExecSlot)
				}
			}
			lastExecSlot = s.Slot
		}
		prevEnd = s.End
	}

	if got := res.Timeline.ExecTime(); got != totalBurst {
		t.Errorf("exec time %d != total burst %d", got, totalBurst)
	}
}
