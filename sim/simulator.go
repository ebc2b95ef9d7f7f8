// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/sim/trace"
)

// noSlot marks "nothing has run yet".
const noSlot = -1

// Simulator is the simulated single CPU shared by every policy.
// It holds the clock, the ledgers and the timeline of exactly one run.
// Not safe for concurrent use; each run creates its own.
type Simulator struct {
	Clock         int64
	ContextSwitch int64
	Ledgers       []Ledger
	Timeline      Timeline
	// Trace is optional; a nil trace records nothing.
	Trace *trace.SimulationTrace

	lastSlot int
	finished int
}

// newSimulator allocates fresh run state for procs. Input is never aliased.
func newSimulator(procs []Process, contextSwitch int64, tr *trace.SimulationTrace) *Simulator {
	return &Simulator{
		Clock:         0,
		ContextSwitch: contextSwitch,
		Ledgers:       newLedgers(procs),
		Timeline:      make(Timeline, 0, 2*len(procs)),
		Trace:         tr,
		lastSlot:      noSlot,
	}
}

// Done reports whether every ledger has finished.
func (sim *Simulator) Done() bool {
	return sim.finished == len(sim.Ledgers)
}

// IdleUntil jumps the clock forward to t over a period where nothing is ready.
// Panics if t does not move the clock forward: an idle step that makes no
// progress would loop forever.
func (sim *Simulator) IdleUntil(t int64) {
	if t <= sim.Clock {
		panic("IdleUntil: idle jump must advance the clock")
	}
	logrus.Debugf("idle: clock %d -> %d", sim.Clock, t)
	sim.Trace.RecordIdle(trace.IdleRecord{From: sim.Clock, To: t})
	sim.Clock = t
}

// NextArrival returns the smallest arrival among unfinished ledgers that
// have not arrived yet, and false when there is none.
func (sim *Simulator) NextArrival() (int64, bool) {
	var next int64
	found := false
	for i := range sim.Ledgers {
		l := &sim.Ledgers[i]
		if l.Finished || l.Process.Arrival <= sim.Clock {
			continue
		}
		if !found || l.Process.Arrival < next {
			next = l.Process.Arrival
			found = true
		}
	}
	return next, found
}

// Dispatch runs slot for runFor time units starting at the current clock.
// A context switch is charged first when a different slot ran last; the very
// first dispatch of a run never pays one. Returns true if the slot finished.
func (sim *Simulator) Dispatch(slot int, runFor int64) bool {
	l := &sim.Ledgers[slot]
	if l.Finished || runFor <= 0 || runFor > l.Remaining {
		panic("Dispatch: invalid slice for slot")
	}

	if sim.lastSlot != noSlot && sim.lastSlot != slot {
		sim.Timeline = append(sim.Timeline, Segment{
			Kind:  SegmentContextSwitch,
			Label: ContextSwitchLabel,
			Slot:  noSlot,
			Start: sim.Clock,
			End:   sim.Clock + sim.ContextSwitch,
		})
		sim.Clock += sim.ContextSwitch
	}

	l.start(sim.Clock)
	sim.Timeline = append(sim.Timeline, Segment{
		Kind:  SegmentExec,
		Label: l.Process.ID,
		Slot:  slot,
		Start: sim.Clock,
		End:   sim.Clock + runFor,
	})
	logrus.Debugf("run: %s (slot %d) [%d,%d)", l.Process.ID, slot, sim.Clock, sim.Clock+runFor)
	sim.Clock += runFor
	l.Remaining -= runFor
	sim.lastSlot = slot

	if l.Remaining == 0 {
		l.complete(sim.Clock)
		sim.finished++
		logrus.Debugf("done: %s (slot %d) at %d", l.Process.ID, slot, sim.Clock)
		return true
	}
	return false
}

// recordDispatch traces a dispatch decision taken at the current clock.
// queued lists the slots left waiting, front to back, when the policy keeps
// an ordered queue.
func (sim *Simulator) recordDispatch(slot int, runFor int64, readyCount int, queued []int, reason string) {
	sim.Trace.RecordDispatch(trace.DispatchRecord{
		Slot:       slot,
		ProcessID:  sim.Ledgers[slot].Process.ID,
		Clock:      sim.Clock,
		RunFor:     runFor,
		ReadyCount: readyCount,
		Queued:     queued,
		Reason:     reason,
	})
}

// result packages the run's output.
func (sim *Simulator) result(policy string) *Result {
	return &Result{
		Policy:   policy,
		Ledgers:  sim.Ledgers,
		Timeline: sim.Timeline,
	}
}
