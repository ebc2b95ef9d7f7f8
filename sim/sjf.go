package sim

import "github.com/inference-sim/cpusched/sim/trace"

// SJFPolicy is non-preemptive shortest-job-first: at each decision the
// arrived, unfinished process with the smallest burst runs to completion.
// Ties go to the earlier arrival, then to the earlier input position.
// Long processes can starve while shorter ones keep arriving.
type SJFPolicy struct {
	ContextSwitch int64
}

func (p *SJFPolicy) Name() string { return PolicySJF }

func (p *SJFPolicy) Schedule(procs []Process, tr *trace.SimulationTrace) (*Result, error) {
	if err := validateRun(procs, p.ContextSwitch, 0); err != nil {
		return nil, err
	}
	sim := newSimulator(procs, p.ContextSwitch, tr)
	for !sim.Done() {
		slot, ready := shortestReady(sim.Ledgers, sim.Clock)
		if slot == noSlot {
			next, _ := sim.NextArrival()
			sim.IdleUntil(next)
			continue
		}
		runFor := sim.Ledgers[slot].Remaining
		sim.recordDispatch(slot, runFor, ready, nil, "shortest-burst")
		sim.Dispatch(slot, runFor)
	}
	res := sim.result(p.Name())
	logRun(p.Name(), procs, res)
	return res, nil
}

// shortestReady scans the ledgers for the best candidate at clock.
// Returns noSlot when nothing has arrived, plus the number of candidates.
// Scanning in slot order with strict comparisons keeps the earliest slot on
// a full tie.
func shortestReady(ledgers []Ledger, clock int64) (int, int) {
	best, ready := noSlot, 0
	for i := range ledgers {
		l := &ledgers[i]
		if l.Finished || l.Process.Arrival > clock {
			continue
		}
		ready++
		if best == noSlot {
			best = i
			continue
		}
		b := &ledgers[best].Process
		if l.Process.Burst < b.Burst ||
			(l.Process.Burst == b.Burst && l.Process.Arrival < b.Arrival) {
			best = i
		}
	}
	return best, ready
}

// SJF schedules procs non-preemptive shortest-job-first with the given context-switch cost.
func SJF(procs []Process, contextSwitch int64) (*Result, error) {
	return (&SJFPolicy{ContextSwitch: contextSwitch}).Schedule(procs, nil)
}
