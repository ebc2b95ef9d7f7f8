package sim

import "github.com/inference-sim/cpusched/sim/trace"

// FCFSPolicy runs processes to completion in arrival order.
// Equal arrivals keep input order.
type FCFSPolicy struct {
	ContextSwitch int64
}

func (p *FCFSPolicy) Name() string { return PolicyFCFS }

func (p *FCFSPolicy) Schedule(procs []Process, tr *trace.SimulationTrace) (*Result, error) {
	if err := validateRun(procs, p.ContextSwitch, 0); err != nil {
		return nil, err
	}
	sim := newSimulator(procs, p.ContextSwitch, tr)
	for _, slot := range arrivalOrder(procs) {
		l := &sim.Ledgers[slot]
		if sim.Clock < l.Process.Arrival {
			sim.IdleUntil(l.Process.Arrival)
		}
		sim.recordDispatch(slot, l.Remaining, 1, nil, "arrival-order")
		sim.Dispatch(slot, l.Remaining)
	}
	res := sim.result(p.Name())
	logRun(p.Name(), procs, res)
	return res, nil
}

// FCFS schedules procs first-come-first-served with the given context-switch cost.
func FCFS(procs []Process, contextSwitch int64) (*Result, error) {
	return (&FCFSPolicy{ContextSwitch: contextSwitch}).Schedule(procs, nil)
}
