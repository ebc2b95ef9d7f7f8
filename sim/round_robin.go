package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/sim/trace"
)

// slotState is the round-robin lifecycle of one slot.
type slotState int

const (
	stateNotArrived slotState = iota
	stateReady
	stateRunning
	stateFinished
)

// RoundRobinPolicy is preemptive round-robin with a fixed time quantum.
//
// Admission rule: a slot enters the ready queue exactly once per arrival, in
// input order, as soon as arrival <= clock. The sweep runs before every
// dispatch and again right after each slice, so processes that arrived during
// a slice (or its context switch) queue ahead of the preempted process.
type RoundRobinPolicy struct {
	Quantum       int64
	ContextSwitch int64
}

func (p *RoundRobinPolicy) Name() string { return PolicyRoundRobin }

func (p *RoundRobinPolicy) Schedule(procs []Process, tr *trace.SimulationTrace) (*Result, error) {
	if p.Quantum <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidQuantum, p.Quantum)
	}
	if err := validateRun(procs, p.ContextSwitch, p.Quantum); err != nil {
		return nil, err
	}

	sim := newSimulator(procs, p.ContextSwitch, tr)
	states := make([]slotState, len(procs))
	rq := &ReadyQueue{}

	admit := func(phase string) {
		for i := range sim.Ledgers {
			if states[i] != stateNotArrived || sim.Ledgers[i].Process.Arrival > sim.Clock {
				continue
			}
			states[i] = stateReady
			rq.Enqueue(i)
			sim.Trace.RecordAdmission(trace.AdmissionRecord{
				Slot:      i,
				ProcessID: sim.Ledgers[i].Process.ID,
				Clock:     sim.Clock,
				Phase:     phase,
			})
		}
	}

	for !sim.Done() {
		admit(trace.PhasePreDispatch)

		slot, ok := rq.Dequeue()
		if !ok {
			next, _ := sim.NextArrival()
			sim.IdleUntil(next)
			continue
		}

		states[slot] = stateRunning
		runFor := min(p.Quantum, sim.Ledgers[slot].Remaining)
		if sim.Trace != nil {
			queued := append([]int(nil), rq.Items()...)
			sim.recordDispatch(slot, runFor, len(queued)+1, queued, "fifo")
		}
		finished := sim.Dispatch(slot, runFor)

		admit(trace.PhasePostSlice)

		if finished {
			states[slot] = stateFinished
		} else {
			states[slot] = stateReady
			rq.Enqueue(slot)
		}
		logrus.Debugf("ready queue after slice: %s", rq)
	}

	res := sim.result(p.Name())
	logRun(p.Name(), procs, res)
	return res, nil
}

// RoundRobin schedules procs round-robin with the given quantum and context-switch cost.
func RoundRobin(procs []Process, quantum, contextSwitch int64) (*Result, error) {
	return (&RoundRobinPolicy{Quantum: quantum, ContextSwitch: contextSwitch}).Schedule(procs, nil)
}
