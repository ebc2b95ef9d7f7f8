package workload

import (
	"context"
	"fmt"

	"github.com/inference-sim/cpusched/sim"
	"github.com/inference-sim/cpusched/sim/trace"
)

// PolicyReport is one policy's run over a scenario.
type PolicyReport struct {
	Result  *sim.Result         `json:"result" yaml:"result"`
	Summary sim.Summary         `json:"summary" yaml:"summary"`
	Trace   *trace.TraceSummary `json:"trace,omitempty" yaml:"trace,omitempty"`
}

// Report collects the runs of every requested policy, in request order.
type Report struct {
	Scenario string         `json:"scenario" yaml:"scenario"`
	Runs     []PolicyReport `json:"runs" yaml:"runs"`
}

// Simulate runs every policy of the scenario concurrently and summarizes
// each run. Throughput is counted at ThroughputAt, or at the run's makespan
// when that is unset. The scenario must already be valid.
func (s *Scenario) Simulate(ctx context.Context, level trace.TraceLevel) (*Report, error) {
	names := s.PolicyNames()
	cfg := s.PolicyConfig()

	jobs := make([]sim.BatchJob, len(names))
	for i, name := range names {
		jobs[i] = sim.BatchJob{
			Name:      s.Name,
			Processes: s.Processes,
			Policy:    sim.NewPolicy(name, cfg),
			Trace:     trace.NewSimulationTrace(trace.TraceConfig{Level: level}),
		}
	}

	report := &Report{Scenario: s.Name, Runs: make([]PolicyReport, 0, len(jobs))}
	for i, br := range sim.RunBatch(ctx, jobs, len(jobs)) {
		if br.Err != nil {
			return nil, fmt.Errorf("%s: %w", br.Policy, br.Err)
		}
		t := s.ThroughputInstant(br.Result.Timeline.End())
		pr := PolicyReport{Result: br.Result, Summary: sim.Summarize(br.Result, t)}
		if jobs[i].Trace != nil {
			pr.Trace = trace.Summarize(jobs[i].Trace)
		}
		report.Runs = append(report.Runs, pr)
	}
	return report, nil
}
