package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/sim"
)

// GeneratorSpec parameterizes a synthetic process set.
type GeneratorSpec struct {
	Seed             int64   `yaml:"seed"`
	Count            int     `yaml:"count"`
	ArrivalProcess   string  `yaml:"arrival_process"`   // poisson or constant
	MeanInterarrival float64 `yaml:"mean_interarrival"` // in clock units
	BurstMin         int64   `yaml:"burst_min"`
	BurstMax         int64   `yaml:"burst_max"`
	IDPrefix         string  `yaml:"id_prefix"`
}

var validArrivalProcesses = map[string]bool{"": true, "poisson": true, "constant": true}

// Validate checks the generator parameters.
func (g GeneratorSpec) Validate() error {
	if g.Count < 0 {
		return fmt.Errorf("count must be non-negative, got %d", g.Count)
	}
	if !validArrivalProcesses[g.ArrivalProcess] {
		return fmt.Errorf("unknown arrival process %q; valid: poisson, constant", g.ArrivalProcess)
	}
	if g.MeanInterarrival < 0 {
		return fmt.Errorf("mean_interarrival must be non-negative, got %f", g.MeanInterarrival)
	}
	if g.BurstMin <= 0 || g.BurstMax < g.BurstMin {
		return fmt.Errorf("burst range [%d, %d] invalid; need 0 < min <= max", g.BurstMin, g.BurstMax)
	}
	return nil
}

// Generate creates a process set from spec. The first process arrives at 0,
// bursts are uniform in [BurstMin, BurstMax]. Deterministic given the same spec;
// arrivals and bursts draw from separate streams of the seed.
func Generate(spec GeneratorSpec) ([]sim.Process, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator spec: %w", err)
	}
	prefix := spec.IDPrefix
	if prefix == "" {
		prefix = "P"
	}

	rng := NewPartitionedRNG(spec.Seed)
	arrivals, bursts := rng.ForStream(StreamArrivals), rng.ForStream(StreamBursts)
	sampler := NewArrivalSampler(spec.ArrivalProcess, spec.MeanInterarrival)

	procs := make([]sim.Process, spec.Count)
	var clock int64
	for i := range procs {
		if i > 0 {
			clock += sampler.SampleIAT(arrivals)
		}
		procs[i] = sim.Process{
			ID:      fmt.Sprintf("%s%d", prefix, i+1),
			Arrival: clock,
			Burst:   spec.BurstMin + bursts.Int63n(spec.BurstMax-spec.BurstMin+1),
		}
	}
	logrus.Debugf("generated %d processes (seed %d)", len(procs), spec.Seed)
	return procs, nil
}

// GenerateScenario wraps Generate into a Scenario ready to be written out.
// A nil throughputAt leaves throughput counted at each run's makespan.
func GenerateScenario(name string, spec GeneratorSpec, cfg sim.PolicyConfig, throughputAt *int64) (*Scenario, error) {
	procs, err := Generate(spec)
	if err != nil {
		return nil, err
	}
	return &Scenario{
		Name:          name,
		ContextSwitch: cfg.ContextSwitch,
		Quantum:       cfg.Quantum,
		ThroughputAt:  throughputAt,
		Processes:     procs,
	}, nil
}
