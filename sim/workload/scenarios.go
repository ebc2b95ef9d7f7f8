package workload

import (
	"fmt"
	"sort"

	"github.com/inference-sim/cpusched/sim"
)

// builtinScenarios are named example process sets usable without a file.
var builtinScenarios = map[string]func() *Scenario{
	"lecture": func() *Scenario {
		return &Scenario{
			Name:          "lecture",
			ContextSwitch: 1,
			Quantum:       2,
			ThroughputAt:  throughputAt(20),
			Processes: []sim.Process{
				{ID: "P1", Arrival: 0, Burst: 5},
				{ID: "P2", Arrival: 1, Burst: 3},
				{ID: "P3", Arrival: 2, Burst: 7},
			},
		}
	},
	"sjf-late-short": func() *Scenario {
		return &Scenario{
			Name:          "sjf-late-short",
			ContextSwitch: 1,
			Quantum:       2,
			ThroughputAt:  throughputAt(20),
			Processes: []sim.Process{
				{ID: "P1", Arrival: 0, Burst: 5},
				{ID: "P2", Arrival: 1, Burst: 3},
				{ID: "P3", Arrival: 2, Burst: 7},
				{ID: "P4", Arrival: 3, Burst: 2},
			},
		}
	},
	"duplicate-ids": DefaultScenario,
}

func throughputAt(t int64) *int64 { return &t }

// DefaultScenario is the five-process example whose IDs repeat, run with
// quantum 8 and throughput counted at T=20.
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:          "duplicate-ids",
		ContextSwitch: 1,
		Quantum:       8,
		ThroughputAt:  throughputAt(20),
		Processes: []sim.Process{
			{ID: "P1", Arrival: 0, Burst: 5},
			{ID: "P2", Arrival: 1, Burst: 3},
			{ID: "P3", Arrival: 2, Burst: 7},
			{ID: "P1", Arrival: 4, Burst: 5},
			{ID: "P2", Arrival: 6, Burst: 3},
		},
	}
}

// BuiltinScenario returns a fresh copy of the named example scenario.
func BuiltinScenario(name string) (*Scenario, error) {
	build, ok := builtinScenarios[name]
	if !ok {
		return nil, fmt.Errorf("unknown scenario %q; valid: %v", name, BuiltinScenarioNames())
	}
	return build(), nil
}

// BuiltinScenarioNames lists the example scenarios in sorted order.
func BuiltinScenarioNames() []string {
	names := make([]string, 0, len(builtinScenarios))
	for name := range builtinScenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
