package sim

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/cpusched/sim/trace"
)

// Policy names accepted by NewPolicy.
const (
	PolicyFCFS       = "fcfs"
	PolicySJF        = "sjf"
	PolicyRoundRobin = "rr"
)

// validPolicies is the set of recognized policy names.
var validPolicies = map[string]bool{PolicyFCFS: true, PolicySJF: true, PolicyRoundRobin: true}

// IsValidPolicy returns true if name is a recognized policy.
func IsValidPolicy(name string) bool {
	return validPolicies[name]
}

// ValidPolicyNames returns the recognized policy names in presentation order.
func ValidPolicyNames() []string {
	return []string{PolicyFCFS, PolicySJF, PolicyRoundRobin}
}

// Result is the output of one simulation run.
// Ledgers are in input order, one per input process.
type Result struct {
	Policy   string   `json:"policy" yaml:"policy"`
	Ledgers  []Ledger `json:"ledgers" yaml:"ledgers"`
	Timeline Timeline `json:"timeline" yaml:"timeline"`
}

// Policy schedules a process set on a single simulated CPU.
// Implementations must not mutate procs and must allocate fresh state per call.
type Policy interface {
	Name() string
	Schedule(procs []Process, tr *trace.SimulationTrace) (*Result, error)
}

// PolicyConfig holds the parameters shared by all policies.
// Quantum is only read by round-robin.
type PolicyConfig struct {
	ContextSwitch int64 `json:"context_switch" yaml:"context_switch"`
	Quantum       int64 `json:"quantum" yaml:"quantum"`
}

// NewPolicy creates a Policy by name.
// Valid names: "fcfs", "sjf", "rr".
// Panics on unrecognized names; callers validate with IsValidPolicy first.
func NewPolicy(name string, cfg PolicyConfig) Policy {
	if !IsValidPolicy(name) {
		panic(fmt.Sprintf("unknown policy %q", name))
	}
	switch name {
	case PolicyFCFS:
		return &FCFSPolicy{ContextSwitch: cfg.ContextSwitch}
	case PolicySJF:
		return &SJFPolicy{ContextSwitch: cfg.ContextSwitch}
	case PolicyRoundRobin:
		return &RoundRobinPolicy{Quantum: cfg.Quantum, ContextSwitch: cfg.ContextSwitch}
	default:
		panic(fmt.Sprintf("unhandled policy %q", name))
	}
}

// validateRun checks everything common to all policies before any state is
// built. quantum is 0 for policies that run each process to completion.
func validateRun(procs []Process, contextSwitch, quantum int64) error {
	if contextSwitch < 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidContextSwitch, contextSwitch)
	}
	if err := validateProcesses(procs); err != nil {
		return err
	}
	return checkHorizon(procs, contextSwitch, quantum)
}

// arrivalOrder returns slot indices stably sorted by arrival.
func arrivalOrder(procs []Process) []int {
	order := make([]int, len(procs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return procs[order[i]].Arrival < procs[order[j]].Arrival
	})
	return order
}

func logRun(policy string, procs []Process, res *Result) {
	logrus.Infof("%s: scheduled %d processes, %d segments, ends at %d",
		policy, len(procs), len(res.Timeline), res.Timeline.End())
}
