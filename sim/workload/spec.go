package workload

import (
	"bytes"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/cpusched/sim"
)

// Scenario is a process set plus the parameters to simulate it with.
// Loaded from YAML via LoadScenario(path).
type Scenario struct {
	Name          string        `yaml:"name"`
	ContextSwitch int64         `yaml:"context_switch"`
	Quantum       int64         `yaml:"quantum,omitempty"`       // round-robin only
	ThroughputAt  *int64        `yaml:"throughput_at,omitempty"` // nil = makespan of each run
	Policies      []string      `yaml:"policies,omitempty"`      // empty = all policies
	Processes     []sim.Process `yaml:"processes"`
	MaxSegments   int64         `yaml:"max_segments,omitempty"` // timeline length cap per run; 0 = none
}

// LoadScenario reads and parses a YAML scenario file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	sc, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}
	if sc.Name == "" {
		sc.Name = path
	}
	logrus.Debugf("loaded scenario %q with %d processes from %s", sc.Name, len(sc.Processes), path)
	return sc, nil
}

// ParseScenario decodes a YAML scenario document with strict field checking.
func ParseScenario(data []byte) (*Scenario, error) {
	var sc Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// PolicyNames returns the policies to run, defaulting to all of them.
func (s *Scenario) PolicyNames() []string {
	if len(s.Policies) == 0 {
		return sim.ValidPolicyNames()
	}
	return s.Policies
}

// ThroughputInstant returns the instant T at which throughput is counted for
// a run ending at makespan: ThroughputAt when set, else makespan.
func (s *Scenario) ThroughputInstant(makespan int64) int64 {
	if s.ThroughputAt != nil {
		return *s.ThroughputAt
	}
	return makespan
}

// PolicyConfig returns the policy parameters carried by the scenario.
func (s *Scenario) PolicyConfig() sim.PolicyConfig {
	return sim.PolicyConfig{ContextSwitch: s.ContextSwitch, Quantum: s.Quantum}
}

// Validate checks that all fields in the scenario are valid.
// An empty process list is valid.
func (s *Scenario) Validate() error {
	if s.ContextSwitch < 0 {
		return fmt.Errorf("context_switch: %w, got %d", sim.ErrInvalidContextSwitch, s.ContextSwitch)
	}
	if s.ThroughputAt != nil && *s.ThroughputAt < 0 {
		return fmt.Errorf("throughput_at must be non-negative, got %d", *s.ThroughputAt)
	}
	for _, name := range s.PolicyNames() {
		if !sim.IsValidPolicy(name) {
			return fmt.Errorf("unknown policy %q; valid: %v", name, sim.ValidPolicyNames())
		}
		if name == sim.PolicyRoundRobin && s.Quantum <= 0 {
			return fmt.Errorf("quantum: %w, got %d", sim.ErrInvalidQuantum, s.Quantum)
		}
	}
	for i, p := range s.Processes {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("processes[%d]: %w", i, err)
		}
	}
	if s.MaxSegments < 0 {
		return fmt.Errorf("max_segments must be non-negative, got %d", s.MaxSegments)
	}
	if s.MaxSegments > 0 {
		for _, name := range s.PolicyNames() {
			var quantum int64
			if name == sim.PolicyRoundRobin {
				quantum = s.Quantum
			}
			if bound := sim.SegmentBound(s.Processes, quantum); bound > s.MaxSegments {
				return fmt.Errorf("%s: %w: up to %d segments, limit %d", name, sim.ErrTooManySegments, bound, s.MaxSegments)
			}
		}
	}
	return nil
}
