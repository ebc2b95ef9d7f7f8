package sim

import (
	"fmt"
	"strings"
)

// SegmentKind distinguishes process execution from context-switch overhead.
type SegmentKind string

const (
	SegmentExec          SegmentKind = "exec"
	SegmentContextSwitch SegmentKind = "context-switch"
)

// ContextSwitchLabel is the label of every context-switch segment.
const ContextSwitchLabel = "CS"

// Segment is one half-open interval [Start, End) of CPU time.
// Slot is -1 for context switches.
type Segment struct {
	Kind  SegmentKind `json:"kind" yaml:"kind"`
	Label string      `json:"label" yaml:"label"`
	Slot  int         `json:"slot" yaml:"slot"`
	Start int64       `json:"start" yaml:"start"`
	End   int64       `json:"end" yaml:"end"`
}

// Duration returns End - Start.
func (s Segment) Duration() int64 {
	return s.End - s.Start
}

func (s Segment) String() string {
	return fmt.Sprintf("%s[%d,%d)", s.Label, s.Start, s.End)
}

// Timeline is the ordered list of segments emitted by one run.
// Idle gaps are implicit: the next segment simply starts later.
type Timeline []Segment

// Labels returns the execution order only, e.g. [P1 CS P2].
func (t Timeline) Labels() []string {
	labels := make([]string, len(t))
	for i, s := range t {
		labels[i] = s.Label
	}
	return labels
}

// ExecTime sums the durations of execution segments.
func (t Timeline) ExecTime() int64 {
	var total int64
	for _, s := range t {
		if s.Kind == SegmentExec {
			total += s.Duration()
		}
	}
	return total
}

// ContextSwitchTime sums the durations of context-switch segments.
func (t Timeline) ContextSwitchTime() int64 {
	var total int64
	for _, s := range t {
		if s.Kind == SegmentContextSwitch {
			total += s.Duration()
		}
	}
	return total
}

// ContextSwitches counts context-switch segments.
func (t Timeline) ContextSwitches() int {
	n := 0
	for _, s := range t {
		if s.Kind == SegmentContextSwitch {
			n++
		}
	}
	return n
}

// End returns the end of the last segment, or 0 for an empty timeline.
func (t Timeline) End() int64 {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

func (t Timeline) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, s := range t {
		sb.WriteString(s.String())
		if i < len(t)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
