// Derives summary statistics from a completed simulation run.

package sim

import "fmt"

// Summary aggregates statistics about one run for final reporting.
type Summary struct {
	Policy    string `json:"policy" yaml:"policy"`
	Processes int    `json:"processes" yaml:"processes"`
	Completed int    `json:"completed" yaml:"completed"`

	MeanWaiting    float64 `json:"mean_waiting" yaml:"mean_waiting"`
	StdWaiting     float64 `json:"std_waiting" yaml:"std_waiting"`
	MeanTurnaround float64 `json:"mean_turnaround" yaml:"mean_turnaround"`
	StdTurnaround  float64 `json:"std_turnaround" yaml:"std_turnaround"`
	MeanResponse   float64 `json:"mean_response" yaml:"mean_response"`
	StdResponse    float64 `json:"std_response" yaml:"std_response"`

	ThroughputAt int64 `json:"throughput_at" yaml:"throughput_at"`
	Throughput   int   `json:"throughput" yaml:"throughput"`

	Makespan          int64   `json:"makespan" yaml:"makespan"`
	BusyTime          int64   `json:"busy_time" yaml:"busy_time"`
	ContextSwitches   int     `json:"context_switches" yaml:"context_switches"`
	ContextSwitchTime int64   `json:"context_switch_time" yaml:"context_switch_time"`
	IdleTime          int64   `json:"idle_time" yaml:"idle_time"`
	Utilization       float64 `json:"cpu_utilization" yaml:"cpu_utilization"`
}

// Summarize computes the summary of res with throughput counted at instant t.
func Summarize(res *Result, t int64) Summary {
	waits := WaitingTimes(res.Ledgers)
	turns := TurnaroundTimes(res.Ledgers)
	resps := ResponseTimes(res.Ledgers)

	s := Summary{
		Policy:            res.Policy,
		Processes:         len(res.Ledgers),
		Completed:         len(turns),
		MeanWaiting:       Mean(waits),
		StdWaiting:        StdPopulation(waits),
		MeanTurnaround:    Mean(turns),
		StdTurnaround:     StdPopulation(turns),
		MeanResponse:      Mean(resps),
		StdResponse:       StdPopulation(resps),
		ThroughputAt:      t,
		Throughput:        Throughput(res.Ledgers, t),
		Makespan:          res.Timeline.End(),
		BusyTime:          res.Timeline.ExecTime(),
		ContextSwitches:   res.Timeline.ContextSwitches(),
		ContextSwitchTime: res.Timeline.ContextSwitchTime(),
	}
	s.IdleTime = s.Makespan - s.BusyTime - s.ContextSwitchTime
	if s.Makespan > 0 {
		s.Utilization = float64(s.BusyTime) / float64(s.Makespan)
	}
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: waiting %.3f±%.3f, turnaround %.3f±%.3f, throughput(%d)=%d",
		s.Policy, s.MeanWaiting, s.StdWaiting, s.MeanTurnaround, s.StdTurnaround, s.ThroughputAt, s.Throughput)
}
