package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches      int
	TotalAdmissions      int
	PostSliceAdmissions  int
	IdleJumps            int
	IdleTime             int64
	MaxReadyCount        int
	DispatchDistribution map[string]int // process ID → number of dispatches
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchDistribution: make(map[string]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	for _, d := range st.Dispatches {
		summary.DispatchDistribution[d.ProcessID]++
		if d.ReadyCount > summary.MaxReadyCount {
			summary.MaxReadyCount = d.ReadyCount
		}
	}

	summary.TotalAdmissions = len(st.Admissions)
	for _, a := range st.Admissions {
		if a.Phase == PhasePostSlice {
			summary.PostSliceAdmissions++
		}
	}

	summary.IdleJumps = len(st.Idles)
	for _, idle := range st.Idles {
		summary.IdleTime += idle.To - idle.From
	}

	return summary
}
