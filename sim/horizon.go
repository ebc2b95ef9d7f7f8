package sim

import (
	"fmt"
	"math"
)

// sliceCount returns an upper bound on the execution segments of a run: one per
// process when quantum <= 0 (run to completion), else ceil(burst/quantum)
// per process. Saturates at math.MaxInt64.
func sliceCount(procs []Process, quantum int64) int64 {
	var n int64
	for _, p := range procs {
		k := int64(1)
		if quantum > 0 {
			k = (p.Burst-1)/quantum + 1
		}
		n = saturatingAdd(n, k)
	}
	return n
}

// SegmentBound returns an upper bound on the timeline length of running
// procs with the given quantum (0 for FCFS and SJF): every execution
// segment is preceded by at most one context switch.
func SegmentBound(procs []Process, quantum int64) int64 {
	n := sliceCount(procs, quantum)
	return saturatingAdd(n, n)
}

// checkHorizon rejects runs whose clock could pass math.MaxInt64. The clock
// never exceeds the latest arrival plus all execution and switch time.
func checkHorizon(procs []Process, contextSwitch, quantum int64) error {
	var latest int64
	for _, p := range procs {
		latest = max(latest, p.Arrival)
	}
	horizon := latest
	ok := true
	for _, p := range procs {
		if horizon, ok = addInt64(horizon, p.Burst); !ok {
			break
		}
	}
	if ok && contextSwitch > 0 {
		n := sliceCount(procs, quantum)
		if n > math.MaxInt64/contextSwitch {
			ok = false
		} else {
			horizon, ok = addInt64(horizon, n*contextSwitch)
		}
	}
	if !ok {
		return fmt.Errorf("%w: %d processes, latest arrival %d, context switch %d",
			ErrClockOverflow, len(procs), latest, contextSwitch)
	}
	return nil
}

// addInt64 adds two non-negative values, reporting false on overflow.
func addInt64(a, b int64) (int64, bool) {
	if a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

func saturatingAdd(a, b int64) int64 {
	if sum, ok := addInt64(a, b); ok {
		return sum
	}
	return math.MaxInt64
}
