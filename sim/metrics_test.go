package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/cpusched/sim/internal/testutil"
)

func TestSummarize_FCFSLecture(t *testing.T) {
	// GIVEN the FCFS lecture run (completions 5, 9, 17; waitings 0, 5, 8)
	res, err := FCFS(lectureProcesses(), 1)
	require.NoError(t, err)

	// WHEN summarized with throughput at T=10
	s := Summarize(res, 10)

	// THEN aggregates match hand computation
	assert.Equal(t, PolicyFCFS, s.Policy)
	assert.Equal(t, 3, s.Processes)
	assert.Equal(t, 3, s.Completed)
	testutil.AssertFloat64Equal(t, "mean waiting", 13.0/3.0, s.MeanWaiting, 1e-12)
	testutil.AssertFloat64Equal(t, "mean turnaround", 28.0/3.0, s.MeanTurnaround, 1e-12)
	assert.Equal(t, 2, s.Throughput)
	assert.Equal(t, int64(17), s.Makespan)
	assert.Equal(t, int64(15), s.BusyTime)
	assert.Equal(t, 2, s.ContextSwitches)
	assert.Equal(t, int64(2), s.ContextSwitchTime)
	assert.Equal(t, int64(0), s.IdleTime)
	testutil.AssertFloat64Equal(t, "utilization", 15.0/17.0, s.Utilization, 1e-12)
	// FCFS never preempts, so response equals waiting
	testutil.AssertFloat64Equal(t, "mean response", s.MeanWaiting, s.MeanResponse, 1e-12)
}

func TestSummarize_IdleTimeAccounted(t *testing.T) {
	res, err := FCFS([]Process{
		{ID: "A", Arrival: 0, Burst: 2},
		{ID: "B", Arrival: 5, Burst: 3},
	}, 1)
	require.NoError(t, err)

	s := Summarize(res, 100)
	assert.Equal(t, int64(9), s.Makespan)
	assert.Equal(t, int64(3), s.IdleTime)
	assert.Equal(t, 2, s.Throughput)
}

func TestSummarize_RoundRobinResponseBeforeWaiting(t *testing.T) {
	res, err := RoundRobin(lectureProcesses(), 2, 1)
	require.NoError(t, err)

	// first runs: P1 at 0, P2 at 3, P3 at 6
	assert.Equal(t, []int64{0, 2, 4}, ResponseTimes(res.Ledgers))
	s := Summarize(res, 20)
	testutil.AssertFloat64Equal(t, "mean response", 2.0, s.MeanResponse, 1e-12)
	assert.Equal(t, 2, s.Throughput)
}
