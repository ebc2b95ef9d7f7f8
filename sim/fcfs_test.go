package sim

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFCFS_LectureExample_MatchesHandTrace(t *testing.T) {
	// GIVEN the three-process example with cs=1
	procs := lectureProcesses()

	// WHEN scheduled FCFS
	res, err := FCFS(procs, 1)
	require.NoError(t, err)

	// THEN the timeline is P1, CS, P2, CS, P3 with exact boundaries
	want := Timeline{
		{Kind: SegmentExec, Label: "P1", Slot: 0, Start: 0, End: 5},
		{Kind: SegmentContextSwitch, Label: ContextSwitchLabel, Slot: noSlot, Start: 5, End: 6},
		{Kind: SegmentExec, Label: "P2", Slot: 1, Start: 6, End: 9},
		{Kind: SegmentContextSwitch, Label: ContextSwitchLabel, Slot: noSlot, Start: 9, End: 10},
		{Kind: SegmentExec, Label: "P3", Slot: 2, Start: 10, End: 17},
	}
	if diff := cmp.Diff(want, res.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int64{5, 9, 17}, completions(res))
	assert.Equal(t, []int64{0, 5, 8}, WaitingTimes(res.Ledgers))
	assertRunInvariants(t, procs, res, 1)
}

func TestFCFS_UnsortedInput_LedgersKeepInputOrder(t *testing.T) {
	// GIVEN processes listed out of arrival order
	procs := []Process{
		{ID: "late", Arrival: 4, Burst: 1},
		{ID: "early", Arrival: 0, Burst: 2},
	}

	// WHEN scheduled
	res, err := FCFS(procs, 1)
	require.NoError(t, err)

	// THEN execution follows arrival but ledgers follow input
	assert.Equal(t, []string{"early", "CS", "late"}, res.Timeline.Labels())
	assert.Equal(t, "late", res.Ledgers[0].Process.ID)
	assert.Equal(t, int64(6), res.Ledgers[0].Completion)
	assert.Equal(t, int64(2), res.Ledgers[1].Completion)
	assertRunInvariants(t, procs, res, 1)
}

func TestFCFS_EqualArrivals_KeepInputOrder(t *testing.T) {
	procs := []Process{
		{ID: "b", Arrival: 0, Burst: 1},
		{ID: "a", Arrival: 0, Burst: 1},
		{ID: "c", Arrival: 0, Burst: 1},
	}
	res, err := FCFS(procs, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "CS", "a", "CS", "c"}, res.Timeline.Labels())
	assert.Equal(t, []int64{1, 2, 3}, completions(res))
}

func TestFCFS_IdleGap_NoSegmentAndSwitchStillCharged(t *testing.T) {
	// GIVEN a second process arriving after the first has finished
	procs := []Process{
		{ID: "A", Arrival: 0, Burst: 2},
		{ID: "B", Arrival: 5, Burst: 3},
	}

	// WHEN scheduled
	res, err := FCFS(procs, 1)
	require.NoError(t, err)

	// THEN the gap [2,5) is implicit and the switch happens at B's arrival
	want := Timeline{
		{Kind: SegmentExec, Label: "A", Slot: 0, Start: 0, End: 2},
		{Kind: SegmentContextSwitch, Label: ContextSwitchLabel, Slot: noSlot, Start: 5, End: 6},
		{Kind: SegmentExec, Label: "B", Slot: 1, Start: 6, End: 9},
	}
	if diff := cmp.Diff(want, res.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int64{0, 1}, WaitingTimes(res.Ledgers))
}

func TestFCFS_FirstProcessArrivesLate_NoLeadingSwitch(t *testing.T) {
	procs := []Process{{ID: "only", Arrival: 7, Burst: 2}}
	res, err := FCFS(procs, 3)
	require.NoError(t, err)
	assert.Equal(t, Timeline{{Kind: SegmentExec, Label: "only", Slot: 0, Start: 7, End: 9}}, res.Timeline)
	assert.Equal(t, int64(0), res.Ledgers[0].Waiting)
}

func TestFCFS_InvalidInput_FailsFast(t *testing.T) {
	tests := []struct {
		name  string
		procs []Process
		cs    int64
		want  error
	}{
		{"zero burst", []Process{{ID: "x", Arrival: 0, Burst: 0}}, 1, ErrInvalidBurst},
		{"negative burst", []Process{{ID: "x", Arrival: 0, Burst: -2}}, 1, ErrInvalidBurst},
		{"negative arrival", []Process{{ID: "x", Arrival: -1, Burst: 2}}, 1, ErrInvalidArrival},
		{"negative context switch", lectureProcesses(), -1, ErrInvalidContextSwitch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := FCFS(tt.procs, tt.cs)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}
