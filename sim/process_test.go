package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcess_Validate(t *testing.T) {
	assert.NoError(t, Process{ID: "ok", Arrival: 0, Burst: 1}.Validate())
	assert.ErrorIs(t, Process{ID: "b", Arrival: 0, Burst: 0}.Validate(), ErrInvalidBurst)
	assert.ErrorIs(t, Process{ID: "a", Arrival: -1, Burst: 1}.Validate(), ErrInvalidArrival)
}

func TestLedger_Complete_DerivesTimes(t *testing.T) {
	l := newLedgers([]Process{{ID: "P2", Arrival: 1, Burst: 3}})[0]
	l.complete(9)

	assert.Equal(t, int64(8), l.Turnaround)
	assert.Equal(t, int64(5), l.Waiting)
	assert.Panics(t, func() { l.complete(10) })
}

func TestLedger_Start_KeepsFirstRun(t *testing.T) {
	l := newLedgers([]Process{{ID: "P", Arrival: 2, Burst: 3}})[0]
	l.start(4)
	l.start(8)
	assert.Equal(t, int64(4), l.FirstRun)
	assert.Equal(t, int64(2), l.Response)
}

func TestTimeline_Accessors(t *testing.T) {
	tl := Timeline{
		{Kind: SegmentExec, Label: "A", Slot: 0, Start: 0, End: 2},
		{Kind: SegmentContextSwitch, Label: ContextSwitchLabel, Slot: noSlot, Start: 4, End: 5},
		{Kind: SegmentExec, Label: "B", Slot: 1, Start: 5, End: 8},
	}
	assert.Equal(t, []string{"A", "CS", "B"}, tl.Labels())
	assert.Equal(t, int64(5), tl.ExecTime())
	assert.Equal(t, int64(1), tl.ContextSwitchTime())
	assert.Equal(t, 1, tl.ContextSwitches())
	assert.Equal(t, int64(8), tl.End())
	assert.Equal(t, "[A[0,2) CS[4,5) B[5,8)]", tl.String())
	assert.Equal(t, int64(0), Timeline{}.End())
}
