package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/cpusched/sim"
	"github.com/inference-sim/cpusched/sim/trace"
	"github.com/inference-sim/cpusched/sim/workload"
)

func lectureReport(t *testing.T, policies []string, level trace.TraceLevel) *workload.Report {
	t.Helper()
	sc, err := workload.BuiltinScenario("lecture")
	require.NoError(t, err)
	sc.Policies = policies
	report, err := sc.Simulate(context.Background(), level)
	require.NoError(t, err)
	return report
}

func TestWriteReport_Table_ShowsGanttAndSchedule(t *testing.T) {
	// GIVEN FCFS over the lecture scenario
	report := lectureReport(t, []string{sim.PolicyFCFS}, trace.TraceLevelDecisions)

	// WHEN rendered as a table
	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, outputTable, report))
	out := buf.String()

	// THEN the Gantt labels, the schedule and the footer metrics are present
	assert.Contains(t, out, "lecture: FCFS")
	assert.Contains(t, out, "Labels: P1 CS P2 CS P3")
	assert.Contains(t, out, "Schedule table")
	assert.Contains(t, strings.ToUpper(out), "TURNAROUND")
	assert.Contains(t, strings.ToUpper(out), "THROUGHPUT(20)")
	assert.Contains(t, out, "Makespan 17, busy 15, idle 0, 2 context switches (2)")
	assert.Contains(t, out, "Trace: 3 dispatches")
}

func TestWriteReport_JSON_DecodesBack(t *testing.T) {
	report := lectureReport(t, nil, trace.TraceLevelNone)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, outputJSON, report))

	var got workload.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Runs, 3)
	assert.Equal(t, []string{"fcfs", "sjf", "rr"},
		[]string{got.Runs[0].Summary.Policy, got.Runs[1].Summary.Policy, got.Runs[2].Summary.Policy})
	assert.Nil(t, got.Runs[0].Trace)
	assert.Equal(t, report.Runs[2].Result.Timeline.Labels(), got.Runs[2].Result.Timeline.Labels())
}

func TestWriteReport_YAML(t *testing.T) {
	report := lectureReport(t, []string{sim.PolicySJF}, trace.TraceLevelNone)

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, outputYAML, report))
	assert.Contains(t, buf.String(), "scenario: lecture")
	assert.Contains(t, buf.String(), "policy: sjf")
}

func TestWriteReport_UnknownFormat(t *testing.T) {
	assert.Error(t, writeReport(&bytes.Buffer{}, "xml", &workload.Report{}))
	assert.False(t, isValidOutputFormat("xml"))
}

func TestOutputGantt_EmptyTimeline(t *testing.T) {
	var buf bytes.Buffer
	outputGantt(&buf, nil)
	assert.Contains(t, buf.String(), "(empty)")
}
