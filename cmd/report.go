package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/inference-sim/cpusched/sim"
	"github.com/inference-sim/cpusched/sim/trace"
	"github.com/inference-sim/cpusched/sim/workload"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
)

func isValidOutputFormat(format string) bool {
	switch format {
	case outputTable, outputJSON, outputYAML:
		return true
	}
	return false
}

// writeReport renders report to w in the given format.
func writeReport(w io.Writer, format string, report *workload.Report) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case outputTable:
		for _, run := range report.Runs {
			outputTitle(w, fmt.Sprintf("%s: %s", report.Scenario, strings.ToUpper(run.Result.Policy)))
			outputGantt(w, run.Result.Timeline)
			outputSchedule(w, run.Result.Ledgers, run.Summary)
			outputTrace(w, run.Trace)
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
	_, _ = fmt.Fprintln(w, " ", title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
}

// outputGantt prints one cell per segment with its start instant beneath.
// Zero-length context switches still get a cell.
func outputGantt(w io.Writer, timeline sim.Timeline) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	if len(timeline) == 0 {
		_, _ = fmt.Fprint(w, "(empty)\n\n")
		return
	}
	var labels, instants strings.Builder
	labels.WriteString("|")
	for _, seg := range timeline {
		cell := fmt.Sprintf(" %-6s|", seg.Label)
		labels.WriteString(cell)
		instants.WriteString(fmt.Sprintf("%-*d", len(cell), seg.Start))
	}
	instants.WriteString(strconv.FormatInt(timeline.End(), 10))
	_, _ = fmt.Fprintln(w, labels.String())
	_, _ = fmt.Fprintln(w, instants.String())
	_, _ = fmt.Fprintln(w, "Labels:", strings.Join(timeline.Labels(), " "))
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, ledgers []sim.Ledger, s sim.Summary) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(ledgers))
	for _, l := range ledgers {
		rows = append(rows, []string{
			l.Process.ID,
			strconv.FormatInt(l.Process.Arrival, 10),
			strconv.FormatInt(l.Process.Burst, 10),
			strconv.FormatInt(l.FirstRun, 10),
			strconv.FormatInt(l.Completion, 10),
			strconv.FormatInt(l.Waiting, 10),
			strconv.FormatInt(l.Turnaround, 10),
			strconv.FormatInt(l.Response, 10),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Start", "Exit", "Wait", "Turnaround", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Throughput(%d)\n%d", s.ThroughputAt, s.Throughput),
		fmt.Sprintf("Average\n%.2f\nStd\n%.2f", s.MeanWaiting, s.StdWaiting),
		fmt.Sprintf("Average\n%.2f\nStd\n%.2f", s.MeanTurnaround, s.StdTurnaround),
		fmt.Sprintf("Average\n%.2f\nStd\n%.2f", s.MeanResponse, s.StdResponse)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Makespan %d, busy %d, idle %d, %d context switches (%d), utilization %.1f%%\n\n",
		s.Makespan, s.BusyTime, s.IdleTime, s.ContextSwitches, s.ContextSwitchTime, 100*s.Utilization)
}

func outputTrace(w io.Writer, ts *trace.TraceSummary) {
	if ts == nil {
		return
	}
	_, _ = fmt.Fprintf(w, "Trace: %d dispatches, %d admissions (%d after a slice), %d idle jumps (%d), max ready %d\n\n",
		ts.TotalDispatches, ts.TotalAdmissions, ts.PostSliceAdmissions, ts.IdleJumps, ts.IdleTime, ts.MaxReadyCount)
}
