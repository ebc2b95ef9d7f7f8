package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/cpusched/sim"
	"github.com/inference-sim/cpusched/sim/trace"
	"github.com/inference-sim/cpusched/sim/workload"
)

const policyAll = "all"

var (
	// CLI flags for the process source
	workloadPath string // YAML scenario file
	processesCSV string // CSV file of id,arrival,burst rows
	scenarioName string // built-in scenario name

	// CLI flags for the scheduler
	policyName    string // fcfs, sjf, rr or all
	quantum       int64  // Round-Robin time quantum
	contextSwitch int64  // Cost charged when the CPU switches process
	throughputAt  int64  // Instant T for throughput(T); unset uses each run's makespan

	// CLI flags for output
	outputFormat string // table, json or yaml
	traceLevel   string // Decision trace verbosity
	logLevel     string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "cpusched",
	Short: "Discrete-event simulator for single-CPU scheduling policies",
}

// runCmd simulates a process set under one or all policies and prints the schedule
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduling simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel(logLevel)

		if policyName != policyAll && !sim.IsValidPolicy(policyName) {
			logrus.Fatalf("Unknown policy %q; valid: %v, %s", policyName, sim.ValidPolicyNames(), policyAll)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q; valid: none, decisions", traceLevel)
		}
		if !isValidOutputFormat(outputFormat) {
			logrus.Fatalf("Unknown output format %q; valid: table, json, yaml", outputFormat)
		}

		sc, err := resolveScenario(cmd)
		if err != nil {
			logrus.Fatalf("unable to load processes; %v", err)
		}
		if err := sc.Validate(); err != nil {
			logrus.Fatalf("invalid scenario %q; %v", sc.Name, err)
		}

		logrus.Infof("Simulating %q: %d processes, policies=%v, quantum=%d, context switch=%d",
			sc.Name, len(sc.Processes), sc.PolicyNames(), sc.Quantum, sc.ContextSwitch)

		report, err := sc.Simulate(context.Background(), trace.TraceLevel(traceLevel))
		if err != nil {
			logrus.Fatalf("simulation failed; %v", err)
		}
		if err := writeReport(os.Stdout, outputFormat, report); err != nil {
			logrus.Fatalf("unable to write report; %v", err)
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setLogLevel(name string) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", name)
	}
	logrus.SetLevel(level)
}

// resolveScenario picks the process source. At most one of --workload,
// --processes and --scenario may be set; none selects the default scenario.
// Scheduler flags the user set explicitly override the scenario's values.
func resolveScenario(cmd *cobra.Command) (*workload.Scenario, error) {
	sources := 0
	for _, s := range []string{workloadPath, processesCSV, scenarioName} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return nil, fmt.Errorf("--workload, --processes and --scenario are mutually exclusive")
	}

	var sc *workload.Scenario
	switch {
	case workloadPath != "":
		loaded, err := workload.LoadScenario(workloadPath)
		if err != nil {
			return nil, err
		}
		sc = loaded
	case processesCSV != "":
		f, err := os.Open(processesCSV)
		if err != nil {
			return nil, fmt.Errorf("reading processes: %w", err)
		}
		defer f.Close()
		procs, err := workload.ReadProcessesCSV(f)
		if err != nil {
			return nil, err
		}
		sc = &workload.Scenario{
			Name:          processesCSV,
			ContextSwitch: contextSwitch,
			Quantum:       quantum,
			Processes:     procs,
		}
	case scenarioName != "":
		builtin, err := workload.BuiltinScenario(scenarioName)
		if err != nil {
			return nil, err
		}
		sc = builtin
	default:
		sc = workload.DefaultScenario()
	}

	flags := cmd.Flags()
	if flags.Changed("quantum") {
		sc.Quantum = quantum
	}
	if flags.Changed("context-switch") {
		sc.ContextSwitch = contextSwitch
	}
	if flags.Changed("throughput-at") {
		t := throughputAt
		sc.ThroughputAt = &t
	}
	if flags.Changed("policy") || len(sc.Policies) == 0 {
		if policyName == policyAll {
			sc.Policies = nil
		} else {
			sc.Policies = []string{policyName}
		}
	}
	return sc, nil
}

// registerRunFlags binds the run flags to cmd, resetting them to their defaults
func registerRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&workloadPath, "workload", "", "Path to a YAML scenario file")
	cmd.Flags().StringVar(&processesCSV, "processes", "", "Path to a CSV file of id,arrival,burst rows")
	cmd.Flags().StringVar(&scenarioName, "scenario", "", fmt.Sprintf("Built-in scenario %v", workload.BuiltinScenarioNames()))

	// Scheduler configs
	cmd.Flags().StringVar(&policyName, "policy", policyAll, "Scheduling policy (fcfs, sjf, rr, all)")
	cmd.Flags().Int64Var(&quantum, "quantum", 8, "Round-Robin time quantum")
	cmd.Flags().Int64Var(&contextSwitch, "context-switch", 1, "Context switch cost in time units")
	cmd.Flags().Int64Var(&throughputAt, "throughput-at", 0, "Instant T for throughput(T); unset uses each run's makespan")

	// Output configs
	cmd.Flags().StringVar(&outputFormat, "output", outputTable, "Output format (table, json, yaml)")
	cmd.Flags().StringVar(&traceLevel, "trace-level", string(trace.TraceLevelNone), "Decision trace level (none, decisions)")
}

// init sets up CLI flags and subcommands
func init() {
	registerRunFlags(runCmd)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.AddCommand(runCmd)
}
