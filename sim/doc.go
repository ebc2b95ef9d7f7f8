// Package sim provides the discrete-event CPU scheduling engine.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go: Process records (immutable input) and run ledgers (per-run state)
//   - simulator.go: The simulated CPU: clock, context-switch accounting, timeline emission
//   - fcfs.go, sjf.go, round_robin.go: The three dispatch policies
//
// # Architecture
//
// Every policy shares the same Simulator. A policy only decides which slot runs
// next and for how long; the Simulator owns the clock, charges context switches
// between distinct slots, emits timeline segments and records completions.
// Slots are input positions, so two processes with the same ID are never confused.
//
// Sub-packages:
//   - sim/trace/: Optional dispatch/admission decision trace
//   - sim/workload/: Scenario loading (YAML, CSV) and synthetic generation
//
// # Key Interfaces
//
//   - Policy: schedules a process set and returns ledgers plus a timeline
//
// Runs share no state. Process slices are read-only and may be reused across
// runs and goroutines; RunBatch simulates independent jobs concurrently.
package sim
