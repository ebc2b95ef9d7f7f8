// sim/metrics_utils.go
package sim

import (
	"gonum.org/v1/gonum/stat"
)

type IntOrFloat64 interface {
	int | int64 | float64
}

func toFloat64s[T IntOrFloat64](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean[T IntOrFloat64](values []T) float64 {
	if len(values) == 0 {
		return 0.0
	}
	return stat.Mean(toFloat64s(values), nil)
}

// StdPopulation returns the population standard deviation (divides by N,
// not N-1), or 0 for an empty slice.
func StdPopulation[T IntOrFloat64](values []T) float64 {
	if len(values) == 0 {
		return 0.0
	}
	return stat.PopStdDev(toFloat64s(values), nil)
}

// Throughput counts ledgers that finished at or before t.
// Ledgers that never finished never count.
func Throughput(ledgers []Ledger, t int64) int {
	n := 0
	for _, l := range ledgers {
		if l.Finished && l.Completion <= t {
			n++
		}
	}
	return n
}

// WaitingTimes returns the waiting time of every finished ledger in ledger order.
func WaitingTimes(ledgers []Ledger) []int64 {
	return collect(ledgers, func(l Ledger) int64 { return l.Waiting })
}

// TurnaroundTimes returns the turnaround time of every finished ledger in ledger order.
func TurnaroundTimes(ledgers []Ledger) []int64 {
	return collect(ledgers, func(l Ledger) int64 { return l.Turnaround })
}

// ResponseTimes returns the response time of every finished ledger in ledger order.
func ResponseTimes(ledgers []Ledger) []int64 {
	return collect(ledgers, func(l Ledger) int64 { return l.Response })
}

func collect(ledgers []Ledger, field func(Ledger) int64) []int64 {
	out := make([]int64, 0, len(ledgers))
	for _, l := range ledgers {
		if l.Finished {
			out = append(out, field(l))
		}
	}
	return out
}
