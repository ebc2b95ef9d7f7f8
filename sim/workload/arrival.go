package workload

import (
	"math/rand"
)

// ArrivalSampler generates inter-arrival times between processes.
type ArrivalSampler interface {
	// SampleIAT returns the next inter-arrival time. Never negative; zero
	// produces simultaneous arrivals.
	SampleIAT(rng *rand.Rand) int64
}

// PoissonSampler generates exponentially-distributed inter-arrival times.
type PoissonSampler struct {
	mean float64
}

func (s *PoissonSampler) SampleIAT(rng *rand.Rand) int64 {
	return int64(rng.ExpFloat64() * s.mean)
}

// ConstantSampler spaces arrivals evenly.
type ConstantSampler struct {
	iat int64
}

func (s *ConstantSampler) SampleIAT(_ *rand.Rand) int64 {
	return s.iat
}

// NewArrivalSampler creates an ArrivalSampler by process name.
// Valid names: "poisson" (default), "constant".
func NewArrivalSampler(process string, meanIAT float64) ArrivalSampler {
	switch process {
	case "constant":
		return &ConstantSampler{iat: int64(meanIAT)}
	default:
		return &PoissonSampler{mean: meanIAT}
	}
}
