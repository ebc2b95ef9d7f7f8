package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/cpusched/sim"
)

func validGeneratorSpec() GeneratorSpec {
	return GeneratorSpec{Seed: 7, Count: 20, MeanInterarrival: 3, BurstMin: 1, BurstMax: 6}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(validGeneratorSpec())
	require.NoError(t, err)
	b, err := Generate(validGeneratorSpec())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_RespectsBoundsAndOrder(t *testing.T) {
	procs, err := Generate(validGeneratorSpec())
	require.NoError(t, err)
	require.Len(t, procs, 20)

	assert.Equal(t, int64(0), procs[0].Arrival)
	assert.Equal(t, "P1", procs[0].ID)
	for i, p := range procs {
		assert.NoError(t, p.Validate())
		assert.GreaterOrEqual(t, p.Burst, int64(1))
		assert.LessOrEqual(t, p.Burst, int64(6))
		if i > 0 {
			assert.GreaterOrEqual(t, p.Arrival, procs[i-1].Arrival)
		}
	}
}

func TestGenerate_ConstantArrivals(t *testing.T) {
	spec := validGeneratorSpec()
	spec.ArrivalProcess = "constant"
	spec.Count = 3
	spec.IDPrefix = "J"
	procs, err := Generate(spec)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 3, 6}, []int64{procs[0].Arrival, procs[1].Arrival, procs[2].Arrival})
	assert.Equal(t, "J3", procs[2].ID)
}

func TestGenerate_InvalidSpec(t *testing.T) {
	bad := []GeneratorSpec{
		{Count: -1, BurstMin: 1, BurstMax: 1},
		{Count: 1, BurstMin: 0, BurstMax: 1},
		{Count: 1, BurstMin: 3, BurstMax: 2},
		{Count: 1, BurstMin: 1, BurstMax: 1, ArrivalProcess: "weibull"},
		{Count: 1, BurstMin: 1, BurstMax: 1, MeanInterarrival: -1},
	}
	for _, spec := range bad {
		_, err := Generate(spec)
		assert.Error(t, err, "%+v", spec)
	}
}

func TestGenerateScenario_SimulatesCleanly(t *testing.T) {
	sc, err := GenerateScenario("synthetic", validGeneratorSpec(), sim.PolicyConfig{ContextSwitch: 1, Quantum: 3}, nil)
	require.NoError(t, err)
	require.NoError(t, sc.Validate())
	assert.Nil(t, sc.ThroughputAt)

	for _, name := range sc.PolicyNames() {
		res, err := sim.NewPolicy(name, sc.PolicyConfig()).Schedule(sc.Processes, nil)
		require.NoError(t, err)
		assert.Equal(t, len(sc.Processes), sim.Throughput(res.Ledgers, res.Timeline.End()))
	}
}
