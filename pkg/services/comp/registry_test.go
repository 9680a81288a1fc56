package comp

import (
	"testing"

	"github.com/med-tools/comp-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	descriptors := r.List()
	require.Len(t, descriptors, 2)
	assert.Equal(t, domain.TemplateHourly, descriptors[0].Template)
	assert.Equal(t, domain.TemplateByRVUs, descriptors[1].Template)

	_, ok := r.Get(domain.TemplateHourly)
	assert.True(t, ok)
	_, ok = r.Get("Salaried")
	assert.False(t, ok)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	err := r.Register(Descriptor{Template: "", Build: func(map[string]float64) (domain.Plan, error) { return nil, nil }})
	assert.Error(t, err)

	err = r.Register(Descriptor{Template: domain.TemplateHourly})
	assert.Error(t, err)

	descriptor := Descriptor{
		Template: domain.TemplateHourly,
		Build:    func(map[string]float64) (domain.Plan, error) { return domain.HourlyPlan{}, nil },
	}
	require.NoError(t, r.Register(descriptor))
	assert.Error(t, r.Register(descriptor), "duplicate registration")
}

func TestDescriptor_BuildPlan(t *testing.T) {
	r := DefaultRegistry()
	hourly, ok := r.Get(domain.TemplateHourly)
	require.True(t, ok)
	rvu, ok := r.Get(domain.TemplateByRVUs)
	require.True(t, ok)

	t.Run("empty inputs fall back to the form defaults", func(t *testing.T) {
		plan, err := hourly.BuildPlan(nil)
		require.NoError(t, err)
		assert.Equal(t, domain.HourlyPlan{
			OnsiteRate:  200,
			CallRate:    50,
			OtherComp:   0,
			OnsiteHours: 2080,
			CallHours:   500,
		}, plan)
	})

	t.Run("provided inputs override defaults", func(t *testing.T) {
		plan, err := rvu.BuildPlan(map[string]float64{"total_rvus": 5000, "other_compensation": 10000})
		require.NoError(t, err)
		assert.Equal(t, domain.RVUPlan{
			BaseComp:           300000,
			RVUThreshold:       5000,
			RateAboveThreshold: 50,
			OtherComp:          10000,
			TotalRVUs:          5000,
		}, plan)
	})

	t.Run("unknown input name", func(t *testing.T) {
		_, err := hourly.BuildPlan(map[string]float64{"total_rvus": 5000})
		assert.ErrorContains(t, err, "unknown input")
	})

	t.Run("negative value", func(t *testing.T) {
		_, err := hourly.BuildPlan(map[string]float64{"onsite_rate": -1})
		assert.ErrorContains(t, err, "at least")
	})

	t.Run("hours above slider cap", func(t *testing.T) {
		_, err := hourly.BuildPlan(map[string]float64{"onsite_hours": 4001})
		assert.ErrorContains(t, err, "at most")
	})

	t.Run("RVUs above slider cap", func(t *testing.T) {
		_, err := rvu.BuildPlan(map[string]float64{"total_rvus": 20001})
		assert.ErrorContains(t, err, "at most")
	})

	t.Run("values exactly at the caps are allowed", func(t *testing.T) {
		_, err := hourly.BuildPlan(map[string]float64{"onsite_hours": 4000, "call_hours": 4000})
		assert.NoError(t, err)

		_, err = rvu.BuildPlan(map[string]float64{"total_rvus": 20000})
		assert.NoError(t, err)
	})
}
