package adapters

import (
	"errors"
	"testing"

	"github.com/med-tools/comp-atlas/pkg/models/api"
	"github.com/med-tools/comp-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMetricValue(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{466000, "466,000.00"},
		{180.6201, "180.62"},
		{57.142857, "57.14"},
		{0, "0.00"},
		{1234567.891, "1,234,567.89"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatMetricValue(tt.value))
	}
}

func TestSummarySentence(t *testing.T) {
	sentence := SummarySentence(
		domain.SpecialtySurgeryTrauma,
		domain.MetricTotalCompensation,
		466000,
		"between 25th and 50th percentile",
	)
	assert.Equal(t,
		"The proposed Total Compensation, 466,000.00, is in the between 25th and 50th percentile for Surgery: Trauma.",
		sentence)
}

func TestMapEvaluationDomainToApi(t *testing.T) {
	p25 := 405815.0
	row := domain.BenchmarkRow{
		Specialty:     domain.SpecialtySurgeryTrauma,
		PracticeScope: "All",
		Metric:        domain.MetricTotalCompensation,
		P25:           &p25,
	}

	eval := domain.Evaluation{
		Specialty: domain.SpecialtySurgeryTrauma,
		Template:  domain.TemplateHourly,
		Metrics: []domain.MetricEvaluation{
			{
				Row:   row,
				Value: 466000,
				Classification: domain.Classification{
					Bucket:   "between 25th and 50th percentile",
					Severity: domain.SeverityNormal,
				},
			},
			{
				Row: domain.BenchmarkRow{
					Specialty: domain.SpecialtySurgeryTrauma,
					Metric:    domain.MetricCompensationPerHour,
				},
				Err: errors.New("division by zero: total hours is zero"),
			},
		},
	}

	response := MapEvaluationDomainToApi(eval)

	assert.Equal(t, "Hourly", response.Template)
	assert.Equal(t, "Surgery: Trauma", response.Specialty)
	require.Len(t, response.Metrics, 2)

	ok := response.Metrics[0]
	require.NotNil(t, ok.Value)
	assert.Equal(t, 466000.0, *ok.Value)
	assert.Equal(t, "466,000.00", ok.Formatted)
	assert.Equal(t, api.SeverityNormal, ok.Severity)
	assert.Equal(t, "green", ok.Color)
	assert.NotEmpty(t, ok.Summary)
	assert.Empty(t, ok.Error)

	failed := response.Metrics[1]
	assert.Nil(t, failed.Value)
	assert.Empty(t, failed.Bucket)
	assert.Equal(t, "division by zero: total hours is zero", failed.Error)
}

func TestSeverityColors(t *testing.T) {
	// Stoplight colors of the original presentation.
	assert.Equal(t, "orange", severityColors[domain.SeverityLow])
	assert.Equal(t, "green", severityColors[domain.SeverityNormal])
	assert.Equal(t, "yellow", severityColors[domain.SeverityElevated])
	assert.Equal(t, "red", severityColors[domain.SeverityHigh])
}
