package comp

import (
	"math"
	"testing"

	"github.com/med-tools/comp-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func fullRow() domain.BenchmarkRow {
	return domain.BenchmarkRow{
		Specialty:     domain.SpecialtySurgeryTrauma,
		PracticeScope: "All",
		Metric:        domain.MetricTotalCompensation,
		P25:           floatPtr(405815),
		P50:           floatPtr(473355),
		P75:           floatPtr(550500),
		P90:           floatPtr(662930),
	}
}

func TestClassify_Ladder(t *testing.T) {
	tests := []struct {
		name             string
		value            float64
		expectedBucket   string
		expectedSeverity domain.Severity
	}{
		{
			name:             "below p25",
			value:            400000,
			expectedBucket:   "below 25th percentile",
			expectedSeverity: domain.SeverityLow,
		},
		{
			name:             "between p25 and p50",
			value:            466000,
			expectedBucket:   "between 25th and 50th percentile",
			expectedSeverity: domain.SeverityNormal,
		},
		{
			name:             "between p50 and p75",
			value:            500000,
			expectedBucket:   "between 50th and 75th percentile",
			expectedSeverity: domain.SeverityElevated,
		},
		{
			name:             "between p75 and p90",
			value:            600000,
			expectedBucket:   "between 75th and 90th percentile",
			expectedSeverity: domain.SeverityHigh,
		},
		{
			name:             "above p90",
			value:            700000,
			expectedBucket:   "above 90th percentile",
			expectedSeverity: domain.SeverityHigh,
		},
		{
			// Comparisons are strict, so a value exactly at p25 fails the
			// "< p25" test and lands one bucket up.
			name:             "exactly at p25 falls into the next bucket",
			value:            405815,
			expectedBucket:   "between 25th and 50th percentile",
			expectedSeverity: domain.SeverityNormal,
		},
		{
			name:             "exactly at p50 falls into the next bucket",
			value:            473355,
			expectedBucket:   "between 50th and 75th percentile",
			expectedSeverity: domain.SeverityElevated,
		},
		{
			name:             "exactly at p90 falls into the next bucket",
			value:            662930,
			expectedBucket:   "above 90th percentile",
			expectedSeverity: domain.SeverityHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classification, err := Classify(fullRow(), tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedBucket, classification.Bucket)
			assert.Equal(t, tt.expectedSeverity, classification.Severity)
		})
	}
}

func TestClassify_SkipsAbsentThresholds(t *testing.T) {
	// Rows like the RVU benchmarks report only p25/p50/p75.
	row := domain.BenchmarkRow{
		Metric: domain.MetricTotalRVUs,
		P25:    floatPtr(6270),
		P50:    floatPtr(11107),
		P75:    floatPtr(14285),
	}

	classification, err := Classify(row, 5000)
	require.NoError(t, err)
	assert.Equal(t, "below 25th percentile", classification.Bucket)

	// No p90 to test against, so anything at or above p75 falls through to
	// the final bucket.
	classification, err = Classify(row, 15000)
	require.NoError(t, err)
	assert.Equal(t, "above 90th percentile", classification.Bucket)
	assert.Equal(t, domain.SeverityHigh, classification.Severity)
}

func TestClassify_AllThresholdsAbsent(t *testing.T) {
	row := domain.BenchmarkRow{Metric: domain.MetricTotalCompensation}

	classification, err := Classify(row, 123)
	require.NoError(t, err)
	assert.Equal(t, "above 90th percentile", classification.Bucket)
	assert.Equal(t, domain.SeverityHigh, classification.Severity)
}

func TestClassify_Idempotent(t *testing.T) {
	first, err := Classify(fullRow(), 466000)
	require.NoError(t, err)

	second, err := Classify(fullRow(), 466000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestClassify_NonFiniteValue(t *testing.T) {
	for name, value := range map[string]float64{
		"NaN":          math.NaN(),
		"positive inf": math.Inf(1),
		"negative inf": math.Inf(-1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Classify(fullRow(), value)
			assert.ErrorIs(t, err, ErrNonFiniteValue)
		})
	}
}
