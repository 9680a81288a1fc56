package comp

import (
	"fmt"
	"math"

	"github.com/med-tools/comp-atlas/pkg/models/domain"
)

// Classify places a metric value against a benchmark row's percentile
// thresholds. The ladder skips thresholds the row does not report;
// comparisons are strict, so a value exactly at a threshold lands in the
// next bucket up. A row with no thresholds at all classifies everything as
// above the 90th percentile.
func Classify(row domain.BenchmarkRow, value float64) (domain.Classification, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return domain.Classification{}, fmt.Errorf("%w: %v", ErrNonFiniteValue, value)
	}

	switch {
	case row.P25 != nil && value < *row.P25:
		return domain.Classification{Bucket: "below 25th percentile", Severity: domain.SeverityLow}, nil
	case row.P50 != nil && value < *row.P50:
		return domain.Classification{Bucket: "between 25th and 50th percentile", Severity: domain.SeverityNormal}, nil
	case row.P75 != nil && value < *row.P75:
		return domain.Classification{Bucket: "between 50th and 75th percentile", Severity: domain.SeverityElevated}, nil
	case row.P90 != nil && value < *row.P90:
		return domain.Classification{Bucket: "between 75th and 90th percentile", Severity: domain.SeverityHigh}, nil
	default:
		return domain.Classification{Bucket: "above 90th percentile", Severity: domain.SeverityHigh}, nil
	}
}
