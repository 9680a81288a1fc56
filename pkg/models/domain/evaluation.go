package domain

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityNormal   Severity = "normal"
	SeverityElevated Severity = "elevated"
	SeverityHigh     Severity = "high"
)

// Classification places a computed metric value relative to a benchmark
// row's percentile thresholds.
type Classification struct {
	Bucket   string
	Severity Severity
}

// MetricEvaluation is the outcome for a single benchmark metric. Either
// Value and Classification are set, or Err records why the metric could not
// be evaluated (e.g. a zero denominator).
type MetricEvaluation struct {
	Row            BenchmarkRow
	Value          float64
	Classification Classification
	Err            error
}

// Evaluation is the result of checking one plan against every benchmark
// metric the plan can produce for a specialty.
type Evaluation struct {
	Specialty Specialty
	Template  PaymentTemplate
	Metrics   []MetricEvaluation
}
