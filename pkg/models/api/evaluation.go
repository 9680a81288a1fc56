package api

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityNormal   Severity = "normal"
	SeverityElevated Severity = "elevated"
	SeverityHigh     Severity = "high"
)

// EvaluateRequest carries a proposed plan: the payment template, the
// specialty to benchmark against, and the template's numeric inputs keyed
// by field name. Omitted fields take the template defaults.
type EvaluateRequest struct {
	Template  string             `json:"template"`
	Specialty string             `json:"specialty"`
	Inputs    map[string]float64 `json:"inputs"`
}

// MetricResult is the outcome for one benchmark metric. Either Value (with
// its classification fields) or Error is set.
type MetricResult struct {
	Metric    string       `json:"metric"`
	Benchmark BenchmarkRow `json:"benchmark"`
	Value     *float64     `json:"value,omitempty"`
	Formatted string       `json:"formatted_value,omitempty"`
	Bucket    string       `json:"bucket,omitempty"`
	Severity  Severity     `json:"severity,omitempty"`
	Color     string       `json:"color,omitempty"`
	Summary   string       `json:"summary,omitempty"`
	Error     string       `json:"error,omitempty"`
}

type EvaluateResponse struct {
	Template  string         `json:"template"`
	Specialty string         `json:"specialty"`
	Metrics   []MetricResult `json:"metrics"`
}
