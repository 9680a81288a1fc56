package adapters

import (
	"fmt"

	"github.com/med-tools/comp-atlas/pkg/models/api"
	"github.com/med-tools/comp-atlas/pkg/models/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// severityColors carries the stoplight colors the presentation layer uses
// to emphasize each bucket.
var severityColors = map[domain.Severity]string{
	domain.SeverityLow:      "orange",
	domain.SeverityNormal:   "green",
	domain.SeverityElevated: "yellow",
	domain.SeverityHigh:     "red",
}

// FormatMetricValue renders a metric value with two fraction digits and
// thousands separators, e.g. 466,000.00.
func FormatMetricValue(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// SummarySentence renders the classification line shown to the user.
func SummarySentence(specialty domain.Specialty, metric domain.Metric, value float64, bucket string) string {
	return fmt.Sprintf("The proposed %s, %s, is in the %s for %s.",
		metric, FormatMetricValue(value), bucket, specialty)
}

func MapEvaluationDomainToApi(eval domain.Evaluation) api.EvaluateResponse {
	response := api.EvaluateResponse{
		Template:  string(eval.Template),
		Specialty: string(eval.Specialty),
		Metrics:   []api.MetricResult{},
	}

	for _, m := range eval.Metrics {
		result := api.MetricResult{
			Metric:    string(m.Row.Metric),
			Benchmark: MapBenchmarkRowDomainToApi(m.Row),
		}

		if m.Err != nil {
			result.Error = m.Err.Error()
			response.Metrics = append(response.Metrics, result)
			continue
		}

		value := m.Value
		result.Value = &value
		result.Formatted = FormatMetricValue(m.Value)
		result.Bucket = m.Classification.Bucket
		result.Severity = api.Severity(m.Classification.Severity)
		result.Color = severityColors[m.Classification.Severity]
		result.Summary = SummarySentence(eval.Specialty, m.Row.Metric, m.Value, m.Classification.Bucket)
		response.Metrics = append(response.Metrics, result)
	}

	return response
}
