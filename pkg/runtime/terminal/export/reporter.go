package export

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/med-tools/comp-atlas/pkg/adapters"
	"github.com/med-tools/comp-atlas/pkg/models/domain"
)

type TableConfig struct {
	NameWidth  int
	ValueWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:  22,
		ValueWidth: 20,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type statRow struct {
	Name  string
	Value string
}

// statRows flattens the statistics a benchmark row reports; absent fields
// produce no row.
func statRows(row domain.BenchmarkRow) []statRow {
	var rows []statRow
	if row.PracticeScope != "" {
		rows = append(rows, statRow{"Practice Scope", row.PracticeScope})
	}
	if row.Groups != nil {
		rows = append(rows, statRow{"Groups", strconv.Itoa(*row.Groups)})
	}
	if row.Providers != nil {
		rows = append(rows, statRow{"Providers", strconv.Itoa(*row.Providers)})
	}

	floats := []struct {
		name  string
		value *float64
	}{
		{"Mean", row.Mean},
		{"Std Dev", row.StdDev},
		{"25th Percentile", row.P25},
		{"50th Percentile", row.P50},
		{"75th Percentile", row.P75},
		{"90th Percentile", row.P90},
	}
	for _, f := range floats {
		if f.value != nil {
			rows = append(rows, statRow{f.name, adapters.FormatMetricValue(*f.value)})
		}
	}
	return rows
}

// HandleEvaluation renders one evaluated plan: for every applicable metric,
// the benchmark statistics table followed by the classification line (or
// the evaluation error).
func (c *Reporter) HandleEvaluation(eval domain.Evaluation) error {
	funcMap := template.FuncMap{
		"statRows": statRows,
		"summary": func(m domain.MetricEvaluation) string {
			return adapters.SummarySentence(eval.Specialty, m.Row.Metric, m.Value, m.Classification.Bucket)
		},
		"formatRow": func(name, value string) string {
			return fmt.Sprintf("| %-*s | %-*s |",
				c.config.NameWidth, name,
				c.config.ValueWidth, value)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.NameWidth+2),
				strings.Repeat("-", c.config.ValueWidth+2))
		},
	}

	tmpl := `
Compensation Evaluation: {{.Specialty}} ({{.Template}} template)
{{range .Metrics}}
=== {{.Row.Metric}} ===
{{separator}}
{{formatRow "Statistic" "Value"}}
{{separator}}
{{range statRows .Row}}{{formatRow .Name .Value}}
{{end}}{{separator}}
{{if .Err}}Could not evaluate: {{.Err}}
{{else}}{{summary .}} [{{.Classification.Severity}}]
{{end}}{{end}}
`

	t, err := template.New("evaluation").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, eval)
}

// SpecialtyListing pairs a specialty with the metrics it has benchmark
// rows for.
type SpecialtyListing struct {
	Specialty domain.Specialty
	Metrics   []domain.Metric
}

func (c *Reporter) HandleSpecialties(listings []SpecialtyListing) error {
	tmpl := `
Specialties with benchmark data:
{{range .}}
{{.Specialty}}
{{- range .Metrics}}
  - {{.}}
{{- end}}
{{end}}
`

	t, err := template.New("specialties").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, listings)
}
