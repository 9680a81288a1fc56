package comp

import (
	"context"
	"errors"
	"fmt"

	"github.com/med-tools/comp-atlas/pkg/models/domain"
	"github.com/med-tools/comp-atlas/pkg/store/benchmark"
)

// Evaluator checks proposed plans against the benchmark reference table.
type Evaluator struct {
	benchmarks benchmark.Store
}

func NewEvaluator(benchmarks benchmark.Store) *Evaluator {
	return &Evaluator{benchmarks: benchmarks}
}

// Evaluate computes and classifies every metric the specialty has benchmark
// data for. Metrics the plan's template cannot produce are omitted from the
// result; a metric whose computation fails (zero denominator) keeps an
// error entry so callers can report it instead of a value.
func (e *Evaluator) Evaluate(
	ctx context.Context,
	specialty domain.Specialty,
	plan domain.Plan,
) (domain.Evaluation, error) {
	rows := e.benchmarks.GetRows(ctx, specialty)
	if len(rows) == 0 {
		return domain.Evaluation{}, fmt.Errorf("no benchmark data for specialty %q", specialty)
	}

	eval := domain.Evaluation{
		Specialty: specialty,
		Template:  plan.Template(),
	}

	for _, row := range rows {
		value, err := ComputeMetric(plan, row.Metric)
		if errors.Is(err, ErrNotApplicable) {
			continue
		}
		if err != nil {
			eval.Metrics = append(eval.Metrics, domain.MetricEvaluation{Row: row, Err: err})
			continue
		}

		classification, err := Classify(row, value)
		if err != nil {
			eval.Metrics = append(eval.Metrics, domain.MetricEvaluation{Row: row, Err: err})
			continue
		}

		eval.Metrics = append(eval.Metrics, domain.MetricEvaluation{
			Row:            row,
			Value:          value,
			Classification: classification,
		})
	}

	return eval, nil
}
