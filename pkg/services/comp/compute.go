package comp

import (
	"fmt"

	"github.com/med-tools/comp-atlas/pkg/models/domain"
)

// ComputeMetric evaluates one metric for the given plan. It returns
// ErrNotApplicable for metric kinds the plan's template cannot produce and
// ErrDivisionByZero when a per-hour/per-RVU metric has a zero denominator.
func ComputeMetric(plan domain.Plan, metric domain.Metric) (float64, error) {
	switch p := plan.(type) {
	case domain.HourlyPlan:
		return computeHourly(p, metric)
	case domain.RVUPlan:
		return computeRVU(p, metric)
	default:
		return 0, fmt.Errorf("unknown payment template %q", plan.Template())
	}
}

func computeHourly(p domain.HourlyPlan, metric domain.Metric) (float64, error) {
	switch metric {
	case domain.MetricTotalCompensation:
		return hourlyCompensation(p), nil
	case domain.MetricTotalHours:
		return p.OnsiteHours + p.CallHours, nil
	case domain.MetricCompensationPerHour:
		hours := p.OnsiteHours + p.CallHours
		if hours == 0 {
			return 0, fmt.Errorf("%w: total hours is zero", ErrDivisionByZero)
		}
		return hourlyCompensation(p) / hours, nil
	default:
		return 0, ErrNotApplicable
	}
}

func hourlyCompensation(p domain.HourlyPlan) float64 {
	return p.OnsiteRate*p.OnsiteHours + p.CallRate*p.CallHours + p.OtherComp
}

func computeRVU(p domain.RVUPlan, metric domain.Metric) (float64, error) {
	switch metric {
	case domain.MetricTotalCompensation:
		return rvuCompensation(p), nil
	case domain.MetricTotalRVUs:
		return p.TotalRVUs, nil
	case domain.MetricCompensationPerRVU:
		if p.TotalRVUs == 0 {
			return 0, fmt.Errorf("%w: total RVUs is zero", ErrDivisionByZero)
		}
		return rvuCompensation(p) / p.TotalRVUs, nil
	default:
		return 0, ErrNotApplicable
	}
}

// rvuCompensation applies the piecewise threshold model: production at or
// below the threshold earns base compensation only, production above it
// earns the per-RVU rate on the excess.
func rvuCompensation(p domain.RVUPlan) float64 {
	comp := p.BaseComp
	if p.TotalRVUs > p.RVUThreshold {
		comp += (p.TotalRVUs - p.RVUThreshold) * p.RateAboveThreshold
	}
	return comp + p.OtherComp
}
