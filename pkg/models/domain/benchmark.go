package domain

// Specialty identifies a medical specialty covered by the benchmark table.
type Specialty string

const (
	SpecialtySurgeryTrauma Specialty = "Surgery: Trauma"
)

// AllSpecialties lists the known specialties in canonical order.
var AllSpecialties = []Specialty{
	SpecialtySurgeryTrauma,
}

// SpecialtyByName returns the Specialty for the given name, or ok=false.
func SpecialtyByName(name string) (Specialty, bool) {
	for _, s := range AllSpecialties {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

// Metric is a kind of measurable compensation quantity.
type Metric string

const (
	MetricTotalCompensation   Metric = "Total Compensation"
	MetricTotalHours          Metric = "Total Hours"
	MetricTotalRVUs           Metric = "Total RVUs"
	MetricCompensationPerHour Metric = "Compensation per Hour"
	MetricCompensationPerRVU  Metric = "Compensation per RVU"
)

// AllMetrics lists the metric kinds in canonical display order.
var AllMetrics = []Metric{
	MetricTotalCompensation,
	MetricTotalHours,
	MetricTotalRVUs,
	MetricCompensationPerHour,
	MetricCompensationPerRVU,
}

// MetricByName returns the Metric for the given name, or ok=false.
func MetricByName(name string) (Metric, bool) {
	for _, m := range AllMetrics {
		if string(m) == name {
			return m, true
		}
	}
	return "", false
}

// BenchmarkRow is one immutable reference statistic record. Pointer fields
// are nil when the source table does not report them; present percentiles
// are non-decreasing (p25 <= p50 <= p75 <= p90).
type BenchmarkRow struct {
	Specialty     Specialty
	PracticeScope string // e.g. "All"
	Metric        Metric
	Groups        *int
	Providers     *int
	Mean          *float64
	StdDev        *float64
	P25           *float64
	P50           *float64
	P75           *float64
	P90           *float64
}
