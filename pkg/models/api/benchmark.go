package api

type Specialty struct {
	Name string `json:"name"`
}

// BenchmarkRow is the API shape of a reference statistic record. Absent
// statistics are omitted from the JSON output.
type BenchmarkRow struct {
	Specialty     string   `json:"specialty"`
	PracticeScope string   `json:"practice_scope"`
	Metric        string   `json:"metric"`
	Groups        *int     `json:"groups,omitempty"`
	Providers     *int     `json:"providers,omitempty"`
	Mean          *float64 `json:"mean,omitempty"`
	StdDev        *float64 `json:"std_dev,omitempty"`
	P25           *float64 `json:"p25,omitempty"`
	P50           *float64 `json:"p50,omitempty"`
	P75           *float64 `json:"p75,omitempty"`
	P90           *float64 `json:"p90,omitempty"`
}
