package store

// Table is the on-disk (YAML) shape of a benchmark reference table.
type Table struct {
	Rows []Row `yaml:"rows"`
}

// Row mirrors one benchmark record. Pointer fields are omitted when the
// source does not report them.
type Row struct {
	Specialty     string   `yaml:"specialty"`
	PracticeScope string   `yaml:"practice_scope"`
	Metric        string   `yaml:"metric"`
	Groups        *int     `yaml:"groups,omitempty"`
	Providers     *int     `yaml:"providers,omitempty"`
	Mean          *float64 `yaml:"mean,omitempty"`
	StdDev        *float64 `yaml:"std_dev,omitempty"`
	P25           *float64 `yaml:"p25,omitempty"`
	P50           *float64 `yaml:"p50,omitempty"`
	P75           *float64 `yaml:"p75,omitempty"`
	P90           *float64 `yaml:"p90,omitempty"`
}
