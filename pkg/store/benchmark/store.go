package benchmark

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/med-tools/comp-atlas/pkg/models/domain"
	"github.com/med-tools/comp-atlas/pkg/models/store"
	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var defaultTable []byte

// Store exposes the read-only benchmark reference table. Implementations
// are built once at startup and safe for concurrent reads.
type Store interface {
	ListSpecialties(ctx context.Context) []domain.Specialty
	// GetRows returns the specialty's rows in table order, at most one per metric.
	GetRows(ctx context.Context, specialty domain.Specialty) []domain.BenchmarkRow
	GetRow(ctx context.Context, specialty domain.Specialty, metric domain.Metric) (domain.BenchmarkRow, bool)
}

type benchmarkStore struct {
	specialties []domain.Specialty
	rows        map[domain.Specialty][]domain.BenchmarkRow
}

// NewStore builds a store from the embedded reference table.
func NewStore() (Store, error) {
	return newStoreFromBytes(defaultTable)
}

// NewStoreFromFile builds a store from an external YAML table.
func NewStoreFromFile(path string) (Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read benchmark table: %w", err)
	}
	return newStoreFromBytes(data)
}

func newStoreFromBytes(data []byte) (Store, error) {
	var table store.Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse benchmark table: %w", err)
	}
	if len(table.Rows) == 0 {
		return nil, fmt.Errorf("benchmark table has no rows")
	}

	s := &benchmarkStore{
		rows: make(map[domain.Specialty][]domain.BenchmarkRow),
	}

	for i, raw := range table.Rows {
		row, err := mapRow(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid benchmark row %d: %w", i, err)
		}
		if err := validatePercentiles(row); err != nil {
			return nil, fmt.Errorf("invalid benchmark row %d (%s / %s): %w", i, row.Specialty, row.Metric, err)
		}
		if _, exists := s.getRow(row.Specialty, row.Metric); exists {
			return nil, fmt.Errorf("duplicate benchmark row for %q / %q", row.Specialty, row.Metric)
		}

		if _, known := s.rows[row.Specialty]; !known {
			s.specialties = append(s.specialties, row.Specialty)
		}
		s.rows[row.Specialty] = append(s.rows[row.Specialty], row)
	}

	return s, nil
}

// mapRow resolves a raw table row into a domain BenchmarkRow, rejecting
// names outside the closed specialty/metric sets.
func mapRow(row store.Row) (domain.BenchmarkRow, error) {
	specialty, ok := domain.SpecialtyByName(row.Specialty)
	if !ok {
		return domain.BenchmarkRow{}, fmt.Errorf("unknown specialty %q", row.Specialty)
	}

	metric, ok := domain.MetricByName(row.Metric)
	if !ok {
		return domain.BenchmarkRow{}, fmt.Errorf("unknown metric %q", row.Metric)
	}

	return domain.BenchmarkRow{
		Specialty:     specialty,
		PracticeScope: row.PracticeScope,
		Metric:        metric,
		Groups:        row.Groups,
		Providers:     row.Providers,
		Mean:          row.Mean,
		StdDev:        row.StdDev,
		P25:           row.P25,
		P50:           row.P50,
		P75:           row.P75,
		P90:           row.P90,
	}, nil
}

// validatePercentiles checks that the percentiles a row does report are
// non-decreasing; the classifier's threshold ladder relies on this.
func validatePercentiles(row domain.BenchmarkRow) error {
	var prev *float64
	for _, p := range []*float64{row.P25, row.P50, row.P75, row.P90} {
		if p == nil {
			continue
		}
		if prev != nil && *p < *prev {
			return fmt.Errorf("percentiles are not non-decreasing (%v after %v)", *p, *prev)
		}
		prev = p
	}
	return nil
}

func (s *benchmarkStore) ListSpecialties(_ context.Context) []domain.Specialty {
	specialties := make([]domain.Specialty, len(s.specialties))
	copy(specialties, s.specialties)
	return specialties
}

func (s *benchmarkStore) GetRows(_ context.Context, specialty domain.Specialty) []domain.BenchmarkRow {
	rows := make([]domain.BenchmarkRow, len(s.rows[specialty]))
	copy(rows, s.rows[specialty])
	return rows
}

func (s *benchmarkStore) GetRow(
	_ context.Context,
	specialty domain.Specialty,
	metric domain.Metric,
) (domain.BenchmarkRow, bool) {
	return s.getRow(specialty, metric)
}

func (s *benchmarkStore) getRow(specialty domain.Specialty, metric domain.Metric) (domain.BenchmarkRow, bool) {
	for _, row := range s.rows[specialty] {
		if row.Metric == metric {
			return row, true
		}
	}
	return domain.BenchmarkRow{}, false
}
