package adapters

import (
	"github.com/med-tools/comp-atlas/pkg/models/api"
	"github.com/med-tools/comp-atlas/pkg/models/domain"
)

func MapBenchmarkRowDomainToApi(row domain.BenchmarkRow) api.BenchmarkRow {
	return api.BenchmarkRow{
		Specialty:     string(row.Specialty),
		PracticeScope: row.PracticeScope,
		Metric:        string(row.Metric),
		Groups:        row.Groups,
		Providers:     row.Providers,
		Mean:          row.Mean,
		StdDev:        row.StdDev,
		P25:           row.P25,
		P50:           row.P50,
		P75:           row.P75,
		P90:           row.P90,
	}
}
