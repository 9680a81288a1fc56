package commands

import (
	"context"

	"github.com/med-tools/comp-atlas/pkg/runtime/terminal/export"
	"github.com/med-tools/comp-atlas/pkg/store/benchmark"

	"github.com/spf13/cobra"
)

func NewSpecialtiesCmd(benchmarks benchmark.Store, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "specialties",
		Short: "List specialties and the metrics they have benchmark data for",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var listings []export.SpecialtyListing
			for _, specialty := range benchmarks.ListSpecialties(ctx) {
				listing := export.SpecialtyListing{Specialty: specialty}
				for _, row := range benchmarks.GetRows(ctx, specialty) {
					listing.Metrics = append(listing.Metrics, row.Metric)
				}
				listings = append(listings, listing)
			}

			return reporter.HandleSpecialties(listings)
		},
	}
}
