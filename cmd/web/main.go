package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/med-tools/comp-atlas/pkg/server"
	"github.com/med-tools/comp-atlas/pkg/services/comp"
	"github.com/med-tools/comp-atlas/pkg/services/config"
	"github.com/med-tools/comp-atlas/pkg/store/benchmark"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for Compensation Atlas",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the configuration file (optional, env vars apply either way)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var benchmarks benchmark.Store
	if cfg.Benchmarks.TablePath != "" {
		benchmarks, err = benchmark.NewStoreFromFile(cfg.Benchmarks.TablePath)
		if err != nil {
			return fmt.Errorf("failed to load benchmark table from %q: %w", cfg.Benchmarks.TablePath, err)
		}
		logger.Info().Msgf("Benchmark table loaded from `%s`.", cfg.Benchmarks.TablePath)
	} else {
		benchmarks, err = benchmark.NewStore()
		if err != nil {
			return fmt.Errorf("failed to load embedded benchmark table: %w", err)
		}
	}

	ctx := logger.WithContext(cmd.Context())
	logger.Info().Msgf("Found benchmark data for the following specialties:")
	for _, specialty := range benchmarks.ListSpecialties(ctx) {
		logger.Info().Msgf("Name: `%s`, Metrics: %d", specialty, len(benchmarks.GetRows(ctx, specialty)))
	}

	api := server.NewWebAPI(server.Config{
		Addr:            cfg.Addr(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Benchmarks: benchmarks,
			Templates:  comp.DefaultRegistry(),
			Evaluator:  comp.NewEvaluator(benchmarks),
			Logger:     logger,
		},
	})

	return api.Start()
}
