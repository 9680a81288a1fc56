package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/med-tools/comp-atlas/pkg/models/domain"
	"github.com/med-tools/comp-atlas/pkg/runtime/terminal/export"
	"github.com/med-tools/comp-atlas/pkg/services/comp"
	"github.com/med-tools/comp-atlas/pkg/store/benchmark"

	"github.com/spf13/cobra"
)

type EvaluateCmd struct {
	template   string
	specialty  string
	inputs     []string
	benchmarks benchmark.Store
	templates  comp.Registry
	reporter   *export.Reporter
}

func NewEvaluateCmd(benchmarks benchmark.Store, templates comp.Registry, reporter *export.Reporter) *cobra.Command {
	ec := &EvaluateCmd{benchmarks: benchmarks, templates: templates, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a proposed compensation plan against specialty benchmarks",
		RunE:  ec.run,
	}

	// Define flags
	cmd.Flags().StringVar(&ec.template, "template", string(domain.TemplateHourly),
		"Payment template (e.g., Hourly, By RVUs)")
	cmd.Flags().StringVar(&ec.specialty, "specialty", string(domain.SpecialtySurgeryTrauma),
		"Specialty to benchmark against")
	cmd.Flags().StringArrayVar(&ec.inputs, "input", nil,
		"Plan input as name=value (repeatable); unset inputs use template defaults")

	return cmd
}

func (ec *EvaluateCmd) run(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	template, ok := domain.TemplateByName(ec.template)
	if !ok {
		return fmt.Errorf("unknown payment template %q. Known templates: %v", ec.template, domain.AllTemplates)
	}

	descriptor, ok := ec.templates.Get(template)
	if !ok {
		return fmt.Errorf("payment template %q is not registered", ec.template)
	}

	specialty, ok := domain.SpecialtyByName(ec.specialty)
	if !ok {
		return fmt.Errorf("unknown specialty %q. Known specialties: %v", ec.specialty, domain.AllSpecialties)
	}

	inputs, err := parseInputs(ec.inputs)
	if err != nil {
		return err
	}

	plan, err := descriptor.BuildPlan(inputs)
	if err != nil {
		return fmt.Errorf("invalid inputs: %w", err)
	}

	evaluator := comp.NewEvaluator(ec.benchmarks)
	eval, err := evaluator.Evaluate(ctx, specialty, plan)
	if err != nil {
		return fmt.Errorf("failed to evaluate plan: %w", err)
	}

	return ec.reporter.HandleEvaluation(eval)
}

func parseInputs(raw []string) (map[string]float64, error) {
	inputs := make(map[string]float64, len(raw))
	for _, item := range raw {
		name, value, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("invalid input %q, expected name=value", item)
		}
		number, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value for input %q: %w", name, err)
		}
		inputs[name] = number
	}
	return inputs, nil
}
