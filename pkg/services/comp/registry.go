package comp

import (
	"fmt"
	"sync"

	"github.com/med-tools/comp-atlas/pkg/models/domain"
)

// Field describes one numeric input a payment template accepts. Max of zero
// means the field has no cap beyond the non-negative floor.
type Field struct {
	Name    string // stable key, e.g. "onsite_rate"
	Label   string
	Min     float64
	Max     float64
	Default float64
}

// Builder turns a complete set of named input values into a Plan. The
// registry guarantees every declared field is present in the map.
type Builder func(values map[string]float64) (domain.Plan, error)

// Descriptor declares a payment template's input form and how to build a
// plan from it.
type Descriptor struct {
	Template domain.PaymentTemplate
	Fields   []Field
	Build    Builder
}

func (d Descriptor) fieldByName(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// BuildPlan merges the provided inputs over the template defaults, checks
// every value against its field bounds, and builds the plan.
func (d Descriptor) BuildPlan(inputs map[string]float64) (domain.Plan, error) {
	values := make(map[string]float64, len(d.Fields))
	for _, f := range d.Fields {
		values[f.Name] = f.Default
	}

	for name, v := range inputs {
		f, ok := d.fieldByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown input %q for template %q", name, d.Template)
		}
		if v < f.Min {
			return nil, fmt.Errorf("input %q must be at least %v, got %v", name, f.Min, v)
		}
		if f.Max > 0 && v > f.Max {
			return nil, fmt.Errorf("input %q must be at most %v, got %v", name, f.Max, v)
		}
		values[name] = v
	}

	return d.Build(values)
}

// Registry manages payment template descriptors.
type Registry interface {
	// Register adds a new template descriptor
	Register(d Descriptor) error
	// Get returns the descriptor for the given template
	Get(t domain.PaymentTemplate) (Descriptor, bool)
	// List returns the registered descriptors in canonical template order
	List() []Descriptor
}

type registry struct {
	mu          sync.RWMutex
	descriptors map[domain.PaymentTemplate]Descriptor
}

// NewRegistry creates an empty template registry.
func NewRegistry() Registry {
	return &registry{
		descriptors: make(map[domain.PaymentTemplate]Descriptor),
	}
}

func (r *registry) Register(d Descriptor) error {
	if d.Template == "" {
		return fmt.Errorf("template name cannot be empty")
	}
	if d.Build == nil {
		return fmt.Errorf("builder cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.descriptors[d.Template]; exists {
		return fmt.Errorf("template %q is already registered", d.Template)
	}

	r.descriptors[d.Template] = d
	return nil
}

func (r *registry) Get(t domain.PaymentTemplate) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.descriptors[t]
	return d, ok
}

func (r *registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]Descriptor, 0, len(r.descriptors))
	for _, t := range domain.AllTemplates {
		if d, ok := r.descriptors[t]; ok {
			descriptors = append(descriptors, d)
		}
	}
	return descriptors
}

// DefaultRegistry returns a registry with both payment templates, carrying
// the input form defaults of the original calculator UI.
func DefaultRegistry() Registry {
	r := NewRegistry()

	// Registration of the built-in descriptors cannot fail.
	_ = r.Register(Descriptor{
		Template: domain.TemplateHourly,
		Fields: []Field{
			{Name: "onsite_rate", Label: "Dollars per hour (On-site)", Default: 200},
			{Name: "call_rate", Label: "Dollars per hour (Unrestricted On-call)", Default: 50},
			{Name: "other_compensation", Label: "Other Compensation", Default: 0},
			{Name: "onsite_hours", Label: "On-site hours per year", Max: domain.MaxAnnualHours, Default: 2080},
			{Name: "call_hours", Label: "On-call hours per year", Max: domain.MaxAnnualHours, Default: 500},
		},
		Build: func(v map[string]float64) (domain.Plan, error) {
			return domain.HourlyPlan{
				OnsiteRate:  v["onsite_rate"],
				CallRate:    v["call_rate"],
				OtherComp:   v["other_compensation"],
				OnsiteHours: v["onsite_hours"],
				CallHours:   v["call_hours"],
			}, nil
		},
	})

	_ = r.Register(Descriptor{
		Template: domain.TemplateByRVUs,
		Fields: []Field{
			{Name: "base_compensation", Label: "Base Compensation", Default: 300000},
			{Name: "rvu_threshold", Label: "Threshold RVUs", Default: 5000},
			{Name: "rvu_rate", Label: "Compensation Rate Above Threshold (per RVU)", Default: 50},
			{Name: "other_compensation", Label: "Other Compensation", Default: 0},
			{Name: "total_rvus", Label: "Total RVUs", Max: domain.MaxTotalRVUs, Default: 7000},
		},
		Build: func(v map[string]float64) (domain.Plan, error) {
			return domain.RVUPlan{
				BaseComp:           v["base_compensation"],
				RVUThreshold:       v["rvu_threshold"],
				RateAboveThreshold: v["rvu_rate"],
				OtherComp:          v["other_compensation"],
				TotalRVUs:          v["total_rvus"],
			}, nil
		},
	})

	return r
}
