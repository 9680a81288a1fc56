package evaluation

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/med-tools/comp-atlas/pkg/adapters"
	"github.com/med-tools/comp-atlas/pkg/models/api"
	"github.com/med-tools/comp-atlas/pkg/models/domain"
	"github.com/med-tools/comp-atlas/pkg/services/comp"
	"github.com/med-tools/comp-atlas/pkg/store/benchmark"
)

type Handler struct {
	benchmarks benchmark.Store
	templates  comp.Registry
	evaluator  *comp.Evaluator
}

func NewHandler(benchmarks benchmark.Store, templates comp.Registry, evaluator *comp.Evaluator) *Handler {
	return &Handler{
		benchmarks: benchmarks,
		templates:  templates,
		evaluator:  evaluator,
	}
}

func (h *Handler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	specialties := h.benchmarks.ListSpecialties(ctx)
	response := make([]api.Specialty, 0, len(specialties))
	for _, s := range specialties {
		response = append(response, api.Specialty{Name: string(s)})
	}

	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) ListBenchmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "specialty")

	specialty, ok := domain.SpecialtyByName(name)
	if !ok {
		writeError(w, r, http.StatusNotFound, "unknown specialty %q", name)
		return
	}

	rows := h.benchmarks.GetRows(ctx, specialty)
	response := make([]api.BenchmarkRow, 0, len(rows))
	for _, row := range rows {
		response = append(response, adapters.MapBenchmarkRowDomainToApi(row))
	}

	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	descriptors := h.templates.List()
	response := make([]api.Template, 0, len(descriptors))
	for _, d := range descriptors {
		response = append(response, adapters.MapTemplateDescriptorToApi(d))
	}

	writeJSON(w, r, http.StatusOK, response)
}

func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request api.EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body: %v", err)
		return
	}

	template, ok := domain.TemplateByName(request.Template)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "unknown payment template %q", request.Template)
		return
	}

	descriptor, ok := h.templates.Get(template)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "payment template %q is not registered", request.Template)
		return
	}

	specialty, ok := domain.SpecialtyByName(request.Specialty)
	if !ok {
		writeError(w, r, http.StatusBadRequest, "unknown specialty %q", request.Specialty)
		return
	}

	plan, err := descriptor.BuildPlan(request.Inputs)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid inputs: %v", err)
		return
	}

	eval, err := h.evaluator.Evaluate(ctx, specialty, plan)
	if err != nil {
		writeError(w, r, http.StatusNotFound, "%v", err)
		return
	}

	writeJSON(w, r, http.StatusOK, adapters.MapEvaluationDomainToApi(eval))
}
