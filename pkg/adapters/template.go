package adapters

import (
	"github.com/med-tools/comp-atlas/pkg/models/api"
	"github.com/med-tools/comp-atlas/pkg/services/comp"
)

func MapTemplateDescriptorToApi(d comp.Descriptor) api.Template {
	t := api.Template{
		Name:   string(d.Template),
		Fields: make([]api.TemplateField, 0, len(d.Fields)),
	}

	for _, f := range d.Fields {
		t.Fields = append(t.Fields, api.TemplateField{
			Name:    f.Name,
			Label:   f.Label,
			Min:     f.Min,
			Max:     f.Max,
			Default: f.Default,
		})
	}

	return t
}
