package api

// TemplateField describes one numeric input a payment template accepts,
// including the bounds and default the input widget should use.
type TemplateField struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max,omitempty"`
	Default float64 `json:"default"`
}

type Template struct {
	Name   string          `json:"name"`
	Fields []TemplateField `json:"fields"`
}
