package domain

// PaymentTemplate discriminates the supported payment models.
type PaymentTemplate string

const (
	TemplateHourly PaymentTemplate = "Hourly"
	TemplateByRVUs PaymentTemplate = "By RVUs"
)

// AllTemplates lists the payment templates in canonical order.
var AllTemplates = []PaymentTemplate{
	TemplateHourly,
	TemplateByRVUs,
}

// TemplateByName returns the PaymentTemplate for the given name, or ok=false.
func TemplateByName(name string) (PaymentTemplate, bool) {
	for _, t := range AllTemplates {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// Input widget caps. Hours and RVUs come from sliders with hard bounds;
// every numeric input has a floor of zero.
const (
	MaxAnnualHours float64 = 4000
	MaxTotalRVUs   float64 = 20000
)

// Plan is one set of proposed compensation inputs. The set of
// implementations is closed: HourlyPlan and RVUPlan.
type Plan interface {
	Template() PaymentTemplate
}

// HourlyPlan holds the inputs of an hourly payment template: rates per
// on-site and unrestricted on-call hour plus the hours worked per year.
type HourlyPlan struct {
	OnsiteRate  float64
	CallRate    float64
	OtherComp   float64
	OnsiteHours float64
	CallHours   float64
}

func (HourlyPlan) Template() PaymentTemplate { return TemplateHourly }

// RVUPlan holds the inputs of an RVU-based payment template: a base salary
// plus a per-RVU rate for production above a threshold.
type RVUPlan struct {
	BaseComp           float64
	RVUThreshold       float64
	RateAboveThreshold float64
	OtherComp          float64
	TotalRVUs          float64
}

func (RVUPlan) Template() PaymentTemplate { return TemplateByRVUs }
