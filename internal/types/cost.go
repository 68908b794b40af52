package types

// DegreeLevel identifies which cost formula applies.
type DegreeLevel string

// Degree levels recognized by the cost calculator.
const (
	DegreeAssociateFeeder DegreeLevel = "associate-feeder"
	DegreeBachelor        DegreeLevel = "bachelor"
	DegreeMaster          DegreeLevel = "master"
	DegreeDoctorate       DegreeLevel = "doctorate"
)

// CostBreakdown is a per-path cost estimate. Total is always at least the sum
// of the listed components; components are never negative.
type CostBreakdown struct {
	Feeder    float64 `json:"feeder"`
	Tuition   float64 `json:"tuition"`
	Housing   float64 `json:"housing"`
	Food      float64 `json:"food"`
	Transport float64 `json:"transport"`
	Books     float64 `json:"books"`
	Fees      float64 `json:"fees"`
	Addons    float64 `json:"addons"`
	Total     float64 `json:"total"`

	Institution string   `json:"institution"`
	City        string   `json:"city,omitempty"`
	Years       float64  `json:"years"`
	FeederYears float64  `json:"feeder_years"`
	Residency   string   `json:"residency"`
	Accelerated bool     `json:"accelerated,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

// ComponentSum returns the sum of all declared cost components.
func (b *CostBreakdown) ComponentSum() float64 {
	return b.Feeder + b.Tuition + b.Housing + b.Food + b.Transport + b.Books + b.Fees + b.Addons
}

// CostResult holds the three path cost estimates produced by the cost stage.
type CostResult struct {
	Cheapest CostBreakdown `json:"cheapest"`
	Fastest  CostBreakdown `json:"fastest"`
	Prestige CostBreakdown `json:"prestige"`
}
