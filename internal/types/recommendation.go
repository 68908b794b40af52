package types

// Path archetype identifiers. Every roadmap contains exactly these three.
const (
	PathCheapest = "cheapest"
	PathFastest  = "fastest"
	PathPrestige = "prestige"
)

// PathPick is the advisor's choice of university for one path archetype.
type PathPick struct {
	University    string  `json:"university"`
	Tier          int     `json:"tier"`
	Score         int     `json:"score"`
	EstimatedCost float64 `json:"estimated_cost"`
	DurationYears float64 `json:"duration_years"`
	Rationale     string  `json:"rationale"`
}

// Recommendation assigns one distinct university to each path archetype. It is
// produced either by the generative advisor or by the deterministic fallback;
// both satisfy the same validation rules.
type Recommendation struct {
	Cheapest PathPick `json:"cheapest"`
	Fastest  PathPick `json:"fastest"`
	Prestige PathPick `json:"prestige"`
	Source   string   `json:"source,omitempty"`
}

// Picks returns the three picks keyed by path id.
func (r *Recommendation) Picks() map[string]PathPick {
	return map[string]PathPick{
		PathCheapest: r.Cheapest,
		PathFastest:  r.Fastest,
		PathPrestige: r.Prestige,
	}
}
