package types

// Constraints captures the hard constraints extracted from a quiz.
type Constraints struct {
	Budget       string  `json:"budget"`
	Timeline     string  `json:"timeline"`
	GPA          float64 `json:"gpa"`
	HasAA        bool    `json:"has_aa"`
	Location     string  `json:"location"`
	WorkSchedule string  `json:"work_schedule,omitempty"`
}

// Profile is the structured student profile produced by the profiling stage.
// It is created once per request and never mutated afterwards.
type Profile struct {
	Career          string      `json:"career"`
	Category        string      `json:"category"`
	Constraints     Constraints `json:"constraints"`
	Preferences     []string    `json:"preferences,omitempty"`
	Flags           []string    `json:"flags,omitempty"`
	Recommendations []string    `json:"recommendations,omitempty"`
}

// HasFlag reports whether the profiling stage raised a given flag.
func (p *Profile) HasFlag(flag string) bool {
	for _, f := range p.Flags {
		if f == flag {
			return true
		}
	}
	return false
}
