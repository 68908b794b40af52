package types

// Program is a feeder-institution academic program (e.g. an associate degree
// that transfers into a bachelor's program).
type Program struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
	URL     string `json:"url"`
}

// TransferOption is a university a feeder program articulates into.
type TransferOption struct {
	University   string `json:"university"`
	Program      string `json:"program"`
	Articulation string `json:"articulation"`
	URL          string `json:"url"`
	Accredited   *bool  `json:"accredited,omitempty"`
	InRegion     bool   `json:"in_region"`
	Metro        bool   `json:"metro"`
	Score        int    `json:"score"`
}

// Certification is a professional certification attached to a pathway.
type Certification struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Timing   string `json:"timing"`
	URL      string `json:"url,omitempty"`
}

// License is a state professional license attached to a pathway.
type License struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Timing   string `json:"timing"`
	State    string `json:"state"`
	URL      string `json:"url,omitempty"`
}

// Citation records a source consulted while researching a pathway.
type Citation struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	AccessedAt string `json:"accessed_at"`
}

// PathwayResult is the output of the pathway research stage. Transfer options
// are ordered by ranking score and deduplicated by normalized university name.
type PathwayResult struct {
	Programs        []Program        `json:"programs"`
	TransferOptions []TransferOption `json:"transfer_options"`
	Certifications  []Certification  `json:"certifications"`
	Licenses        []License        `json:"licenses"`
	Citations       []Citation       `json:"citations"`
}

// RequiredCertifications returns only the certifications flagged as required.
func (r *PathwayResult) RequiredCertifications() []Certification {
	var out []Certification
	for _, c := range r.Certifications {
		if c.Required {
			out = append(out, c)
		}
	}
	return out
}

// RequiredLicenses returns only the licenses flagged as required.
func (r *PathwayResult) RequiredLicenses() []License {
	var out []License
	for _, l := range r.Licenses {
		if l.Required {
			out = append(out, l)
		}
	}
	return out
}
