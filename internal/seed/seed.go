// Package seed provides the embedded seed-data tables used as deterministic
// fallbacks for every external data source. Tables are loaded once, are
// immutable, and are injected into components at construction.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed *.json
var seedFiles embed.FS

// Institution is one row of the institution ranking table.
type Institution struct {
	Tier              int     `json:"tier"`
	NationalRank      int     `json:"national_rank"`
	InStateTuition    float64 `json:"in_state_tuition"`
	OutOfStateTuition float64 `json:"out_of_state_tuition"`
	City              string  `json:"city"`
	State             string  `json:"state"`
	Feeder            bool    `json:"feeder,omitempty"`
}

// Score derives the ranking score: (4 - tier) * 100 + (300 - national rank).
// Higher is better.
func (i Institution) Score() int {
	return (4-i.Tier)*100 + (300 - i.NationalRank)
}

// Housing is the monthly living-cost record for a metro.
type Housing struct {
	SharedRent float64 `json:"shared_rent"`
	Food       float64 `json:"food"`
	Transport  float64 `json:"transport"`
}

// Monthly returns the total monthly living cost.
func (h Housing) Monthly() float64 {
	return h.SharedRent + h.Food + h.Transport
}

// PathwayProgram is a feeder program entry in the career pathway table.
type PathwayProgram struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
	URL     string `json:"url"`
}

// PathwayPartner is a transfer partner entry in the career pathway table.
type PathwayPartner struct {
	University string `json:"university"`
	Program    string `json:"program"`
	URL        string `json:"url"`
}

// PathwayLicensing is a licensing entry. Entries carry either a certification
// name or a license exam name, never both.
type PathwayLicensing struct {
	Cert string `json:"cert,omitempty"`
	Exam string `json:"exam,omitempty"`
	URL  string `json:"url"`
}

// CareerPathway is one row of the career pathway table.
type CareerPathway struct {
	Programs         []PathwayProgram   `json:"programs"`
	TransferPartners []PathwayPartner   `json:"transfer_partners"`
	Licensing        []PathwayLicensing `json:"licensing"`
}

// Salary is the fallback compensation record for an occupation code.
type Salary struct {
	Median     float64 `json:"median"`
	Regional   float64 `json:"regional"`
	GrowthRate string  `json:"growth_rate"`
	Outlook    string  `json:"outlook"`
}

// occupationsFile mirrors the layout of occupations.json.
type occupationsFile struct {
	Codes    map[string]string `json:"codes"`
	Salaries map[string]Salary `json:"salaries"`
}

// Tables holds every seed table. Construct with Load and treat as read-only.
type Tables struct {
	Rankings map[string]Institution
	Housing  map[string]Housing
	Pathways map[string]CareerPathway
	Codes    map[string]string
	Salaries map[string]Salary
}

// Load parses all embedded seed files into immutable tables.
func Load() (*Tables, error) {
	t := &Tables{}

	if err := loadJSON("rankings.json", &t.Rankings); err != nil {
		return nil, err
	}
	if err := loadJSON("housing.json", &t.Housing); err != nil {
		return nil, err
	}
	if err := loadJSON("pathways.json", &t.Pathways); err != nil {
		return nil, err
	}

	var occ occupationsFile
	if err := loadJSON("occupations.json", &occ); err != nil {
		return nil, err
	}
	t.Codes = occ.Codes
	t.Salaries = occ.Salaries

	return t, nil
}

// MustLoad parses the embedded seed files, panicking on failure. The files
// are compiled into the binary, so a failure here is a build defect.
func MustLoad() *Tables {
	t, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load seed tables: %v", err))
	}
	return t
}

func loadJSON(filename string, out any) error {
	data, err := seedFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", filename, err)
	}
	return nil
}
