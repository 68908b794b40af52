package pathway

import (
	"strings"

	"github.com/careerpilot/roadmap-agent/internal/types"
)

// CategoryDefaults synthesizes a pathway when no seed row matches the career.
// Engineering careers get the standard ABET route with the qualifying exam
// and professional license, nursing gets the licensure exam, software gets no
// license at all.
func CategoryDefaults(career, category string) *types.PathwayResult {
	lower := strings.ToLower(career + " " + category)

	result := &types.PathwayResult{
		Programs: []types.Program{
			{
				Code:    "AA.GEN",
				Name:    "Associate in Arts (transfer track)",
				Credits: 60,
				URL:     "https://www.mdc.edu/academics/",
			},
		},
		TransferOptions: defaultTransferOptions(career),
	}

	switch {
	case strings.Contains(lower, "engineer"):
		result.Programs[0] = types.Program{
			Code:    "AS.EGR",
			Name:    "Engineering Associate in Science",
			Credits: 60,
			URL:     "https://www.mdc.edu/engineering/",
		}
		result.Certifications = []types.Certification{
			{
				Name:     "FE Exam (Fundamentals of Engineering)",
				Required: true,
				Timing:   "final year of bachelor's",
				URL:      "https://ncees.org/engineering/fe/",
			},
		}
		result.Licenses = []types.License{
			{
				Name:     "PE License (Professional Engineer)",
				Required: true,
				Timing:   "after 4 years of experience",
				State:    "Florida",
				URL:      "https://fbpe.org/",
			},
		}
	case strings.Contains(lower, "nurs") || strings.Contains(lower, "health"):
		result.Programs[0] = types.Program{
			Code:    "AS.NUR",
			Name:    "Nursing Associate in Science",
			Credits: 72,
			URL:     "https://www.mdc.edu/nursing/",
		}
		result.Licenses = []types.License{
			{
				Name:     "NCLEX-RN",
				Required: true,
				Timing:   "after degree completion",
				State:    "Florida",
				URL:      "https://www.ncsbn.org/nclex.page",
			},
		}
	case strings.Contains(lower, "software") || strings.Contains(lower, "tech") ||
		strings.Contains(lower, "comput") || strings.Contains(lower, "data"):
		result.Programs[0] = types.Program{
			Code:    "AS.CS",
			Name:    "Computer Science Associate in Science",
			Credits: 60,
			URL:     "https://www.mdc.edu/stem/",
		}
		// No state license for software careers.
	}

	return result
}

// defaultTransferOptions lists the standard in-region transfer partners used
// when a career has no seed row. Articulation comes from the statewide 2+2
// agreement.
func defaultTransferOptions(career string) []types.TransferOption {
	universities := []string{
		"Florida International University",
		"Florida Atlantic University",
		"University of Central Florida",
		"University of Florida",
	}
	options := make([]types.TransferOption, 0, len(universities))
	for _, u := range universities {
		options = append(options, types.TransferOption{
			University:   u,
			Program:      "Bachelor's (" + career + ")",
			Articulation: "Florida statewide 2+2 articulation",
		})
	}
	return options
}
