package synthesis

import (
	"strconv"
	"strings"

	"github.com/careerpilot/roadmap-agent/internal/types"
)

// sumDurations adds up the year counts parsed from step duration labels.
// Labels that carry no year figure ("1 summer", "after graduation")
// contribute zero.
func sumDurations(steps []types.Step) float64 {
	var total float64
	for _, step := range steps {
		total += parseYears(step.Duration)
	}
	return total
}

// parseYears extracts a year count from labels like "2 years", "1.7 years",
// or "4-year program". Returns 0 when the label mentions no years.
func parseYears(label string) float64 {
	lower := strings.ToLower(label)
	if !strings.Contains(lower, "year") {
		return 0
	}

	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return r == ' ' || r == '-'
	})
	for _, f := range fields {
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			return v
		}
	}
	return 0
}

// formatYears renders a year count as a duration label, dropping the
// trailing zero on whole numbers.
func formatYears(years float64) string {
	label := strconv.FormatFloat(years, 'f', -1, 64)
	if years == 1 {
		return label + " year"
	}
	return label + " years"
}
