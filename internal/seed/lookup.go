package seed

import (
	"sort"
	"strings"
)

// FeederInstitution is the default feeder college for every pathway.
const FeederInstitution = "Miami Dade College"

// BaselineMetro is the metro whose living costs are used when no housing
// record matches an institution's city.
const BaselineMetro = "Miami"

// institutionAliases maps common short names to ranking-table keys.
var institutionAliases = map[string]string{
	"mdc":          "Miami Dade College",
	"miami dade":   "Miami Dade College",
	"fiu":          "Florida International University",
	"fau":          "Florida Atlantic University",
	"ucf":          "University of Central Florida",
	"uf":           "University of Florida",
	"fsu":          "Florida State University",
	"usf":          "University of South Florida",
	"mit":          "Massachusetts Institute of Technology",
	"georgia tech": "Georgia Institute of Technology",
	"cmu":          "Carnegie Mellon University",
	"uc berkeley":  "University of California Berkeley",
	"berkeley":     "University of California Berkeley",
	"asu":          "Arizona State University",
}

// CanonicalInstitution resolves aliases and short names to ranking-table keys.
// Unknown names are returned trimmed but otherwise unchanged.
func CanonicalInstitution(name string) string {
	trimmed := strings.TrimSpace(name)
	if canonical, ok := institutionAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// LookupInstitution finds a ranking record by name, resolving aliases first
// and falling back to a case-insensitive substring match.
func (t *Tables) LookupInstitution(name string) (Institution, bool) {
	canonical := CanonicalInstitution(name)
	if rec, ok := t.Rankings[canonical]; ok {
		return rec, true
	}

	lower := strings.ToLower(canonical)
	for _, key := range sortedKeys(t.Rankings) {
		keyLower := strings.ToLower(key)
		if strings.Contains(keyLower, lower) || strings.Contains(lower, keyLower) {
			return t.Rankings[key], true
		}
	}
	return Institution{}, false
}

// LookupHousing finds the living-cost record for a city. On an exact miss it
// tries a case-insensitive substring match; on a total miss it returns the
// baseline metro's record with matched=false so callers can flag a warning.
func (t *Tables) LookupHousing(city string) (rec Housing, matched bool) {
	city = strings.TrimSpace(city)
	if rec, ok := t.Housing[city]; ok {
		return rec, true
	}

	lower := strings.ToLower(city)
	if lower != "" {
		for _, key := range sortedKeys(t.Housing) {
			keyLower := strings.ToLower(key)
			if strings.Contains(keyLower, lower) || strings.Contains(lower, keyLower) {
				return t.Housing[key], true
			}
		}
	}

	return t.Housing[BaselineMetro], false
}

// LookupPathway finds the pathway row for a career, trying an exact match and
// then a case-insensitive substring match in both directions.
func (t *Tables) LookupPathway(career string) (CareerPathway, bool) {
	career = strings.TrimSpace(career)
	if row, ok := t.Pathways[career]; ok {
		return row, true
	}

	lower := strings.ToLower(career)
	for _, key := range sortedKeys(t.Pathways) {
		keyLower := strings.ToLower(key)
		if strings.Contains(keyLower, lower) || strings.Contains(lower, keyLower) {
			return t.Pathways[key], true
		}
	}
	return CareerPathway{}, false
}

// LookupOccupationCode maps a career name to an SOC occupation code using an
// exact match followed by substring matching in both directions.
func (t *Tables) LookupOccupationCode(career string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(career))
	if code, ok := t.Codes[lower]; ok {
		return code, true
	}

	for _, key := range sortedKeys(t.Codes) {
		if strings.Contains(lower, key) || strings.Contains(key, lower) {
			return t.Codes[key], true
		}
	}
	return "", false
}

// sortedKeys orders a table's keys so substring fallbacks resolve the same
// row on every call.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// LookupSalary returns the fallback salary record for an SOC code.
func (t *Tables) LookupSalary(code string) (Salary, bool) {
	rec, ok := t.Salaries[code]
	return rec, ok
}
