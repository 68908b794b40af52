package pathway

import (
	"sort"

	"github.com/careerpilot/roadmap-agent/internal/seed"
	"github.com/careerpilot/roadmap-agent/internal/types"
)

// TopK is the number of ranked in-region (or metro) options a selection
// returns. Out-of-region options are not counted against it.
const TopK = 4

// inRegionState and metroCity anchor the location policies.
const (
	inRegionState = "FL"
	metroCity     = "Miami"
)

// Tag resolves an option against the ranking table and fills in its region,
// metro, and score fields. Unknown institutions keep a zero score and are
// treated as out-of-region.
func Tag(option *types.TransferOption, tables *seed.Tables) {
	inst, ok := tables.LookupInstitution(option.University)
	if !ok {
		option.InRegion = false
		option.Metro = false
		option.Score = 0
		return
	}
	option.InRegion = inst.State == inRegionState
	option.Metro = inst.City == metroCity
	option.Score = inst.Score()
}

// Dedup removes duplicate institutions by normalized name, keeping the first
// occurrence. Applying it twice yields the same result.
func Dedup(options []types.TransferOption) []types.TransferOption {
	seen := make(map[string]bool, len(options))
	out := make([]types.TransferOption, 0, len(options))
	for _, opt := range options {
		key := NormalizeName(opt.University)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, opt)
	}
	return out
}

// Select orders and filters candidate institutions for a location preference.
// The result is deduplicated, sorted by ranking score descending, and capped
// according to the policy:
//
//	anywhere: every out-of-region option plus the top K in-region options
//	florida:  the top K in-region options only
//	miami:    top K metro options, then remaining in-region up to K total
func Select(options []types.TransferOption, location string) []types.TransferOption {
	options = Dedup(options)
	sortByScore(options)

	var inRegion, outOfRegion, metro, nonMetroInRegion []types.TransferOption
	for _, opt := range options {
		if opt.InRegion {
			inRegion = append(inRegion, opt)
			if opt.Metro {
				metro = append(metro, opt)
			} else {
				nonMetroInRegion = append(nonMetroInRegion, opt)
			}
		} else {
			outOfRegion = append(outOfRegion, opt)
		}
	}

	switch location {
	case types.LocationAnywhere:
		selected := append([]types.TransferOption{}, topN(inRegion, TopK)...)
		selected = append(selected, outOfRegion...)
		sortByScore(selected)
		return selected
	case types.LocationLocal:
		selected := topN(metro, TopK)
		if remaining := TopK - len(selected); remaining > 0 {
			selected = append(selected, topN(nonMetroInRegion, remaining)...)
		}
		sortByScore(selected)
		return selected
	default:
		// In-region is the default policy.
		return topN(inRegion, TopK)
	}
}

func topN(options []types.TransferOption, n int) []types.TransferOption {
	if len(options) > n {
		options = options[:n]
	}
	return append([]types.TransferOption{}, options...)
}

// sortByScore orders by score descending with the university name as a
// deterministic tie break.
func sortByScore(options []types.TransferOption) {
	sort.SliceStable(options, func(i, j int) bool {
		if options[i].Score != options[j].Score {
			return options[i].Score > options[j].Score
		}
		return options[i].University < options[j].University
	})
}
