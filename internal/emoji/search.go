package emoji

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Search returns the symbols whose names fuzzily match query, best match
// first. Ties keep the order of pool.
func Search(query string, pool []Symbol) []Symbol {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" || len(pool) == 0 {
		return nil
	}
	names := make([]string, len(pool))
	for i, sym := range pool {
		names[i] = sym.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) == 0 {
		return nil
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	out := make([]Symbol, 0, len(ranks))
	for _, rank := range ranks {
		out = append(out, pool[rank.OriginalIndex])
	}
	return out
}
