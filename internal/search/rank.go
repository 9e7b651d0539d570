// Package search implements fuzzy ranked matching of vendors against a
// free-text query.
package search

import (
	"sort"
	"strings"

	"pklradar/internal/domain/entity"

	"github.com/adrg/strutil/metrics"
)

const (
	// DefaultThreshold is the minimum similarity score for a candidate to
	// count as a genuine match. Approximate and tunable, not bit-exact.
	DefaultThreshold = 0.45

	// PoolCap bounds how many candidates are ever scored per query.
	PoolCap = 200

	// EmptyQueryLimit caps the unscored result of an empty query.
	EmptyQueryLimit = 50

	// FallbackLimit caps the "closest we have" result when nothing clears
	// the threshold.
	FallbackLimit = 20
)

// ScoredVendor pairs a vendor with its similarity score for one query.
type ScoredVendor struct {
	Vendor *entity.Vendor
	Score  float64
}

// Normalize lower-cases the text and strips all whitespace, including
// interior runs. "Bakso  Pak Budi" and "baksopakbudi" normalize equal.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "")
}

// RankBySearch scores the candidates against the query and returns them in
// descending score order.
//
// An empty normalized query short-circuits: the first EmptyQueryLimit
// candidates are returned unscored, in caller order. Otherwise at most
// PoolCap candidates are scored; each candidate's score is the maximum
// Ratcliff-Obershelp ratio of the query against its normalized business name
// and category, forced to 1.0 when the query is a literal substring of either
// field. Candidates scoring at or above threshold are returned; when none do,
// the top FallbackLimit by raw score are returned instead so a non-empty
// candidate set never yields an empty result.
func RankBySearch(candidates []*entity.Vendor, query string, threshold float64) []ScoredVendor {
	normQuery := Normalize(query)
	if normQuery == "" {
		limit := min(len(candidates), EmptyQueryLimit)
		results := make([]ScoredVendor, 0, limit)
		for _, vendor := range candidates[:limit] {
			results = append(results, ScoredVendor{Vendor: vendor})
		}

		return results
	}

	pool := candidates
	if len(pool) > PoolCap {
		pool = pool[:PoolCap]
	}

	ratio := metrics.NewRatcliffObershelp()
	scored := make([]ScoredVendor, 0, len(pool))
	for _, vendor := range pool {
		scored = append(scored, ScoredVendor{
			Vendor: vendor,
			Score:  scoreVendor(ratio, normQuery, vendor),
		})
	}

	// Stable so that equal scores keep the caller-supplied order.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	matched := make([]ScoredVendor, 0, len(scored))
	for _, sv := range scored {
		if sv.Score >= threshold {
			matched = append(matched, sv)
		}
	}
	if len(matched) > 0 {
		return matched
	}

	return scored[:min(len(scored), FallbackLimit)]
}

// scoreVendor returns the best field score for one candidate. A literal
// substring hit beats any fuzzy score.
func scoreVendor(ratio *metrics.RatcliffObershelp, normQuery string, vendor *entity.Vendor) float64 {
	best := 0.0
	for _, field := range []string{vendor.BusinessName, vendor.Category} {
		normField := Normalize(field)
		if normField == "" {
			continue
		}
		if strings.Contains(normField, normQuery) {
			return 1.0
		}
		if score := ratio.Compare(normQuery, normField); score > best {
			best = score
		}
	}

	return best
}
