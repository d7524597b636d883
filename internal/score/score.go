// Package score ranks contrast issues and computes the weighted
// accessibility score breakdown.
package score

import (
	"math"
	"sort"

	"github.com/chromalint/chromalint/internal/colour"
	"github.com/chromalint/chromalint/internal/contrast"
)

// DefaultMaxIssues caps the ranked issue list for reporting. (A,B) and
// (B,A) are distinct pairs algorithmically but one visual relationship,
// so the list is deduplicated before the cap is applied.
const DefaultMaxIssues = 15

// Fixed weights of the aggregate score.
const (
	weightContrast = 0.5
	weightReadable = 0.3
	weightContent  = 0.2
)

// pairKey identifies an unordered colour pair for deduplication.
type pairKey struct {
	a, b colour.RGB
}

func keyFor(issue contrast.Issue) pairKey {
	a, b := issue.Foreground, issue.Background
	// Order the two colours canonically so (A,B) and (B,A) collide.
	if a.Hex() > b.Hex() {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// RankIssues sorts issues ascending by minimum ratio (worst first),
// keeping generation order for ties, deduplicates by unordered colour
// pair (first occurrence wins) and truncates to limit. A limit of zero
// or less selects DefaultMaxIssues.
func RankIssues(issues []contrast.Issue, limit int) []contrast.Issue {
	if limit <= 0 {
		limit = DefaultMaxIssues
	}

	ranked := make([]contrast.Issue, len(issues))
	copy(ranked, issues)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MinRatio < ranked[j].MinRatio
	})

	seen := make(map[pairKey]struct{}, len(ranked))
	deduped := ranked[:0]
	for _, issue := range ranked {
		key := keyFor(issue)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, issue)
		if len(deduped) == limit {
			break
		}
	}
	return deduped
}

// ContrastScore maps issue density to a 0-100 sub-score:
// max(0, 100 - (issueCount/totalPairs)*100*0.6). An empty pair set is
// vacuously compliant and scores 100; there is no division by zero.
func ContrastScore(issueCount, totalPairs int) float64 {
	if totalPairs <= 0 {
		return 100
	}
	issuePct := float64(issueCount) / float64(totalPairs) * 100
	return math.Max(0, 100-issuePct*0.6)
}

// ReadabilityScore maps an optional Flesch reading-ease value to a
// 0-100 sub-score. A missing value leaves the sub-score untouched at
// 100 rather than guessing.
func ReadabilityScore(fleschEase *float64) float64 {
	if fleschEase == nil {
		return 100
	}
	switch {
	case *fleschEase < 50:
		return 60
	case *fleschEase < 65:
		return 80
	default:
		return 100
	}
}

// ContentScore maps extracted text length (in characters) to a 0-100
// sub-score.
func ContentScore(length int) float64 {
	switch {
	case length < 200:
		return 50
	case length < 1000:
		return 75
	default:
		return 100
	}
}

// Breakdown holds the three independent sub-scores and their fixed
// 50/30/20 weighted aggregate.
type Breakdown struct {
	Contrast       float64 `json:"contrast"`
	Readability    float64 `json:"readability"`
	ContentQuality float64 `json:"content_quality"`
	WeightedScore  float64 `json:"weighted_score"`
}

// NewBreakdown clamps each sub-score to [0,100] and computes the
// weighted aggregate. All values are rounded to 1 decimal place for
// display stability.
func NewBreakdown(contrastScore, readability, content float64) Breakdown {
	b := Breakdown{
		Contrast:       round1(clamp100(contrastScore)),
		Readability:    round1(clamp100(readability)),
		ContentQuality: round1(clamp100(content)),
	}
	weighted := b.Contrast*weightContrast + b.Readability*weightReadable + b.ContentQuality*weightContent
	b.WeightedScore = round1(clamp100(weighted))
	return b
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp100(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
