package report

import (
	"fmt"
	"math"

	"github.com/chromalint/chromalint/internal/colour"
	"github.com/chromalint/chromalint/internal/contrast"
)

// SuggestForeground returns an accessible text colour for the given
// background. Black or white is returned if either reaches the desired
// ratio (black preferred); otherwise whichever of the two contrasts
// more.
func SuggestForeground(bg colour.RGB, desiredRatio float64) colour.RGB {
	black := colour.ContrastRatio(bg, colour.Black)
	white := colour.ContrastRatio(bg, colour.White)
	if black >= desiredRatio {
		return colour.Black
	}
	if white >= desiredRatio {
		return colour.White
	}
	if black > white {
		return colour.Black
	}
	return colour.White
}

// AAASuggestion pairs a failing combination with a foreground that
// would bring it closer to AAA.
type AAASuggestion struct {
	Current   IssueJSON `json:"current"`
	Suggested struct {
		Foreground string  `json:"foreground"`
		Background string  `json:"background"`
		Ratio      float64 `json:"ratio"`
	} `json:"suggested"`
}

// AAAAudit summarises how much of the pair set already meets the AAA
// (7.0:1) standard under every vision mode.
type AAAAudit struct {
	CompliantPairs int             `json:"compliant_pairs"`
	TotalPairs     int             `json:"total_pairs"`
	Percentage     float64         `json:"percentage"`
	NeedsWork      []AAASuggestion `json:"needs_work"`
}

// maxAAASuggestions caps the needs-work list to keep reports readable.
const maxAAASuggestions = 15

// AuditAAA evaluates every pair against the AAA threshold, counting
// the fully compliant ones and suggesting replacement foregrounds for
// the rest.
func AuditAAA(pairs []contrast.Pair) AAAAudit {
	audit := AAAAudit{TotalPairs: len(pairs)}
	if len(pairs) == 0 {
		return audit
	}

	for _, p := range pairs {
		if p.MinRatio() >= contrast.ThresholdAAA {
			audit.CompliantPairs++
			continue
		}
		if len(audit.NeedsWork) >= maxAAASuggestions {
			continue
		}

		suggested := SuggestForeground(p.Background, contrast.ThresholdAAA)
		s := AAASuggestion{
			Current: IssueJSON{
				Foreground: p.Foreground.Hex(),
				Background: p.Background.Hex(),
				Ratio:      p.Ratio,
				CBRatios:   p.CB,
				MinRatio:   p.MinRatio(),
			},
		}
		s.Suggested.Foreground = suggested.Hex()
		s.Suggested.Background = p.Background.Hex()
		s.Suggested.Ratio = colour.ContrastRatio(suggested, p.Background)
		audit.NeedsWork = append(audit.NeedsWork, s)
	}

	audit.Percentage = math.Round(float64(audit.CompliantPairs)/float64(len(pairs))*1000) / 10
	return audit
}

// generalAdvice is appended to every recommendation list; these hold
// regardless of what the contrast analysis found.
var generalAdvice = []string{
	"Ensure all images have descriptive alt text for screen readers",
	"Use semantic HTML5 elements (header, nav, main, footer) for better structure",
	"Maintain minimum font size of 16px for body text",
	"Use line-height between 1.5-1.6 for optimal readability",
	"Ensure interactive elements have focus indicators for keyboard navigation",
}

// Recommendations renders human-readable advice from the ranked issue
// list plus readability signals. Issues are expected to be ranked and
// deduplicated already (worst first).
func Recommendations(ranked []contrast.Issue, readability Readability) []string {
	var recs []string

	for _, issue := range ranked {
		suggested := SuggestForeground(issue.Background, issue.Threshold)
		recs = append(recs, fmt.Sprintf("Improve contrast: %s on %s (current: %g:1) - use %s",
			issue.Foreground.Hex(), issue.Background.Hex(), issue.Ratio, suggested.Hex()))
	}

	recs = append(recs, generalAdvice[0], generalAdvice[1])

	if readability.FleschEase != nil {
		fe := *readability.FleschEase
		if fe < 50 {
			recs = append(recs, "Simplify text: use shorter sentences and common words for better readability")
		} else if fe < 65 {
			recs = append(recs, "Break up long paragraphs and add clear subheadings")
		}
	}

	recs = append(recs, generalAdvice[2:]...)
	return recs
}
