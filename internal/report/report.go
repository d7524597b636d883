// Package report runs the full contrast analysis pipeline and shapes
// the result for downstream consumers (JSON export, terminal output).
package report

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/chromalint/chromalint/internal/colour"
	"github.com/chromalint/chromalint/internal/contrast"
	"github.com/chromalint/chromalint/internal/score"
)

// Readability carries the optional signals supplied by the
// text-extraction collaborator. Nil fields mean "not measured".
type Readability struct {
	FleschEase *float64 `json:"flesch_ease"`
	FKGrade    *float64 `json:"fk_grade"`
}

// Options configures a single analysis run. Threshold is mandatory and
// must be positive; everything else has working defaults.
type Options struct {
	// Threshold is the contrast ratio floor (WCAG AA-large 3.0,
	// AA 4.5, AAA 7.0, or a custom value).
	Threshold float64

	// MaxColours caps the palette after deduplication (default 24).
	MaxColours int

	// MaxIssues caps the ranked issue list (default 15).
	MaxIssues int

	Readability   Readability
	ContentLength int
}

// IssueJSON is the interchange form of a ranked issue. Colours are
// uppercase #RRGGBB, ratios rounded to 2 decimal places.
type IssueJSON struct {
	Foreground         string            `json:"foreground"`
	Background         string            `json:"background"`
	Ratio              float64           `json:"ratio"`
	CBRatios           contrast.CBRatios `json:"cb_ratios"`
	MinRatio           float64           `json:"min_ratio"`
	ColorblindSpecific bool              `json:"colorblind_specific"`
}

// Report is the complete result of one analysis run. All entities are
// immutable values; nothing is retained between runs.
type Report struct {
	Threshold        float64         `json:"threshold"`
	Palette          []string        `json:"palette"`
	RequestedColours int             `json:"requested_colours"`
	TotalPairs       int             `json:"total_pairs"`
	IssueCount       int             `json:"issue_count"`
	RankedIssues     []IssueJSON     `json:"ranked_issues"`
	ScoreBreakdown   score.Breakdown `json:"score_breakdown"`
	Readability      Readability     `json:"readability"`
	AAAAudit         AAAAudit        `json:"aaa_audit"`
	Recommendations  []string        `json:"recommendations"`
}

// Analyze runs the whole pipeline over raw colour strings: normalize
// and deduplicate into a palette, generate ordered pairs with ratios
// under every vision mode, classify against the threshold, rank and
// deduplicate issues, and compute the weighted score breakdown.
func Analyze(logger hclog.Logger, raw []string, opts Options) (*Report, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	classifier, err := contrast.NewClassifier(opts.Threshold)
	if err != nil {
		return nil, fmt.Errorf("invalid analysis options: %w", err)
	}

	palette := colour.NewPalette(raw, opts.MaxColours)
	if skipped := palette.Requested() - palette.Len(); skipped > 0 {
		logger.Debug("palette reduced during normalization",
			"requested", palette.Requested(), "kept", palette.Len())
	}

	pairs := contrast.GeneratePairs(palette)
	eval := classifier.Evaluate(pairs)
	ranked := score.RankIssues(eval.Issues, opts.MaxIssues)

	logger.Debug("contrast evaluation complete",
		"pairs", eval.TotalPairs(), "issues", eval.IssueCount(), "threshold", opts.Threshold)

	breakdown := score.NewBreakdown(
		score.ContrastScore(eval.IssueCount(), eval.TotalPairs()),
		score.ReadabilityScore(opts.Readability.FleschEase),
		score.ContentScore(opts.ContentLength),
	)

	rankedJSON := make([]IssueJSON, len(ranked))
	for i, issue := range ranked {
		rankedJSON[i] = IssueJSON{
			Foreground:         issue.Foreground.Hex(),
			Background:         issue.Background.Hex(),
			Ratio:              issue.Ratio,
			CBRatios:           issue.CB,
			MinRatio:           issue.MinRatio,
			ColorblindSpecific: issue.ColorblindSpecific,
		}
	}

	return &Report{
		Threshold:        opts.Threshold,
		Palette:          palette.ToHex(),
		RequestedColours: palette.Requested(),
		TotalPairs:       eval.TotalPairs(),
		IssueCount:       eval.IssueCount(),
		RankedIssues:     rankedJSON,
		ScoreBreakdown:   breakdown,
		Readability:      opts.Readability,
		AAAAudit:         AuditAAA(eval.Pairs),
		Recommendations:  Recommendations(ranked, opts.Readability),
	}, nil
}

// ToJSON serializes the report for export and CI integration.
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
