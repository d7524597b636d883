package contrast

import (
	"fmt"
)

// WCAG conformance thresholds.
const (
	ThresholdAALarge = 3.0
	ThresholdAA      = 4.5
	ThresholdAAA     = 7.0
)

// Issue is a pair that fails the threshold under at least one vision
// mode. ColorblindSpecific marks failures invisible to standard-vision
// review: the normal ratio passes but a deficiency ratio does not.
type Issue struct {
	Pair

	MinRatio           float64
	ColorblindSpecific bool
	Threshold          float64
}

// Classifier applies a contrast threshold to pairs. The threshold is
// always caller-supplied; there is no default.
type Classifier struct {
	threshold float64
}

// NewClassifier returns a classifier for the given threshold. A
// threshold of zero or less is a caller error: it would make every pair
// trivially compliant, so it is rejected up front instead of defaulted.
func NewClassifier(threshold float64) (*Classifier, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("contrast threshold must be positive, got %v", threshold)
	}
	return &Classifier{threshold: threshold}, nil
}

// Threshold returns the configured contrast threshold.
func (c *Classifier) Threshold() float64 {
	return c.threshold
}

// Classify reports whether the pair is an issue under the configured
// threshold. A pair is an issue iff its normal ratio or any
// deficiency-mode ratio falls below the threshold.
func (c *Classifier) Classify(p Pair) (Issue, bool) {
	cbFailed := p.CB.Protanopia < c.threshold ||
		p.CB.Deuteranopia < c.threshold ||
		p.CB.Tritanopia < c.threshold

	if p.Ratio >= c.threshold && !cbFailed {
		return Issue{}, false
	}

	return Issue{
		Pair:               p,
		MinRatio:           p.MinRatio(),
		ColorblindSpecific: p.Ratio >= c.threshold && cbFailed,
		Threshold:          c.threshold,
	}, true
}

// Evaluation summarises a classification run over a pair set.
type Evaluation struct {
	Pairs  []Pair
	Issues []Issue
}

// TotalPairs returns the number of evaluated pairs.
func (e Evaluation) TotalPairs() int {
	return len(e.Pairs)
}

// IssueCount returns the number of failing pairs.
func (e Evaluation) IssueCount() int {
	return len(e.Issues)
}

// Evaluate classifies every pair, preserving generation order in both
// the pair and issue lists. One failing pair never aborts the run.
func (c *Classifier) Evaluate(pairs []Pair) Evaluation {
	eval := Evaluation{Pairs: pairs}
	for _, p := range pairs {
		if issue, ok := c.Classify(p); ok {
			eval.Issues = append(eval.Issues, issue)
		}
	}
	return eval
}
