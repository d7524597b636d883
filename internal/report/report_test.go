package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chromalint/chromalint/internal/colour"
	"github.com/chromalint/chromalint/internal/contrast"
)

func TestAnalyzeRejectsMissingThreshold(t *testing.T) {
	for _, threshold := range []float64{0, -4.5} {
		if _, err := Analyze(nil, []string{"#FFFFFF", "#000000"}, Options{Threshold: threshold}); err == nil {
			t.Errorf("Analyze with threshold %v expected error, got nil", threshold)
		}
	}
}

func TestAnalyzeCompliantPalette(t *testing.T) {
	rep, err := Analyze(nil, []string{"#FFFFFF", "#000000"}, Options{Threshold: contrast.ThresholdAA})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if rep.TotalPairs != 2 {
		t.Errorf("TotalPairs = %d, want 2", rep.TotalPairs)
	}
	if rep.IssueCount != 0 {
		t.Errorf("IssueCount = %d, want 0", rep.IssueCount)
	}
	if len(rep.RankedIssues) != 0 {
		t.Errorf("RankedIssues = %v, want none", rep.RankedIssues)
	}
	if rep.ScoreBreakdown.Contrast != 100 {
		t.Errorf("contrast score = %v, want 100", rep.ScoreBreakdown.Contrast)
	}
	// No readability given (100), no content (50): 50 + 30 + 10.
	if rep.ScoreBreakdown.WeightedScore != 90 {
		t.Errorf("weighted score = %v, want 90", rep.ScoreBreakdown.WeightedScore)
	}

	wantPalette := []string{"#FFFFFF", "#000000"}
	if diff := cmp.Diff(wantPalette, rep.Palette); diff != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", diff)
	}

	// Both pairs sit at 21.0, comfortably AAA in every mode.
	if rep.AAAAudit.CompliantPairs != 2 || rep.AAAAudit.Percentage != 100 {
		t.Errorf("AAA audit = %+v, want full compliance", rep.AAAAudit)
	}
}

func TestAnalyzeLowContrastGreys(t *testing.T) {
	rep, err := Analyze(nil, []string{"#777777", "#888888"}, Options{
		Threshold:     contrast.ThresholdAA,
		ContentLength: 1500,
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if rep.TotalPairs != 2 || rep.IssueCount != 2 {
		t.Fatalf("pairs/issues = %d/%d, want 2/2", rep.TotalPairs, rep.IssueCount)
	}

	// Mirrored orderings collapse to one reported issue.
	if len(rep.RankedIssues) != 1 {
		t.Fatalf("RankedIssues = %d entries, want 1 after dedup", len(rep.RankedIssues))
	}
	iss := rep.RankedIssues[0]
	if iss.Foreground != "#777777" || iss.Background != "#888888" {
		t.Errorf("unexpected issue pair: %s on %s", iss.Foreground, iss.Background)
	}
	if iss.Ratio != 1.26 {
		t.Errorf("issue ratio = %v, want 1.26", iss.Ratio)
	}
	if iss.ColorblindSpecific {
		t.Error("low-contrast greys wrongly marked colorblind-specific")
	}

	// Every pair fails: 100 - 60 = 40 contrast, content 100, readability 100.
	if rep.ScoreBreakdown.Contrast != 40 {
		t.Errorf("contrast score = %v, want 40", rep.ScoreBreakdown.Contrast)
	}
	if rep.ScoreBreakdown.WeightedScore != 70 {
		t.Errorf("weighted score = %v, want 70", rep.ScoreBreakdown.WeightedScore)
	}

	if rep.AAAAudit.CompliantPairs != 0 {
		t.Errorf("AAA compliant pairs = %d, want 0", rep.AAAAudit.CompliantPairs)
	}
	if len(rep.AAAAudit.NeedsWork) != 2 {
		t.Fatalf("AAA needs-work = %d entries, want 2", len(rep.AAAAudit.NeedsWork))
	}
	if got := rep.AAAAudit.NeedsWork[0].Suggested.Foreground; got != "#000000" {
		t.Errorf("suggested foreground = %s, want #000000", got)
	}
}

func TestAnalyzeEmptyPalette(t *testing.T) {
	rep, err := Analyze(nil, []string{"bogus", "alsobad"}, Options{Threshold: contrast.ThresholdAA})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if rep.RequestedColours != 2 {
		t.Errorf("RequestedColours = %d, want 2", rep.RequestedColours)
	}
	if len(rep.Palette) != 0 {
		t.Errorf("Palette = %v, want empty", rep.Palette)
	}
	if rep.TotalPairs != 0 || rep.IssueCount != 0 {
		t.Errorf("pairs/issues = %d/%d, want 0/0", rep.TotalPairs, rep.IssueCount)
	}
	// Vacuously compliant.
	if rep.ScoreBreakdown.Contrast != 100 {
		t.Errorf("contrast score = %v, want 100", rep.ScoreBreakdown.Contrast)
	}
}

func TestAnalyzeReadabilitySignals(t *testing.T) {
	flesch := 42.0
	grade := 11.2
	rep, err := Analyze(nil, []string{"#FFFFFF", "#000000"}, Options{
		Threshold:     contrast.ThresholdAA,
		Readability:   Readability{FleschEase: &flesch, FKGrade: &grade},
		ContentLength: 2500,
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if rep.ScoreBreakdown.Readability != 60 {
		t.Errorf("readability score = %v, want 60", rep.ScoreBreakdown.Readability)
	}
	if rep.Readability.FleschEase == nil || *rep.Readability.FleschEase != 42.0 {
		t.Errorf("flesch ease not echoed: %+v", rep.Readability)
	}

	found := false
	for _, rec := range rep.Recommendations {
		if strings.Contains(rec, "Simplify text") {
			found = true
		}
	}
	if !found {
		t.Error("expected a simplify-text recommendation for low Flesch ease")
	}
}

// The serialized report must survive a JSON round trip unchanged.
func TestReportJSONRoundTrip(t *testing.T) {
	rep, err := Analyze(nil, []string{"#777777", "#888888", "#FF0000"}, Options{
		Threshold:     contrast.ThresholdAA,
		ContentLength: 500,
	})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	data, err := rep.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(*rep, decoded); diff != "" {
		t.Errorf("report changed across JSON round trip (-want +got):\n%s", diff)
	}
}

// Every palette colour serialized into a report must normalize back to
// itself: the interchange form is stable.
func TestReportPaletteRoundTrip(t *testing.T) {
	rep, err := Analyze(nil, []string{"#abc", "rgb(1, 2, 3)", "yellow"}, Options{Threshold: contrast.ThresholdAA})
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	for _, hex := range rep.Palette {
		c, ok := colour.Normalize(hex)
		if !ok {
			t.Fatalf("palette colour %q failed to normalize", hex)
		}
		if c.Hex() != hex {
			t.Errorf("round trip changed %q to %q", hex, c.Hex())
		}
	}
}
