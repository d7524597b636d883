package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/chromalint/chromalint/internal/colour"
	"github.com/chromalint/chromalint/internal/contrast"
	"github.com/chromalint/chromalint/internal/report"
)

var (
	// Check command flags
	checkLevel         string
	checkThreshold     float64
	checkInput         string
	checkFormat        string
	checkOutput        string
	checkMaxIssues     int
	checkMaxColours    int
	checkPreview       bool
	checkFleschEase    float64
	checkFKGrade       float64
	checkContentLength int
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [colour...]",
	Short: "Check a colour palette for WCAG contrast compliance",
	Long: `Check a colour palette for WCAG contrast compliance.

Colours are given as arguments or read from a file (one per line, blank
lines and // comments ignored). Accepted forms: hex (#RGB, #RRGGBB,
#RRGGBBAA), rgb()/rgba() notation, and common CSS colour names.
Unparseable colours are skipped, never replaced with a default.

Every ordered foreground/background pair is rated under normal vision
and under simulated protanopia, deuteranopia and tritanopia. Pairs that
fall below the threshold in any mode are reported as issues, worst
first.

Examples:
  # Check three colours against WCAG AA (4.5:1)
  chromalint check "#FFFFFF" "#777777" "#1A2B3C"

  # Large-text threshold (3.0:1), JSON output
  chromalint check --level aa-large --format json "#EEE" "#DDD" white

  # Custom threshold, colours from a file, top 30 issues
  chromalint check --threshold 5.0 --input palette.txt --max-issues 30

  # Include collaborator readability signals in the score
  chromalint check --input palette.txt --flesch-ease 62.5 --content-length 3400`,
	RunE: runCheck,
}

func init() {
	registerCheckFlags(checkCmd.Flags())
}

// registerCheckFlags defines the check command's flag surface.
func registerCheckFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&checkLevel, "level", "l", "aa", "WCAG conformance level (aa, aa-large, aaa)")
	fs.Float64VarP(&checkThreshold, "threshold", "t", 0, "custom contrast ratio floor (overrides --level)")
	fs.StringVarP(&checkInput, "input", "i", "", "read colours from a file (one per line)")
	fs.StringVarP(&checkFormat, "format", "f", "table", "output format (table, json)")
	fs.StringVarP(&checkOutput, "output", "o", "", "output file (default: stdout)")
	fs.IntVar(&checkMaxIssues, "max-issues", 0, "ranked issue cap (default 15)")
	fs.IntVar(&checkMaxColours, "max-colours", 0, "palette size cap after deduplication (default 24)")
	fs.BoolVar(&checkPreview, "preview", false, "show colour previews in terminal")
	fs.Float64Var(&checkFleschEase, "flesch-ease", 0, "Flesch reading-ease of the page text, if measured")
	fs.Float64Var(&checkFKGrade, "fk-grade", 0, "Flesch-Kincaid grade of the page text, if measured")
	fs.IntVar(&checkContentLength, "content-length", 0, "character count of the extracted page text")
}

// resolveThreshold maps the conformance level to a ratio floor unless a
// custom threshold was given explicitly.
func resolveThreshold(cmd *cobra.Command) (float64, error) {
	if cmd.Flags().Changed("threshold") {
		return checkThreshold, nil
	}
	switch checkLevel {
	case "aa":
		return contrast.ThresholdAA, nil
	case "aa-large":
		return contrast.ThresholdAALarge, nil
	case "aaa":
		return contrast.ThresholdAAA, nil
	default:
		return 0, fmt.Errorf("invalid conformance level: %s (valid: aa, aa-large, aaa)", checkLevel)
	}
}

// readColoursFile reads one colour per line, skipping blanks and
// comment lines.
func readColoursFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var colours []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#!") || strings.HasPrefix(line, "//") {
			continue
		}
		// A lone "#" prefix is a hex colour, not a comment; comments
		// use "//" or "#!".
		colours = append(colours, line)
	}
	return colours, nil
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command, args []string) error {
	colours := args
	if checkInput != "" {
		fromFile, err := readColoursFile(checkInput)
		if err != nil {
			return fmt.Errorf("failed to read colour file: %w", err)
		}
		colours = append(colours, fromFile...)
	}
	if len(colours) == 0 {
		return fmt.Errorf("no colours given: pass them as arguments or via --input")
	}

	threshold, err := resolveThreshold(cmd)
	if err != nil {
		return err
	}

	opts := report.Options{
		Threshold:     threshold,
		MaxColours:    checkMaxColours,
		MaxIssues:     checkMaxIssues,
		ContentLength: checkContentLength,
	}
	if cmd.Flags().Changed("flesch-ease") {
		fe := checkFleschEase
		opts.Readability.FleschEase = &fe
	}
	if cmd.Flags().Changed("fk-grade") {
		fk := checkFKGrade
		opts.Readability.FKGrade = &fk
	}

	log.Debug("starting analysis", "colours", len(colours), "threshold", threshold)

	rep, err := report.Analyze(log, colours, opts)
	if err != nil {
		return err
	}

	var output string
	switch checkFormat {
	case "json":
		jsonBytes, err := rep.ToJSON()
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		output = string(jsonBytes) + "\n"
	case "table":
		output = renderReport(rep, previewEnabled())
	default:
		return fmt.Errorf("unsupported format: %s (supported: table, json)", checkFormat)
	}

	if checkOutput != "" {
		if err := os.WriteFile(checkOutput, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Debug("report written", "path", checkOutput)
		return nil
	}

	fmt.Print(output)
	return nil
}

// previewEnabled reports whether ANSI swatches should be rendered:
// only when requested and stdout is a terminal (or output is piped to
// a file, where escapes would just be noise).
func previewEnabled() bool {
	if !checkPreview || checkOutput != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// terminalWidth returns the stdout width, or a conservative default
// when stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 100
}

// renderReport formats a report for terminal display.
func renderReport(rep *report.Report, preview bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Palette: %d colours (%d supplied)\n", len(rep.Palette), rep.RequestedColours)
	if preview {
		for _, hex := range rep.Palette {
			if c, ok := colour.Normalize(hex); ok {
				fmt.Fprintf(&b, "  %s %s\n", colour.Preview(c, 6), hex)
			}
		}
	} else {
		fmt.Fprintf(&b, "  %s\n", strings.Join(rep.Palette, " "))
	}

	fmt.Fprintf(&b, "\nThreshold: %g:1   Pairs: %d   Issues: %d\n",
		rep.Threshold, rep.TotalPairs, rep.IssueCount)

	if len(rep.RankedIssues) > 0 {
		b.WriteString("\n")
		// ANSI escapes would skew the table's width arithmetic, so
		// previews get a free-form listing instead.
		if preview {
			for _, issue := range rep.RankedIssues {
				fg, okFg := colour.Normalize(issue.Foreground)
				bg, okBg := colour.Normalize(issue.Background)
				sample := ""
				if okFg && okBg {
					sample = colour.PairPreview(fg, bg, 6) + " "
				}
				fmt.Fprintf(&b, "  %s%s on %s  ratio %.2f  min %.2f  cb-only %s\n",
					sample, issue.Foreground, issue.Background,
					issue.Ratio, issue.MinRatio, boolMark(issue.ColorblindSpecific))
			}
		} else {
			table := NewTable([]string{"FOREGROUND", "BACKGROUND", "RATIO", "PROT", "DEUT", "TRIT", "MIN", "CB-ONLY"})
			for _, issue := range rep.RankedIssues {
				table.AddRow(
					issue.Foreground,
					issue.Background,
					fmt.Sprintf("%.2f", issue.Ratio),
					fmt.Sprintf("%.2f", issue.CBRatios.Protanopia),
					fmt.Sprintf("%.2f", issue.CBRatios.Deuteranopia),
					fmt.Sprintf("%.2f", issue.CBRatios.Tritanopia),
					fmt.Sprintf("%.2f", issue.MinRatio),
					boolMark(issue.ColorblindSpecific),
				)
			}
			b.WriteString(table.Render())
		}
	}

	fmt.Fprintf(&b, "\nScores (50/30/20 weighting):\n")
	fmt.Fprintf(&b, "  Contrast:        %5.1f\n", rep.ScoreBreakdown.Contrast)
	fmt.Fprintf(&b, "  Readability:     %5.1f\n", rep.ScoreBreakdown.Readability)
	fmt.Fprintf(&b, "  Content quality: %5.1f\n", rep.ScoreBreakdown.ContentQuality)
	fmt.Fprintf(&b, "  Overall:         %5.1f\n", rep.ScoreBreakdown.WeightedScore)

	fmt.Fprintf(&b, "\nAAA (7.0:1) readiness: %d of %d pairs (%.1f%%)\n",
		rep.AAAAudit.CompliantPairs, rep.AAAAudit.TotalPairs, rep.AAAAudit.Percentage)

	if len(rep.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		recTable := NewTable([]string{"#", "RECOMMENDATION"})
		wrapAt := terminalWidth() - 8
		if wrapAt < 40 {
			wrapAt = 40
		}
		recTable.SetWrapColumn(1, wrapAt)
		for i, rec := range rep.Recommendations {
			recTable.AddRow(fmt.Sprintf("%d", i+1), rec)
		}
		b.WriteString(recTable.Render())
	}

	return b.String()
}

func boolMark(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
