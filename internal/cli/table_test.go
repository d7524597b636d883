package cli

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"FOREGROUND", "BACKGROUND", "RATIO"})
	table.AddRow("#777777", "#888888", "1.26")
	table.AddRow("#FFFFFF", "#000000", "21.00")

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, separator, 2 rows), got %d:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "FOREGROUND") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "----------") {
		t.Errorf("separator line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "#777777") || !strings.Contains(lines[2], "1.26") {
		t.Errorf("row line = %q", lines[2])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if got := NewTable(nil).Render(); got != "" {
		t.Errorf("empty table rendered %q", got)
	}
}

func TestTableShortRowsPadded(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"})
	table.AddRow("only")

	out := table.Render()
	if !strings.Contains(out, "only") {
		t.Errorf("short row lost its cell:\n%s", out)
	}
}

func TestTableWrapColumn(t *testing.T) {
	table := NewTable([]string{"#", "TEXT"})
	table.SetWrapColumn(1, 20)
	table.AddRow("1", "a recommendation that is far too long to fit on one line")

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header + separator + at least two wrapped lines.
	if len(lines) < 4 {
		t.Fatalf("expected wrapped output, got:\n%s", out)
	}
	for _, line := range lines[2:] {
		if len(strings.TrimRight(line, " ")) > 2+2+20 {
			t.Errorf("wrapped line too wide: %q", line)
		}
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{name: "fits", text: "short", width: 10, want: []string{"short"}},
		{name: "no limit", text: "anything at all", width: 0, want: []string{"anything at all"}},
		{name: "word boundaries", text: "one two three", width: 7, want: []string{"one two", "three"}},
		{name: "long word split", text: "abcdefghij", width: 4, want: []string{"abcd", "efgh", "ij"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapText() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("wrapText()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
