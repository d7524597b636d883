package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Uses background colour with spaces for a solid block.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PairPreview renders a foreground/background sample ("Aa" text in the
// foreground colour over the background colour), the shape reviewers
// recognise from contrast checkers.
func PairPreview(fg, bg RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, bg.R, bg.G, bg.B, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)

	text := " Aa "
	if len(text) > width {
		text = text[:width]
	} else if len(text) < width {
		text += strings.Repeat(" ", width-len(text))
	}

	return bgSeq + fgSeq + text + ansiReset
}
