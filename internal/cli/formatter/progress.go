package formatter

import (
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// ScoreBar renders an alignment score out of 10 as a bar like
// [██████░░░░]. Green from 7, yellow from 4, red below.
func ScoreBar(score float64, width int) string {
	width = max(width, 2)
	pct := min(max(score/10, 0), 1)

	filled := min(int(pct*float64(width)+0.5), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case score < 4:
		style = StyleRed
	case score < 7:
		style = StyleYellow
	}
	return "[" + style.Render(bar) + "]"
}
