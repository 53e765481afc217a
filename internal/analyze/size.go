package analyze

import (
	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

// analyzeSize classifies every line into exactly one of blank,
// comment, or logical, so the counts always partition the total.
func analyzeSize(buf *source.Buffer) metrics.Size {
	var m metrics.Size
	m.TotalLines = len(buf.Lines)

	for _, line := range buf.Lines {
		switch source.ClassifyLine(line) {
		case source.LineBlank:
			m.BlankLines++
		case source.LineComment:
			m.CommentLines++
		}
	}

	m.LogicalLOC = m.TotalLines - m.BlankLines - m.CommentLines
	if m.TotalLines > 0 {
		m.CommentRatio = metrics.Round1(float64(m.CommentLines) / float64(m.TotalLines) * 100)
	}
	return m
}
