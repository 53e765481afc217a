package analyze

import (
	"strings"

	"github.com/jflowers/scrutiny/internal/config"
	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

// analyzeDuplication counts exact-text recurrence of meaningful
// lines. Line-level and case-sensitive: coarser than token or AST
// clone detection, which is the intended tradeoff.
func analyzeDuplication(buf *source.Buffer, t config.Thresholds) metrics.Duplication {
	var m metrics.Duplication

	var meaningful []string
	for _, line := range buf.Lines {
		stripped := strings.TrimSpace(line)
		if isMeaningful(line, stripped, t.MeaningfulLineLength) {
			meaningful = append(meaningful, stripped)
		}
	}

	counts := make(map[string]int)
	for _, line := range meaningful {
		counts[line]++
	}

	// First-seen order keeps the sample list deterministic.
	seen := make(map[string]bool)
	for _, line := range meaningful {
		if counts[line] > 1 && !seen[line] {
			seen[line] = true
			m.DuplicateSegments++
			m.DuplicateLines += counts[line] - 1
			if len(m.DuplicatedBlocks) < 5 {
				m.DuplicatedBlocks = append(m.DuplicatedBlocks, line)
			}
		}
	}

	m.DuplicatePercentage = metrics.Round1(
		float64(m.DuplicateLines) / float64(maxInt(len(meaningful), 1)) * 100)
	return m
}

// isMeaningful filters out short, comment, import/package, and
// structural noise lines.
func isMeaningful(line, stripped string, minLen int) bool {
	if len(stripped) <= minLen {
		return false
	}
	if source.IsCommentLine(line) {
		return false
	}
	if strings.HasPrefix(stripped, "import") || strings.HasPrefix(stripped, "package") {
		return false
	}
	switch stripped {
	case "{", "}", "});", "":
		return false
	}
	return true
}
