package analyze

import (
	"math"
	"strings"

	"github.com/jflowers/scrutiny/internal/metrics"
	"github.com/jflowers/scrutiny/internal/source"
)

// analyzeComplexity computes cyclomatic and cognitive complexity per
// method and the maintainability index for the whole file.
func analyzeComplexity(buf *source.Buffer, idx *source.Index) metrics.Complexity {
	m := metrics.Complexity{
		Cyclomatic: make(map[string]int),
		Cognitive:  make(map[string]int),
	}

	// An empty buffer has nothing to measure; every field stays at
	// zero rather than reporting the index of a vacuous file.
	if buf.Text == "" {
		return m
	}

	for name, body := range idx.Methods {
		m.Cyclomatic[name] = cyclomatic(body)
		m.Cognitive[name] = cognitive(body)
	}

	m.AvgCyclomatic, m.MaxCyclomatic = summarize(m.Cyclomatic)
	m.AvgCognitive, m.MaxCognitive = summarize(m.Cognitive)

	// MI = 171 - 5.2*ln(V) - 0.23*G - 16.2*ln(LOC), rescaled to
	// 0-100. Logarithm arguments are guarded to >= 1.
	loc := math.Max(float64(logicalLOC(buf)), 1)
	avgCC := math.Max(m.AvgCyclomatic, 1)
	tokens := math.Max(float64(distinctTokens(buf.Text)), 1)
	volume := loc * math.Log2(tokens)
	mi := 171 - 5.2*math.Log(math.Max(volume, 1)) - 0.23*avgCC - 16.2*math.Log(loc)
	m.MaintainabilityIndex = metrics.Round1(metrics.ClampPct(mi * 100 / 171))

	return m
}

// cyclomatic is 1 plus the count of decision points, each matched as
// a whole token. An else-if counts twice (once for the bare if, once
// as its own decision point), matching the calibrated formula.
func cyclomatic(body string) int {
	count := 1
	for _, p := range source.DecisionPoints {
		count += len(p.FindAllString(body, -1))
	}
	return count
}

// cognitive is a single forward pass over the body's lines with a
// nesting counter. The counter tracks lines, not braces: a
// nesting-increasing construct only raises the counter when its line
// also opens a block, and only a line consisting of a lone closing
// brace lowers it. Approximate by design.
func cognitive(body string) int {
	score := 0
	nesting := 0

	for _, line := range strings.Split(body, "\n") {
		stripped := strings.TrimSpace(line)

		if source.NestingIncrease.MatchString(stripped) {
			score += 1 + nesting
			if strings.Contains(stripped, "{") {
				nesting++
			}
		} else if source.NestingNeutral.MatchString(stripped) {
			score++
		}

		if stripped == "}" && nesting > 0 {
			nesting--
		}

		score += len(source.BoolOperator.FindAllString(stripped, -1))
	}
	return score
}

func summarize(values map[string]int) (avg float64, max int) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0
	for _, v := range values {
		sum += v
		if v > max {
			max = v
		}
	}
	return metrics.Round1(float64(sum) / float64(len(values))), max
}

func logicalLOC(buf *source.Buffer) int {
	loc := 0
	for _, line := range buf.Lines {
		if source.ClassifyLine(line) == source.LineLogical {
			loc++
		}
	}
	return loc
}

func distinctTokens(text string) int {
	seen := make(map[string]bool)
	for _, tok := range strings.Fields(text) {
		seen[tok] = true
	}
	return len(seen)
}
