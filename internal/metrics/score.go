package metrics

// Per-category deduction caps for the composite score. A category's
// deduction never exceeds its cap no matter how extreme the raw
// metric, which keeps the score total and monotonic.
const (
	capComplexity  = 20
	capSmells      = 15
	capDuplication = 15
	capConventions = 10
	capLongTests   = 10
	capLowAAA      = 10
	capSyntax      = 10
	capFramework   = 10
)

// Score computes the composite quality score from a perfect 100 by
// capped additive deduction. It is a total function: a zero or
// missing sub-metric contributes zero penalty.
func Score(r *Report) int {
	score := 100.0

	if r.Complexity.AvgCyclomatic > 10 {
		score -= minf(capComplexity, (r.Complexity.AvgCyclomatic-10)*2)
	}

	score -= minf(capSmells, float64(r.CodeSmells.SmellCount*3))
	score -= minf(capDuplication, r.Duplication.DuplicatePercentage)
	score -= minf(capConventions, float64(r.Conventions.ViolationCount))
	score -= minf(capLongTests, float64(r.Test.LongTestCount*2))

	if r.Test.AAAPercentage < 50 {
		score -= capLowAAA
	}

	score -= minf(capSyntax, float64(r.Syntax.SyntaxErrors*5))
	score -= minf(capFramework, float64(r.Framework.KeywordViolations*2))

	return int(ClampPct(score))
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
