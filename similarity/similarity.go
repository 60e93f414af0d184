// Package similarity provides the string-similarity strategies used by the
// fuzzy fallback. Every strategy scores a candidate keyword against a target
// keyword in [0, 1], higher meaning more similar.
package similarity

import (
	"math"

	"github.com/hbollon/go-edlib"

	"github.com/gcbaptista/go-search-index/config"
	internalErrors "github.com/gcbaptista/go-search-index/internal/errors"
)

// Scorer scores how similar a candidate keyword is to a target keyword.
type Scorer interface {
	Score(candidate, target string) float64
}

// ScorerFunc adapts a plain function to the Scorer interface.
type ScorerFunc func(candidate, target string) float64

// Score calls f(candidate, target).
func (f ScorerFunc) Score(candidate, target string) float64 {
	return f(candidate, target)
}

// ForMetric returns the Scorer for a configured metric. It returns a nil
// Scorer and no error when the metric disables fuzzy matching.
func ForMetric(metric config.Metric) (Scorer, error) {
	switch metric {
	case "", config.MetricNone:
		return nil, nil
	case config.MetricLevenshtein:
		return ScorerFunc(LevenshteinSimilarity), nil
	case config.MetricDamerauLevenshtein:
		return ScorerFunc(DamerauLevenshteinSimilarity), nil
	case config.MetricOSADamerauLevenshtein:
		return edlibScorer(edlib.OSADamerauLevenshtein), nil
	case config.MetricLCS:
		return edlibScorer(edlib.Lcs), nil
	case config.MetricJaro:
		return edlibScorer(edlib.Jaro), nil
	case config.MetricJaroWinkler:
		return edlibScorer(edlib.JaroWinkler), nil
	case config.MetricSorensenDice:
		return edlibScorer(edlib.SorensenDice), nil
	case config.MetricJaccard:
		return edlibScorer(edlib.Jaccard), nil
	case config.MetricCosine:
		return edlibScorer(edlib.Cosine), nil
	case config.MetricQgram:
		return edlibScorer(edlib.Qgram), nil
	default:
		return nil, internalErrors.NewUnknownMetricError(string(metric))
	}
}

// edlibScorer delegates to go-edlib's normalized similarity for algorithms
// without a native implementation here.
func edlibScorer(algorithm edlib.Algorithm) Scorer {
	return ScorerFunc(func(candidate, target string) float64 {
		score, err := edlib.StringsSimilarity(candidate, target, algorithm)
		if err != nil {
			return 0
		}
		return clamp(float64(score))
	})
}

// clamp keeps a score within [0, 1]; NaN becomes 0.
func clamp(score float64) float64 {
	switch {
	case math.IsNaN(score):
		return 0
	case score < 0:
		return 0
	case score > 1:
		return 1
	}
	return score
}
