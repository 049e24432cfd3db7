// Package stats computes the correlation statistics and histogram binning
// behind the data visualisation screen.
package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ghssrc/survey-viewer/internal/model"
)

// SignificanceLevel is the alpha below which a correlation counts as
// statistically significant
const SignificanceLevel = 0.05

var (
	// ErrLengthMismatch is returned when the two series differ in length
	ErrLengthMismatch = errors.New("series have different lengths")

	// ErrTooFewSamples is returned when fewer than two pairs are given
	ErrTooFewSamples = errors.New("at least two pairs are required")

	// ErrConstantInput is returned when either series has zero variance
	ErrConstantInput = errors.New("series is constant; correlation is undefined")
)

// Pearson returns Pearson's correlation coefficient and its two-tailed
// p-value under the null hypothesis of no correlation. The p-value uses
// Student's t distribution with n-2 degrees of freedom.
func Pearson(x, y []float64) (model.Correlation, error) {
	if len(x) != len(y) {
		return model.Correlation{}, ErrLengthMismatch
	}
	n := len(x)
	if n < 2 {
		return model.Correlation{}, ErrTooFewSamples
	}
	if isConstant(x) || isConstant(y) {
		return model.Correlation{}, ErrConstantInput
	}

	r := clamp(stat.Correlation(x, y, nil), -1, 1)
	return model.Correlation{R: r, P: pValue(r, n), N: n}, nil
}

// PearsonSample runs Pearson over a sample's paired series
func PearsonSample(s *model.Sample) (model.Correlation, error) {
	return Pearson(s.X, s.Y)
}

func pValue(r float64, n int) float64 {
	// Two points always lie on a line.
	if n == 2 {
		return 1
	}
	if math.Abs(r) == 1 {
		return 0
	}

	df := float64(n - 2)
	t := r * math.Sqrt(df/(1-r*r))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return clamp(2*dist.Survival(math.Abs(t)), 0, 1)
}

func isConstant(v []float64) bool {
	return floats.Min(v) == floats.Max(v)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
