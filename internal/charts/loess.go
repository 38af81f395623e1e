package charts

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// TrendPoint is one sample of the smoothed trend curve
type TrendPoint struct {
	X float64
	Y float64
}

// Loess computes a locally-weighted regression curve over the given samples.
// bandwidth is the fraction of samples weighted into each local fit (0,1].
// The curve is evaluated at every distinct x, returned in ascending x order.
func Loess(xs, ys []float64, bandwidth float64) []TrendPoint {
	n := len(xs)
	if n == 0 || n != len(ys) {
		return nil
	}

	samples := make([]TrendPoint, n)
	for i := range xs {
		samples[i] = TrendPoint{X: xs[i], Y: ys[i]}
	}
	sort.Slice(samples, func(i, j int) bool { return samples[i].X < samples[j].X })

	window := int(math.Ceil(bandwidth * float64(n)))
	if window < 2 {
		window = 2
	}
	if window > n {
		window = n
	}

	var curve []TrendPoint
	for i := 0; i < n; i++ {
		// Skip duplicate x positions so the curve stays a function of x
		if i > 0 && samples[i].X == samples[i-1].X {
			continue
		}
		curve = append(curve, TrendPoint{
			X: samples[i].X,
			Y: localFit(samples, i, window),
		})
	}
	return curve
}

// localFit evaluates the tricube-weighted linear fit centered on samples[i]
func localFit(samples []TrendPoint, i, window int) float64 {
	n := len(samples)
	x0 := samples[i].X

	// Slide the window over the nearest neighbors by x-distance
	lo, hi := i, i
	for hi-lo+1 < window {
		switch {
		case lo == 0:
			hi++
		case hi == n-1:
			lo--
		case x0-samples[lo-1].X <= samples[hi+1].X-x0:
			lo--
		default:
			hi++
		}
	}

	dmax := math.Max(x0-samples[lo].X, samples[hi].X-x0)
	xs := make([]float64, 0, hi-lo+1)
	ys := make([]float64, 0, hi-lo+1)
	weights := make([]float64, 0, hi-lo+1)
	for j := lo; j <= hi; j++ {
		w := 1.0
		if dmax > 0 {
			d := math.Abs(samples[j].X-x0) / dmax
			w = math.Pow(1-math.Pow(d, 3), 3)
		}
		if w <= 0 {
			continue
		}
		xs = append(xs, samples[j].X)
		ys = append(ys, samples[j].Y)
		weights = append(weights, w)
	}

	// Degenerate window (all points at x0): weighted mean
	if dmax == 0 || len(xs) < 2 {
		return weightedMean(ys, weights)
	}

	alpha, beta := stat.LinearRegression(xs, ys, weights, false)
	if math.IsNaN(alpha) || math.IsNaN(beta) {
		return weightedMean(ys, weights)
	}
	return alpha + beta*x0
}

func weightedMean(ys, weights []float64) float64 {
	var sum, wsum float64
	for i, y := range ys {
		sum += weights[i] * y
		wsum += weights[i]
	}
	if wsum == 0 {
		return 0
	}
	return sum / wsum
}
