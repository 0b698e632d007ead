// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"
)

// Square returns the corners of the unit square:
// (0,0), (0,1), (1,0), (1,1).
func Square() [][]float64 {
	return [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
}

// House returns five points shaped like a house: a roof apex at (0,3) over
// the corners (±1, 0) and (±1, 2).
func House() [][]float64 {
	return [][]float64{{0, 3}, {1, 2}, {1, 0}, {-1, 0}, {-1, 2}}
}

// Octahedron returns the six vertices ±e_i of the octahedron in ℝ³.
func Octahedron() [][]float64 {
	return [][]float64{
		{1, 0, 0}, {0, -1, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, 0, 1}, {0, 0, -1},
	}
}

// EquispacedCircle returns n points at angles 2πi/n on the unit circle.
func EquispacedCircle(n int) ([][]float64, error) {
	if n < 1 {
		return nil, builderErrorf(MethodEquispacedCircle, "n=%d", ErrBadSize, n)
	}
	pts := make([][]float64, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = []float64{math.Cos(theta), math.Sin(theta)}
	}

	return pts, nil
}

// RandomSphere returns n points drawn uniformly from the unit d-sphere in
// ℝ^(d+1). Requires WithSeed or WithRand.
func RandomSphere(n, d int, opts ...BuilderOption) ([][]float64, error) {
	if n < 1 || d < 0 {
		return nil, builderErrorf(MethodRandomSphere, "n=%d d=%d", ErrBadSize, n, d)
	}
	rng, err := newBuilderConfig(opts...).requireRand(MethodRandomSphere)
	if err != nil {
		return nil, err
	}
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = unitVector(rng, d+1)
	}

	return pts, nil
}

// Gaussian returns n standard normal points in ℝ^d. Requires WithSeed or
// WithRand.
func Gaussian(n, d int, opts ...BuilderOption) ([][]float64, error) {
	if n < 1 || d < 1 {
		return nil, builderErrorf(MethodGaussian, "n=%d d=%d", ErrBadSize, n, d)
	}
	rng, err := newBuilderConfig(opts...).requireRand(MethodGaussian)
	if err != nil {
		return nil, err
	}
	pts := make([][]float64, n)
	for i := range pts {
		pts[i] = normalVector(rng, d)
	}

	return pts, nil
}

// RandomTorus returns n points on the torus of tube radius r around a
// circle of radius R in ℝ³, with both angles uniform. Requires WithSeed or
// WithRand.
func RandomTorus(n int, r, R float64, opts ...BuilderOption) ([][]float64, error) {
	if n < 1 || !(r >= 0) || !(R >= 0) || math.IsInf(r, 0) || math.IsInf(R, 0) {
		return nil, builderErrorf(MethodRandomTorus, "n=%d r=%g R=%g", ErrBadSize, n, r, R)
	}
	rng, err := newBuilderConfig(opts...).requireRand(MethodRandomTorus)
	if err != nil {
		return nil, err
	}
	pts := make([][]float64, n)
	for i := range pts {
		u := rng.Float64() * 2 * math.Pi
		v := rng.Float64() * 2 * math.Pi
		ring := R + r*math.Cos(v)
		pts[i] = []float64{ring * math.Cos(u), ring * math.Sin(u), r * math.Sin(v)}
	}

	return pts, nil
}

// RandomFigure8 returns n points on two unit circles centred at (0, 1) and
// (0, -1): the first n/2 on the upper circle, the rest on the lower.
// Requires WithSeed or WithRand.
func RandomFigure8(n int, opts ...BuilderOption) ([][]float64, error) {
	if n < 1 {
		return nil, builderErrorf(MethodRandomFigure8, "n=%d", ErrBadSize, n)
	}
	rng, err := newBuilderConfig(opts...).requireRand(MethodRandomFigure8)
	if err != nil {
		return nil, err
	}
	pts := make([][]float64, n)
	for i := range pts {
		p := unitVector(rng, 2)
		if i < n/2 {
			p[1]++
		} else {
			p[1]--
		}
		pts[i] = p
	}

	return pts, nil
}

func normalVector(rng *rand.Rand, d int) []float64 {
	v := make([]float64, d)
	for i := range v {
		v[i] = rng.NormFloat64()
	}

	return v
}

// unitVector normalizes a standard normal draw, which is uniform on the
// sphere. The zero vector is redrawn.
func unitVector(rng *rand.Rand, d int) []float64 {
	for {
		v := normalVector(rng, d)
		var norm float64
		for _, x := range v {
			norm += x * x
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for i := range v {
			v[i] /= norm
		}

		return v
	}
}
