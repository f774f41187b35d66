// seehuhn.de/go/surface - B-spline surface rendering
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package surface

import "fmt"

// KnotVector is a non-decreasing sequence of parameter values.
type KnotVector []float64

// BuildKnots returns the clamped knot vector for n+1 control points and
// basis order t.  The result has length n+t+1.  The first t entries are 0,
// the last t entries are n+2-t, and the interior entries increase by one.
//
// BuildKnots panics unless t >= 1 and n >= t-1.
func BuildKnots(n, t int) KnotVector {
	if t < 1 || n < t-1 {
		panic(fmt.Sprintf("surface.BuildKnots: invalid n=%d, t=%d", n, t))
	}

	knots := make(KnotVector, n+t+1)
	for j := range knots {
		switch {
		case j < t:
			knots[j] = 0
		case j <= n:
			knots[j] = float64(j + 1 - t)
		default:
			knots[j] = float64(n + 2 - t)
		}
	}
	return knots
}

// Domain returns the first and the last knot value.
func (k KnotVector) Domain() (lo, hi float64) {
	return k[0], k[len(k)-1]
}

// Blend evaluates the order-t B-spline basis function of control point k at
// parameter v, using the Cox-de Boor recursion.
//
// For t == 1 the result is 1 on the half-open interval [knots[k], knots[k+1])
// and 0 elsewhere.  For t > 1 the two lower order terms are weighted by
// (v-knots[k])/(knots[k+t-1]-knots[k]) and
// (knots[k+t]-v)/(knots[k+t]-knots[k+1]); a term whose denominator is zero
// contributes nothing.
//
// Blend panics if t < 1 or if knots is empty.
func Blend(k, t int, knots KnotVector, v float64) float64 {
	if t < 1 || len(knots) == 0 {
		panic(fmt.Sprintf("surface.Blend: invalid order %d with %d knots", t, len(knots)))
	}
	return blend(k, t, knots, v)
}

func blend(k, t int, u KnotVector, v float64) float64 {
	if t == 1 {
		if u[k] <= v && v < u[k+1] {
			return 1
		}
		return 0
	}

	var value float64
	if d := u[k+t-1] - u[k]; d != 0 {
		value += (v - u[k]) / d * blend(k, t-1, u, v)
	}
	if d := u[k+t] - u[k+1]; d != 0 {
		value += (u[k+t] - v) / d * blend(k+1, t-1, u, v)
	}
	return value
}
