/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package special implements the special functions needed by the
// discrete samplers. Functions are evaluated in float64 by truncated
// power series.
package special

import (
	"math"
)

// DefaultTerms is the number of series terms summed by BesselI
// when no other truncation is requested.
const DefaultTerms = 20

// BesselI approximates the modified Bessel function of the first kind
// I_order(x) by summing the first terms members of its power series
//
//	(x/2)^(2m+order) / (m! * (m+order)!),  m = 0, ..., terms-1.
//
// There is no convergence check, so accuracy degrades for large x or
// large order. If a term overflows float64, summation stops and the
// partial sum accumulated so far is returned together with
// truncated = true.
//
// Since I_{-n} = I_n for integer n, a negative order is evaluated
// as its absolute value.
func BesselI(order int, x float64, terms int) (value float64, truncated bool) {
	if order < 0 {
		order = -order
	}

	xHalf := x / 2
	// m! and (m+order)!, updated incrementally
	mFact := 1.0
	mOrderFact := factorial(order)

	res := 0.0
	for m := 0; m < terms; m++ {
		if m > 0 {
			mFact *= float64(m)
			mOrderFact *= float64(m + order)
		}

		numerator := math.Pow(xHalf, float64(2*m+order))
		denominator := mFact * mOrderFact
		if math.IsInf(numerator, 0) || math.IsInf(denominator, 0) {
			return res, true
		}
		res += numerator / denominator
	}

	return res, false
}

// factorial returns n! as float64. It overflows to +Inf for n > 170.
func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
