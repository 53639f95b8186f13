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

package sample

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Discrete samples random values from a discrete probability
// distribution over a finite, ordered integer support. The probability
// mass function and its cumulative table are computed once, when the
// sampler is constructed, so that Sample merely searches the table.
type Discrete struct {
	support []int
	pmf     []float64
	cdf     []float64
}

// NewDiscrete returns an instance of Discrete sampler. mass[i] is the
// (not necessarily normalized) mass of support[i].
// It returns an error if any mass is not finite or if the masses sum
// to zero.
func NewDiscrete(support []int, mass []float64) (*Discrete, error) {
	if len(support) == 0 || len(support) != len(mass) {
		return nil, errors.Wrapf(ErrParameter, "support of %d points does not match %d masses", len(support), len(mass))
	}
	for i, m := range mass {
		if math.IsNaN(m) || math.IsInf(m, 0) {
			return nil, errors.Wrapf(ErrNumericInstability, "mass at %d is not finite", support[i])
		}
	}
	total := floats.Sum(mass)
	if total == 0 {
		return nil, errors.Wrap(ErrNumericInstability, "total mass is zero")
	}

	pmf := make([]float64, len(mass))
	copy(pmf, mass)
	floats.Scale(1/total, pmf)

	s := &Discrete{
		support: append([]int(nil), support...),
		pmf:     pmf,
		cdf:     floats.CumSum(make([]float64, len(pmf)), pmf),
	}

	return s, nil
}

// Support returns the support of the distribution in ascending order.
func (c *Discrete) Support() []int {
	return append([]int(nil), c.support...)
}

// PMF returns the normalized probability mass of each support point.
func (c *Discrete) PMF() []float64 {
	return append([]float64(nil), c.pmf...)
}

// CDF returns the cumulative mass up to and including each support point.
func (c *Discrete) CDF() []float64 {
	return append([]float64(nil), c.cdf...)
}

// Sample draws n values by inverse transform sampling: for every
// uniform u drawn from src it returns the first support point whose
// cumulative mass is at least u.
func (c *Discrete) Sample(src rand.Source, n int) ([]float64, error) {
	if err := checkSampleArgs(src, n); err != nil {
		return nil, err
	}

	uniform := distuv.Uniform{Min: 0, Max: 1, Src: src}
	last := len(c.cdf) - 1
	res := make([]float64, n)
	for i := range res {
		// find the precomputed value
		j := sort.SearchFloat64s(c.cdf, uniform.Rand())
		if j > last {
			// rounding left the last cumulative mass below u
			j = last
		}
		res[i] = float64(c.support[j])
	}

	return res, nil
}
