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

	"github.com/fentec-project/synthgen/special"
	"github.com/pkg/errors"
)

// Bounds of the support over which the Skellam distribution is
// tabulated. Mass outside of [SkellamSupportMin, SkellamSupportMax]
// is ignored.
const (
	SkellamSupportMin = -30
	SkellamSupportMax = 30
)

// Skellam samples random values from the Skellam distribution, the
// distribution of the difference of two independent Poisson variables
// with means Mu1 and Mu2. Values are restricted to the support
// [SkellamSupportMin, SkellamSupportMax].
type Skellam struct {
	*Discrete
	Mu1 float64
	Mu2 float64
}

// NewSkellam returns an instance of Skellam sampler. The probability
// mass function is computed when this function is called.
// It returns an error wrapping ErrNumericInstability if the parameters
// do not yield a finite, non-zero mass.
func NewSkellam(mu1, mu2 float64) (*Skellam, error) {
	support, mass, truncated := SkellamMass(mu1, mu2)
	if truncated {
		log.Warningf("skellam(mu1=%g, mu2=%g): Bessel series truncated on overflow", mu1, mu2)
	}

	d, err := NewDiscrete(support, mass)
	if err != nil {
		return nil, errors.Wrapf(err, "skellam(mu1=%g, mu2=%g)", mu1, mu2)
	}

	return &Skellam{
		Discrete: d,
		Mu1:      mu1,
		Mu2:      mu2,
	}, nil
}

// SkellamMass returns the support of the Skellam sampler together with
// the unnormalized mass of each point,
//
//	exp(-(mu1+mu2)) * (mu1/mu2)^(k/2) * I_|k|(2*sqrt(mu1*mu2)).
//
// Divisions by zero and invalid operations are not reported, they
// yield non-finite masses. truncated is true if any Bessel series was
// cut short by an overflow.
func SkellamMass(mu1, mu2 float64) (support []int, mass []float64, truncated bool) {
	x := 2 * math.Sqrt(mu1*mu2)
	scale := math.Exp(-(mu1 + mu2))
	ratio := mu1 / mu2

	n := SkellamSupportMax - SkellamSupportMin + 1
	support = make([]int, n)
	mass = make([]float64, n)
	for i := range support {
		k := SkellamSupportMin + i
		order := k
		if order < 0 {
			order = -order
		}

		bessel, trunc := special.BesselI(order, x, special.DefaultTerms)
		truncated = truncated || trunc

		support[i] = k
		mass[i] = scale * math.Pow(ratio, float64(k)/2) * bessel
	}

	return support, mass, truncated
}
