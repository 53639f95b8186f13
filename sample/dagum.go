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

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Dagum samples random values from the Dagum distribution with shape
// parameters A, P and scale parameter B, by inverse transform sampling
// over its closed-form CDF.
//
// The result is real and finite only for A, B, P > 0. Other parameters
// are not rejected: the sampler returns whatever the quantile function
// evaluates to and logs a warning if some of the values are not finite.
// Only A = 0 and P = 0, for which the quantile function is undefined,
// are refused, after the uniform values have been drawn.
type Dagum struct {
	A float64
	B float64
	P float64
}

// NewDagum returns an instance of Dagum sampler.
func NewDagum(a, b, p float64) *Dagum {
	return &Dagum{
		A: a,
		B: b,
		P: p,
	}
}

// Quantile maps u from (0, 1) to the value x with CDF(x) = u.
func (d *Dagum) Quantile(u float64) float64 {
	return d.B * math.Pow(math.Pow(u, -1/d.P)-1, -1/d.A)
}

// Sample draws n uniform values from src and maps each of them
// through the quantile function.
func (d *Dagum) Sample(src rand.Source, n int) ([]float64, error) {
	if err := checkSampleArgs(src, n); err != nil {
		return nil, err
	}

	uniform := distuv.Uniform{Min: 0, Max: 1, Src: src}
	u := make([]float64, n)
	for i := range u {
		u[i] = uniform.Rand()
	}

	// the uniforms are consumed from src even if the shape is invalid
	if d.A == 0 || d.P == 0 {
		return nil, errors.Wrapf(ErrParameter, "dagum shape parameters must be non-zero, got a=%g, p=%g", d.A, d.P)
	}

	res := make([]float64, n)
	for i := range res {
		res[i] = d.Quantile(u[i])
	}

	if bad := countNonFinite(res); bad > 0 {
		log.Warningf("dagum(a=%g, b=%g, p=%g): %d of %d samples are not finite", d.A, d.B, d.P, bad, n)
	}

	return res, nil
}
