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
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Exponential samples random values from the exponential distribution
// with the given Rate, i.e. with mean 1/Rate.
type Exponential struct {
	Rate float64
}

// NewExponential returns an instance of Exponential sampler.
func NewExponential(rate float64) *Exponential {
	return &Exponential{Rate: rate}
}

// Sample draws n exponential variates from src.
// It returns an error if the rate is not positive.
func (e *Exponential) Sample(src rand.Source, n int) ([]float64, error) {
	if err := checkSampleArgs(src, n); err != nil {
		return nil, err
	}
	if !(e.Rate > 0) {
		return nil, errors.Wrapf(ErrParameter, "exponential rate must be positive, got %g", e.Rate)
	}

	dist := distuv.Exponential{Rate: e.Rate, Src: src}
	res := make([]float64, n)
	for i := range res {
		res[i] = dist.Rand()
	}

	return res, nil
}
