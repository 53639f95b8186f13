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

// Normal samples random values from the Normal (Gaussian)
// probability distribution with mean Mu and standard deviation Sigma.
type Normal struct {
	Mu    float64
	Sigma float64
}

// NewNormal returns an instance of Normal sampler.
func NewNormal(mu, sigma float64) *Normal {
	return &Normal{
		Mu:    mu,
		Sigma: sigma,
	}
}

// Sample draws n normal variates from src.
// It returns an error if the standard deviation is negative.
// With Sigma = 0 every sample equals Mu.
func (c *Normal) Sample(src rand.Source, n int) ([]float64, error) {
	if err := checkSampleArgs(src, n); err != nil {
		return nil, err
	}
	if !(c.Sigma >= 0) {
		return nil, errors.Wrapf(ErrParameter, "normal standard deviation must be non-negative, got %g", c.Sigma)
	}

	dist := distuv.Normal{Mu: c.Mu, Sigma: c.Sigma, Src: src}
	res := make([]float64, n)
	for i := range res {
		res[i] = dist.Rand()
	}

	return res, nil
}
