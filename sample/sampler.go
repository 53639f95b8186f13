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

	"github.com/fentec-project/synthgen/internal"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var log = logging.MustGetLogger("synthgen/sample")

// ErrParameter is returned when a sampler is constructed or invoked
// with arguments outside of its domain.
var ErrParameter = internal.ErrParameter

// ErrNumericInstability is returned when a probability mass function
// cannot be normalized.
var ErrNumericInstability = internal.ErrNumericInstability

// Sampler produces n variates of a probability distribution,
// drawing uniform randomness from src.
type Sampler interface {
	Sample(src rand.Source, n int) ([]float64, error)
}

// checkSampleArgs validates the arguments common to all samplers.
func checkSampleArgs(src rand.Source, n int) error {
	if src == nil {
		return errors.Wrap(ErrParameter, "random source is required")
	}
	if n <= 0 {
		return errors.Wrapf(ErrParameter, "sample count must be positive, got %d", n)
	}

	return nil
}

func countNonFinite(vec []float64) int {
	count := 0
	for _, x := range vec {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			count++
		}
	}

	return count
}
