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

package data

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fentec-project/synthgen/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Vector wraps a slice of float64 elements. It holds the samples
// produced by a single sampler invocation.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(coordinates []float64) Vector {
	return Vector(coordinates)
}

// NewRandomVector returns a new Vector instance with len random
// elements sampled by the provided sample.Sampler, which draws from
// the stream src.
// Returns an error in case of sampling failure.
func NewRandomVector(len int, sampler sample.Sampler, src rand.Source) (Vector, error) {
	vec, err := sampler.Sample(src, len)
	if err != nil {
		return nil, err
	}

	v := NewVector(vec)
	if err := v.CheckLen(len); err != nil {
		return nil, errors.Wrap(err, "sampler returned a malformed vector")
	}

	return v, nil
}

// NewConstantVector returns a new Vector instance
// with all elements set to constant c.
func NewConstantVector(len int, c float64) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = c
	}

	return vec
}

// Copy creates a new vector with the same values
// of the entries.
func (v Vector) Copy() Vector {
	newVec := make(Vector, len(v))
	copy(newVec, v)

	return newVec
}

// Apply applies an element-wise function f to vector v.
// The result is returned in a new Vector.
func (v Vector) Apply(f func(float64) float64) Vector {
	res := make(Vector, len(v))

	for i, vi := range v {
		res[i] = f(vi)
	}

	return res
}

// CountNonFinite returns the number of elements of v that are
// NaN or infinite.
func (v Vector) CountNonFinite() int {
	count := 0
	for _, c := range v {
		if !isFinite(c) {
			count++
		}
	}

	return count
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// CheckLen checks whether vector v has exactly n elements.
func (v Vector) CheckLen(n int) error {
	if len(v) != n {
		return fmt.Errorf("vector has %d elements, expected %d", len(v), n)
	}

	return nil
}

// String produces a string representation of a vector.
func (v Vector) String() string {
	vStr := make([]string, len(v))
	for i, yi := range v {
		vStr[i] = strconv.FormatFloat(yi, 'g', -1, 64)
	}
	return "[" + strings.Join(vStr, " ") + "]"
}
