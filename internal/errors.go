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

package internal

import (
	"github.com/pkg/errors"
)

// ErrConfigParse is returned when a configuration cannot be interpreted.
// It is the only error class that aborts a whole generation run.
var ErrConfigParse = errors.New("malformed configuration")

// ErrUnsupportedDistribution is returned for a distribution name
// that does not map to any known sampler.
var ErrUnsupportedDistribution = errors.New("unsupported distribution")

// ErrParameter is returned when a distribution parameter is not numeric,
// the number of parameters does not match the distribution, or a sampler
// detects a violation of its domain.
var ErrParameter = errors.New("invalid distribution parameter")

// ErrNumericInstability is returned when a numerically built probability
// mass function is not finite or has zero total mass.
var ErrNumericInstability = errors.New("numerically unstable distribution")

// Recoverable reports whether err affects a single distribution request
// only, so that generation of the remaining requests can continue.
func Recoverable(err error) bool {
	return errors.Is(err, ErrUnsupportedDistribution) ||
		errors.Is(err, ErrParameter) ||
		errors.Is(err, ErrNumericInstability)
}
