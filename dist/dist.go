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

// Package dist maps distribution names, as written in configuration
// files, to samplers of package sample.
//
// The set of distributions is closed: every supported distribution is
// one Kind value, and New switches over all of them. Names are mapped
// to kinds by ParseKind, which is the only place where an unknown name
// is detected.
package dist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fentec-project/synthgen/data"
	"github.com/fentec-project/synthgen/internal"
	"github.com/fentec-project/synthgen/sample"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrUnsupportedDistribution is returned for names that do not
// denote a supported distribution.
var ErrUnsupportedDistribution = internal.ErrUnsupportedDistribution

// ErrParameter is returned for non-numeric parameters and for a wrong
// number of parameters.
var ErrParameter = internal.ErrParameter

// Kind identifies a supported distribution.
type Kind int

const (
	// Dagum is the Dagum distribution with parameters (a, b, p).
	Dagum Kind = iota
	// Skellam is the Skellam distribution with parameters (mu1, mu2).
	Skellam
	// Exponential is the exponential distribution with parameter (lambda).
	Exponential
	// Gaussian is the normal distribution with parameters (mu, sigma).
	Gaussian
)

// Kinds lists all supported distributions.
var Kinds = []Kind{Dagum, Skellam, Exponential, Gaussian}

var kindNames = map[string]Kind{
	"dag":         Dagum,
	"dagum":       Dagum,
	"ske":         Skellam,
	"skellam":     Skellam,
	"exp":         Exponential,
	"exponential": Exponential,
	"gau":         Gaussian,
	"gaussian":    Gaussian,
	"normal":      Gaussian,
}

// ParseKind returns the Kind denoted by name, ignoring case.
func ParseKind(name string) (Kind, error) {
	k, ok := kindNames[strings.ToLower(name)]
	if !ok {
		return 0, errors.Wrapf(ErrUnsupportedDistribution, "%q", name)
	}

	return k, nil
}

func (k Kind) String() string {
	switch k {
	case Dagum:
		return "dagum"
	case Skellam:
		return "skellam"
	case Exponential:
		return "exponential"
	case Gaussian:
		return "gaussian"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Arity returns the number of parameters the distribution takes.
func (k Kind) Arity() int {
	switch k {
	case Dagum:
		return 3
	case Skellam, Gaussian:
		return 2
	case Exponential:
		return 1
	}
	return 0
}

// ParseParams converts every token of raw to a float64.
func ParseParams(raw []string) ([]float64, error) {
	params := make([]float64, len(raw))
	for i, tok := range raw {
		p, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrParameter, "parameter %d: %q is not a number", i+1, tok)
		}
		params[i] = p
	}

	return params, nil
}

// New returns a sampler of distribution k with the given positional
// parameters.
func New(k Kind, params []float64) (sample.Sampler, error) {
	if len(params) != k.Arity() {
		return nil, errors.Wrapf(ErrParameter, "%v takes %d parameters, got %d", k, k.Arity(), len(params))
	}

	switch k {
	case Dagum:
		return sample.NewDagum(params[0], params[1], params[2]), nil
	case Skellam:
		s, err := sample.NewSkellam(params[0], params[1])
		if err != nil {
			return nil, err
		}
		return s, nil
	case Exponential:
		return sample.NewExponential(params[0]), nil
	case Gaussian:
		return sample.NewNormal(params[0], params[1]), nil
	}

	return nil, errors.Wrapf(ErrUnsupportedDistribution, "%v", k)
}

// Registry produces sample vectors for distributions given by name
// and textual parameters.
type Registry struct{}

// Get samples n values of the distribution denoted by name with
// parameters rawParams, drawing from src.
func (Registry) Get(name string, rawParams []string, src rand.Source, n int) (data.Vector, error) {
	k, err := ParseKind(name)
	if err != nil {
		return nil, err
	}
	params, err := ParseParams(rawParams)
	if err != nil {
		return nil, err
	}
	sampler, err := New(k, params)
	if err != nil {
		return nil, err
	}

	return data.NewRandomVector(n, sampler, src)
}
