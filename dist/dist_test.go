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

package dist_test

import (
	"testing"

	"github.com/fentec-project/synthgen/dist"
	"github.com/fentec-project/synthgen/sample"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestParseKind(t *testing.T) {
	var tests = []struct {
		name   string
		expect dist.Kind
	}{
		{"dag", dist.Dagum},
		{"Dagum", dist.Dagum},
		{"ske", dist.Skellam},
		{"SKELLAM", dist.Skellam},
		{"exp", dist.Exponential},
		{"exponential", dist.Exponential},
		{"gau", dist.Gaussian},
		{"gaussian", dist.Gaussian},
		{"normal", dist.Gaussian},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			k, err := dist.ParseKind(test.name)
			require.NoError(t, err)
			assert.Equal(t, test.expect, k)
		})
	}

	for _, name := range []string{"foo", "", "gauss", "poisson"} {
		_, err := dist.ParseKind(name)
		assert.ErrorIs(t, err, dist.ErrUnsupportedDistribution)
	}
}

func TestKind(t *testing.T) {
	arities := map[dist.Kind]int{
		dist.Dagum:       3,
		dist.Skellam:     2,
		dist.Exponential: 1,
		dist.Gaussian:    2,
	}
	for _, k := range dist.Kinds {
		assert.Equal(t, arities[k], k.Arity(), k.String())

		// every kind is reachable by its own name
		parsed, err := dist.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	assert.Equal(t, "Kind(9)", dist.Kind(9).String())
	_, err := dist.New(dist.Kind(9), nil)
	assert.ErrorIs(t, err, dist.ErrUnsupportedDistribution)
}

func TestParseParams(t *testing.T) {
	params, err := dist.ParseParams([]string{"1", "-2.5", "3e2", "0"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2.5, 300, 0}, params)

	params, err = dist.ParseParams(nil)
	require.NoError(t, err)
	assert.Empty(t, params)

	_, err = dist.ParseParams([]string{"1", "two"})
	assert.ErrorIs(t, err, dist.ErrParameter)
	assert.Contains(t, err.Error(), `"two"`)
}

func TestNew(t *testing.T) {
	s, err := dist.New(dist.Gaussian, []float64{0, 1})
	require.NoError(t, err)
	assert.IsType(t, &sample.Normal{}, s)

	s, err = dist.New(dist.Skellam, []float64{3, 5})
	require.NoError(t, err)
	assert.IsType(t, &sample.Skellam{}, s)

	s, err = dist.New(dist.Dagum, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, sample.NewDagum(1, 2, 3), s)

	s, err = dist.New(dist.Exponential, []float64{2})
	require.NoError(t, err)
	assert.Equal(t, sample.NewExponential(2), s)

	_, err = dist.New(dist.Gaussian, []float64{0})
	assert.ErrorIs(t, err, dist.ErrParameter)

	_, err = dist.New(dist.Exponential, []float64{1, 2})
	assert.ErrorIs(t, err, dist.ErrParameter)

	s, err = dist.New(dist.Skellam, []float64{1, 0})
	assert.ErrorIs(t, err, sample.ErrNumericInstability)
	assert.Nil(t, s)
}

func TestRegistry_Get(t *testing.T) {
	var reg dist.Registry

	v, err := reg.Get("gau", []string{"0", "1"}, rand.NewSource(1), 25)
	require.NoError(t, err)
	assert.Len(t, v, 25)

	v, err = reg.Get("ske", []string{"3.0", "5.0"}, rand.NewSource(1), 25)
	require.NoError(t, err)
	assert.Len(t, v, 25)

	_, err = reg.Get("foo", []string{"1", "2"}, rand.NewSource(1), 25)
	assert.ErrorIs(t, err, dist.ErrUnsupportedDistribution)

	_, err = reg.Get("exp", []string{"x"}, rand.NewSource(1), 25)
	assert.ErrorIs(t, err, dist.ErrParameter)

	_, err = reg.Get("exp", []string{"-1"}, rand.NewSource(1), 25)
	assert.ErrorIs(t, err, dist.ErrParameter)
}

func TestRegistry_GetMatchesSampler(t *testing.T) {
	v, err := dist.Registry{}.Get("exp", []string{"2"}, rand.NewSource(5), 100)
	require.NoError(t, err)

	expect, err := sample.NewExponential(2).Sample(rand.NewSource(5), 100)
	require.NoError(t, err)

	assert.Equal(t, expect, []float64(v))
}
