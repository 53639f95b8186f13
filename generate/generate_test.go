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

package generate_test

import (
	"testing"

	"github.com/fentec-project/synthgen/config"
	"github.com/fentec-project/synthgen/dist"
	"github.com/fentec-project/synthgen/generate"
	"github.com/fentec-project/synthgen/sample"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

func run(t *testing.T, input string, opts ...generate.Option) *generate.Report {
	cfg, err := config.ParseString(input)
	require.NoError(t, err)

	report, err := generate.New(opts...).Run(cfg)
	require.NoError(t, err)
	return report
}

const mixed = `
seed = 11
samples = 500
dag 2 1 3
ske 3.0 5.0
exp 2.0
gau 0 1
`

func TestRun_Shape(t *testing.T) {
	report := run(t, mixed)
	table := report.Table

	assert.Equal(t, []string{"dag(2, 1, 3)", "ske(3.0, 5.0)", "exp(2.0)", "gau(0, 1)"}, table.Headers())
	assert.Equal(t, 4, table.Cols())
	assert.Equal(t, 500, table.Rows())
	assert.Len(t, table.Headers(), len(table.Columns()))
	for _, c := range table.Columns() {
		assert.Len(t, c, 500)
	}
	assert.Len(t, report.Outcomes, 4)
	assert.Empty(t, report.Skipped())
}

func TestRun_Deterministic(t *testing.T) {
	for _, kind := range []sample.SourceKind{sample.PCG, sample.Salsa20} {
		t.Run(kind.String(), func(t *testing.T) {
			r1 := run(t, mixed, generate.WithSource(kind))
			r2 := run(t, mixed, generate.WithSource(kind))

			assert.Equal(t, r1.Table.Columns(), r2.Table.Columns())
			assert.Equal(t, r1.Table.Fingerprint(), r2.Table.Fingerprint())
		})
	}

	pcg := run(t, mixed, generate.WithSource(sample.PCG))
	salsa := run(t, mixed, generate.WithSource(sample.Salsa20))
	assert.NotEqual(t, pcg.Table.Fingerprint(), salsa.Table.Fingerprint())
}

func TestRun_SeedSensitive(t *testing.T) {
	r1 := run(t, "seed=1\nsamples=50\ngau 0 1")
	r2 := run(t, "seed=2\nsamples=50\ngau 0 1")
	assert.NotEqual(t, r1.Table.Fingerprint(), r2.Table.Fingerprint())
}

func TestRun_OrderSensitive(t *testing.T) {
	r1 := run(t, "seed=1\nsamples=100\ngau 0 1\nexp 2")
	r2 := run(t, "seed=1\nsamples=100\nexp 2\ngau 0 1")

	gau1, err := r1.Table.Col(0)
	require.NoError(t, err)
	gau2, err := r2.Table.Col(1)
	require.NoError(t, err)
	assert.NotEqual(t, gau1, gau2)

	// the first request always sees the fresh stream
	alone := run(t, "seed=1\nsamples=100\nexp 2")
	exp2, err := r2.Table.Col(0)
	require.NoError(t, err)
	expAlone, err := alone.Table.Col(0)
	require.NoError(t, err)
	assert.Equal(t, expAlone, exp2)
}

func TestRun_GracefulSkip(t *testing.T) {
	report := run(t, "seed=1\nsamples=100\nfoo 1 2\ngau 0 1")

	assert.Equal(t, []string{"gau(0, 1)"}, report.Table.Headers())
	assert.Equal(t, 1, report.Table.Cols())
	assert.Equal(t, 100, report.Table.Rows())

	require.Len(t, report.Outcomes, 2)
	skipped := report.Skipped()
	require.Len(t, skipped, 1)
	assert.Equal(t, "foo(1, 2)", skipped[0].Header)
	assert.ErrorIs(t, skipped[0].Err, dist.ErrUnsupportedDistribution)
	assert.Nil(t, skipped[0].Column)
	assert.True(t, report.Outcomes[1].OK())
}

func TestRun_GracefulSkipLogged(t *testing.T) {
	backend := logging.InitForTesting(logging.DEBUG)

	run(t, "seed=1\nsamples=100\nfoo 1 2\ngau 0 1")

	logged := warnings(backend, "foo(1, 2)")
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "line 3")
	assert.Contains(t, logged[0], dist.ErrUnsupportedDistribution.Error())
	assert.Empty(t, warnings(backend, "gau(0, 1)"))
}

func TestRun_SkipErrors(t *testing.T) {
	report := run(t, `
seed = 3
samples = 20
exp two
exp 1 2
exp -1
ske 1 0
gau 0 1
`)

	assert.Equal(t, []string{"gau(0, 1)"}, report.Table.Headers())

	skipped := report.Skipped()
	require.Len(t, skipped, 4)
	assert.ErrorIs(t, skipped[0].Err, dist.ErrParameter)
	assert.ErrorIs(t, skipped[1].Err, dist.ErrParameter)
	assert.ErrorIs(t, skipped[2].Err, dist.ErrParameter)
	assert.ErrorIs(t, skipped[3].Err, sample.ErrNumericInstability)
}

func TestRun_SkipKeepsStream(t *testing.T) {
	withSkip := run(t, "seed=5\nsamples=30\ngau 0 1\nfoo\nske 0 0\nexp 2")
	without := run(t, "seed=5\nsamples=30\ngau 0 1\nexp 2")

	assert.Equal(t, without.Table.Columns(), withSkip.Table.Columns())
}

func TestRun_ExponentialMean(t *testing.T) {
	report := run(t, "seed=1\nsamples=10000\nexp 2.0")

	col, err := report.Table.Col(0)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, stat.Mean(col, nil), 0.025)
}

func TestRun_Skellam(t *testing.T) {
	report := run(t, "seed=1\nsamples=10000\nske 3.0 5.0")

	col, err := report.Table.Col(0)
	require.NoError(t, err)
	for _, x := range col {
		assert.True(t, x >= -30 && x <= 30)
	}
	assert.InDelta(t, -2, stat.Mean(col, nil), 0.15)
}

func TestRun_Empty(t *testing.T) {
	report := run(t, "seed=1\nsamples=5")

	assert.Equal(t, 0, report.Table.Cols())
	assert.Equal(t, 0, report.Table.Rows())
	assert.Empty(t, report.Table.Headers())
	assert.Empty(t, report.Outcomes)
}

func TestRun_InvalidConfig(t *testing.T) {
	_, err := generate.New().Run(nil)
	assert.ErrorIs(t, err, config.ErrConfigParse)

	_, err = generate.New().Run(&config.Config{Seed: 1, Samples: 0})
	assert.ErrorIs(t, err, config.ErrConfigParse)

	_, err = generate.New(generate.WithSource(sample.SourceKind(42))).Run(&config.Config{Seed: 1, Samples: 1})
	assert.ErrorIs(t, err, sample.ErrParameter)
}

func TestGenerate(t *testing.T) {
	cfg, err := config.ParseString(mixed)
	require.NoError(t, err)

	table, err := generate.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, run(t, mixed).Table.Fingerprint(), table.Fingerprint())

	_, err = generate.Generate(nil)
	assert.Error(t, err)
}
