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
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ColumnSummary describes the empirical distribution of one column.
type ColumnSummary struct {
	Header string
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	Max    float64
	// NonFinite counts NaN and infinite values, which are excluded
	// from the other statistics.
	NonFinite int
}

// Summary computes a ColumnSummary for every column of table t.
func (t *Table) Summary() []ColumnSummary {
	res := make([]ColumnSummary, t.Cols())
	for i, c := range t.columns {
		res[i] = summarize(t.headers[i], c)
	}

	return res
}

func summarize(header string, v Vector) ColumnSummary {
	s := ColumnSummary{
		Header:    header,
		NonFinite: v.CountNonFinite(),
	}

	finite := make([]float64, 0, len(v)-s.NonFinite)
	for _, x := range v {
		if isFinite(x) {
			finite = append(finite, x)
		}
	}
	if len(finite) == 0 {
		return s
	}

	sort.Float64s(finite)
	s.Mean, s.StdDev = stat.MeanStdDev(finite, nil)
	if len(finite) == 1 {
		s.StdDev = 0
	}
	s.Min = floats.Min(finite)
	s.Max = floats.Max(finite)
	s.Median = stat.Quantile(0.5, stat.Empirical, finite, nil)

	return s
}
