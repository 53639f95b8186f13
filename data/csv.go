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
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// WriteCSV writes table t to w as comma separated values: a header
// row followed by one record per table row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(t.Headers()); err != nil {
		return errors.Wrap(err, "cannot write header")
	}

	record := make([]string, t.Cols())
	for i := 0; i < t.Rows(); i++ {
		for j, c := range t.columns {
			record[j] = strconv.FormatFloat(c[i], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "cannot write row %d", i)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "cannot flush table")
}
