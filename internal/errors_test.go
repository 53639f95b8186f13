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

package internal_test

import (
	"fmt"
	"testing"

	"github.com/fentec-project/synthgen/internal"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRecoverable(t *testing.T) {
	var tests = []struct {
		err         error
		recoverable bool
	}{
		{internal.ErrUnsupportedDistribution, true},
		{internal.ErrParameter, true},
		{internal.ErrNumericInstability, true},
		{errors.Wrap(internal.ErrParameter, "exp"), true},
		{fmt.Errorf("ske: %w", internal.ErrNumericInstability), true},
		{internal.ErrConfigParse, false},
		{errors.Wrap(internal.ErrConfigParse, "line 3"), false},
		{errors.New("disk full"), false},
		{nil, false},
	}

	for _, test := range tests {
		assert.Equal(t, test.recoverable, internal.Recoverable(test.err), "%v", test.err)
	}
}
