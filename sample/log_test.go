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

package sample_test

import (
	"strings"

	"github.com/op/go-logging"
)

// warnings returns the messages of the WARNING records held by b
// whose text contains substr.
func warnings(b *logging.MemoryBackend, substr string) []string {
	var res []string
	for n := b.Head(); n != nil; n = n.Next() {
		if n.Record.Level == logging.WARNING && strings.Contains(n.Record.Message(), substr) {
			res = append(res, n.Record.Message())
		}
	}
	return res
}
