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
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// SourceKind selects the pseudo-random generator behind a stream.
type SourceKind int

const (
	// PCG is the permuted congruential generator of golang.org/x/exp/rand.
	PCG SourceKind = iota
	// Salsa20 is a keystream of the Salsa20 stream cipher, see Salsa20Source.
	Salsa20
)

var sourceKindNames = map[SourceKind]string{
	PCG:     "pcg",
	Salsa20: "salsa20",
}

func (k SourceKind) String() string {
	if name, ok := sourceKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("SourceKind(%d)", int(k))
}

// ParseSourceKind returns the SourceKind named by s, ignoring case.
func ParseSourceKind(s string) (SourceKind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range sourceKindNames {
		if n == name {
			return k, nil
		}
	}

	return PCG, errors.Wrapf(ErrParameter, "unknown random source %q", s)
}

// NewSource returns a new stream of the given kind, seeded with seed.
// Equal kinds and seeds yield identical streams.
func NewSource(kind SourceKind, seed int64) (rand.Source, error) {
	switch kind {
	case PCG:
		return rand.NewSource(uint64(seed)), nil
	case Salsa20:
		return NewSalsa20Source(uint64(seed)), nil
	}

	return nil, errors.Wrapf(ErrParameter, "unknown random source %v", kind)
}
