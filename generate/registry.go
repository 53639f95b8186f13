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

package generate

import (
	"github.com/fentec-project/synthgen/data"
	"golang.org/x/exp/rand"
)

//go:generate mockgen -source registry.go -destination registry_mocks.go -package generate

// Registry produces the sample vector of one distribution request.
// Implementations must draw all randomness from src.
type Registry interface {
	Get(name string, rawParams []string, src rand.Source, n int) (data.Vector, error)
}
