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

// Package sample includes samplers for sampling random values
// from different probability distributions.
//
// Package sample provides the Sampler interface
// along with different implementations of this interface:
// continuous samplers (Dagum, Exponential, Normal) and a discrete
// inverse-transform sampler over a precomputed probability mass
// function (Discrete, Skellam).
//
// Samplers never own randomness. Every call to Sample draws from the
// rand.Source passed in, so a single seeded stream can be shared by a
// sequence of samplers, and the values each sampler produces depend on
// everything drawn from the stream before it. NewSource creates such
// streams.
package sample
