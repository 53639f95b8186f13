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

// Package generate runs a configured sequence of distribution
// requests against a single seeded random stream and collects the
// results into a data.Table.
//
// The stream is created and seeded once per run and handed to every
// request in configuration order, so each column depends on all
// requests before it. A request that fails is reported in its Outcome
// and left out of the table; it never aborts the run.
package generate

import (
	"github.com/fentec-project/synthgen/config"
	"github.com/fentec-project/synthgen/data"
	"github.com/fentec-project/synthgen/dist"
	"github.com/fentec-project/synthgen/internal"
	"github.com/fentec-project/synthgen/sample"
	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var log = logging.MustGetLogger("synthgen/generate")

// Outcome is the result of serving one request. Exactly one of
// Column and Err is set.
type Outcome struct {
	Request config.Request
	Header  string
	Column  data.Vector
	Err     error
}

// OK reports whether the request produced a column.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Report is the result of a generation run.
type Report struct {
	// Table holds one column per successful request, in request order.
	Table *data.Table
	// Outcomes holds one entry per request, in request order.
	Outcomes []Outcome
}

// Skipped returns the outcomes of the requests that were left out
// of the table.
func (r *Report) Skipped() []Outcome {
	var res []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			res = append(res, o)
		}
	}
	return res
}

// Generator serves configurations.
type Generator struct {
	registry Registry
	source   sample.SourceKind
}

// Option configures a Generator.
type Option func(*Generator)

// WithRegistry sets the registry used to serve requests.
// The default is dist.Registry.
func WithRegistry(r Registry) Option {
	return func(g *Generator) {
		if r != nil {
			g.registry = r
		}
	}
}

// WithSource sets the kind of random stream created for each run.
// The default is sample.PCG.
func WithSource(kind sample.SourceKind) Option {
	return func(g *Generator) {
		g.source = kind
	}
}

// New returns a Generator with the given options applied in order.
func New(opts ...Option) *Generator {
	g := &Generator{
		registry: dist.Registry{},
		source:   sample.PCG,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Run serves all requests of cfg. The returned error is non-nil only
// if cfg is invalid or the random stream cannot be created; failing
// requests are reported in the Outcomes of the Report.
func (g *Generator) Run(cfg *config.Config) (*Report, error) {
	if cfg == nil {
		return nil, errors.Wrap(internal.ErrConfigParse, "no configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// the one and only seeding of this run's stream
	src, err := sample.NewSource(g.source, cfg.Seed)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create random stream")
	}
	log.Debugf("generating %d requests of %d samples, seed %d, %v stream", len(cfg.Requests), cfg.Samples, cfg.Seed, g.source)

	report := &Report{
		Table:    data.NewTable(cfg.Samples),
		Outcomes: make([]Outcome, 0, len(cfg.Requests)),
	}
	for _, req := range cfg.Requests {
		report.Outcomes = append(report.Outcomes, g.serve(req, src, report.Table))
	}

	return report, nil
}

// serve generates the column of req and appends it to table.
func (g *Generator) serve(req config.Request, src rand.Source, table *data.Table) Outcome {
	o := Outcome{
		Request: req,
		Header:  req.Header(),
	}

	col, err := g.registry.Get(req.Name, req.RawParams, src, table.ColumnLen())
	if err == nil {
		err = table.AddColumn(o.Header, col)
	}
	if err != nil {
		o.Err = err
		if internal.Recoverable(err) {
			log.Warningf("line %d: skipping %s: %v", req.Line, o.Header, err)
		} else {
			log.Errorf("line %d: skipping %s: %v", req.Line, o.Header, err)
		}
		return o
	}

	o.Column = col
	log.Debugf("line %d: generated %s", req.Line, o.Header)
	return o
}

// Generate serves cfg with a default Generator and returns the table.
func Generate(cfg *config.Config) (*data.Table, error) {
	report, err := New().Run(cfg)
	if err != nil {
		return nil, err
	}

	return report.Table, nil
}
