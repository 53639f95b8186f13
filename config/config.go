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

// Package config interprets the line-oriented configuration format
// describing a generation run:
//
//	# comment
//	seed = 42
//	samples = 1000
//	gau 0 1
//	ske 3.0 5.0
//
// Blank lines and lines starting with '#' are ignored. A line starting
// with "seed" or "samples", in any case, sets the corresponding global
// from the integer following its first '='. Every other line requests
// one distribution: a name followed by whitespace separated parameters.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fentec-project/synthgen/internal"
	"github.com/pkg/errors"
)

// ErrConfigParse is returned for configurations that cannot be
// interpreted. It is fatal to a generation run.
var ErrConfigParse = internal.ErrConfigParse

const (
	seedDirective    = "seed"
	samplesDirective = "samples"
	commentPrefix    = "#"
)

// MaxLineLen is the length of the longest configuration line Parse
// accepts. Longer lines fail with ErrConfigParse.
const MaxLineLen = 1 << 20

// Request asks for one column of samples of the distribution Name
// with the textual parameters RawParams.
type Request struct {
	// Name is the lower-cased distribution name.
	Name      string
	RawParams []string
	// Line is the 1-based line of the request in its source.
	Line int
}

// Header returns the column header for the request,
// name(param1, param2, ...), built from the parameters as written.
func (r Request) Header() string {
	return fmt.Sprintf("%s(%s)", r.Name, strings.Join(r.RawParams, ", "))
}

// Config describes a generation run.
type Config struct {
	// Seed initializes the random stream shared by all requests.
	Seed int64
	// Samples is the number of values generated per request.
	Samples int
	// Requests are served in order, all from the same random stream.
	Requests []Request
}

// Validate checks that c describes a run that can be performed.
func (c *Config) Validate() error {
	if c.Samples <= 0 {
		return errors.Wrapf(ErrConfigParse, "sample count must be positive, got %d", c.Samples)
	}
	for _, r := range c.Requests {
		if r.Name == "" {
			return errors.Wrapf(ErrConfigParse, "line %d: request without distribution name", r.Line)
		}
	}

	return nil
}

// Parse reads a configuration from r. Both the seed and the samples
// directive are required.
func Parse(r io.Reader) (*Config, error) {
	cfg := &Config{Requests: []Request{}}
	hasSeed, hasSamples := false, false

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), MaxLineLen)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, seedDirective):
			v, err := directiveValue(line, lineNo, 64)
			if err != nil {
				return nil, err
			}
			cfg.Seed = v
			hasSeed = true
		case strings.HasPrefix(lower, samplesDirective):
			v, err := directiveValue(line, lineNo, strconv.IntSize)
			if err != nil {
				return nil, err
			}
			cfg.Samples = int(v)
			hasSamples = true
		default:
			fields := strings.Fields(line)
			cfg.Requests = append(cfg.Requests, Request{
				Name:      strings.ToLower(fields[0]),
				RawParams: fields[1:],
				Line:      lineNo,
			})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(ErrConfigParse, "line %d: %v", lineNo+1, err)
	}

	if !hasSeed {
		return nil, errors.Wrap(ErrConfigParse, "missing seed directive")
	}
	if !hasSamples {
		return nil, errors.Wrap(ErrConfigParse, "missing samples directive")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseString reads a configuration from s.
func ParseString(s string) (*Config, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile reads the configuration stored in the file at path.
func ParseFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open configuration")
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	return cfg, nil
}

// directiveValue returns the integer between the first and the
// second '=' of line.
func directiveValue(line string, lineNo int, bitSize int) (int64, error) {
	parts := strings.Split(line, "=")
	if len(parts) < 2 {
		return 0, errors.Wrapf(ErrConfigParse, "line %d: expected '=' in %q", lineNo, line)
	}

	v, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, bitSize)
	if err != nil {
		return 0, errors.Wrapf(ErrConfigParse, "line %d: %q is not an integer", lineNo, strings.TrimSpace(parts[1]))
	}

	return v, nil
}
