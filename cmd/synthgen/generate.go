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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fentec-project/synthgen/config"
	"github.com/fentec-project/synthgen/generate"
	"github.com/fentec-project/synthgen/sample"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var GenerateCmd = cli.Command{
	Action: generateAction,
	Name:   "generate",
	Usage:  "generates a dataset from a configuration file and saves it as CSV",
	Flags: []cli.Flag{
		&outputFlag,
		&sourceFlag,
	},
	ArgsUsage: "<config>",
}

var (
	outputFlag = cli.StringFlag{
		Name:  "output",
		Usage: "path of the generated CSV file, defaults to <config name>-data.csv",
	}
)

func generateAction(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing configuration file")
	}
	cfgPath := context.Args().Get(0)

	kind, err := sample.ParseSourceKind(context.String(sourceFlag.Name))
	if err != nil {
		return err
	}

	out := context.String(outputFlag.Name)
	if out == "" {
		out = defaultOutputPath(cfgPath)
	}

	if err := generateFile(cfgPath, out, kind); err != nil {
		return err
	}

	fmt.Println("Saved:", out)
	return nil
}

// defaultOutputPath derives the CSV path written next to the
// configuration file at cfgPath.
func defaultOutputPath(cfgPath string) string {
	return strings.TrimSuffix(cfgPath, ".cfg") + "-data.csv"
}

// runConfig parses the configuration file at cfgPath and generates
// its dataset from a stream of the given kind.
func runConfig(cfgPath string, kind sample.SourceKind) (*generate.Report, error) {
	cfg, err := config.ParseFile(cfgPath)
	if err != nil {
		return nil, err
	}

	log.Debugf("%s: seed %d, %d samples, %d requests", cfgPath, cfg.Seed, cfg.Samples, len(cfg.Requests))

	g := generate.New(generate.WithSource(kind))
	return g.Run(cfg)
}

// generateFile generates the dataset described by the configuration
// file at cfgPath and writes it to out, creating missing parent
// directories.
func generateFile(cfgPath, out string, kind sample.SourceKind) error {
	report, err := runConfig(cfgPath, kind)
	if err != nil {
		return err
	}

	for _, o := range report.Skipped() {
		fmt.Printf("Error generating '%s': %v\n", o.Header, o.Err)
	}

	dir := filepath.Dir(out)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "cannot create directory %s", dir)
	}

	f, err := os.Create(out)
	if err != nil {
		return errors.Wrap(err, "cannot create output file")
	}

	if err := report.Table.WriteCSV(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "cannot write %s", out)
	}

	return f.Close()
}
