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
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fentec-project/synthgen/sample"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

var BatchCmd = cli.Command{
	Action: batchAction,
	Name:   "batch",
	Usage:  "generates a CSV dataset for every configuration file in a directory",
	Flags: []cli.Flag{
		&cfgDirFlag,
		&csvDirFlag,
		&sourceFlag,
	},
}

var (
	cfgDirFlag = cli.StringFlag{
		Name:  "cfgdir",
		Usage: "directory to search for .cfg files",
		Value: ".",
	}
	csvDirFlag = cli.StringFlag{
		Name:  "csvdir",
		Usage: "directory to save generated CSV files",
		Value: "csv_data",
	}
)

func batchAction(context *cli.Context) error {
	kind, err := sample.ParseSourceKind(context.String(sourceFlag.Name))
	if err != nil {
		return err
	}

	failed, err := runBatch(os.Stdout, context.String(cfgDirFlag.Name), context.String(csvDirFlag.Name), kind)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d configuration(s) failed", failed)
	}

	return nil
}

// runBatch generates a dataset for every configuration file in cfgDir
// and saves it in csvDir. A failing configuration is reported and the
// remaining ones are still processed; the number of failures is
// returned.
func runBatch(w io.Writer, cfgDir, csvDir string, kind sample.SourceKind) (int, error) {
	if _, err := os.Stat(cfgDir); os.IsNotExist(err) {
		if err := os.MkdirAll(cfgDir, 0755); err != nil {
			return 0, errors.Wrapf(err, "cannot create directory %s", cfgDir)
		}
		fmt.Fprintf(w, "Created missing directory: %s\n", cfgDir)
		fmt.Fprintln(w, "Please add .cfg files to this folder and rerun the command.")
		return 0, nil
	}

	if err := os.MkdirAll(csvDir, 0755); err != nil {
		return 0, errors.Wrapf(err, "cannot create directory %s", csvDir)
	}

	cfgFiles, err := findConfigFiles(cfgDir)
	if err != nil {
		return 0, err
	}
	if len(cfgFiles) == 0 {
		fmt.Fprintf(w, "No .cfg files found in %s. Please add some and try again.\n", cfgDir)
		return 0, nil
	}

	failed := 0
	for _, cfgFile := range cfgFiles {
		name := filepath.Base(cfgFile)
		out := filepath.Join(csvDir, strings.TrimSuffix(name, ".cfg")+"-data.csv")

		if err := generateFile(cfgFile, out, kind); err != nil {
			log.Errorf("%s: %v", name, err)
			failed++
			continue
		}

		fmt.Fprintf(w, "Done: %s\n", name)
	}

	return failed, nil
}

// findConfigFiles returns the .cfg files in dir in lexical order.
func findConfigFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.cfg"))
	if err != nil {
		return nil, errors.Wrap(err, "cannot list configuration files")
	}

	files := matches[:0]
	for _, m := range matches {
		if info, err := os.Stat(m); err == nil && !info.IsDir() {
			files = append(files, m)
		}
	}
	sort.Strings(files)

	return files, nil
}
