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
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fentec-project/synthgen/data"
	"github.com/fentec-project/synthgen/sample"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

var SummaryCmd = cli.Command{
	Action: summaryAction,
	Name:   "summary",
	Usage:  "generates a dataset and prints summary statistics of its columns",
	Flags: []cli.Flag{
		&sourceFlag,
	},
	ArgsUsage: "<config>",
}

func summaryAction(context *cli.Context) error {
	if context.Args().Len() != 1 {
		return fmt.Errorf("missing configuration file")
	}
	cfgPath := context.Args().Get(0)

	kind, err := sample.ParseSourceKind(context.String(sourceFlag.Name))
	if err != nil {
		return err
	}

	report, err := runConfig(cfgPath, kind)
	if err != nil {
		return err
	}

	for _, o := range report.Skipped() {
		fmt.Printf("Error generating '%s': %v\n", o.Header, o.Err)
	}

	printSummary(os.Stdout, report.Table)
	return nil
}

// printSummary renders per-column statistics of table t followed by
// its fingerprint.
func printSummary(w io.Writer, t *data.Table) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"Column", "Mean", "StdDev", "Min", "Median", "Max", "Non-finite"})
	for _, s := range t.Summary() {
		tw.Append([]string{
			s.Header,
			formatStat(s.Mean),
			formatStat(s.StdDev),
			formatStat(s.Min),
			formatStat(s.Median),
			formatStat(s.Max),
			strconv.Itoa(s.NonFinite),
		})
	}
	tw.Render()

	fp := t.Fingerprint()
	fmt.Fprintf(w, "Rows: %d\n", t.Rows())
	fmt.Fprintf(w, "Fingerprint: %s\n", hex.EncodeToString(fp[:]))
}

func formatStat(x float64) string {
	return strconv.FormatFloat(x, 'g', 6, 64)
}
