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

// Command synthgen generates reproducible synthetic datasets from
// declarative configuration files.
//
// Run using
//
//	go run ./cmd/synthgen <command> <flags>
package main

import (
	"fmt"
	"os"

	"github.com/fentec-project/synthgen/sample"
	"github.com/op/go-logging"
	"github.com/urfave/cli/v2"
)

const progName = "synthgen"

var log = logging.MustGetLogger(progName)

var leveledLogBackend logging.LeveledBackend

var (
	debugFlag = cli.BoolFlag{
		Name:  "debug",
		Usage: "enable debug logging",
	}
	sourceFlag = cli.StringFlag{
		Name:  "source",
		Usage: "random stream used for sampling (pcg or salsa20)",
		Value: sample.PCG.String(),
	}
)

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:-8s} %{module:-20s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func main() {
	startLogging()

	app := &cli.App{
		Name:  progName,
		Usage: "reproducible synthetic sample generator",
		Flags: []cli.Flag{
			&debugFlag,
		},
		Before: func(context *cli.Context) error {
			if context.Bool(debugFlag.Name) {
				leveledLogBackend.SetLevel(logging.DEBUG, "")
			}
			return nil
		},
		Commands: []*cli.Command{
			&GenerateCmd,
			&BatchCmd,
			&SummaryCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
