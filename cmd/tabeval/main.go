// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Tabeval evaluates a JSON case table against the built-in doubling
function and reports the outcome of each case.

Usage:

	tabeval run [table.json]
	tabeval demo
	tabeval tui [table.json]

A case table is a JSON array of objects with an "input" and an
"expected" property, e.g.:

	[
	    {"input": 0, "expected": 0},
	    {"input": 21, "expected": 42}
	]

Without a table argument the built-in demo table is evaluated.  The
run command prints by default one pass/fail line per case followed by
a summary; --json emits a structured report instead and --log reports
through a structured logger.  The tui command shows the same report in
a terminal ui with failing cases highlighted; it is quit with 'q',
ctrl-c or ctrl-d.  The exit status is 1 iff at least one case failed.
*/
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tabeval/tabeval"
	"github.com/tabeval/tabeval/cmd/tabeval/tui"
	"github.com/tabeval/tabeval/pkg/report"
	"github.com/urfave/cli/v2"
)

const runUsage = "Evaluate a case table against the doubling function"
const runDesc = runUsage + `.

   The table argument is a JSON array of {"input", "expected"} pairs.
   Without argument the built-in demo table is evaluated.`

const demoUsage = "Evaluate the built-in demo table"
const demoDesc = demoUsage + `.

   The demo table passes.  --mismatch appends a case authored wrong on
   purpose so the demo also shows a mismatch report; the exit status
   is then 1 like for any failed run.`

const tuiUsage = "Show a table evaluation in a terminal ui"
const tuiDesc = tuiUsage + `.

   Failing cases are highlighted; quit with 'q', ctrl-c or ctrl-d.`

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "evaluate case tables against a function under test",
		Commands: []*cli.Command{
			{
				Name:        "run",
				Aliases:     []string{"r"},
				Usage:       runUsage,
				Description: runDesc,
				ArgsUsage:   "[table.json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "emit a structured JSON report",
					},
					&cli.BoolFlag{
						Name:  "indent",
						Usage: "pretty-print the JSON report",
					},
					&cli.BoolFlag{
						Name:  "log",
						Usage: "report through a structured logger",
					},
					&cli.BoolFlag{
						Name:  "failed",
						Usage: "report failing cases only",
					},
				},
				Action: runAction,
			},
			{
				Name:        "demo",
				Usage:       demoUsage,
				Description: demoDesc,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name: "mismatch",
						Usage: "append an authored mismatch " +
							"showing a failure report",
					},
				},
				Action: demoAction,
			},
			{
				Name:        "tui",
				Usage:       tuiUsage,
				Description: tuiDesc,
				ArgsUsage:   "[table.json]",
				Action:      tuiAction,
			},
		},
	}
}

func runAction(c *cli.Context) error {
	oo, err := evaluate(c)
	if err != nil {
		return err
	}
	snk, err := sink(c)
	if err != nil {
		return err
	}
	if err := snk.Report(oo); err != nil {
		return err
	}
	return exit(oo)
}

func demoAction(c *cli.Context) error {
	tt := demoTable
	if c.Bool("mismatch") {
		tt = append(tt, mismatchCase)
	}
	oo := tabeval.Run(tt, double)
	w := &report.Writer[int64]{W: c.App.Writer}
	if err := w.Report(oo); err != nil {
		return err
	}
	return exit(oo)
}

func tuiAction(c *cli.Context) error {
	oo, err := evaluate(c)
	if err != nil {
		return err
	}
	tui.Show(oo)
	return exit(oo)
}

// evaluate runs the requested case table, defaulting to the demo
// table, against the doubling function.
func evaluate(c *cli.Context) (tabeval.Outcomes[int64], error) {
	tt := demoTable
	if c.NArg() > 0 {
		var err error
		if tt, err = loadTable(c.Args().First()); err != nil {
			return nil, err
		}
	}
	return tabeval.Run(tt, double), nil
}

// sink picks the reporting sink requested by the run command's flags.
func sink(c *cli.Context) (report.Sink[int64], error) {
	switch {
	case c.Bool("json"):
		return &report.JSON[int64]{
			W: c.App.Writer, Indent: c.Bool("indent")}, nil
	case c.Bool("log"):
		return report.NewLogger[int64]()
	}
	return &report.Writer[int64]{
		W: c.App.Writer, FailedOnly: c.Bool("failed")}, nil
}

// exit maps a failed run to exit status 1.
func exit(oo tabeval.Outcomes[int64]) error {
	if oo.Passed() {
		return nil
	}
	return cli.Exit("", 1)
}
