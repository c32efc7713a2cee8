// Command benchdiff compares two snapshots of benchmark results (a
// baseline and a candidate run) and reports, per benchmark case, how
// each metric moved, flagging regressions against configurable
// thresholds.
//
// Exit codes:
//
//	0  no regressions, or regressions found but --fail-on-regression not set
//	1  fatal error (unreadable input, unresolvable key or metrics)
//	2  regressions found and --fail-on-regression set
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/watt-toolkit/benchdiff/pkg/benchdiff"
	"github.com/watt-toolkit/benchdiff/pkg/loader"
	"github.com/watt-toolkit/benchdiff/pkg/render"
)

// errRegressions signals the regression exit code; it is never printed.
var errRegressions = errors.New("regressions detected")

type cliOptions struct {
	format           string
	key              string
	metrics          string
	timeUnit         string
	memUnit          string
	warnTime         float64
	warnAlloc        float64
	warnThroughput   float64
	failOnRegression bool
	out              string
	parallel         bool
}

func newRootCmd() *cobra.Command {
	var o cliOptions
	defaults := benchdiff.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "benchdiff <baseline> <candidate>",
		Short: "Compare two benchmark result snapshots",
		Long: `Benchdiff compares two benchmark result snapshots and reports, per
benchmark case, how each metric moved. Time and memory cells are
normalized to nanoseconds and bytes regardless of how the exporter
labeled them, deltas are percentages, and movements past the warn
thresholds are collected as regressions.

For time, memory and GC-count metrics a negative delta is good; for
throughput a positive delta is good.`,
		Example: `  benchdiff baseline.csv today.csv
  benchdiff baseline.csv today.csv --key "Type,Method,Runtime,Job"
  benchdiff baseline.csv today.csv --metrics "Mean,P95,Allocated,Op/s" --fail-on-regression
  benchdiff old.json new.json --format json
  benchdiff old.txt new.txt --format gobench`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1], o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.format, "format", "csv", "input format: csv, json or gobench")
	f.StringVar(&o.key, "key", "", "comma-separated columns to build the benchmark key (default: auto)")
	f.StringVar(&o.metrics, "metrics", "", "comma-separated metrics to compare (default: auto-pick common metrics)")
	f.StringVar(&o.timeUnit, "time-unit", defaults.TimeUnit, "display unit for time metrics: ns, us, ms or s")
	f.StringVar(&o.memUnit, "mem-unit", defaults.MemUnit, "display unit for memory metrics: B, KB, MB or GB")
	f.Float64Var(&o.warnTime, "warn-time", defaults.WarnTime, "warn if time/gc increases by more than this percent")
	f.Float64Var(&o.warnAlloc, "warn-alloc", defaults.WarnAlloc, "warn if allocated bytes increase by more than this percent")
	f.Float64Var(&o.warnThroughput, "warn-throughput", defaults.WarnThroughput, "warn if throughput decreases by more than this percent")
	f.BoolVar(&o.failOnRegression, "fail-on-regression", false, "exit with code 2 if regressions are detected")
	f.StringVar(&o.out, "out", "", "write a long-form comparison CSV to this path")
	f.BoolVar(&o.parallel, "parallel", false, "compare cases concurrently (output is identical)")

	return cmd
}

func run(baselinePath, candidatePath string, o cliOptions) error {
	if !validTimeUnit(o.timeUnit) {
		return fmt.Errorf("invalid --time-unit %q: want ns, us, ms or s", o.timeUnit)
	}
	if !validMemUnit(o.memUnit) {
		return fmt.Errorf("invalid --mem-unit %q: want B, KB, MB or GB", o.memUnit)
	}

	baseline, err := load(baselinePath, o.format)
	if err != nil {
		return err
	}
	candidate, err := load(candidatePath, o.format)
	if err != nil {
		return err
	}

	keyCols, err := benchdiff.ResolveKeyColumns(baseline.Headers, candidate.Headers, splitList(o.key))
	if err != nil {
		return &benchdiff.ResolutionError{Stage: "key", Option: "--key", Err: err}
	}
	metrics, err := benchdiff.SelectMetrics(baseline.Headers, candidate.Headers, splitList(o.metrics))
	if err != nil {
		return &benchdiff.ResolutionError{Stage: "metrics", Option: "--metrics", Err: err}
	}

	opts := benchdiff.Options{
		KeyColumns:     keyCols,
		Metrics:        metrics,
		TimeUnit:       o.timeUnit,
		MemUnit:        strings.ToUpper(o.memUnit),
		WarnTime:       o.warnTime,
		WarnAlloc:      o.warnAlloc,
		WarnThroughput: o.warnThroughput,
	}

	var res *benchdiff.Result
	if o.parallel {
		res, err = benchdiff.CompareParallel(context.Background(), baseline, candidate, opts, 0)
	} else {
		res, err = benchdiff.Compare(baseline, candidate, opts)
	}
	if err != nil {
		return err
	}

	if err := render.Table(os.Stdout, res); err != nil {
		return err
	}
	if o.out != "" {
		if err := render.CSVFile(o.out, res); err != nil {
			return err
		}
		fmt.Printf("\nWrote detailed comparison to: %s\n", o.out)
	}

	if res.HasRegressions() && o.failOnRegression {
		return errRegressions
	}
	return nil
}

func load(path, format string) (*benchdiff.Dataset, error) {
	switch format {
	case "csv":
		return loader.ReadCSVFile(path)
	case "json":
		return loader.ReadJSONFile(path)
	case "gobench":
		return loader.ReadGoBenchFile(path)
	}
	return nil, fmt.Errorf("unknown --format %q: want csv, json or gobench", format)
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func validTimeUnit(u string) bool {
	switch u {
	case "ns", "us", "ms", "s":
		return true
	}
	return false
}

func validMemUnit(u string) bool {
	switch strings.ToUpper(u) {
	case "B", "KB", "MB", "GB":
		return true
	}
	return false
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("benchdiff: ")

	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, errRegressions) {
			os.Exit(2)
		}
		log.Println(err)
		os.Exit(1)
	}
}
