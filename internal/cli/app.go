package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"Tunelab/internal/calc/premium/batch"
	"Tunelab/internal/calc/premium/sheet"
	"Tunelab/internal/calc/report"
)

type Options struct {
	ConfigPath string
	XLSXPath   string
	PDFPath    string
	Now        func() time.Time
}

// Run returns the process exit code.
func Run(opts Options, stdout, stderr io.Writer) int {
	err := run(opts, stdout)
	if err == nil {
		return 0
	}
	if ee, ok := asExitError(err); ok {
		if ee.Err != nil {
			fmt.Fprintln(stderr, "tunecalc:", ee.Err)
		}
		return ee.Code
	}
	fmt.Fprintln(stderr, "tunecalc:", err)
	return 1
}

func run(opts Options, stdout io.Writer) error {
	sf, err := loadSetupFile(opts.ConfigPath)
	if err != nil {
		return ExitWithError(exitUsage, err)
	}
	res, err := batch.Evaluate(sf.Setups)
	if err != nil {
		return ExitWithError(exitUsage, err)
	}

	if err := writeTable(stdout, res.Results); err != nil {
		return err
	}

	if opts.XLSXPath != "" {
		if err := writeFile(opts.XLSXPath, func(w io.Writer) error {
			return sheet.WriteOutcomes(w, res.Results)
		}); err != nil {
			return ExitWithError(exitOutputs, err)
		}
	}
	if opts.PDFPath != "" {
		now := time.Now
		if opts.Now != nil {
			now = opts.Now
		}
		in := report.Input{Title: sf.Title, Author: sf.Author, Notes: sf.Notes, Items: sf.Setups}
		if err := writeFile(opts.PDFPath, func(w io.Writer) error {
			return report.Write(w, in, res.Results, now())
		}); err != nil {
			return ExitWithError(exitOutputs, err)
		}
	}

	if res.Failed > 0 {
		return ExitWithError(exitFailed, fmt.Errorf("%d of %d setups rejected", res.Failed, len(res.Results)))
	}
	return nil
}

var tableHeader = []string{
	"SETUP", "DRIVE", "F SPRING", "R SPRING", "F REB", "R REB", "F COMP", "R COMP", "F ARB", "R ARB",
}

func writeTable(w io.Writer, outcomes []batch.Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(tableHeader, "\t")+"\t")
	for _, o := range outcomes {
		if !o.OK() {
			fmt.Fprintf(tw, "%s\t%s\t\n", o.Name, "rejected: "+o.Errors.Error())
			continue
		}
		in, d := o.Response.Input, o.Response.Display
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			o.Name, in.Drive,
			d.FrontSpring, d.RearSpring,
			d.FrontRebound, d.RearRebound,
			d.FrontCompression, d.RearCompression,
			d.FrontARB, d.RearARB,
		)
	}
	return tw.Flush()
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
