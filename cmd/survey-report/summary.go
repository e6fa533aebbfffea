package main

import (
	"fmt"
	"io"

	"github.com/askiada/survey-report/pkg/report"
)

func printSummary(out io.Writer, res *report.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Report generated successfully!")
	fmt.Fprintf(out, "PDF saved to: %s\n", res.PDF)
	fmt.Fprintf(out, "Individual pages saved to: %s\n", res.FiguresDir)
	fmt.Fprintf(out, "Total pages: %d\n", len(res.Pages))
	if len(res.Failures) > 0 {
		fmt.Fprintf(out, "Skipped pages: %d\n", len(res.Failures))
	}
}
