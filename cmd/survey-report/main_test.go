package main

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/survey-report/pkg/emit"
	"github.com/askiada/survey-report/pkg/report"
)

func TestPrintSummary(t *testing.T) {
	t.Parallel()

	res := &report.Result{
		Pages:      []emit.Entry{{Index: 1, Name: "cover"}, {Index: 2, Name: "executive_summary"}, {Index: 3, Name: "tele_access"}},
		PDF:        "out/report.pdf",
		FiguresDir: "out/figures",
	}

	out := &bytes.Buffer{}
	printSummary(out, res)
	assert.Equal(t, "\nReport generated successfully!\n"+
		"PDF saved to: out/report.pdf\n"+
		"Individual pages saved to: out/figures\n"+
		"Total pages: 3\n", out.String())

	res.Failures = []report.Failure{{Position: 4, Name: "funding_approaches", Err: errors.New("boom")}}
	out.Reset()
	printSummary(out, res)
	assert.Contains(t, out.String(), "Total pages: 3\nSkipped pages: 1\n")
}

func TestRootRejectsArguments(t *testing.T) {
	rootCmd.SetArgs([]string{"extra"})
	rootCmd.SetOut(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}
