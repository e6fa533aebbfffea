package drawer_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/survey-report/pkg/report/drawer"
	"github.com/askiada/survey-report/pkg/report/measure"
	"github.com/askiada/survey-report/pkg/report/model"
)

func runOptions(t *testing.T, path string) []model.RunOption {
	t.Helper()

	msr := measure.NewDefaultMeasure()

	return []model.RunOption{
		measure.RunMeasure(msr),
		drawer.RunDrawer(drawer.NewDOTDrawer(path), msr),
	}
}

func TestRunDrawer(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "report.dot")
	cover := &model.PageInfo{Kind: model.TextPageKind, Index: 1, Name: "cover"}
	summary := &model.PageInfo{Kind: model.TextPageKind, Index: 2, Name: "executive_summary"}
	broken := &model.PageInfo{Kind: model.DataPageKind, Name: "funding_approaches"}

	for _, opt := range runOptions(t, path) {
		require.NoError(t, opt.New())
		require.NoError(t, opt.PreparePage(model.StartPage, cover))
		require.NoError(t, opt.OnPageOutput(model.StartPage, cover, time.Millisecond, 4*time.Millisecond))
		require.NoError(t, opt.PreparePage(cover, summary))
		require.NoError(t, opt.OnPageOutput(cover, summary, 2*time.Millisecond, 9*time.Millisecond))
		require.NoError(t, opt.PreparePage(summary, broken))
		require.NoError(t, opt.OnPageFailure(summary, broken, errors.New(`missing required columns in data/funding.csv: [Type]`)))
		require.NoError(t, opt.Finish(summary, time.Second))
	}

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	dot := string(content)

	assert.True(t, strings.HasPrefix(dot, "strict digraph {"))
	assert.Contains(t, dot, `"start" -> "cover"`)
	assert.Contains(t, dot, `"cover" -> "executive_summary"`)
	assert.Contains(t, dot, `"executive_summary" -> "funding_approaches" [ color="red", style="dashed", `)
	assert.Contains(t, dot, `"executive_summary" -> "end"`)
	assert.NotContains(t, dot, `"funding_approaches" -> "end"`)
	assert.Contains(t, dot, "total: 1s")
	assert.Contains(t, dot, "generate: 2ms, emit: 9ms")

	// slowest page in red, fastest in blue
	assert.Contains(t, strings.ToLower(dot), `color="#f00000"`)
	assert.Contains(t, strings.ToLower(dot), `color="#0000f0"`)

	coverAt := strings.Index(dot, `"cover" [`)
	summaryAt := strings.Index(dot, `"executive_summary" [`)
	brokenAt := strings.Index(dot, `"funding_approaches" [`)
	require.NotEqual(t, -1, coverAt)
	assert.Less(t, coverAt, summaryAt)
	assert.Less(t, summaryAt, brokenAt)
}

func TestDOTDrawerErrors(t *testing.T) {
	t.Parallel()

	d := drawer.NewDOTDrawer(filepath.Join(t.TempDir(), "missing", "report.dot"))
	require.NoError(t, d.AddPage("a"))
	require.NoError(t, d.AddPage("b"))
	require.NoError(t, d.AddLink("a", "b"))

	assert.Error(t, d.AddPage("a"))
	assert.Error(t, d.AddLink("b", "a"))
	assert.Error(t, d.AddLink("a", "c"))
	assert.Error(t, d.MarkFailed("b", "a", "boom"))
	assert.Error(t, d.Draw())
}
