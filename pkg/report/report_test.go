// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/slukits/nativeunit"
	"github.com/slukits/nativeunit/pkg/report"
	"github.com/slukits/nativeunit/testdata/fx"
)

// counting is a boundary counting the string traffic of its runner.
type counting struct {
	*nativeunit.Registry
	version          int
	pulled, released int
	releasedAll      int
}

func (c *counting) GetVersion() int {
	if c.version != 0 {
		return c.version
	}
	return c.Registry.GetVersion()
}

func (c *counting) GetString(h nativeunit.Handle) (string, error) {
	c.pulled++
	return c.Registry.GetString(h)
}

func (c *counting) ReleaseString(h nativeunit.Handle) {
	c.released++
	c.Registry.ReleaseString(h)
}

func (c *counting) ReleaseAllStrings() {
	c.releasedAll++
	c.Registry.ReleaseAllStrings()
}

func sample() *counting {
	reg := nativeunit.NewRegistry()
	fx.Register(reg)
	return &counting{Registry: reg}
}

func Test_a_run_reports_all_tests_and_row_tests(t *testing.T) {
	t.Parallel()
	rpt, err := (&report.Runner{}).Run(sample())
	require.NoError(t, err)
	assert.Equal(t, fx.Runnable, rpt.Len())
	assert.Equal(t, fx.Failing, rpt.LenFailed())
	assert.Equal(t, 4, rpt.LenFixtures())
	assert.False(t, rpt.Passed())
	assert.NotEmpty(t, rpt.ID)
	assert.Equal(t, nativeunit.Version, rpt.Version)
}

func Test_a_run_resolves_failures(t *testing.T) {
	t.Parallel()
	rpt, err := (&report.Runner{}).Run(sample())
	require.NoError(t, err)
	arithmetic := rpt.Fixture(fx.Arithmetic)
	require.NotNil(t, arithmetic)
	adds := arithmetic.Test(fx.AddsCorrectly)
	require.NotNil(t, adds)
	require.NotNil(t, adds.Failure)
	assert.Equal(t, 2, adds.AssertCount)
	assert.Equal(t, "Expected values to be equal.", adds.Failure.Description)
	assert.Equal(t, "5", adds.Failure.Expected.Text)
	assert.Equal(t, "4", adds.Failure.Actual.Text)
	assert.Equal(t, nativeunit.KindInt64, adds.Failure.Actual.Kind)
	assert.Equal(t, "Category={Math},Author={Ann},", arithmetic.Metadata)
	assert.Equal(t, []int{0}, arithmetic.Failed().ToSlice())

	subtracts := arithmetic.Test(fx.Subtracts)
	assert.True(t, subtracts.Passed())
	assert.Equal(t, fx.SubtractsLog+"\n", subtracts.Log)

	unexpected := rpt.Fixture(fx.Panics).Test(fx.Unexpected)
	assert.Equal(t, fx.UnexpectedMsg, unexpected.Failure.Message)
	assert.Nil(t, unexpected.Failure.Expected)
}

func Test_a_run_reports_rows_as_sub_results_of_their_group(
	t *testing.T,
) {
	t.Parallel()
	rpt, err := (&report.Runner{}).Run(sample())
	require.NoError(t, err)
	rows := rpt.Fixture(fx.Rows)
	sums := rows.Test(fx.Sums)
	assert.Equal(t, nativeunit.KindGroup, sums.Kind)
	assert.Equal(t, len(fx.SumRows), sums.Len())
	assert.Equal(t, 1, sums.LenFailed())
	ii := []int{}
	sums.For(func(r *report.Result) { ii = append(ii, r.Index) })
	assert.Equal(t, []int{0, 1, 2}, ii)
	assert.Equal(t, 0, rows.Test(fx.None).Len())
	assert.Equal(t, []int{0}, rows.Failed().ToSlice())
	assert.Equal(t, 0, rpt.Fixture(fx.Empty).Len())
}

func Test_a_runner_releases_every_text_it_pulls(t *testing.T) {
	t.Parallel()
	b := sample()
	_, err := (&report.Runner{}).Run(b)
	require.NoError(t, err)
	assert.Positive(t, b.pulled)
	assert.Equal(t, b.pulled, b.released)
	assert.Equal(t, 1, b.releasedAll)
}

func Test_an_enumeration_runs_no_tests(t *testing.T) {
	t.Parallel()
	rpt, err := (&report.Runner{}).Enumerate(sample())
	require.NoError(t, err)
	assert.Equal(t, fx.Runnable, rpt.Len())
	assert.True(t, rpt.Passed())
	rpt.For(func(f *report.FixtureResult) {
		f.For(func(r *report.Result) {
			assert.NotEqual(t, nativeunit.Passed, r.Outcome, r.Name)
		})
	})
}

func Test_a_runner_rejects_an_unsupported_version(t *testing.T) {
	t.Parallel()
	b := sample()
	b.version = nativeunit.Version + 1
	_, err := (&report.Runner{}).Run(b)
	assert.True(t, errors.Is(err, report.ErrVersion))
}

func Test_a_runner_logs_a_summary(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := (&report.Runner{Logger: zap.New(core)}).Run(sample())
	require.NoError(t, err)
	summary := logs.FilterMessage("walked").All()
	require.Len(t, summary, 1)
	ctx := summary[0].ContextMap()
	assert.EqualValues(t, fx.Runnable, ctx["tests"])
	assert.EqualValues(t, fx.Failing, ctx["failed"])
	assert.Equal(t, fx.Nodes, logs.FilterMessage("node").Len())
}

func Test_a_text_report_renders_failures_and_a_summary(t *testing.T) {
	t.Parallel()
	rpt, err := (&report.Runner{}).Run(sample())
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	require.NoError(t, report.WriteText(buf, rpt))
	out := buf.String()
	for _, want := range []string{
		"Arithmetic\n",
		"    FAIL AddsCorrectly 2 assertions",
		"        Expected Value: 5\n",
		"        Actual Value: 4\n",
		"    PASS Subtracts 1 assertion",
		"        " + fx.SubtractsLog + "\n",
		"        FAIL row 2",
		"    ---- None\n",
		"8 tests, 4 failed\n",
	} {
		assert.Contains(t, out, want)
	}
}

func Test_a_json_report_is_canonical(t *testing.T) {
	t.Parallel()
	rpt, err := (&report.Runner{}).Run(sample())
	require.NoError(t, err)
	first, second := &bytes.Buffer{}, &bytes.Buffer{}
	require.NoError(t, report.WriteJSON(first, rpt))
	require.NoError(t, report.WriteJSON(second, rpt))
	assert.Equal(t, first.String(), second.String())
	assert.True(t, strings.HasPrefix(first.String(), `{"durationMs":`))

	var decoded struct {
		Failed   int `json:"failed"`
		Fixtures []struct {
			Name string `json:"name"`
		} `json:"fixtures"`
	}
	require.NoError(t, json.Unmarshal(first.Bytes(), &decoded))
	assert.Equal(t, fx.Failing, decoded.Failed)
	require.Len(t, decoded.Fixtures, 4)
	assert.Equal(t, fx.Arithmetic, decoded.Fixtures[0].Name)
}

func Test_a_failure_renders_its_labeled_values(t *testing.T) {
	t.Parallel()
	f := &report.Failure{
		Description: "Expected values to be equal.",
		Message:     "sum",
		Expected:    &report.Value{Text: "5"},
		Actual:      &report.Value{Text: "4"},
		Extras:      []report.Value{{Label: "Diff", Text: "-5\n+4"}},
	}
	assert.Equal(t, "Expected values to be equal.\nsum\n"+
		"Expected Value: 5\nActual Value: 4\nDiff:\n    -5\n    +4",
		f.String())
}
