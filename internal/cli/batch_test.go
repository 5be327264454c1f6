package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/lukaszgryglicki/ratcomplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const casesYAML = `cases:
  - name: division
    lhs: 1/3-1/4j
    op: "/"
    rhs: -1/2j
    want: 1/2+2/3j
  - name: product
    lhs: 1/2+1j
    op: "*"
    rhs: 1/3-1/4j
    want: 5/12+5/24j
  - name: power
    lhs: 1+1j
    op: "**"
    rhs: -3
    want: -1/4-1/4j
  - lhs: 1/3-1/4j
    op: "-"
    rhs: 1/6
`

func decodeReport(t *testing.T, out string) batchReport {
	t.Helper()
	var rep batchReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	return rep
}

func TestBatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cases.yaml")
	require.NoError(t, os.WriteFile(path, []byte(casesYAML), 0o644))

	out, err := run(t, "", "batch", "-f", path, "--sum", "-j", "2")
	require.NoError(t, err)

	rep := decodeReport(t, out)
	assert.Equal(t, 0, rep.Failed)
	require.Len(t, rep.Results, 4)

	assert.Equal(t, "division", rep.Results[0].Name)
	assert.Equal(t, "1/3-1/4j / -1/2j", rep.Results[0].Expr)
	assert.True(t, rep.Results[0].Result.Equal(ratcomplex.MustParse("1/2+2/3j")))
	require.NotNil(t, rep.Results[0].Match)
	assert.True(t, *rep.Results[0].Match)
	assert.Nil(t, rep.Results[3].Match)
	assert.Equal(t, "1/6-1/4j", rep.Results[3].Display)

	want := ratcomplex.MustParse("0")
	for _, s := range []string{"1/2+2/3j", "5/12+5/24j", "-1/4-1/4j", "1/6-1/4j"} {
		want = want.Add(ratcomplex.MustParse(s))
	}
	require.NotNil(t, rep.Sum)
	assert.True(t, rep.Sum.Equal(want), "sum = %s, want %s", rep.Sum.Text(), want.Text())
}

func TestBatchStdinFailures(t *testing.T) {
	in := `cases:
  - name: wrong
    lhs: "1"
    op: "+"
    rhs: "1"
    want: "3"
  - name: broken
    lhs: 1/3/4
    op: "+"
    rhs: "1"
  - name: zero
    lhs: "1"
    op: "/"
    rhs: "0j"
  - name: fine
    lhs: "2"
    op: "+"
    rhs: "2"
    want: "4"
`
	out, err := run(t, in, "batch", "-f", "-")
	assert.ErrorContains(t, err, "3 of 4 cases failed")

	rep := decodeReport(t, out)
	assert.Equal(t, 3, rep.Failed)
	assert.False(t, *rep.Results[0].Match)
	assert.Contains(t, rep.Results[1].Error, "invalid syntax")
	assert.Contains(t, rep.Results[2].Error, "division by zero")
	assert.True(t, *rep.Results[3].Match)
	assert.Nil(t, rep.Sum)
}

func TestBatchBadInput(t *testing.T) {
	_, err := run(t, "cases: [", "batch", "-f", "-")
	assert.Error(t, err)

	_, err = run(t, "", "batch", "-f", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = run(t, "", "batch")
	assert.ErrorContains(t, err, "required flag")

	// want values are decoded with the complex literal parser
	_, err = run(t, "cases:\n  - {lhs: \"1\", op: \"+\", rhs: \"1\", want: 1/0}\n", "batch", "-f", "-")
	assert.ErrorIs(t, err, ratcomplex.ErrSyntax)
}

func TestRunBatchCancelled(t *testing.T) {
	o := &options{maxDen: ratcomplex.DefaultMaxDenominator, maxExp: defaultMaxExponent, log: newLogger(os.Stderr, LevelError)}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	in := &batchFile{Cases: []batchCase{{LHS: "1", Op: "+", RHS: "1"}}}
	_, err := o.runBatch(ctx, in, 1, false)
	assert.ErrorIs(t, err, context.Canceled)
}
