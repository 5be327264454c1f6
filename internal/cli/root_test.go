package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lukaszgryglicki/ratcomplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes a fresh command tree and returns what it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"division", []string{"eval", "1/3-1/4j", "/", "-1/2j"}, "1/2+2/3j\n"},
		{"addition", []string{"eval", "1/3-1/4j", "+", "1/3+1/4j"}, "2/3\n"},
		{"subtraction", []string{"eval", "1/6", "-", "1/3-1/4j"}, "-1/6+1/4j\n"},
		{"multiplication", []string{"eval", "1/3-1/4j", "*", "1/2+1j"}, "5/12+5/24j\n"},
		{"negative power", []string{"eval", "--", "-1/3", "**", "-2"}, "9\n"},
		{"equality", []string{"eval", "1/2+1j", "==", "0.5+1j"}, "true\n"},
		{"inequality", []string{"eval", "1/2", "==", "1/2j"}, "false\n"},
		{"repr", []string{"--repr", "eval", "5/2", "+", "0"}, "ComplexRational('5/2','0')\n"},
		{"limited", []string{"eval", "1", "/", "3000000"}, "0\n"},
		{"exact", []string{"--max-denominator", "0", "eval", "1", "/", "3000000"}, "1/3000000\n"},
		{"coarse", []string{"--max-denominator", "1000", "eval", "3.141592653589793", "+", "0"}, "355/113\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := run(t, "", tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	_, err := run(t, "", "eval", "1", "%", "2")
	assert.ErrorContains(t, err, "unknown operator")

	_, err = run(t, "", "eval", "1/3/4", "+", "1")
	assert.ErrorIs(t, err, ratcomplex.ErrSyntax)

	_, err = run(t, "", "eval", "1+1j", "/", "0")
	assert.ErrorIs(t, err, ratcomplex.ErrDivisionByZero)

	_, err = run(t, "", "eval", "2", "**", "100000")
	assert.ErrorContains(t, err, "exceeds --max-exponent")

	_, err = run(t, "", "eval", "1", "+")
	assert.Error(t, err)

	_, err = run(t, "", "--max-denominator", "-1", "eval", "1", "+", "1")
	assert.ErrorContains(t, err, "--max-denominator")
}

func TestShow(t *testing.T) {
	out, err := run(t, "", "show", "1/3-1/4j")
	require.NoError(t, err)
	assert.Contains(t, out, "value:      1/3-1/4j\n")
	assert.Contains(t, out, "repr:       ComplexRational('1/3','-1/4')\n")
	assert.Contains(t, out, "conjugate:  1/3+1/4j\n")
	assert.Contains(t, out, "|z|^2:      25/144\n")
	assert.Contains(t, out, "reciprocal: 48/25+36/25j\n")
	assert.Contains(t, out, "complex128: (0.3333333333333333-0.25i)\n")

	out, err = run(t, "", "show", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "reciprocal: undefined\n")

	_, err = run(t, "", "show", "abc")
	assert.ErrorIs(t, err, ratcomplex.ErrSyntax)
}

func TestSplit(t *testing.T) {
	out, err := run(t, "", "split", "--", "-1/3*1j+1.2")
	require.NoError(t, err)
	assert.Equal(t, "re: 1.2\nim: -1/3\n", out)

	// the splitter never rejects input
	out, err = run(t, "", "split", "1/3/4")
	require.NoError(t, err)
	assert.Equal(t, "re: 1/3/4\nim: 0\n", out)
}

func TestPow(t *testing.T) {
	out, err := run(t, "", "pow", "1+1j", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "exact = true\n")
	assert.Contains(t, out, "z^n = 16\n")
	assert.Contains(t, out, "Im(z^n) = 0\n")

	out, err = run(t, "", "pow", "4", "1/2")
	require.NoError(t, err)
	assert.Contains(t, out, "exact = false\n")
	assert.Contains(t, out, "z^n = 2\n")

	_, err = run(t, "", "pow", "0", "-1")
	assert.ErrorIs(t, err, ratcomplex.ErrDivisionByZero)

	_, err = run(t, "", "--max-exponent", "10", "pow", "2", "11")
	assert.ErrorContains(t, err, "exceeds --max-exponent 10")
}

func TestTower(t *testing.T) {
	out, err := run(t, "", "tower", "2", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "method: exact integer tower\n")
	assert.Contains(t, out, "result: 65536\n")

	out, err = run(t, "", "tower", "3", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "result: 1\n")

	out, err = run(t, "", "tower", "1/2", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "method: complex128")

	_, err = run(t, "", "tower", "2", "6")
	assert.ErrorContains(t, err, "level 6")

	_, err = run(t, "", "tower", "2", "-1")
	assert.ErrorContains(t, err, "invalid height")
}

func TestPowerTower(t *testing.T) {
	res, exact, err := powerTower(ratcomplex.MustParse("1j"), 3, defaultMaxExponent)
	require.NoError(t, err)
	assert.False(t, exact)
	// i^i is real, e^(-pi/2); (i)^(e^(-pi/2)) is on the unit circle
	assert.InDelta(t, 1.0, res.Abs(), 1e-12)

	res, exact, err = powerTower(ratcomplex.MustParse("-1"), 5, defaultMaxExponent)
	require.NoError(t, err)
	assert.True(t, exact)
	assert.True(t, res.Equal(ratcomplex.MustParse("-1")))
}
