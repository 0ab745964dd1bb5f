package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdva/apdecimal"
)

func run(t *testing.T, args ...string) (string, error) {
	prec, sep, iter := apdecimal.Precision, apdecimal.DecimalSeparator, apdecimal.MaxIterations
	t.Cleanup(func() {
		apdecimal.Precision, apdecimal.DecimalSeparator, apdecimal.MaxIterations = prec, sep, iter
	})
	cmd := Main()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		args []string
		out  string
	}{
		{[]string{"div", "1", "3", "-p", "5"}, "0.33333\n"},
		{[]string{"add", "0.1", "0.2", "-p", "-1"}, "0.3\n"},
		{[]string{"--separator", ",", "div", "1", "4", "-p", "2"}, "0,25\n"},
		{[]string{"mod", "7", "3"}, "1\n"},
		{[]string{"fact", "5"}, "120\n"},
		{[]string{"sqrt", "2", "--precision", "10"}, "1.4142135624\n"},
		{[]string{"--json", "sub", "-p", "-1", "--", "1", "-2"}, "{\"op\":\"sub\",\"result\":\"3\"}\n"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			out, err := run(t, test.args...)
			if a.NoError(err) {
				a.Equal(test.out, out)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	a := assert.New(t)
	tests := [][]string{
		{"nop", "1"},
		{"div", "1", "0"},
		{"add", "1"},
		{"add", "1", "x"},
		{"--separator", ";", "add", "1", "2"},
		{"--max-iterations", "0", "add", "1", "2"},
		{"--config", "/nonexistent/apdcalc.yaml", "add", "1", "2"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := run(t, test...)
			a.Error(err)
		})
	}
}

func TestEnvAndConfig(t *testing.T) {
	a := assert.New(t)
	t.Setenv("APDCALC_PRECISION", "3")
	out, err := run(t, "div", "2", "3")
	require.NoError(t, err)
	a.Equal("0.667\n", out)

	dir := t.TempDir()
	config := filepath.Join(dir, "apdcalc.yaml")
	require.NoError(t, os.WriteFile(config, []byte("separator: \",\"\n"), 0o600))
	out, err = run(t, "--config", config, "div", "2", "3")
	require.NoError(t, err)
	a.Equal("0,667\n", out)

	// flags have priority over the environment.
	out, err = run(t, "div", "2", "3", "-p", "1")
	require.NoError(t, err)
	a.Equal("0.7\n", out)
}

func TestList(t *testing.T) {
	a := assert.New(t)
	out, err := run(t, "list")
	require.NoError(t, err)
	a.Contains(out, "sqrt")
	a.Contains(out, "square root of x")
	a.Contains(out, "logb")
}
