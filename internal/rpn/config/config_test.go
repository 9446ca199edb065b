package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/treeforest/rpn/internal/rpn/diag"
	"github.com/treeforest/rpn/internal/rpn/stack"
)

const sample = `
mode: test
capacity: 16
debug: true
color: false
idle_interval: 250ms
cases:
  - name: tuck_three
    capacity: 4
    with: "1 2 3"
    script: "tuck"
    want:
      len: 4
      contents: "1 3 2 3"
  - name: pop_default_capacity
    script: "7 pop pop"
    want:
      output: "7"
      err: underflow
`

func writeConfig(t *testing.T, text string) string {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(text), 0644))
	return p
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, sample))
	require.NoError(t, err)
	require.Equal(t, ModeTest, conf.Mode)
	require.Equal(t, 16, conf.Capacity)
	require.True(t, conf.Debug)
	require.False(t, conf.Color)

	d, err := conf.Interval()
	require.NoError(t, err)
	require.Equal(t, 250*time.Millisecond, d)

	cases, err := conf.DiagCases()
	require.NoError(t, err)
	require.Len(t, cases, 2)
	require.Equal(t, 4, cases[0].Capacity)
	require.Equal(t, []stack.Entry{stack.Int(1), stack.Int(3), stack.Int(2), stack.Int(3)}, cases[0].Want.Contents)
	require.Nil(t, cases[0].Want.Output)
	require.Equal(t, 16, cases[1].Capacity)
	require.Equal(t, stack.Underflow, cases[1].Want.Err)

	sum := diag.Run(cases, diag.NewReporter(os.Stdout, false, false))
	require.True(t, sum.OK(), "failures: %v", sum.Failures)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), conf)
}

func TestLoadInvalid(t *testing.T) {
	tests := []string{
		"mode: turbo",
		"capacity: 0",
		"idle_interval: soon",
		"idle_interval: -1s",
		"cases: [{script: pop}]",
		"cases: [{name: x, script: frob}]",
		"cases: [{name: x, with: \"1 pop\"}]",
		"cases: [{name: x, want: {err: kaboom}}]",
		"cases: [{name: x, want: {contents: \"a b\"}}]",
		"mode: [",
	}
	for _, text := range tests {
		_, err := Load(writeConfig(t, text))
		require.Error(t, err, text)
	}
}
