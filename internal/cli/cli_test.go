package cli

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionYAML = `
title: f
vars: [A, B, C, D]
values: "11000011****10**"
markings:
  - indices: [0, 1, 5, 4]
  - clicks: [{x: 1, y: 1}, {x: 1, y: 2}]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// run executes the command tree with args and returns stdout and stderr.
func run(t *testing.T, ctx context.Context, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.ExecuteContext(ctx)
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Structure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "kvmap", cmd.Use)
	assert.NotEmpty(t, cmd.Short)

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"latex", "render", "grid", "blocks"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
	for _, flag := range []string{"config", "log-level", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing flag %q", flag)
	}
}

func TestGetCLIContext_Missing(t *testing.T) {
	_, err := GetCLIContext(&cobra.Command{})
	require.ErrorIs(t, err, ErrNoContext)
}

func TestGrid(t *testing.T) {
	out, _, err := run(t, context.Background(), "grid", "--vars", "2")
	require.NoError(t, err)
	assert.Equal(t, "y\\x  0  1\n---  -  -\n0    0  1\n1    2  3\n", out)

	_, _, err = run(t, context.Background(), "grid", "--vars", "13")
	require.Error(t, err)
}

func TestBlocks(t *testing.T) {
	out, stderr, err := run(t, context.Background(), "blocks", "--vars", "4", "--indices", "0,1,5,4")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"(0,0)-(4,1)", "left|right", "top|bottom", `\put(2,3.5){\oval(3.9,0.9)}`}, strings.Fields(lines[2]))

	out, stderr, err = run(t, context.Background(), "blocks", "-n", "4", "-i", "0,3")
	require.NoError(t, err)
	assert.Contains(t, stderr, "warning:")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 4, "two islands")

	_, _, err = run(t, context.Background(), "blocks", "-n", "2", "-i", "9")
	require.Error(t, err)
}

func TestLatex_Stdout(t *testing.T) {
	path := writeFile(t, t.TempDir(), "s.yaml", sessionYAML)
	out, _, err := run(t, context.Background(), "latex", "-f", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\\karnaughmap{4}{f}%\n{{D}{C}{B}{A}}\n{11000011****10**}\n"), out)
	assert.Contains(t, out, `\textcolor{red}{\put(2,3.5){\oval(3.9,0.9)}}`)
	assert.Contains(t, out, `\textcolor{green}{`)
}

func TestLatex_ConfigShrink(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "s.yaml", sessionYAML)
	cfg := writeFile(t, dir, "kvmap.yaml", "latex:\n  oval_shrink: 0\n")
	out, _, err := run(t, context.Background(), "--config", cfg, "latex", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, `\put(2,3.5){\oval(4,1)}`)
}

func TestLatex_Errors(t *testing.T) {
	dir := t.TempDir()
	_, _, err := run(t, context.Background(), "latex")
	require.Error(t, err, "--file is required")

	_, _, err = run(t, context.Background(), "latex", "-f", filepath.Join(dir, "absent.yaml"))
	require.Error(t, err)

	bad := writeFile(t, dir, "bad.yaml", "markings:\n  - indices: [0, 3]\n")
	out := filepath.Join(dir, "out.tex")
	_, _, err = run(t, context.Background(), "latex", "-f", bad, "-o", out)
	require.Error(t, err)
	_, statErr := os.Stat(out)
	require.True(t, os.IsNotExist(statErr), "failed export writes nothing")

	badCfg := writeFile(t, dir, "cfg.yaml", "render:\n  inset: 0.9\n")
	_, _, err = run(t, context.Background(), "--config", badCfg, "grid")
	require.Error(t, err)
}

func TestRender_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "s.yaml", sessionYAML)
	out := filepath.Join(dir, "map.png")

	_, _, err := run(t, context.Background(), "render", "-f", path)
	require.Error(t, err, "--output is required")

	_, _, err = run(t, context.Background(), "render", "-f", path, "-o", out)
	require.NoError(t, err)
	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

// TestLatex_Watch keeps rewriting the session file until the export follows
// it, then stops the watch through the context.
func TestLatex_Watch(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "s.yaml", sessionYAML)
	out := filepath.Join(dir, "map.tex")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, _, err := run(t, ctx, "latex", "-f", path, "-o", out, "--watch")
		done <- err
	}()

	changed := strings.Replace(sessionYAML, "title: f", "title: g", 1)
	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte(changed), 0o600)
		b, err := os.ReadFile(out)
		return err == nil && strings.HasPrefix(string(b), `\karnaughmap{4}{g}%`)
	}, 10*time.Second, 100*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestFormatTable(t *testing.T) {
	assert.Empty(t, FormatTable(nil, nil))
	got := FormatTable([]string{"a", "bb"}, [][]string{{"ccc"}, {"d", "e", "ignored"}})
	assert.Equal(t, "a    bb\n---  --\nccc  \nd    e\n", got)
}
