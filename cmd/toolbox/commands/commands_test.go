package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbox/cmd/toolbox/commands"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := commands.NewRoot()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(t.Context())
	return out.String(), errOut.String(), err
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "", "--home", t.TempDir(), "list")
	require.NoError(t, err)
	for _, name := range []string{"bmi", "journal", "todo", "maze"} {
		assert.Contains(t, out, name)
	}
}

func TestModuleShorthandAndRun(t *testing.T) {
	home := t.TempDir()
	_, _, err := execute(t, "", "--home", home, "tip")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(home, "tip", "tip_result.json"))
	require.NoError(t, err)

	out, _, err := execute(t, "", "--home", home, "run", "bmi")
	require.NoError(t, err)
	assert.Contains(t, out, "Edit them and run again")

	out, _, err = execute(t, "", "--home", home, "run", "bmi")
	require.NoError(t, err)
	assert.Contains(t, out, "Normal")
}

func TestDataOverride(t *testing.T) {
	home, data := t.TempDir(), filepath.Join(t.TempDir(), "elsewhere")
	_, _, err := execute(t, "", "--home", home, "--data", data, "fibonacci")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(data, "fibonacci_result.json"))
	require.NoError(t, err)
}

func TestRun_FailureIsReported(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, "tip")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tip_config.json"), []byte("{broken"), 0o600))

	_, logs, err := execute(t, "", "--home", home, "tip")
	require.Error(t, err)
	assert.Contains(t, logs, "module failed")

	_, _, err = execute(t, "", "--home", home, "run", "nope")
	require.Error(t, err)
}

func TestExport(t *testing.T) {
	home := t.TempDir()
	_, _, err := execute(t, "", "--home", home, "dice")
	require.NoError(t, err)
	src := filepath.Join(home, "dice", "dice_history.json")

	out, _, err := execute(t, "", "--home", home, "export", src, "--format", "toml")
	require.NoError(t, err)
	assert.Contains(t, out, "[[records]]")

	dst := filepath.Join(home, "dice.yaml")
	_, _, err = execute(t, "", "--home", home, "export", src, "-o", dst)
	require.NoError(t, err)
	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(b), "grand_total:")

	_, _, err = execute(t, "", "--home", home, "export", src, "--format", "xml")
	require.Error(t, err)
}

func TestExport_ReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("no /dev/full on this platform")
	}
	home := t.TempDir()
	_, _, err := execute(t, "", "--home", home, "dice")
	require.NoError(t, err)

	src := filepath.Join(home, "dice", "dice_history.json")
	_, _, err = execute(t, "", "--home", home, "export", src, "-o", "/dev/full")
	require.Error(t, err)
}
