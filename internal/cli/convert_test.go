package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with the given arguments and returns what it
// wrote to stdout and stderr.
func execute(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestConvertCommand_FileToStdout(t *testing.T) {
	src := writeTempFile(t, "prog.py", "x = 5\nprint(x)")

	out, _, err := execute(t, nil, "convert", src, "--from", "python", "--to", "javascript")
	require.NoError(t, err)
	assert.Equal(t, "let x = 5;\nconsole.log(x);\n", out)
}

func TestConvertCommand_Stdin(t *testing.T) {
	stdin := strings.NewReader(`cout << "hi" << endl;`)

	out, _, err := execute(t, stdin, "convert", "--from", "cpp", "--to", "python")
	require.NoError(t, err)
	assert.Equal(t, "print(\"hi\")\n", out)
}

func TestConvertCommand_OutputFile(t *testing.T) {
	src := writeTempFile(t, "prog.py", "x = 1")
	dst := filepath.Join(t.TempDir(), "prog.js")

	out, _, err := execute(t, nil, "convert", src, "--from", "python", "--to", "javascript", "-o", dst)
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;", string(written))
}

func TestConvertCommand_JSONFormat(t *testing.T) {
	src := writeTempFile(t, "prog.py", "x = 1")

	out, _, err := execute(t, nil, "convert", src, "--from", "python", "--to", "javascript", "--format", "json")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			SourceLanguage string `json:"source_language"`
			TargetLanguage string `json:"target_language"`
			Output         string `json:"output"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "python", resp.Data.SourceLanguage)
	assert.Equal(t, "let x = 1;", resp.Data.Output)
}

func TestConvertCommand_UnsupportedLanguage(t *testing.T) {
	src := writeTempFile(t, "prog.rb", "x = 1")

	_, errOut, err := execute(t, nil, "convert", src, "--from", "ruby", "--to", "python")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "unsupported source language")
}

func TestConvertCommand_UnreadableFile(t *testing.T) {
	_, errOut, err := execute(t, nil, "convert", filepath.Join(t.TempDir(), "missing.py"),
		"--from", "python", "--to", "javascript")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "error:")
}

func TestConvertCommand_StrictParseFailure(t *testing.T) {
	src := writeTempFile(t, "prog.py", "x = 1\nimport os")

	_, errOut, err := execute(t, nil, "convert", src, "--from", "python", "--to", "javascript", "--strict")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, errOut, "unrecognized statement")

	// Without --strict the same input converts.
	out, _, err := execute(t, nil, "convert", src, "--from", "python", "--to", "javascript")
	require.NoError(t, err)
	assert.Equal(t, "let x = 1;\n", out)
}

func TestConvertCommand_HistoryRecorded(t *testing.T) {
	src := writeTempFile(t, "prog.py", "x = 1")
	db := filepath.Join(t.TempDir(), "history.db")

	_, _, err := execute(t, nil, "convert", src, "--from", "python", "--to", "cpp", "--history", db)
	require.NoError(t, err)

	out, _, err := execute(t, nil, "history", db)
	require.NoError(t, err)
	assert.Contains(t, out, "python -> cpp")
}

func TestHistoryCommand_EmptyDatabase(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")

	out, _, err := execute(t, nil, "history", db)
	require.NoError(t, err)
	assert.Equal(t, "no conversions recorded\n", out)
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	src := writeTempFile(t, "prog.py", "x = 1")

	_, _, err := execute(t, nil, "convert", src, "--from", "python", "--to", "javascript", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}
