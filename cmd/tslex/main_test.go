package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runString(t *testing.T, stdin string, args ...string) (status int, stdout, stderr string) {
	t.Helper()
	var out, errs strings.Builder
	status = run(args, strings.NewReader(stdin), &out, &errs)
	return status, out.String(), errs.String()
}

func TestRun_stdin(t *testing.T) {
	status, out, errs := runString(t, "{ 0x1f; } // done\n")
	assert.Equal(t, 0, status)
	assert.Empty(t, errs)
	assert.Equal(t, strings.Join([]string{
		"<stdin>:1:1\tLeftBraceToken\t\"{\"",
		"<stdin>:1:3\tNumericLiteral\t\"0x1f\"",
		"<stdin>:1:7\tSemicolonToken\t\";\"",
		"<stdin>:1:9\tRightBraceToken\t\"}\"",
		"<stdin>:1:11\tSingleLineCommentTrivia\t\" done\"",
		"",
	}, "\n"), out)
}

func TestRun_flags(t *testing.T) {
	t.Run("no-comments", func(t *testing.T) {
		status, out, _ := runString(t, "/* a */ ;", "-no-comments")
		assert.Equal(t, 0, status)
		assert.Equal(t, "<stdin>:1:9\tSemicolonToken\t\";\"\n", out)
	})
	t.Run("errors", func(t *testing.T) {
		status, out, errs := runString(t, "; ..\n0b2")
		assert.Equal(t, 1, status)
		assert.Equal(t, "<stdin>:1:1\tSemicolonToken\t\";\"\n", out)
		assert.Equal(t, "[1:5] Unexpected Character\n[2:3] Invalid number literal\n", errs)
	})
	t.Run("excerpt", func(t *testing.T) {
		status, _, errs := runString(t, "a;", "-excerpt")
		assert.Equal(t, 1, status)
		assert.Equal(t, "[1:1] Unexpected Character\n|a;\n|^\n", errs)
	})
	t.Run("color", func(t *testing.T) {
		status, out, errs := runString(t, "; `", "-color")
		assert.Equal(t, 1, status)
		assert.Contains(t, out, "SemicolonToken")
		assert.Contains(t, errs, "[1:3] Unexpected Character")
	})
	t.Run("bad flag", func(t *testing.T) {
		status, _, errs := runString(t, "", "-nope")
		assert.Equal(t, 2, status)
		assert.Contains(t, errs, "usage: tslex")
	})
	t.Run("repl with files", func(t *testing.T) {
		status, _, _ := runString(t, "", "-repl", "file.ts")
		assert.Equal(t, 2, status)
	})
}

func TestRun_files(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.ts")
	bad := filepath.Join(dir, "bad.ts")
	require.NoError(t, os.WriteFile(good, []byte("??="), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("\n  #"), 0o644))

	status, out, errs := runString(t, "", good, bad)
	assert.Equal(t, 1, status)
	assert.Equal(t, good+":1:1\tQuestionQuestionEqualsToken\t\"??=\"\n", out)
	assert.Equal(t, "[2:3] Unexpected Character\n", errs)

	status, _, errs = runString(t, "", filepath.Join(dir, "missing.ts"))
	assert.Equal(t, 2, status)
	assert.True(t, strings.HasPrefix(errs, "tslex: "), errs)
}
