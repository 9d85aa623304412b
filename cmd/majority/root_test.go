package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/majority/pkg/majority"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, env map[string]string, stdin string, args ...string) result {
	t.Helper()
	if env == nil {
		env = map[string]string{}
	}
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr, env)
	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFindCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		env        map[string]string
		stdin      string
		file       string
		content    string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "lines from stdin",
			stdin:      "a\nb\na\na\nc\na\n",
			wantCode:   exitOK,
			wantStdout: "a\n",
		},
		{
			name:       "dash reads stdin",
			stdin:      "x\nx\ny\n",
			args:       []string{"-"},
			wantCode:   exitOK,
			wantStdout: "x\n",
		},
		{
			name:       "json file by extension",
			file:       "ints.json",
			content:    "[3,3,4,2,4,4,2,4,4]",
			wantCode:   exitOK,
			wantStdout: "4\n",
		},
		{
			name:       "yaml file by extension",
			file:       "fruits.yaml",
			content:    "- apple\n- pear\n- apple\n",
			wantCode:   exitOK,
			wantStdout: "apple\n",
		},
		{
			name:       "objects compare structurally",
			stdin:      `[{"name":"Apple","qty":1},{"name":"Banana"},{"qty":1,"name":"Apple"}]`,
			args:       []string{"--format", "json"},
			wantCode:   exitOK,
			wantStdout: `{"name":"Apple","qty":1}` + "\n",
		},
		{
			name:       "fold",
			stdin:      "Go\ngo\nRust\n",
			args:       []string{"--fold"},
			wantCode:   exitOK,
			wantStdout: "Go\n",
		},
		{
			name:       "json null",
			stdin:      "null",
			args:       []string{"-f", "json"},
			wantCode:   exitBadInput,
			wantStderr: "Invalid value: collection is null.",
		},
		{
			name:       "empty lines",
			stdin:      "\n\n",
			wantCode:   exitBadInput,
			wantStderr: "Invalid value: collection is empty.",
		},
		{
			name:       "duplicate free",
			stdin:      "[1,2,3,4]",
			args:       []string{"--format", "json"},
			wantCode:   exitNoMajority,
			wantStderr: "No majority element exists in the provided collection",
		},
		{
			name:       "exact half is not a majority",
			stdin:      "[2,2,3,5,2,1,2,6,6,2,1,3,2,2]",
			args:       []string{"--format", "json"},
			wantCode:   exitNoMajority,
			wantStderr: "No majority element",
		},
		{
			name:       "exact half without validation",
			stdin:      "[2,2,3,5,2,1,2,6,6,2,1,3,2,2]",
			args:       []string{"--format", "json", "--no-validate"},
			wantCode:   exitOK,
			wantStdout: "2\n",
		},
		{
			name:       "validation disabled by env",
			env:        map[string]string{"MAJORITY_VALIDATE": "false"},
			stdin:      "[2,2,3,5,2,1,2,6,6,2,1,3,2,2]",
			args:       []string{"--format", "json"},
			wantCode:   exitOK,
			wantStdout: "2\n",
		},
		{
			name:       "format and fold from env",
			env:        map[string]string{"MAJORITY_INPUT_FORMAT": "json", "MAJORITY_FOLD_CASE": "true"},
			stdin:      `["A","a","b"]`,
			wantCode:   exitOK,
			wantStdout: "A\n",
		},
		{
			name:       "malformed json",
			stdin:      "[1,",
			args:       []string{"--format", "json"},
			wantCode:   exitError,
			wantStderr: "decoding stdin",
		},
		{
			name:       "invalid utf-8 line",
			stdin:      "a\n\xff\n",
			wantCode:   exitError,
			wantStderr: "line 2 is not valid UTF-8",
		},
		{
			name:       "number spellings agree",
			stdin:      "[1e15, 1000000000000000, 3]",
			args:       []string{"--format", "json"},
			wantCode:   exitOK,
			wantStdout: "1000000000000000\n",
		},
		{
			name:       "not a sequence",
			stdin:      `{"a":1}`,
			args:       []string{"--format", "json"},
			wantCode:   exitError,
			wantStderr: "Error:",
		},
		{
			name:       "unknown format",
			stdin:      "a\n",
			args:       []string{"--format", "xml"},
			wantCode:   exitError,
			wantStderr: "Error:",
		},
		{
			name:       "too many arguments",
			args:       []string{"a.json", "b.json"},
			wantCode:   exitError,
			wantStderr: "accepts at most 1 arg",
		},
		{
			name:       "invalid log level",
			stdin:      "a\n",
			args:       []string{"--log-level", "loud"},
			wantCode:   exitError,
			wantStderr: "Error:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			args := tt.args
			if tt.file != "" {
				args = append([]string{writeFile(t, tt.file, tt.content)}, args...)
			}
			res := runCLI(t, tt.env, tt.stdin, args...)

			assert.Equal(t, tt.wantCode, res.code, "stderr: %s", res.stderr)
			if tt.wantStdout != "" || tt.wantCode == exitOK {
				assert.Equal(t, tt.wantStdout, res.stdout)
			}
			if tt.wantStderr != "" {
				assert.Contains(t, res.stderr, tt.wantStderr)
			}
		})
	}
}

func TestFindCommand_MissingFile(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "missing.json")
	assert.Empty(t, res.stdout)
}

func TestFindCommand_FormatFlagOverridesExtension(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "list.json", "[1,2]\n[1,2]\nx\n")
	res := runCLI(t, nil, "", path, "--format", "lines")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "[1,2]\n", res.stdout)
}

func TestFindCommand_Stats(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "a\na\nb\n", "--stats")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Equal(t, "a\ntotal: 3\nthreshold: 2\nscanned: 2\nearly_stop: true\nvalidated: true\noccurrences: 2\n", res.stdout)

	res = runCLI(t, nil, "a\na\nb\n", "--stats", "--no-validate")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "validated: false\n")
	assert.NotContains(t, res.stdout, "occurrences")
}

func TestFindCommand_DebugLog(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "a\na\nb\n", "--log-level", "debug", "--log-format", "json")
	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stderr, `"msg":"vote finished"`)
	assert.Contains(t, res.stderr, `"source":"stdin"`)
	assert.Contains(t, res.stderr, `"service":"majority"`)

	res = runCLI(t, nil, "a\na\nb\n")
	require.Equal(t, exitOK, res.code)
	assert.Empty(t, res.stderr)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	res := runCLI(t, nil, "", "version")
	require.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stdout, "majority version dev")
	assert.Contains(t, res.stdout, "commit: none")
}

func TestInvalidConfig(t *testing.T) {
	t.Parallel()

	res := runCLI(t, map[string]string{"MAJORITY_VALIDATE": "maybe"}, "a\n")
	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "Error:")
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want int
	}{
		{majority.ErrNullInput, exitBadInput},
		{majority.ErrEmptyInput, exitBadInput},
		{majority.ErrNoMajority, exitNoMajority},
		{fmt.Errorf("vote: %w", majority.ErrNoMajority), exitNoMajority},
		{errors.New("boom"), exitError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, exitCode(tt.err), "%v", tt.err)
	}
}
