package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the command line with HOME pointed at an empty directory so
// that a user configuration cannot leak into the test
func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), code
}

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"slice reverse", []string{"slice", "::-1", "hello"}, "\"olleh\"\n"},
		{"slice negative", []string{"slice", "--", "-3:", "hello"}, "\"llo\"\n"},
		{"slice wide", []string{"--wide", "slice", "1:3", "h€llo"}, "\"€l\"\n"},
		{"at", []string{"at", "--", "-1", "hello"}, "111\n"},
		{"find", []string{"find", "l", "hello"}, "2\n"},
		{"find narrow offset", []string{"find", "l", "h€llo"}, "4\n"},
		{"find wide offset", []string{"--wide", "find", "l", "h€llo"}, "2\n"},
		{"find from pos", []string{"find", "--pos", "-2", "l", "hello"}, "3\n"},
		{"find missing", []string{"find", "z", "hello"}, "-1\n"},
		{"rfind bounded", []string{"rfind", "l", "hello", "--end", "3"}, "2\n"},
		{"index", []string{"index", "l", "hello"}, "2\n"},
		{"rindex", []string{"rindex", "l", "hello"}, "3\n"},
		{"count", []string{"count", "l", "hello"}, "2\n"},
		{"count empty needle", []string{"count", "", "abc"}, "4\n"},
		{"startswith", []string{"startswith", "he", "hello"}, "true\n"},
		{"endswith candidates", []string{"endswith", ".yaml", "--or", ".yml", "seqkit.yml"}, "true\n"},
		{"endswith window", []string{"endswith", "lo", "hello", "--end", "4"}, "false\n"},
		{"split whitespace", []string{"split", "a  b"}, "\"a\"\n\"\"\n\"b\"\n"},
		{"split right", []string{"split", "--sep", "/", "--right", "-n", "1", "usr/local/bin"}, "\"usr/local\"\n\"bin\"\n"},
		{"partition", []string{"partition", "=", "level=debug"}, "\"level\"\n\"=\"\n\"debug\"\n"},
		{"rpartition missing", []string{"partition", "--right", "=", "abc"}, "\"\"\n\"\"\n\"abc\"\n"},
		{"strip", []string{"strip", "  padded \t"}, "\"padded\"\n"},
		{"strip chars left", []string{"strip", "--chars", "-=", "--side", "left", "--==title==--"}, "\"title==--\"\n"},
		{"lines", []string{"lines", "a\nb\r\nc\n"}, "\"a\"\n\"b\"\n\"c\"\n"},
		{"translate", []string{"translate", "abc", "xyz", "aabbcc"}, "\"xxyyzz\"\n"},
		{"translate delete", []string{"translate", "--delete", "-", "", "", "a-b-c"}, "\"abc\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := execute(t, "", tt.args...)
			require.Equal(t, 0, code, "stderr: %s", stderr)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestFailures(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		code    int
		message string
	}{
		{"index missing", []string{"index", "z", "hello"}, 1, "not found"},
		{"at out of range", []string{"at", "5", "hello"}, 1, "out of range"},
		{"missing haystack", []string{"find", "x"}, 2, "invalid input"},
		{"bad slice", []string{"slice", "a:b", "hello"}, 2, "invalid format"},
		{"bad side", []string{"strip", "--side", "middle", "x"}, 2, "invalid input"},
		{"translate mismatch", []string{"translate", "ab", "x", "abc"}, 2, "invalid input"},
		{"unknown encoding", []string{"--encoding", "ebcdic", "find", "x", "y"}, 2, "encoding"},
		{"missing file", []string{"--file", "/does/not/exist", "find", "x"}, 1, "not found"},
		{"unknown command", []string{"frobnicate"}, 2, "unknown command"},
		{"too many args", []string{"find", "a", "b", "c"}, 2, "accepts between"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := execute(t, "", tt.args...)
			assert.Equal(t, tt.code, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error:")
			assert.Contains(t, strings.ToLower(stderr), tt.message)
		})
	}
}

func TestFileInput(t *testing.T) {
	t.Run("stdin", func(t *testing.T) {
		stdout, _, code := execute(t, "a\r\nb", "--file", "-", "lines", "--keepends")
		require.Equal(t, 0, code)
		assert.Equal(t, "\"a\\r\\n\"\n\"b\"\n", stdout)
	})

	t.Run("latin1", func(t *testing.T) {
		path := writeFile(t, "latin1.txt", []byte("caf\xe9 au lait"))
		stdout, stderr, code := execute(t, "", "--encoding", "latin1", "--file", path, "find", "é")
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, "3\n", stdout)

		stdout, _, _ = execute(t, "", "--encoding", "latin1", "--file", path, "slice", ":4")
		assert.Equal(t, "\"café\"\n", stdout)
	})

	t.Run("utf-16 selects wide units", func(t *testing.T) {
		path := writeFile(t, "wide.txt", []byte{'h', 0, 0xac, 0x20, 'i', 0})
		stdout, stderr, code := execute(t, "", "-e", "utf-16le", "-f", path, "slice", "::-1")
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, "\"i€h\"\n", stdout)
	})

	t.Run("haystack twice", func(t *testing.T) {
		_, _, code := execute(t, "hello", "--file", "-", "find", "l", "hello")
		assert.Equal(t, 2, code)
	})

	t.Run("unrepresentable needle", func(t *testing.T) {
		_, stderr, code := execute(t, "abc", "-e", "latin1", "-f", "-", "find", "€")
		assert.Equal(t, 2, code)
		assert.Contains(t, stderr, "latin1")
	})
}

func TestConfiguration(t *testing.T) {
	t.Run("classifier from file", func(t *testing.T) {
		unicodeCfg := writeFile(t, "seqkit.toml", []byte("[seqx]\nclassifier = \"unicode\"\n"))
		asciiCfg := writeFile(t, "seqkit.toml", []byte("[seqx]\nclassifier = \"ascii\"\n"))

		stdout, _, code := execute(t, "", "--config", unicodeCfg, "--wide", "split", "a\u3000b")
		require.Equal(t, 0, code)
		assert.Equal(t, "\"a\"\n\"b\"\n", stdout)

		stdout, _, code = execute(t, "", "--config", asciiCfg, "--wide", "split", "a\u3000b")
		require.Equal(t, 0, code)
		assert.Equal(t, "\"a\\u3000b\"\n", stdout)
	})

	t.Run("wide from yaml", func(t *testing.T) {
		path := writeFile(t, "seqkit.yaml", []byte("cli:\n  wide: true\n"))
		stdout, _, code := execute(t, "", "--config", path, "find", "l", "h€llo")
		require.Equal(t, 0, code)
		assert.Equal(t, "2\n", stdout)

		stdout, _, _ = execute(t, "", "--config", path, "--wide=false", "find", "l", "h€llo")
		assert.Equal(t, "4\n", stdout)
	})

	t.Run("invalid value", func(t *testing.T) {
		path := writeFile(t, "seqkit.toml", []byte("[seqx]\nclassifier = \"klingon\"\n"))
		_, stderr, code := execute(t, "", "--config", path, "find", "x", "y")
		assert.Equal(t, 3, code)
		assert.Contains(t, stderr, "seqx.classifier")
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, code := execute(t, "", "--config", filepath.Join(t.TempDir(), "absent.toml"), "find", "x", "y")
		assert.Equal(t, 1, code)
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv("SEQKIT_CLI_ENCODING", "latin1")
		stdout, stderr, code := execute(t, "caf\xe9", "--file", "-", "find", "é")
		require.Equal(t, 0, code, stderr)
		assert.Equal(t, "3\n", stdout)
	})

	t.Run("flag beats environment", func(t *testing.T) {
		t.Setenv("SEQKIT_CLI_ENCODING", "latin1")
		stdout, _, code := execute(t, "", "--encoding", "utf-8", "find", "l", "é l")
		require.Equal(t, 0, code)
		assert.Equal(t, "3\n", stdout)
	})
}

func TestLogging(t *testing.T) {
	t.Run("quiet by default", func(t *testing.T) {
		_, stderr, code := execute(t, "", "find", "l", "hello")
		require.Equal(t, 0, code)
		assert.Empty(t, stderr)
	})

	t.Run("verbose text", func(t *testing.T) {
		_, stderr, code := execute(t, "", "-v", "find", "l", "hello")
		require.Equal(t, 0, code)
		assert.Contains(t, stderr, "find completed")
		assert.Contains(t, stderr, "{seqkit}")
	})

	t.Run("failed search is timed", func(t *testing.T) {
		_, stderr, code := execute(t, "", "-v", "index", "z", "hello")
		require.Equal(t, 1, code)
		assert.Contains(t, stderr, "index failed")
		assert.Contains(t, stderr, "duration_ms")

		_, stderr, code = execute(t, "", "index", "z", "hello")
		require.Equal(t, 1, code)
		assert.NotContains(t, stderr, "index failed")
	})

	t.Run("json with correlation id", func(t *testing.T) {
		t.Setenv("SEQKIT_LOG_FORMAT", "json")
		_, stderr, code := execute(t, "", "-v", "count", "l", "hello")
		require.Equal(t, 0, code)

		lines := strings.Split(strings.TrimSpace(stderr), "\n")
		require.NotEmpty(t, lines)

		var ids []string
		for _, line := range lines {
			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
			assert.Equal(t, "count", entry["command"])
			id, _ := entry["correlation_id"].(string)
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
			ids = append(ids, id)
		}
		for _, id := range ids {
			assert.Equal(t, ids[0], id, "one correlation id per invocation")
		}
	})
}

func TestVersion(t *testing.T) {
	path := writeFile(t, "seqkit.toml", []byte("[seqx]\nclassifier = \"klingon\"\n"))
	stdout, _, code := execute(t, "", "--config", path, "version")
	require.Equal(t, 0, code)
	assert.Contains(t, stdout, "seqkit v"+Version)
}
