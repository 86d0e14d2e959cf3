package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	helpers_test "github.com/eriklarko/booleval/src/helpers"
	"github.com/eriklarko/booleval/src/tui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	code    int
	stdout  string
	stderr  string
	prompts string
}

// run runs the app with a config file holding configContent and answers
// every prompt with the given lines
func run(t *testing.T, configContent string, answers []string, args ...string) result {
	t.Helper()

	configFile := helpers_test.CreateTempFileWithContents(t, configContent)

	var stdout, stderr, prompts bytes.Buffer
	ui := tui.New()
	ui.SetInput(strings.NewReader(strings.Join(answers, "\n") + "\n"))
	ui.SetOutput(&prompts)

	runner := NewRunner(&stdout, &stderr, ui)
	code := runner.Run(append([]string{"booleval", "--config", configFile}, args...))

	return result{
		code:    code,
		stdout:  stdout.String(),
		stderr:  stderr.String(),
		prompts: prompts.String(),
	}
}

func nonInteractive(t *testing.T) {
	tui.ForceSetIsInteractive(false)
	t.Cleanup(tui.ResetIsInteractive)
}

func interactive(t *testing.T) {
	tui.ForceSetIsInteractive(true)
	t.Cleanup(tui.ResetIsInteractive)
}

func TestEval(t *testing.T) {
	nonInteractive(t)

	tests := map[string]string{
		"1 & !0":           "true\n",
		"true ^ true":      "false\n",
		"!(false | 0)":     "true\n",
		"(1 | 0) & !!0":    "false\n",
		"false|true&false": "false\n",
	}

	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			res := run(t, "", nil, "eval", expression)
			assert.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, expected, res.stdout)
		})
	}
}

func TestEval_JoinsArguments(t *testing.T) {
	nonInteractive(t)

	res := run(t, "", nil, "e", "1", "&", "0")
	assert.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "false\n", res.stdout)
}

func TestEval_RejectsIdentifiers(t *testing.T) {
	nonInteractive(t)

	res := run(t, "", nil, "eval", "1 & a")
	assert.Equal(t, 1, res.code)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "invalid character 'a' at position 5")
	assert.Contains(t, res.stderr, "  1 & a\n      ^\n")
}

func TestParseErrorDiagnostic(t *testing.T) {
	nonInteractive(t)

	res := run(t, "", nil, "ast", "a && b")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unexpected token at position 4")
	assert.Contains(t, res.stderr, "  a && b\n     ^\n")
}

func TestMissingExpression(t *testing.T) {
	nonInteractive(t)

	for _, command := range []string{"eval", "table", "truth", "ast"} {
		t.Run(command, func(t *testing.T) {
			res := run(t, "", nil, command)
			assert.Equal(t, 1, res.code)
			assert.Contains(t, res.stderr, "missing expression")
		})
	}
}

func TestTable(t *testing.T) {
	nonInteractive(t)

	t.Run("csv", func(t *testing.T) {
		res := run(t, "", nil, "table", "--csv", "a ^ b")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "a,b,Result\nfalse,false,false\ntrue,false,true\nfalse,true,true\ntrue,true,false\n", res.stdout)
	})

	t.Run("only true rows", func(t *testing.T) {
		res := run(t, "", nil, "T", "-t", "--csv", "a | b")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "a,b,Result\ntrue,false,true\nfalse,true,true\ntrue,true,true\n", res.stdout)
	})

	t.Run("only false rows", func(t *testing.T) {
		res := run(t, "", nil, "table", "-f", "--csv", "a | b")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "a,b,Result\nfalse,false,false\n", res.stdout)
	})

	t.Run("both filters", func(t *testing.T) {
		res := run(t, "", nil, "table", "-t", "-f", "a | b")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "cannot filter for both")
	})

	t.Run("format from config", func(t *testing.T) {
		res := run(t, "table-format: csv", nil, "table", "a")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "a,Result\nfalse,false\ntrue,true\n", res.stdout)
	})

	t.Run("box", func(t *testing.T) {
		res := run(t, "", nil, "table", "a & b")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "Result")
		assert.Equal(t, 8, strings.Count(res.stdout, "\n"))
	})

	t.Run("summary", func(t *testing.T) {
		res := run(t, "", nil, "table", "--csv", "-s", "a | !a")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.True(t, strings.HasSuffix(res.stdout, "tautology, true in all 2 rows\n"), res.stdout)
	})
}

func TestTable_LargeTable(t *testing.T) {
	const expression = "a & b & c"
	const lowLimit = "table-warning-identifiers: 3"

	t.Run("declined", func(t *testing.T) {
		interactive(t)

		res := run(t, lowLimit, []string{"n"}, "table", "--csv", expression)
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Empty(t, res.stdout)
		assert.Contains(t, res.prompts, "8 rows")
	})

	t.Run("accepted", func(t *testing.T) {
		interactive(t)

		res := run(t, lowLimit, []string{"yes"}, "table", "--csv", expression)
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, 9, strings.Count(res.stdout, "\n"))
	})

	t.Run("not interactive", func(t *testing.T) {
		nonInteractive(t)

		res := run(t, lowLimit, nil, "table", "--csv", expression)
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Empty(t, res.prompts)
		assert.Contains(t, res.stderr, "large truth table")
		assert.Equal(t, 9, strings.Count(res.stdout, "\n"))
	})

	t.Run("below the limit", func(t *testing.T) {
		interactive(t)

		res := run(t, "table-warning-identifiers: 4", nil, "table", "--csv", expression)
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Empty(t, res.prompts)
	})
}

func TestTruth(t *testing.T) {
	nonInteractive(t)

	tests := map[string][]string{
		"binary string":     {"101"},
		"decimal":           {"5"},
		"boolean arguments": {"true", "false", "true"},
	}

	for name, values := range tests {
		t.Run(name, func(t *testing.T) {
			args := append([]string{"truth"}, values...)
			args = append(args, "a & !b & c")

			res := run(t, "", nil, args...)
			assert.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, "true\n", res.stdout)
		})
	}

	t.Run("too many values", func(t *testing.T) {
		res := run(t, "", nil, "t", "1", "0", "1", "a | b")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "too many values")
	})

	t.Run("no values", func(t *testing.T) {
		res := run(t, "", nil, "truth", "a | b")
		assert.Equal(t, 1, res.code)
		assert.Empty(t, res.stdout)
		assert.Contains(t, res.stderr, "missing identifier values")
	})

	t.Run("no values without identifiers", func(t *testing.T) {
		res := run(t, "", nil, "truth", "1 ^ 0")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "true\n", res.stdout)
	})

	t.Run("binary string is read as a number", func(t *testing.T) {
		// 110 and 6 both make a false and b, c true
		for _, value := range []string{"110", "6"} {
			res := run(t, "", nil, "truth", value, "!a & b & c")
			assert.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, "true\n", res.stdout, value)
		}
	})

	t.Run("invalid value", func(t *testing.T) {
		res := run(t, "", nil, "t", "yes", "a")
		assert.Equal(t, 1, res.code)
		assert.Contains(t, res.stderr, "invalid input 'yes'")
	})
}

func TestAst(t *testing.T) {
	nonInteractive(t)

	t.Run("default", func(t *testing.T) {
		res := run(t, "", nil, "ast", "a&b")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "  &\n / \\\na   b\n", res.stdout)
	})

	t.Run("pretty", func(t *testing.T) {
		res := run(t, "", nil, "a", "-p", "a&b")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "  &\n┌─┴─┐\na   b\n", res.stdout)
	})

	t.Run("extended", func(t *testing.T) {
		res := run(t, "", nil, "ast", "-e", "!a")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "NOT\n |\n a\n", res.stdout)
	})

	t.Run("style from config", func(t *testing.T) {
		res := run(t, "render-style: pretty", nil, "ast", "a&b")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "  &\n┌─┴─┐\na   b\n", res.stdout)
	})

	t.Run("flags override config", func(t *testing.T) {
		res := run(t, "render-style: pretty", nil, "ast", "-e", "!a")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "NOT\n |\n a\n", res.stdout)
	})
}

func TestAst_LargeTree(t *testing.T) {
	const expression = "(a | b) & (c ^ !d)"

	t.Run("pretty accepted", func(t *testing.T) {
		interactive(t)

		res := run(t, "ast-warning-nodes: 5", []string{"y"}, "ast", expression)
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.prompts, "10 nodes")
		assert.Contains(t, res.stdout, "┴")
	})

	t.Run("pretty declined", func(t *testing.T) {
		interactive(t)

		res := run(t, "ast-warning-nodes: 5", []string{"n"}, "ast", expression)
		assert.Equal(t, 0, res.code, res.stderr)
		assert.NotContains(t, res.stdout, "┴")
	})

	t.Run("already pretty", func(t *testing.T) {
		interactive(t)

		res := run(t, "ast-warning-nodes: 5", nil, "ast", "-p", expression)
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Empty(t, res.prompts)
	})

	t.Run("not interactive", func(t *testing.T) {
		nonInteractive(t)

		res := run(t, "ast-warning-nodes: 5", nil, "ast", expression)
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Empty(t, res.prompts)
		assert.Contains(t, res.stdout, "/")
	})
}

func TestConfigCommand(t *testing.T) {
	nonInteractive(t)

	configFile := filepath.Join(t.TempDir(), "booleval", "config.yaml")

	var stdout, stderr bytes.Buffer
	runner := NewRunner(&stdout, &stderr, tui.New())
	code := runner.Run([]string{"booleval", "--config", configFile, "config"})

	// an explicit config path has to exist
	assert.Equal(t, 1, code)
	assert.True(t, strings.Contains(stderr.String(), "failed to load config"), stderr.String())

	t.Run("print", func(t *testing.T) {
		res := run(t, "render-style: extended", nil, "config")
		assert.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "render-style: extended\n")
		assert.Contains(t, res.stdout, "table-warning-identifiers: 18\n")
	})

	t.Run("write to a new path", func(t *testing.T) {
		newFile := filepath.Join(t.TempDir(), "nested", "config.yaml")

		var stdout, stderr bytes.Buffer
		runner := NewRunner(&stdout, &stderr, tui.New())
		code := runner.Run([]string{"booleval", "--config", newFile, "config", "--write"})
		require.Equal(t, 0, code, stderr.String())

		content, err := os.ReadFile(newFile)
		require.NoError(t, err)
		assert.Contains(t, string(content), "render-style: default\n")
		assert.Contains(t, string(content), "ast-warning-nodes: 10\n")
	})

	t.Run("write", func(t *testing.T) {
		existing := helpers_test.CreateTempFileWithContents(t, "ast-warning-nodes: 3")
		require.NoError(t, os.Chmod(existing, 0600))

		var stdout, stderr bytes.Buffer
		runner := NewRunner(&stdout, &stderr, tui.New())
		code := runner.Run([]string{"booleval", "--config", existing, "config", "--write"})
		require.Equal(t, 0, code, stderr.String())

		content, err := os.ReadFile(existing)
		require.NoError(t, err)
		assert.Contains(t, string(content), "ast-warning-nodes: 3\n")
		assert.Contains(t, string(content), "render-style: default\n")
	})
}
