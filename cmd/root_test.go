package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns stdout. Flags are restored to
// their defaults afterwards so tests do not leak state into each other.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		var walk func(c *cobra.Command)
		walk = func(c *cobra.Command) {
			c.Flags().VisitAll(reset)
			for _, sub := range c.Commands() {
				walk(sub)
			}
		}
		rootCmd.PersistentFlags().VisitAll(reset)
		walk(rootCmd)
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func arrayBundleDir(t *testing.T) string {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "solution.py"), "def solution(nums):\n    return max(nums)\n")
	writeFile(t, filepath.Join(dir, "Solution.java"), "public int solution(int[] nums) {\n    return 0;\n}\n")
	writeFile(t, filepath.Join(dir, "solution.cpp"), "int solution(vector<int>& nums) {\n    return 0;\n}\n")
	return dir
}

func TestSubcommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"analyze", "recommend", "validate", "describe", "types", "config"} {
		assert.True(t, names[want], want)
	}
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := execute(t, "analyze", arrayBundleDir(t), "--format", "json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	bundles := got["bundles"].([]any)
	require.Len(t, bundles, 1)
	analysis := bundles[0].(map[string]any)["analysis"].(map[string]any)
	assert.Equal(t, "function_only_array", analysis["detected_problem_type"])
	assert.EqualValues(t, 3, analysis["total_languages_analyzed"])
}

func TestAnalyzeBundleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.yaml")
	writeFile(t, path, "starter_code:\n  python: |\n    def solution(word):\n        return word[::-1]\n")

	out, err := execute(t, "analyze", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"detected_problem_type": "function_only_string"`)
}

func TestAnalyzeFailOn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "solution.py"), "def solution(a, b):\n    return a + b\n")

	_, err := execute(t, "analyze", dir, "--format", "json")
	require.NoError(t, err)

	_, err = execute(t, "analyze", dir, "--format", "json", "--fail-on", "info")
	assert.ErrorIs(t, err, errCheckFailed)
}

func TestRecommend(t *testing.T) {
	out, err := execute(t, "recommend", arrayBundleDir(t), "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"recommended_type": "function_only_array"`)
	assert.Contains(t, out, `"used_fallback": false`)

	empty := t.TempDir()
	writeFile(t, filepath.Join(empty, "solution.py"), "pass\n")
	out, err = execute(t, "recommend", empty, "--format", "json", "--fallback", "function_only_string")
	require.NoError(t, err)
	assert.Contains(t, out, `"recommended_type": "function_only_string"`)
	assert.Contains(t, out, `"used_fallback": true`)
}

func TestValidate(t *testing.T) {
	dir := arrayBundleDir(t)

	out, err := execute(t, "validate", "function_only_array", dir, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"is_compatible": true`)

	out, err = execute(t, "validate", "function_only_string", dir, "--format", "json")
	assert.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, `"is_compatible": false`)

	_, err = execute(t, "validate", "class_based", dir)
	assert.ErrorContains(t, err, "unknown problem type")
}

func TestDescribe(t *testing.T) {
	out, err := execute(t, "describe", "Check", "if", "a", "string", "is", "a", "palindrome")
	require.NoError(t, err)
	assert.Contains(t, out, "function_only_string")
}

func TestTypes(t *testing.T) {
	out, err := execute(t, "types", "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "| `function_only_int` |")
	assert.Contains(t, out, "| `function_only_array` |")
	assert.Contains(t, out, "| `function_only_string` |")
}

func TestExecuteExitsOnFailure(t *testing.T) {
	var code int
	orig := exitFunc
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() { exitFunc = orig })

	rootCmd.SetArgs([]string{"validate", "bogus"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	Execute()
	assert.Equal(t, 1, code)
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".gencoderrc.json")

	out, err := execute(t, "config", "init", dir, "--concurrency", "2", "--fallback", "function_only_string")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.EqualValues(t, 2, got["concurrency"])
	assert.Equal(t, "function_only_string", got["fallbackType"])
	assert.Equal(t, "console", got["format"])

	_, err = execute(t, "config", "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(t, "config", "init", dir, "--force")
	require.NoError(t, err)
}
