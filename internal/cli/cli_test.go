package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// run executes the root command with args and returns stdout, stderr and the error.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestList_RemoveMiddle(t *testing.T) {
	out, _, err := run(t, "list", "--values", "1,2,3", "--remove", "1")
	require.NoError(t, err)
	assert.Equal(t, "removed[1]: 2\nlist: 1 -> 3\nsize: 2\n", out)
}

// TestList_OutOfRange reports absence and leaves the list unchanged.
func TestList_OutOfRange(t *testing.T) {
	out, stderr, err := run(t, "list", "--values", "10,20,30", "--remove=-1", "--remove", "5", "--get", "0", "--get", "3")
	require.NoError(t, err)
	assert.Equal(t,
		"removed[-1]: not found\nremoved[5]: not found\nget[0]: 10\nget[3]: not found\nlist: 10 -> 20 -> 30\nsize: 3\n",
		out)
	assert.Contains(t, stderr, "Remove index out of range")
}

func TestList_Empty(t *testing.T) {
	out, _, err := run(t, "list", "--get", "0")
	require.NoError(t, err)
	assert.Equal(t, "get[0]: not found\nlist: \nsize: 0\n", out)
}

func TestSort_YAML(t *testing.T) {
	out, _, err := run(t, "sort", "--values", "3,1,2", "-o", "yaml")
	require.NoError(t, err)

	var got struct {
		Sorted []int `yaml:"sorted"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, []int{1, 2, 3}, got.Sorted)
}

func TestSort_BadValue(t *testing.T) {
	_, _, err := run(t, "sort", "--values", "3,x")
	assert.ErrorContains(t, err, `invalid --values value "x"`)
}

func TestTwoSum(t *testing.T) {
	out, _, err := run(t, "twosum", "--values", "2,7,11,15", "--target", "9")
	require.NoError(t, err)
	assert.Equal(t, "indices: [0 1]\n", out)

	out, _, err = run(t, "twosum", "--values", "3,2,4", "--target", "6", "--brute-force")
	require.NoError(t, err)
	assert.Equal(t, "indices: [1 2]\n", out)

	_, _, err = run(t, "twosum", "--values", "1,2", "--target", "100")
	assert.ErrorContains(t, err, "no two values add up to 100")
}

func TestAnagrams(t *testing.T) {
	out, _, err := run(t, "anagrams", "eat", "tea", "tan", "ate", "nat", "bat", "--output", "yaml")
	require.NoError(t, err)

	var got struct {
		Groups [][]string `yaml:"groups"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, [][]string{{"eat", "tea", "ate"}, {"tan", "nat"}, {"bat"}}, got.Groups)

	_, _, err = run(t, "anagrams", "--by-count", "Eat")
	assert.ErrorContains(t, err, "lowercase")

	_, _, err = run(t, "anagrams")
	assert.Error(t, err)
}

// TestRoot_InvalidOutput surfaces config validation errors before running.
func TestRoot_InvalidOutput(t *testing.T) {
	_, _, err := run(t, "sort", "--values", "1", "--output", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

// TestRoot_JSONLogs routes debug logs as JSON to stderr.
func TestRoot_JSONLogs(t *testing.T) {
	_, stderr, err := run(t, "sort", "--values", "2,1", "--log-level", "debug", "--log-json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"message":"Sorted"`)
	assert.Contains(t, stderr, `"count":2`)
}
