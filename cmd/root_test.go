package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `{
  "say": {
    "hi": {
      "Linux": {"cmd": "echo hi from devcli", "use": "Say hi"},
      "CMD": {"cmd": "echo hi", "use": "Say hi"}
    },
    "bye": {
      "Linux": {"cmd": "exit 7", "use": "Fail on purpose"}
    },
    "quiet": {
      "Linux": {"cmd": "true"}
    },
    "back": {
      "Linux": {"cmd": "echo at {{path}} && cat"}
    }
  },
  "build": {
    "cpp": {"Linux": {"cmd": "g++ main.cpp -o out", "use": "Compile main.cpp"}}
  }
}`

func writeCatalog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(catalogJSON), 0644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(input))
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() { tasksPath = "" })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHelpListsCatalogInOrder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("listing is checked against the Linux variants")
	}
	out, err := execute(t, "--tasks", writeCatalog(t), "help")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "Operation")
	assert.True(t, strings.HasPrefix(lines[2], "say.hi "))
	assert.True(t, strings.HasPrefix(lines[3], "say.bye "))
	assert.True(t, strings.HasPrefix(lines[4], "build.cpp "))
	assert.Contains(t, lines[4], "Compile main.cpp")
}

func TestRunsCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
	out, err := execute(t, "--tasks", writeCatalog(t), "say.hi")
	require.NoError(t, err)
	assert.Contains(t, out, "hi from devcli")
}

func TestPromptLeavesRemainingInputForCommand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
	out, err := executeWithInput(t, "/src\nfor the child\n", "--tasks", writeCatalog(t), "say.back")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter the path: ")
	assert.Contains(t, out, "at /src")
	assert.Contains(t, out, "for the child")
}

func TestCommandFailuresDoNotFailTheProcess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
	path := writeCatalog(t)

	for _, arg := range []string{"say.bye", "say.nothing", "nope.cmd", "saybye", "say."} {
		_, err := execute(t, "--tasks", path, arg)
		assert.NoError(t, err, arg)
	}
}

func TestUsageErrors(t *testing.T) {
	_, err := execute(t)
	assert.ErrorIs(t, err, errUsage)

	_, err = execute(t, "say.hi", "say.bye")
	assert.ErrorIs(t, err, errUsage)
}

func TestCatalogErrors(t *testing.T) {
	_, err := execute(t, "--tasks", filepath.Join(t.TempDir(), "missing.json"), "say.hi")
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"say": `), 0644))
	_, err = execute(t, "--tasks", bad, "help")
	assert.Error(t, err)
}
