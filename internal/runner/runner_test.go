//go:build !windows

package runner

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemRun(t *testing.T) {
	var stdout bytes.Buffer
	s := &System{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	code, err := s.Run(context.Background(), "echo hello")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello\n", stdout.String())

	code, err = s.Run(context.Background(), "exit 3")
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestSystemFirstLine(t *testing.T) {
	s := &System{Stderr: &bytes.Buffer{}}

	line, ok, err := s.FirstLine(context.Background(), "printf '/usr/bin/git\\n/usr/local/bin/git\\n'")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin/git", line)

	_, ok, err = s.FirstLine(context.Background(), "true")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMockRecordsCalls(t *testing.T) {
	m := NewMock()
	m.ExitCodes["false"] = 1
	m.Outputs["which git"] = "/usr/bin/git"

	code, _ := m.Run(context.Background(), "false")
	assert.Equal(t, 1, code)
	line, ok, _ := m.FirstLine(context.Background(), "which git")
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin/git", line)
	assert.Equal(t, []string{"false", "which git"}, m.RecordedCalls)
}
