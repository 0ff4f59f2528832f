package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func env(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetectFrom(t *testing.T) {
	tests := []struct {
		name string
		goos string
		vars map[string]string
		want ID
	}{
		{"linux", "linux", nil, Linux},
		{"darwin is posix", "darwin", map[string]string{"PSModulePath": `C:\WindowsPowerShell\Modules`}, Linux},
		{"windows powershell", "windows", map[string]string{"PSModulePath": `C:\Users\me\Documents\WindowsPowerShell\Modules`}, PowerShell},
		{"windows cmd without module path", "windows", nil, CMD},
		{"windows cmd with core module path", "windows", map[string]string{"PSModulePath": `C:\Program Files\PowerShell\Modules`}, CMD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFrom(tt.goos, env(tt.vars)).ID())
		})
	}
}

func TestWrap(t *testing.T) {
	inputs := []string{"", "g++ main.cpp -o out", `echo "quoted"`, "dir /b"}

	for _, id := range []ID{CMD, Linux} {
		for _, in := range inputs {
			assert.Equal(t, in, New(id).Wrap(in), "%s should not wrap %q", id, in)
		}
	}

	for _, in := range inputs {
		out := New(PowerShell).Wrap(in)
		assert.Contains(t, out, `powershell -Command "`)
		assert.Equal(t, `powershell -Command "`+in+`"`, out)
	}
}

func TestIsPosix(t *testing.T) {
	assert.True(t, New(Linux).IsPosix())
	assert.False(t, New(CMD).IsPosix())
	assert.False(t, New(PowerShell).IsPosix())
	assert.Equal(t, "Powershell", New(PowerShell).Key())
}
