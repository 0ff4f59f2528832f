//go:build !windows

package shell

// IsElevated is only meaningful on Windows, where it picks choco over scoop.
func IsElevated() bool {
	return false
}
