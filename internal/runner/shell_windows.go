//go:build windows

package runner

import (
	"context"
	"os/exec"
	"syscall"
)

// shellCommand always goes through cmd.exe. The raw command line is handed
// over untouched because cmd.exe does its own parsing after /C.
func shellCommand(ctx context.Context, line string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "cmd.exe")
	cmd.SysProcAttr = &syscall.SysProcAttr{CmdLine: "cmd.exe /C " + line}
	return cmd
}
