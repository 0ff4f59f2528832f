//go:build windows

package shell

import (
	"golang.org/x/sys/windows"

	"devcli/internal/logger"
)

// IsElevated reports whether the current token is a member of the built-in
// local Administrators group.
func IsElevated() bool {
	var admins *windows.SID
	err := windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&admins,
	)
	if err != nil {
		logger.Debug("[DEBUG] Failed to build Administrators SID: %v\n", err)
		return false
	}
	defer windows.FreeSid(admins)

	member, err := windows.Token(0).IsMember(admins)
	if err != nil {
		logger.Debug("[DEBUG] Token membership check failed: %v\n", err)
		return false
	}
	return member
}
