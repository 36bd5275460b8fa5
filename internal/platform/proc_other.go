//go:build !windows

package platform

import "os/exec"

// HideConsoleWindow is a no-op outside Windows
func HideConsoleWindow(cmd *exec.Cmd) {}
