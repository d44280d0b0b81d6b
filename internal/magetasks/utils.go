package magetasks

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/magefile/mage/sh"
)

// Run executes a named step, echoing the command's output, and reports the
// outcome on Out.
func Run(label, cmd string, args ...string) error {
	PrintInfo(label)
	if err := sh.RunV(cmd, args...); err != nil {
		if IsCommandNotFound(err) {
			return err
		}
		PrintError(label + " failed")
		return err
	}
	return nil
}

// IsCommandNotFound checks if the error indicates the command was not found.
// This handles exec.ErrNotFound and platform-specific string fallbacks.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "executable file not found") ||
		strings.Contains(errStr, "no such file or directory")
}
