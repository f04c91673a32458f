//go:build !windows

package shell

import (
	"os/exec"
	"syscall"
)

func shellFlag(string) string { return "-c" }

// configureProcessGroup starts the command in a new process group and kills the
// whole group on cancellation, so grandchildren do not outlive the timeout.
func configureProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
