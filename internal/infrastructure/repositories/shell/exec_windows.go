//go:build windows

package shell

import (
	"os/exec"
	"path/filepath"
	"strings"
)

func shellFlag(shell string) string {
	if strings.EqualFold(strings.TrimSuffix(filepath.Base(shell), ".exe"), "cmd") {
		return "/C"
	}
	return "-c"
}

func configureProcessGroup(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return cmd.Process.Kill()
	}
}
