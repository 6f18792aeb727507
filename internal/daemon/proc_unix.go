//go:build unix

package daemon

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// detach puts the daemon in its own process group so terminal signals aimed
// at this service do not reach it.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

func terminate(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	if err := unix.Kill(-cmd.Process.Pid, unix.SIGTERM); err != nil {
		return cmd.Process.Signal(unix.SIGTERM)
	}
	return nil
}

func kill(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	if err := unix.Kill(-cmd.Process.Pid, unix.SIGKILL); err != nil {
		return cmd.Process.Kill()
	}
	return nil
}
