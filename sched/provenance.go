package sched

import (
	"os"
	"os/exec"
	"strings"
)

// ExtraInfo collects run provenance recorded in the output database: the
// exact command line, the executable path, and the git revision when run
// from a checkout.
func ExtraInfo() map[string]string {
	info := map[string]string{
		"exec command": strings.Join(os.Args, " "),
	}

	out, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		info["git hash"] = "Not in git repo"
	} else {
		info["git hash"] = strings.TrimSpace(string(out))
	}

	if exe, err := os.Executable(); err == nil {
		info["file executed"] = exe
	}
	return info
}
