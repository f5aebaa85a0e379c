package history

import (
	"context"
	"os/exec"
	"strings"
)

// CapturePane returns the scrollback of the current tmux pane, including
// command output that history files do not record. It returns "" when the
// process is not running inside tmux or the capture fails.
func CapturePane(ctx context.Context) string {
	out, err := exec.CommandContext(ctx, "tmux", "capture-pane", "-p", "-S", "-").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
