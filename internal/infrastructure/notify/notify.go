// Package notify posts fire-and-forget desktop notifications through the
// platform tools. Failures are logged at debug level and otherwise ignored;
// a broken notifier must never affect the session.
package notify

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/radik097/ClipboardGPT/internal/ports"
)

var (
	_ ports.Notifier = (*Desktop)(nil)
	_ ports.Notifier = Noop{}
)

// Desktop shells out to notify-send (Linux) or osascript (macOS).
type Desktop struct {
	logger ports.Logger
}

// NewDesktop builds the notifier.
func NewDesktop(logger ports.Logger) *Desktop {
	return &Desktop{logger: logger}
}

// Noop discards all notifications.
type Noop struct{}

func (Noop) Notify(string, string) {}

// Notify shows a notification, best effort.
func (d *Desktop) Notify(title, message string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", message, title)
		cmd = exec.Command("osascript", "-e", script)
	case "linux":
		if _, err := exec.LookPath("notify-send"); err != nil {
			d.logger.Debug("notify-send not available", nil)
			return
		}
		cmd = exec.Command("notify-send", title, message)
	default:
		d.logger.Debug("notifications not supported", map[string]interface{}{"os": runtime.GOOS})
		return
	}
	if err := cmd.Run(); err != nil {
		d.logger.Debug("notification failed", map[string]interface{}{"error": err.Error()})
	}
}
