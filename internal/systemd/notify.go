// Package systemd reports service readiness to the init system when the
// process runs as a unit with Type=notify. Outside systemd every call is
// a no-op.
package systemd

import (
	"fmt"

	"github.com/coreos/go-systemd/v22/daemon"
)

// NotifyReady tells systemd the pipeline is serving. Returns whether the
// notification was actually sent.
func NotifyReady() bool {
	sent, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	return err == nil && sent
}

// NotifyStopping tells systemd an orderly shutdown has begun.
func NotifyStopping() {
	daemon.SdNotify(false, daemon.SdNotifyStopping)
}

// NotifyStatus publishes a one-line status visible in systemctl output.
func NotifyStatus(status string) {
	daemon.SdNotify(false, fmt.Sprintf("STATUS=%s", status))
}
