package cmd

import (
	"io"

	"github.com/minc-org/minc-desktop/pkg/host"
	"github.com/minc-org/minc-desktop/pkg/utils/notify"
)

// notifyRegistry is the CLI-surface stand-in for the desktop host: it accepts
// connection and tool registrations and reports them on the terminal.
type notifyRegistry struct {
	writer io.Writer
}

func newNotifyRegistry(writer io.Writer) *notifyRegistry {
	return &notifyRegistry{writer: writer}
}

// RegisterConnection reports the registration and returns a disposer that
// reports the removal.
func (r *notifyRegistry) RegisterConnection(
	conn *host.KubernetesConnection,
) (host.Disposer, error) {
	notify.Infof(r.writer, "cluster %q registered (%s, %s)",
		conn.Name, conn.Status(), conn.Endpoint.URL)

	name := conn.Name

	return func() {
		notify.Infof(r.writer, "cluster %q removed", name)
	}, nil
}

// SubscribeChanges accepts the subscription. The terminal surface never emits
// host-side connection notifications, so the callback is never invoked.
func (r *notifyRegistry) SubscribeChanges(host.NotifyFunc) host.Disposer {
	return func() {}
}

// RegisterTool reports the tool registration.
func (r *notifyRegistry) RegisterTool(tool host.CLITool) (host.ToolHandle, error) {
	if tool.Version == "" {
		notify.Warningf(r.writer, "%s is not installed", tool.DisplayName)
	} else {
		notify.Infof(r.writer, "%s %s detected at %s", tool.DisplayName, tool.Version, tool.Path)
	}

	return &notifyToolHandle{writer: r.writer, name: tool.Name}, nil
}

// notifyToolHandle reports tool updates on the terminal.
type notifyToolHandle struct {
	writer io.Writer
	name   string
}

func (h *notifyToolHandle) UpdateVersion(version, path string) {
	if version == "" {
		notify.Infof(h.writer, "%s removed", h.name)

		return
	}

	notify.Infof(h.writer, "%s is now %s at %s", h.name, version, path)
}
