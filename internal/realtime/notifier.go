package realtime

import (
	"encoding/json"
	"log/slog"
)

// Notifier pushes events to every open connection of a user. Delivery is
// best effort: offline users and full buffers lose the event.
type Notifier struct {
	registry *Registry
	log      *slog.Logger
}

func NewNotifier(registry *Registry, log *slog.Logger) *Notifier {
	return &Notifier{registry: registry, log: log.With("component", "notifier")}
}

func (n *Notifier) Notify(userID uint64, event string, data interface{}) {
	conns := n.registry.ListLive(userID)
	if len(conns) == 0 {
		n.log.Debug("user offline, event dropped", "user_id", userID, "event", event)
		return
	}

	frame, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		n.log.Error("failed to marshal event", "event", event, "error", err)
		return
	}

	for _, c := range conns {
		if !c.IsOpen() {
			continue
		}
		if !c.Send(frame) {
			// A socket that cannot keep up is closed; its pumps deregister it.
			n.log.Warn("send buffer full, closing connection",
				"user_id", userID, "conn_id", c.ID(), "event", event)
			c.Close()
		}
	}
}
