package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandsProcessed counts processed chat commands by command
	// keyword and response type.
	CommandsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chat_commands_processed_total",
		Help: "Chat commands processed, labeled by command keyword and response type.",
	}, []string{"command", "type"})

	// ActiveConnections tracks currently open websocket chat connections.
	ActiveConnections = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chat_websocket_connections",
		Help: "Currently open websocket chat connections.",
	})
)
