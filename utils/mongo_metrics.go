package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/event"
)

var (
	MongoOpenConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mongo_pool_open_connections",
			Help: "Connections currently open in the MongoDB pool",
		},
	)

	MongoInUseConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mongo_pool_in_use_connections",
			Help: "Connections currently checked out of the MongoDB pool",
		},
	)

	MongoPoolEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_pool_events_total",
			Help: "MongoDB connection pool events by type",
		},
		[]string{"type"},
	)
)

// MongoPoolMonitor mirrors pool events into the gauges above.
func MongoPoolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case event.ConnectionCreated:
				MongoOpenConnections.Inc()
			case event.ConnectionClosed:
				MongoOpenConnections.Dec()
			case event.GetSucceeded:
				MongoInUseConnections.Inc()
			case event.ConnectionReturned:
				MongoInUseConnections.Dec()
			default:
				return
			}
			MongoPoolEvents.WithLabelValues(evt.Type).Inc()
		},
	}
}
