// Package metrics exposes agent activity as Prometheus counters.
package metrics

import (
	"net/http"
	"strconv"

	"automarket/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "automarket"

// Collector records poller, delivery, notification and bridge activity on its own registry
type Collector struct {
	registry *prometheus.Registry

	polls         *prometheus.CounterVec
	awaiting      prometheus.Gauge
	deliveries    *prometheus.CounterVec
	notifications *prometheus.CounterVec
	messages      *prometheus.CounterVec
}

var _ service.ActivityRecorder = (*Collector)(nil)

// New creates a Collector with Go runtime and process collectors registered
func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,
		polls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "polls_total",
			Help:      "Order poll ticks by outcome.",
		}, []string{"result"}),
		awaiting: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders_awaiting_delivery",
			Help:      "Paid and undelivered orders seen by the last successful poll.",
		}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deliveries_total",
			Help:      "Delivery requests by outcome.",
		}, []string{"success"}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Paid-order notifications by outcome.",
		}, []string{"result"}),
		messages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bridge_messages_total",
			Help:      "Bridge messages by type and outcome.",
		}, []string{"type", "success"}),
	}

	registry.MustRegister(c.polls, c.awaiting, c.deliveries, c.notifications, c.messages)

	return c
}

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// PollCompleted counts a poll tick
func (c *Collector) PollCompleted(awaiting int, err error) {
	if err != nil {
		c.polls.WithLabelValues("error").Inc()

		return
	}

	c.polls.WithLabelValues("ok").Inc()
	c.awaiting.Set(float64(awaiting))
}

// DeliveryAttempted counts a delivery request
func (c *Collector) DeliveryAttempted(success bool) {
	c.deliveries.WithLabelValues(strconv.FormatBool(success)).Inc()
}

// NotificationSent counts a notification attempt
func (c *Collector) NotificationSent(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}

	c.notifications.WithLabelValues(result).Inc()
}

// BridgeMessage counts a handled bridge message
func (c *Collector) BridgeMessage(messageType string, success bool) {
	c.messages.WithLabelValues(messageType, strconv.FormatBool(success)).Inc()
}
