package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Razones de rechazo del motor de órdenes (label "reason").
const (
	ReasonInvalidInput      = "invalid_input"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonStockEntryMissing = "stock_entry_missing"
	ReasonPersistence       = "persistence"
)

// OrderMetrics agrupa las métricas del motor de órdenes.
type OrderMetrics struct {
	committed *prometheus.CounterVec
	rejected  *prometheus.CounterVec
	duration  prometheus.Histogram
}

// NewOrderMetrics registra las métricas en el registro por defecto. Tolera el
// doble registro (tests que construyen varios usecases en el mismo proceso).
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	return &OrderMetrics{
		committed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "akasha_orders_committed_total",
			Help: "Total de órdenes confirmadas (compras y ventas)",
		}, []string{"kind"}),
		rejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "akasha_orders_rejected_total",
			Help: "Total de órdenes rechazadas, por razón",
		}, []string{"kind", "reason"}),
		duration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "akasha_order_duration_seconds",
			Help:    "Duración del registro de una orden (validación + transacción)",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// Committed cuenta una orden confirmada y observa su duración.
func (m *OrderMetrics) Committed(kind string, elapsed time.Duration) {
	m.committed.WithLabelValues(kind).Inc()
	m.duration.Observe(elapsed.Seconds())
}

// Rejected cuenta una orden rechazada con su razón.
func (m *OrderMetrics) Rejected(kind, reason string) {
	m.rejected.WithLabelValues(kind, reason).Inc()
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return already.ExistingCollector.(prometheus.Histogram)
		}
		panic(err)
	}
	return collector
}
