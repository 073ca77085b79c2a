package shell

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const metricsNamespace = "arraystack"

const (
	resultOK        = "ok"
	resultOverflow  = "overflow"
	resultUnderflow = "underflow"
	resultInvalid   = "invalid"
)

// Metrics counts the operations of a single shell session.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	size       prometheus.Gauge
	capacity   prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "operations_total",
			Help:      "stack operations by kind and result",
		}, []string{"op", "result"}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "size",
			Help:      "elements currently held",
		}),
		capacity: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "capacity",
			Help:      "maximum elements the stack may hold",
		}),
	}
	m.registry.MustRegister(m.operations, m.size, m.capacity)
	return m
}

func (m *Metrics) observe(op, result string, size int) {
	m.operations.WithLabelValues(op, result).Inc()
	m.size.Set(float64(size))
}

// WriteTo dumps every metric in the prometheus text exposition format.
func (m *Metrics) WriteTo(w io.Writer) (int64, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return 0, err
	}
	var written int64
	for _, mf := range families {
		n, err := expfmt.MetricFamilyToText(w, mf)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
