package observability

import (
	"context"

	"github.com/aretw0/rentals/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// UnknownToolLabel replaces the tool_name of calls to unregistered tools,
// keeping the series count bounded by the registry.
const UnknownToolLabel = "unknown"

// Metrics holds the dispatcher collectors.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rentals_tool_calls_total",
				Help: "Total number of tool calls, by tool and outcome",
			},
			[]string{"tool_name", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rentals_tool_duration_seconds",
				Help:    "Duration of tool executions",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"tool_name"},
		),
	}

	for _, c := range []prometheus.Collector{m.calls, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks records every returned call.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnToolReturn: func(ctx context.Context, e *domain.ToolEvent) {
			outcome := "ok"
			if e.IsError {
				outcome = "error"
			}
			name := e.ToolName
			if !e.Known {
				name = UnknownToolLabel
			}
			m.calls.WithLabelValues(name, outcome).Inc()
			m.duration.WithLabelValues(name).Observe(e.Duration.Seconds())
		},
	}
}
