// Package termiiprom records Termii API calls as Prometheus metrics.
package termiiprom

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fivetwenty-io/termii/pkg/termii"
)

const outcomeSuccess = "success"

// Collector holds the metrics for calls made through a termii.Client.
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	retriesTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewCollector creates the metrics and registers them with reg. A nil reg
// uses prometheus.DefaultRegisterer.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	collector := &Collector{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "termii_requests_total",
				Help: "Total number of Termii API calls by outcome",
			},
			[]string{"method", "outcome"},
		),
		retriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "termii_request_retries_total",
				Help: "Total number of retried attempts to the Termii API",
			},
			[]string{"method"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "termii_request_duration_seconds",
				Help:    "Duration of Termii API calls in seconds, including retries",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	for _, metric := range []prometheus.Collector{
		collector.requestsTotal,
		collector.retriesTotal,
		collector.requestDuration,
	} {
		err := reg.Register(metric)
		if err != nil {
			return nil, fmt.Errorf("registering termii metrics: %w", err)
		}
	}

	return collector, nil
}

// ResponseInterceptor returns an interceptor recording every finished call.
func (c *Collector) ResponseInterceptor() termii.ResponseInterceptor {
	return func(_ context.Context, req *termii.Request, resp *termii.Response) error {
		c.Observe(req.Method, resp)

		return nil
	}
}

// Observe records one finished call.
func (c *Collector) Observe(method string, resp *termii.Response) {
	outcome := outcomeSuccess
	if resp.Error != nil {
		outcome = string(termii.KindOf(resp.Error))
		if outcome == "" {
			outcome = "error"
		}
	}

	c.requestsTotal.WithLabelValues(method, outcome).Inc()
	c.requestDuration.WithLabelValues(method).Observe(resp.Duration.Seconds())

	if resp.Attempts > 1 {
		c.retriesTotal.WithLabelValues(method).Add(float64(resp.Attempts - 1))
	}
}
