package termiiprom_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/termii/pkg/termii"
	"github.com/fivetwenty-io/termii/pkg/termiiclient"
	"github.com/fivetwenty-io/termii/pkg/termiiprom"
)

func assertSeries(t *testing.T, reg *prometheus.Registry, name string, want int) {
	t.Helper()

	count, err := testutil.GatherAndCount(reg, name)
	require.NoError(t, err)
	assert.Equal(t, want, count)
}

func TestCollector_Observe(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	collector, err := termiiprom.NewCollector(reg)
	require.NoError(t, err)

	collector.Observe(http.MethodPost, &termii.Response{StatusCode: http.StatusOK, Attempts: 1, Duration: time.Millisecond})
	collector.Observe(http.MethodPost, &termii.Response{
		StatusCode: http.StatusNotFound,
		Attempts:   1,
		Error:      termii.NewAPIError(http.StatusNotFound, "missing"),
	})
	collector.Observe(http.MethodGet, &termii.Response{
		Attempts: 3,
		Error:    &termii.TransportError{Method: http.MethodGet, Attempts: 3, Err: context.DeadlineExceeded},
	})

	assertSeries(t, reg, "termii_requests_total", 3)
	assertSeries(t, reg, "termii_request_duration_seconds", 2)

	gathered, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}

	for _, family := range gathered {
		if family.GetName() != "termii_requests_total" && family.GetName() != "termii_request_retries_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			key := family.GetName()
			for _, label := range metric.GetLabel() {
				key += "|" + label.GetValue()
			}

			values[key] = metric.GetCounter().GetValue()
		}
	}

	assert.InDelta(t, 1.0, values["termii_requests_total|POST|success"], 0.001)
	assert.InDelta(t, 1.0, values["termii_requests_total|POST|not_found"], 0.001)
	assert.InDelta(t, 1.0, values["termii_requests_total|GET|transport_failure"], 0.001)
	assert.InDelta(t, 2.0, values["termii_request_retries_total|GET"], 0.001)
}

func TestCollector_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	_, err := termiiprom.NewCollector(reg)
	require.NoError(t, err)

	_, err = termiiprom.NewCollector(reg)
	require.Error(t, err)
}

func TestCollector_ResponseInterceptor(t *testing.T) {
	t.Parallel()

	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			writer.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = writer.Write([]byte(`{"message_id":"m1"}`))
	}))
	defer server.Close()

	reg := prometheus.NewRegistry()

	collector, err := termiiprom.NewCollector(reg)
	require.NoError(t, err)

	client, err := termiiclient.New(&termii.Config{
		APIKey:               "test-key",
		BaseURL:              server.URL,
		RetryAttempts:        2,
		ResponseInterceptors: []termii.ResponseInterceptor{collector.ResponseInterceptor()},
	})
	require.NoError(t, err)

	_, err = client.Messaging().Send(context.Background(), &termii.SendMessageRequest{To: "1", SMS: "x"})
	require.NoError(t, err)

	assertSeries(t, reg, "termii_requests_total", 1)
	assertSeries(t, reg, "termii_request_retries_total", 1)
}
