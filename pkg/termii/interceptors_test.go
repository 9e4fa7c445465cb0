package termii_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/termii/pkg/termii"
)

var errInterceptor = errors.New("interceptor error")

func TestInterceptorChain_RequestInterceptors(t *testing.T) {
	chain := termii.NewInterceptorChain()
	ctx := context.Background()

	var executionOrder []string

	chain.AddRequestInterceptor(func(ctx context.Context, req *termii.Request) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddRequestInterceptor(func(ctx context.Context, req *termii.Request) error {
		executionOrder = append(executionOrder, "second")

		return nil
	})

	req := &termii.Request{
		Method: http.MethodPost,
		Path:   "api/sms/send",
	}

	err := chain.ExecuteRequestInterceptors(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestInterceptorChain_RequestInterceptorError(t *testing.T) {
	chain := termii.NewInterceptorChain()

	called := false

	chain.AddRequestInterceptor(func(context.Context, *termii.Request) error {
		return errInterceptor
	})

	chain.AddRequestInterceptor(func(context.Context, *termii.Request) error {
		called = true

		return nil
	})

	err := chain.ExecuteRequestInterceptors(context.Background(), &termii.Request{})
	require.ErrorIs(t, err, errInterceptor)
	assert.Contains(t, err.Error(), "request interceptor failed")
	assert.False(t, called)
}

func TestInterceptorChain_ResponseInterceptors(t *testing.T) {
	chain := termii.NewInterceptorChain()

	var executionOrder []string

	chain.AddResponseInterceptor(func(context.Context, *termii.Request, *termii.Response) error {
		executionOrder = append(executionOrder, "first")

		return nil
	})

	chain.AddResponseInterceptor(func(context.Context, *termii.Request, *termii.Response) error {
		executionOrder = append(executionOrder, "second")

		return errInterceptor
	})

	err := chain.ExecuteResponseInterceptors(context.Background(), &termii.Request{}, &termii.Response{})
	require.ErrorIs(t, err, errInterceptor)
	assert.Equal(t, []string{"first", "second"}, executionOrder)
}

func TestHeaderInterceptor(t *testing.T) {
	interceptor := termii.HeaderInterceptor(map[string]string{"X-Tenant": "acme"})

	req := &termii.Request{}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "acme", req.Headers.Get("X-Tenant"))
}

func TestRateLimitInterceptor(t *testing.T) {
	interceptor := termii.RateLimitInterceptor(1, 1)
	req := &termii.Request{}

	err := interceptor(context.Background(), req)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err = interceptor(ctx, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "waiting for rate limiter")
}

type recordingLogger struct {
	termii.NopLogger

	messages []string
	fields   []map[string]interface{}
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
	l.fields = append(l.fields, fields)
}

func TestLoggingResponseInterceptor(t *testing.T) {
	logger := &recordingLogger{}
	interceptor := termii.LoggingResponseInterceptor(logger)

	err := interceptor(context.Background(),
		&termii.Request{Method: http.MethodGet, Path: "api/get-balance"},
		&termii.Response{
			StatusCode: http.StatusUnauthorized,
			Attempts:   1,
			Duration:   time.Second,
			Error:      termii.NewAPIError(http.StatusUnauthorized, "Invalid API key"),
		},
	)
	require.NoError(t, err)

	require.Len(t, logger.messages, 1)
	assert.Equal(t, "API Response", logger.messages[0])
	assert.Equal(t, http.StatusUnauthorized, logger.fields[0]["status_code"])
	assert.Equal(t, "unauthorized", logger.fields[0]["kind"])
	assert.Equal(t, "1s", logger.fields[0]["duration"])
}
