package termiiclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/termii/pkg/termii"
	"github.com/fivetwenty-io/termii/pkg/termiiclient"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := termiiclient.New(nil)
		require.ErrorIs(t, err, termii.ErrConfigRequired)
	})

	t.Run("missing api key", func(t *testing.T) {
		t.Parallel()

		_, err := termiiclient.New(&termii.Config{APIKey: "  "})
		require.ErrorIs(t, err, termii.ErrAPIKeyRequired)
	})

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := termiiclient.New(&termii.Config{APIKey: "test-key"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("config is not modified", func(t *testing.T) {
		t.Parallel()

		config := &termii.Config{APIKey: "test-key", BaseURL: "api.example.com/"}

		_, err := termiiclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "api.example.com/", config.BaseURL)
		assert.Zero(t, config.Timeout)
		assert.Zero(t, config.RetryAttempts)
	})
}

func TestNewWithAPIKey(t *testing.T) {
	t.Parallel()

	client, err := termiiclient.NewWithAPIKey("test-key", "Acme")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		want    string
	}{
		{"default", "", "https://api.ng.termii.com"},
		{"trailing slash", "https://api.example.com/", "https://api.example.com"},
		{"no scheme", "api.example.com", "https://api.example.com"},
		{"http kept", "http://localhost:8080", "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			config, err := termiiclient.Normalize(termii.Config{APIKey: "test-key", BaseURL: tt.baseURL})
			require.NoError(t, err)
			assert.Equal(t, tt.want, config.BaseURL)
			assert.Equal(t, 30*time.Second, config.Timeout)
			assert.Equal(t, 3, config.RetryAttempts)
			assert.NotNil(t, config.Logger)
			assert.NotEmpty(t, config.UserAgent)
		})
	}
}

func TestNew_EndToEnd(t *testing.T) {
	t.Parallel()

	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			writer.WriteHeader(http.StatusBadGateway)

			return
		}

		assert.Equal(t, "/api/get-balance", request.URL.Path)
		assert.Equal(t, "test-key", request.URL.Query().Get("api_key"))
		assert.Equal(t, "custom-agent", request.Header.Get("User-Agent"))

		_ = json.NewEncoder(writer).Encode(map[string]interface{}{
			"user": map[string]interface{}{"balance": 10, "currency": "NGN"},
		})
	}))
	defer server.Close()

	client, err := termiiclient.New(&termii.Config{
		APIKey:        "test-key",
		BaseURL:       server.URL + "/",
		RetryAttempts: 2,
		UserAgent:     "custom-agent",
	})
	require.NoError(t, err)

	balance, err := client.Insights().GetBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "NGN", balance.User.Currency)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}
