package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	internalhttp "github.com/fivetwenty-io/termii/internal/http"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

const (
	testAPIKey   = "test-key"
	testSenderID = "Acme"
)

// recordedRequest is one request seen by a recorder server.
type recordedRequest struct {
	Method  string
	Path    string
	Query   map[string]string
	Payload map[string]interface{}
}

// recorder is a test server that records requests and replies with a fixed
// status and body.
type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
	status   int
	body     string
	server   *httptest.Server
}

func newRecorder(t *testing.T, status int, body string) *recorder {
	t.Helper()

	rec := &recorder{status: status, body: body}
	rec.server = httptest.NewServer(http.HandlerFunc(rec.handle))
	t.Cleanup(rec.server.Close)

	return rec
}

func (r *recorder) handle(writer http.ResponseWriter, request *http.Request) {
	recorded := recordedRequest{
		Method: request.Method,
		Path:   request.URL.EscapedPath(),
		Query:  make(map[string]string),
	}

	for key := range request.URL.Query() {
		recorded.Query[key] = request.URL.Query().Get(key)
	}

	body, _ := io.ReadAll(request.Body)
	if len(body) > 0 {
		_ = json.Unmarshal(body, &recorded.Payload)
	}

	r.mu.Lock()
	r.requests = append(r.requests, recorded)
	r.mu.Unlock()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(r.status)
	_, _ = writer.Write([]byte(r.body))
}

func (r *recorder) all() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]recordedRequest(nil), r.requests...)
}

func (r *recorder) last(t *testing.T) recordedRequest {
	t.Helper()

	requests := r.all()
	require.NotEmpty(t, requests)

	return requests[len(requests)-1]
}

// newTestClient creates a client for the recorder with a single attempt.
func (r *recorder) newTestClient(t *testing.T) *Client {
	t.Helper()

	client, err := New(termii.Config{
		APIKey:        testAPIKey,
		SenderID:      testSenderID,
		BaseURL:       r.server.URL,
		RetryAttempts: 1,
	})
	require.NoError(t, err)

	return client
}

func (r *recorder) httpClient() *internalhttp.Client {
	return internalhttp.NewClient(r.server.URL, testAPIKey, internalhttp.WithRetryAttempts(1))
}
