package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/termii/pkg/termii"
)

func TestSenderIDsClient_List(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, http.StatusOK, `{"data":[{"sender_id":"Acme","status":"active","company":"Acme Ltd","usecase":"OTP","created_at":"2024-01-01"}]}`)
	senderIDs := NewSenderIDsClient(rec.httpClient())

	resp, err := senderIDs.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "active", resp.Data[0].Status)

	got := rec.last(t)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/api/sender-id", got.Path)
}

func TestSenderIDsClient_Request(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, http.StatusOK, `{"message":"Sender Id requested","sender_id":"Acme","status":"pending"}`)
	senderIDs := NewSenderIDsClient(rec.httpClient())

	resp, err := senderIDs.Request(context.Background(), &termii.SenderIDRequest{
		SenderID: "Acme",
		Usecase:  "Your OTP is 1234",
		Company:  "Acme Ltd",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", resp.Status)

	got := rec.last(t)
	assert.Equal(t, "/api/sender-id/request", got.Path)
	assert.Equal(t, map[string]interface{}{
		"sender_id": "Acme",
		"usecase":   "Your OTP is 1234",
		"company":   "Acme Ltd",
		"api_key":   testAPIKey,
	}, got.Payload)
}
