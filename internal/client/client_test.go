package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/termii/pkg/termii"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires api key", func(t *testing.T) {
		t.Parallel()

		_, err := New(termii.Config{BaseURL: "https://api.ng.termii.com"})
		require.ErrorIs(t, err, termii.ErrAPIKeyRequired)
	})

	t.Run("wires every service", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{}`)
		client := rec.newTestClient(t)

		assert.NotNil(t, client.Messaging())
		assert.NotNil(t, client.Tokens())
		assert.NotNil(t, client.Insights())
		assert.NotNil(t, client.Contacts())
		assert.NotNil(t, client.Campaigns())
		assert.NotNil(t, client.Conversations())
		assert.NotNil(t, client.SenderIDs())
	})

	t.Run("services share config", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{}`)
		client := rec.newTestClient(t)

		_, err := client.Messaging().Send(context.Background(), &termii.SendMessageRequest{To: "1", SMS: "x"})
		require.NoError(t, err)

		_, err = client.Campaigns().Send(context.Background(), &termii.SendCampaignRequest{CampaignName: "c", PhonebookID: "pb"})
		require.NoError(t, err)

		requests := rec.all()
		require.Len(t, requests, 2)

		for _, request := range requests {
			assert.Equal(t, testAPIKey, request.Payload["api_key"])
		}

		assert.Equal(t, testSenderID, requests[0].Payload["from"])
		assert.Equal(t, testSenderID, requests[1].Payload["sender_id"])
	})

	t.Run("interceptors from config", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{}`)

		var attempts int

		client, err := New(termii.Config{
			APIKey:        testAPIKey,
			BaseURL:       rec.server.URL,
			RetryAttempts: 1,
			ResponseInterceptors: []termii.ResponseInterceptor{
				func(_ context.Context, _ *termii.Request, resp *termii.Response) error {
					attempts = resp.Attempts

					return nil
				},
			},
		})
		require.NoError(t, err)

		_, err = client.Insights().GetBalance(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, attempts)
	})
}

func TestDecode_EmptyBody(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, http.StatusOK, "")
	contacts := NewContactsClient(rec.httpClient())

	resp, err := contacts.DeleteContact(context.Background(), "c1")
	require.NoError(t, err)
	assert.Empty(t, resp.Message)
}

func TestDecode_InvalidBody(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, http.StatusOK, "not json")
	insights := NewInsightsClient(rec.httpClient())

	_, err := insights.GetBalance(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing balance response")
}
