package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/termii/pkg/termii"
)

func TestCampaignsClient_List(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, http.StatusOK, `{"data":[{"id":"cp1","name":"Launch","status":"Sent","total_recipients":200,"date_created":"2024-01-01"}]}`)
	campaigns := NewCampaignsClient(rec.httpClient(), testSenderID)

	resp, err := campaigns.List(context.Background(), &termii.ListParams{Page: 1})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, 200, resp.Data[0].TotalRecipients)

	got := rec.last(t)
	assert.Equal(t, "/api/campaigns", got.Path)
	assert.Equal(t, "1", got.Query["page"])
	_, hasPerPage := got.Query["per_page"]
	assert.False(t, hasPerPage)
}

func TestCampaignsClient_History(t *testing.T) {
	t.Parallel()

	rec := newRecorder(t, http.StatusOK, `{"data":[{"event":"sent","timestamp":"2024-01-01T10:00:00Z","details":"200 messages"}]}`)
	campaigns := NewCampaignsClient(rec.httpClient(), testSenderID)

	resp, err := campaigns.History(context.Background(), "cp1")
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "sent", resp.Data[0].Event)

	got := rec.last(t)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/api/campaigns/cp1/history", got.Path)
}

func TestCampaignsClient_Send(t *testing.T) {
	t.Parallel()

	t.Run("phonebook drops recipients", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{"message":"Campaign sent","campaign_id":"cp2","status":"queued"}`)
		campaigns := NewCampaignsClient(rec.httpClient(), testSenderID)

		resp, err := campaigns.Send(context.Background(), &termii.SendCampaignRequest{
			CampaignName: "Launch",
			Message:      "Hello",
			Recipients:   []string{"A", "B"},
			PhonebookID:  "pb1",
			Channel:      termii.ChannelGeneric,
			MessageType:  termii.MessageTypePlain,
		})
		require.NoError(t, err)
		assert.Equal(t, "cp2", resp.CampaignID)

		got := rec.last(t)
		assert.Equal(t, "/api/campaigns/send", got.Path)
		assert.Equal(t, map[string]interface{}{
			"campaign_name": "Launch",
			"sender_id":     testSenderID,
			"message":       "Hello",
			"channel":       "generic",
			"message_type":  "plain",
			"phonebook_id":  "pb1",
			"api_key":       testAPIKey,
		}, got.Payload)
	})

	t.Run("recipients are joined", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{}`)
		campaigns := NewCampaignsClient(rec.httpClient(), testSenderID)

		_, err := campaigns.Send(context.Background(), &termii.SendCampaignRequest{
			CampaignName: "Launch",
			SenderID:     "Other",
			Message:      "Hello",
			Recipients:   []string{"A", "B"},
			Channel:      termii.ChannelDND,
			MessageType:  termii.MessageTypePlain,
			ScheduleTime: "2024-01-01 10:00",
		})
		require.NoError(t, err)

		got := rec.last(t)
		assert.Equal(t, "A,B", got.Payload["recipients"])
		assert.Equal(t, "Other", got.Payload["sender_id"])
		assert.Equal(t, "2024-01-01 10:00", got.Payload["schedule_time"])
		assert.NotContains(t, got.Payload, "phonebook_id")
	})
}
