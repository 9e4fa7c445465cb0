package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/internal/http"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// CampaignsClient implements termii.CampaignsClient.
type CampaignsClient struct {
	httpClient *http.Client
	senderID   string
}

// NewCampaignsClient creates a new campaigns client.
func NewCampaignsClient(httpClient *http.Client, senderID string) *CampaignsClient {
	return &CampaignsClient{
		httpClient: httpClient,
		senderID:   senderID,
	}
}

// List implements termii.CampaignsClient.List. params may be nil.
func (c *CampaignsClient) List(ctx context.Context, params *termii.ListParams) (*termii.ListCampaignsResponse, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathCampaigns, params)
	if err != nil {
		return nil, fmt.Errorf("listing campaigns: %w", err)
	}

	return decode[termii.ListCampaignsResponse](resp, "campaigns list")
}

// History implements termii.CampaignsClient.History.
func (c *CampaignsClient) History(ctx context.Context, campaignID string) (*termii.CampaignHistoryResponse, error) {
	path := constants.APIPathCampaigns + "/" + url.PathEscape(campaignID) + "/history"

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting campaign history: %w", err)
	}

	return decode[termii.CampaignHistoryResponse](resp, "campaign history")
}

type sendCampaignPayload struct {
	CampaignName string                `json:"campaign_name"`
	SenderID     string                `json:"sender_id"`
	Message      string                `json:"message"`
	Channel      termii.MessageChannel `json:"channel"`
	MessageType  termii.MessageType    `json:"message_type"`
	ScheduleTime string                `json:"schedule_time,omitempty"`
	Recipients   string                `json:"recipients,omitempty"`
	PhonebookID  string                `json:"phonebook_id,omitempty"`
}

// Send implements termii.CampaignsClient.Send. A campaign addressed to a
// phonebook never carries a recipient list.
func (c *CampaignsClient) Send(ctx context.Context, request *termii.SendCampaignRequest) (*termii.SendCampaignResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("sending campaign: %w", termii.ErrRequestRequired)
	}

	payload := sendCampaignPayload{
		CampaignName: request.CampaignName,
		SenderID:     orDefault(request.SenderID, c.senderID),
		Message:      request.Message,
		Channel:      request.Channel,
		MessageType:  request.MessageType,
		ScheduleTime: request.ScheduleTime,
		PhonebookID:  request.PhonebookID,
	}

	if request.PhonebookID == "" {
		payload.Recipients = strings.Join(request.Recipients, constants.RecipientSeparator)
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathSendCampaign, payload)
	if err != nil {
		return nil, fmt.Errorf("sending campaign: %w", err)
	}

	return decode[termii.SendCampaignResponse](resp, "send campaign")
}
