package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/internal/http"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// MessagingClient implements termii.MessagingClient.
type MessagingClient struct {
	httpClient *http.Client
	senderID   string
}

// NewMessagingClient creates a new messaging client.
func NewMessagingClient(httpClient *http.Client, senderID string) *MessagingClient {
	return &MessagingClient{
		httpClient: httpClient,
		senderID:   senderID,
	}
}

type sendMessagePayload struct {
	To      string                `json:"to"`
	From    string                `json:"from"`
	SMS     string                `json:"sms"`
	Type    termii.MessageType    `json:"type"`
	Channel termii.MessageChannel `json:"channel"`
}

// Send implements termii.MessagingClient.Send.
func (c *MessagingClient) Send(ctx context.Context, request *termii.SendMessageRequest) (*termii.SendMessageResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("sending message: %w", termii.ErrRequestRequired)
	}

	payload := sendMessagePayload{
		To:      request.To,
		From:    orDefault(request.From, c.senderID),
		SMS:     request.SMS,
		Type:    orDefault(request.Type, termii.MessageType(constants.DefaultMessageType)),
		Channel: orDefault(request.Channel, termii.MessageChannel(constants.DefaultMessageChannel)),
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathSendMessage, payload)
	if err != nil {
		return nil, fmt.Errorf("sending message: %w", err)
	}

	return decode[termii.SendMessageResponse](resp, "send message")
}

// SendBulk implements termii.MessagingClient.SendBulk. Recipients are sent as
// one comma-separated string.
func (c *MessagingClient) SendBulk(ctx context.Context, request *termii.SendBulkMessageRequest) (*termii.SendBulkMessageResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("sending bulk message: %w", termii.ErrRequestRequired)
	}

	payload := sendMessagePayload{
		To:      strings.Join(request.To, constants.RecipientSeparator),
		From:    orDefault(request.From, c.senderID),
		SMS:     request.SMS,
		Type:    orDefault(request.Type, termii.MessageType(constants.DefaultMessageType)),
		Channel: orDefault(request.Channel, termii.MessageChannel(constants.DefaultMessageChannel)),
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathSendBulkMessage, payload)
	if err != nil {
		return nil, fmt.Errorf("sending bulk message: %w", err)
	}

	return decode[termii.SendBulkMessageResponse](resp, "send bulk message")
}

type sendTemplatePayload struct {
	To         string                 `json:"to"`
	From       string                 `json:"from"`
	TemplateID string                 `json:"template_id"`
	Data       map[string]interface{} `json:"data,omitempty"`
	Channel    termii.MessageChannel  `json:"channel"`
}

// SendWithTemplate implements termii.MessagingClient.SendWithTemplate. The
// channel is always whatsapp.
func (c *MessagingClient) SendWithTemplate(ctx context.Context, request *termii.SendTemplateMessageRequest) (*termii.SendTemplateMessageResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("sending template message: %w", termii.ErrRequestRequired)
	}

	payload := sendTemplatePayload{
		To:         request.To,
		From:       orDefault(request.From, c.senderID),
		TemplateID: request.TemplateID,
		Data:       request.Data,
		Channel:    termii.ChannelWhatsApp,
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathSendTemplate, payload)
	if err != nil {
		return nil, fmt.Errorf("sending template message: %w", err)
	}

	return decode[termii.SendTemplateMessageResponse](resp, "send template message")
}
