package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/internal/http"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// ConversationsClient implements termii.ConversationsClient.
type ConversationsClient struct {
	httpClient *http.Client
}

// NewConversationsClient creates a new conversations client.
func NewConversationsClient(httpClient *http.Client) *ConversationsClient {
	return &ConversationsClient{
		httpClient: httpClient,
	}
}

func conversationPath(conversationID, suffix string) string {
	return constants.APIPathConversations + "/" + url.PathEscape(conversationID) + "/" + suffix
}

// List implements termii.ConversationsClient.List. params may be nil.
func (c *ConversationsClient) List(ctx context.Context, params *termii.ListParams) (*termii.ListConversationsResponse, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathConversations, params)
	if err != nil {
		return nil, fmt.Errorf("listing conversations: %w", err)
	}

	return decode[termii.ListConversationsResponse](resp, "conversations list")
}

// ToggleRead implements termii.ConversationsClient.ToggleRead.
func (c *ConversationsClient) ToggleRead(ctx context.Context, conversationID string, request *termii.ToggleReadStatusRequest) (*termii.ToggleReadStatusResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("toggling read status: %w", termii.ErrRequestRequired)
	}

	resp, err := c.httpClient.Post(ctx, conversationPath(conversationID, "toggle-read"), request)
	if err != nil {
		return nil, fmt.Errorf("toggling read status: %w", err)
	}

	return decode[termii.ToggleReadStatusResponse](resp, "toggle read status")
}

// SendMessage implements termii.ConversationsClient.SendMessage.
func (c *ConversationsClient) SendMessage(ctx context.Context, conversationID string, request *termii.SendConversationMessageRequest) (*termii.SendConversationMessageResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("sending conversation message: %w", termii.ErrRequestRequired)
	}

	resp, err := c.httpClient.Post(ctx, conversationPath(conversationID, "messages"), request)
	if err != nil {
		return nil, fmt.Errorf("sending conversation message: %w", err)
	}

	return decode[termii.SendConversationMessageResponse](resp, "conversation message")
}
