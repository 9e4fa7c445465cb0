package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/internal/http"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// SenderIDsClient implements termii.SenderIDsClient.
type SenderIDsClient struct {
	httpClient *http.Client
}

// NewSenderIDsClient creates a new sender ID client.
func NewSenderIDsClient(httpClient *http.Client) *SenderIDsClient {
	return &SenderIDsClient{
		httpClient: httpClient,
	}
}

// List implements termii.SenderIDsClient.List.
func (c *SenderIDsClient) List(ctx context.Context) (*termii.ListSenderIDsResponse, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathSenderIDs, nil)
	if err != nil {
		return nil, fmt.Errorf("listing sender IDs: %w", err)
	}

	return decode[termii.ListSenderIDsResponse](resp, "sender IDs list")
}

// Request implements termii.SenderIDsClient.Request.
func (c *SenderIDsClient) Request(ctx context.Context, request *termii.SenderIDRequest) (*termii.RequestSenderIDResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("requesting sender ID: %w", termii.ErrRequestRequired)
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathRequestSenderID, request)
	if err != nil {
		return nil, fmt.Errorf("requesting sender ID: %w", err)
	}

	return decode[termii.RequestSenderIDResponse](resp, "request sender ID")
}
