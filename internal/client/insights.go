package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/internal/http"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// InsightsClient implements termii.InsightsClient.
type InsightsClient struct {
	httpClient *http.Client
}

// NewInsightsClient creates a new insights client.
func NewInsightsClient(httpClient *http.Client) *InsightsClient {
	return &InsightsClient{
		httpClient: httpClient,
	}
}

// GetBalance implements termii.InsightsClient.GetBalance.
func (c *InsightsClient) GetBalance(ctx context.Context) (*termii.GetBalanceResponse, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathBalance, nil)
	if err != nil {
		return nil, fmt.Errorf("getting balance: %w", err)
	}

	return decode[termii.GetBalanceResponse](resp, "balance")
}

// Search implements termii.InsightsClient.Search.
func (c *InsightsClient) Search(ctx context.Context, request *termii.SearchNumberRequest) (*termii.SearchNumberResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("searching number: %w", termii.ErrRequestRequired)
	}

	resp, err := c.httpClient.Get(ctx, constants.APIPathDND, request)
	if err != nil {
		return nil, fmt.Errorf("searching number: %w", err)
	}

	return decode[termii.SearchNumberResponse](resp, "number search")
}

// GetStatus implements termii.InsightsClient.GetStatus.
func (c *InsightsClient) GetStatus(ctx context.Context, request *termii.GetStatusRequest) (*termii.GetStatusResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("getting message status: %w", termii.ErrRequestRequired)
	}

	resp, err := c.httpClient.Get(ctx, constants.APIPathStatus, request)
	if err != nil {
		return nil, fmt.Errorf("getting message status: %w", err)
	}

	return decode[termii.GetStatusResponse](resp, "message status")
}

// GetHistory implements termii.InsightsClient.GetHistory. params may be nil.
func (c *InsightsClient) GetHistory(ctx context.Context, params *termii.ListParams) (*termii.GetHistoryResponse, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathInbox, params)
	if err != nil {
		return nil, fmt.Errorf("getting message history: %w", err)
	}

	return decode[termii.GetHistoryResponse](resp, "message history")
}
