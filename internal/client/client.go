package client

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/termii/internal/http"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// Client implements the termii.Client interface.
type Client struct {
	httpClient *http.Client
	senderID   string

	// Service clients
	messaging     termii.MessagingClient
	tokens        termii.TokensClient
	insights      termii.InsightsClient
	contacts      termii.ContactsClient
	campaigns     termii.CampaignsClient
	conversations termii.ConversationsClient
	senderIDs     termii.SenderIDsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config termii.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	if config.RetryAttempts > 0 {
		httpOpts = append(httpOpts, http.WithRetryAttempts(config.RetryAttempts))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if len(config.RequestInterceptors) > 0 {
		httpOpts = append(httpOpts, http.WithRequestInterceptors(config.RequestInterceptors...))
	}

	if len(config.ResponseInterceptors) > 0 {
		httpOpts = append(httpOpts, http.WithResponseInterceptors(config.ResponseInterceptors...))
	}

	return httpOpts
}

// New creates a Termii API client. config is expected to be normalized
// already; see termiiclient.New.
func New(config termii.Config) (*Client, error) {
	if config.APIKey == "" {
		return nil, termii.ErrAPIKeyRequired
	}

	httpClient := http.NewClient(config.BaseURL, config.APIKey, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		senderID:   config.SenderID,
	}

	client.initializeServiceClients()

	return client, nil
}

func (c *Client) initializeServiceClients() {
	c.messaging = NewMessagingClient(c.httpClient, c.senderID)
	c.tokens = NewTokensClient(c.httpClient, c.senderID)
	c.insights = NewInsightsClient(c.httpClient)
	c.contacts = NewContactsClient(c.httpClient)
	c.campaigns = NewCampaignsClient(c.httpClient, c.senderID)
	c.conversations = NewConversationsClient(c.httpClient)
	c.senderIDs = NewSenderIDsClient(c.httpClient)
}

// Messaging implements termii.Client.Messaging.
func (c *Client) Messaging() termii.MessagingClient {
	return c.messaging
}

// Tokens implements termii.Client.Tokens.
func (c *Client) Tokens() termii.TokensClient {
	return c.tokens
}

// Insights implements termii.Client.Insights.
func (c *Client) Insights() termii.InsightsClient {
	return c.insights
}

// Contacts implements termii.Client.Contacts.
func (c *Client) Contacts() termii.ContactsClient {
	return c.contacts
}

// Campaigns implements termii.Client.Campaigns.
func (c *Client) Campaigns() termii.CampaignsClient {
	return c.campaigns
}

// Conversations implements termii.Client.Conversations.
func (c *Client) Conversations() termii.ConversationsClient {
	return c.conversations
}

// SenderIDs implements termii.Client.SenderIDs.
func (c *Client) SenderIDs() termii.SenderIDsClient {
	return c.senderIDs
}

// decode parses a response body into T. An empty body yields the zero value.
func decode[T any](resp *http.Response, what string) (*T, error) {
	var result T

	if len(bytes.TrimSpace(resp.Body)) == 0 {
		return &result, nil
	}

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", what, err)
	}

	return &result, nil
}

func orDefault[T comparable](value, fallback T) T {
	var zero T
	if value == zero {
		return fallback
	}

	return value
}
