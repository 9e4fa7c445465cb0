package termiiclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/termii/internal/client"
	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// New creates a new Termii API client.
func New(config *termii.Config) (termii.Client, error) {
	if config == nil {
		return nil, termii.ErrConfigRequired
	}

	normalized, err := Normalize(*config)
	if err != nil {
		return nil, err
	}

	apiClient, err := client.New(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a client with default transport settings.
func NewWithAPIKey(apiKey, senderID string) (termii.Client, error) {
	return New(&termii.Config{
		APIKey:   apiKey,
		SenderID: senderID,
	})
}

// Normalize validates config and fills in defaults.
func Normalize(config termii.Config) (termii.Config, error) {
	config.APIKey = strings.TrimSpace(config.APIKey)
	if config.APIKey == "" {
		return termii.Config{}, termii.ErrAPIKeyRequired
	}

	config.BaseURL = normalizeBaseURL(config.BaseURL)

	if config.Timeout <= 0 {
		config.Timeout = constants.DefaultHTTPTimeout
	}

	if config.RetryAttempts <= 0 {
		config.RetryAttempts = constants.DefaultRetryAttempts
	}

	if config.Logger == nil {
		config.Logger = termii.NopLogger{}
	}

	if config.UserAgent == "" {
		config.UserAgent = constants.DefaultUserAgent
	}

	return config, nil
}

func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return constants.DefaultBaseURL
	}

	baseURL = strings.TrimRight(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
