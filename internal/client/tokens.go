package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/internal/http"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// TokensClient implements termii.TokensClient.
type TokensClient struct {
	httpClient *http.Client
	senderID   string
}

// NewTokensClient creates a new tokens client.
func NewTokensClient(httpClient *http.Client, senderID string) *TokensClient {
	return &TokensClient{
		httpClient: httpClient,
		senderID:   senderID,
	}
}

// tokenSendPath maps a delivery channel to its endpoint.
func tokenSendPath(channel termii.TokenChannel) (string, error) {
	switch channel {
	case termii.TokenChannelDND, termii.TokenChannelSMS:
		return constants.APIPathSMSToken, nil
	case termii.TokenChannelWhatsApp:
		return constants.APIPathWhatsAppToken, nil
	case termii.TokenChannelVoice:
		return constants.APIPathVoiceToken, nil
	default:
		return "", fmt.Errorf("%w: %q", termii.ErrUnsupportedTokenChannel, channel)
	}
}

// Send implements termii.TokensClient.Send. An unsupported channel fails
// before any request is made.
func (c *TokensClient) Send(ctx context.Context, request *termii.SendTokenRequest) (*termii.SendTokenResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("sending token: %w", termii.ErrRequestRequired)
	}

	path, err := tokenSendPath(request.Channel)
	if err != nil {
		return nil, fmt.Errorf("sending token: %w", err)
	}

	payload := *request
	payload.From = orDefault(request.From, c.senderID)
	payload.PinType = orDefault(request.PinType, request.MessageType)

	resp, err := c.httpClient.Post(ctx, path, payload)
	if err != nil {
		return nil, fmt.Errorf("sending token: %w", err)
	}

	return decode[termii.SendTokenResponse](resp, "send token")
}

// Verify implements termii.TokensClient.Verify.
func (c *TokensClient) Verify(ctx context.Context, request *termii.VerifyTokenRequest) (*termii.VerifyTokenResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("verifying token: %w", termii.ErrRequestRequired)
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathVerifyToken, request)
	if err != nil {
		return nil, fmt.Errorf("verifying token: %w", err)
	}

	return decode[termii.VerifyTokenResponse](resp, "verify token")
}

// InApp implements termii.TokensClient.InApp. A nil request generates a
// numeric pin with the account defaults.
func (c *TokensClient) InApp(ctx context.Context, request *termii.InAppTokenRequest) (*termii.InAppTokenResponse, error) {
	var payload termii.InAppTokenRequest
	if request != nil {
		payload = *request
	}

	payload.PinType = orDefault(payload.PinType, termii.PinType(constants.DefaultPinType))

	resp, err := c.httpClient.Post(ctx, constants.APIPathInAppToken, inAppTokenPayload(payload))
	if err != nil {
		return nil, fmt.Errorf("generating in-app token: %w", err)
	}

	return decode[termii.InAppTokenResponse](resp, "in-app token")
}

// inAppTokenPayload leaves phone_number out when it was not given.
func inAppTokenPayload(request termii.InAppTokenRequest) map[string]interface{} {
	payload := map[string]interface{}{
		"pin_type": request.PinType,
	}

	if request.PhoneNumber != "" {
		payload["phone_number"] = request.PhoneNumber
	}

	if request.PinAttempts > 0 {
		payload["pin_attempts"] = request.PinAttempts
	}

	if request.PinTimeToLive > 0 {
		payload["pin_time_to_live"] = request.PinTimeToLive
	}

	if request.PinLength > 0 {
		payload["pin_length"] = request.PinLength
	}

	return payload
}
