package termii

import (
	"context"
	"net/http"
	"time"
)

// MessagingClient sends SMS, WhatsApp and template messages.
type MessagingClient interface {
	Send(ctx context.Context, request *SendMessageRequest) (*SendMessageResponse, error)
	SendBulk(ctx context.Context, request *SendBulkMessageRequest) (*SendBulkMessageResponse, error)
	SendWithTemplate(ctx context.Context, request *SendTemplateMessageRequest) (*SendTemplateMessageResponse, error)
}

// TokensClient issues and verifies one-time pins.
type TokensClient interface {
	Send(ctx context.Context, request *SendTokenRequest) (*SendTokenResponse, error)
	Verify(ctx context.Context, request *VerifyTokenRequest) (*VerifyTokenResponse, error)
	InApp(ctx context.Context, request *InAppTokenRequest) (*InAppTokenResponse, error)
}

// InsightsClient reads account balance, number status and message history.
type InsightsClient interface {
	GetBalance(ctx context.Context) (*GetBalanceResponse, error)
	Search(ctx context.Context, request *SearchNumberRequest) (*SearchNumberResponse, error)
	GetStatus(ctx context.Context, request *GetStatusRequest) (*GetStatusResponse, error)
	GetHistory(ctx context.Context, params *ListParams) (*GetHistoryResponse, error)
}

// ContactsClient manages phonebooks and the contacts inside them.
type ContactsClient interface {
	ListPhonebooks(ctx context.Context) (*ListPhonebooksResponse, error)
	CreatePhonebook(ctx context.Context, request *PhonebookRequest) (*CreatePhonebookResponse, error)
	UpdatePhonebook(ctx context.Context, phonebookID string, request *PhonebookRequest) (*MessageResponse, error)
	DeletePhonebook(ctx context.Context, phonebookID string) (*MessageResponse, error)
	ListContacts(ctx context.Context, phonebookID string) (*ListContactsResponse, error)
	AddContact(ctx context.Context, phonebookID string, request *ContactRequest) (*AddContactResponse, error)
	AddBulkContacts(ctx context.Context, phonebookID string, request *AddBulkContactsRequest) (*AddBulkContactsResponse, error)
	DeleteContact(ctx context.Context, contactID string) (*MessageResponse, error)
}

// CampaignsClient lists, inspects and sends campaigns.
type CampaignsClient interface {
	List(ctx context.Context, params *ListParams) (*ListCampaignsResponse, error)
	History(ctx context.Context, campaignID string) (*CampaignHistoryResponse, error)
	Send(ctx context.Context, request *SendCampaignRequest) (*SendCampaignResponse, error)
}

// ConversationsClient reads and replies to two-way conversations.
type ConversationsClient interface {
	List(ctx context.Context, params *ListParams) (*ListConversationsResponse, error)
	ToggleRead(ctx context.Context, conversationID string, request *ToggleReadStatusRequest) (*ToggleReadStatusResponse, error)
	SendMessage(ctx context.Context, conversationID string, request *SendConversationMessageRequest) (*SendConversationMessageResponse, error)
}

// SenderIDsClient lists and requests sender identifiers.
type SenderIDsClient interface {
	List(ctx context.Context) (*ListSenderIDsResponse, error)
	Request(ctx context.Context, request *SenderIDRequest) (*RequestSenderIDResponse, error)
}

// Client provides access to every Termii API area.
type Client interface {
	Messaging() MessagingClient
	Tokens() TokensClient
	Insights() InsightsClient
	Contacts() ContactsClient
	Campaigns() CampaignsClient
	Conversations() ConversationsClient
	SenderIDs() SenderIDsClient
}

// Config represents client configuration for building a termii.Client.
//
// The value is copied by termiiclient.New and never modified afterwards, so a
// single Config may be shared by any number of clients.
//
// # Timeouts and retries
//
// Timeout bounds each individual attempt. RetryAttempts is the total number of
// attempts made for one call, including the first. Connection errors, timeouts,
// 429 and 5xx responses are re-sent immediately with the same payload; other
// 4xx responses fail on the first attempt. Retries are not idempotency-aware:
// a send whose response was lost in transit may be delivered twice.
type Config struct {
	// Required fields
	// APIKey: account key, sent as api_key on every request.
	APIKey string

	// Optional configurations
	// SenderID: default sender used when a request leaves its sender empty.
	SenderID string
	// BaseURL: API host. Defaults to https://api.ng.termii.com. A trailing
	// slash is trimmed and https:// is added when no scheme is present.
	BaseURL string
	// Timeout: per-attempt timeout. Defaults to 30s.
	Timeout time.Duration
	// RetryAttempts: total attempts per call. Defaults to 3.
	RetryAttempts int
	// Logger: optional structured logger. Defaults to a no-op logger.
	Logger Logger
	// Debug: also log response status lines at debug level.
	Debug bool
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// HTTPClient: optional base client whose transport is reused. Its
	// Timeout is replaced by Timeout.
	HTTPClient *http.Client
	// RequestInterceptors run once per call before the first attempt.
	RequestInterceptors []RequestInterceptor
	// ResponseInterceptors run once per call after the final outcome.
	ResponseInterceptors []ResponseInterceptor
}
