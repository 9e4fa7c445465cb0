package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Client defaults.
const (
	// DefaultBaseURL is the Termii API host used when no base URL is configured.
	DefaultBaseURL = "https://api.ng.termii.com"

	// DefaultHTTPTimeout bounds a single attempt.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultRetryAttempts is the total number of attempts made for one call.
	DefaultRetryAttempts = 3

	// DefaultUserAgent is sent when the config does not override it.
	DefaultUserAgent = "termii-go/" + Version

	// Version of the SDK.
	Version = "0.3.0"
)

// Wire format.
const (
	// APIKeyField is the payload/query field carrying the account key.
	APIKeyField = "api_key"

	// MessageField carries the human-readable error in error envelopes.
	MessageField = "message"

	// UnknownErrorMessage is used when a failed response has no message.
	UnknownErrorMessage = "An unknown error occurred"

	// RequestIDHeader is stable across the retries of one logical call.
	RequestIDHeader = "X-Request-ID"

	// LogContext tags every log line emitted by the transport.
	LogContext = "Termii-SDK"

	// MaskedSecret replaces the API key in log output.
	MaskedSecret = "***"

	// RecipientSeparator joins phone number lists for bulk endpoints.
	RecipientSeparator = ","
)

// Message and token defaults.
const (
	DefaultMessageType    = "plain"
	DefaultMessageChannel = "generic"
	DefaultPinType        = "NUMERIC"
)

// API paths, relative to the base URL.
const (
	APIPathSendMessage     = "api/sms/send"
	APIPathSendBulkMessage = "api/sms/send/bulk"
	APIPathSendTemplate    = "api/send/template"

	APIPathSMSToken      = "api/sms/otp/send"
	APIPathWhatsAppToken = "api/whatsapp/otp/send"
	APIPathVoiceToken    = "api/voice/otp/call"
	APIPathVerifyToken   = "api/sms/otp/verify"
	APIPathInAppToken    = "api/sms/otp/generate"

	APIPathBalance = "api/get-balance"
	APIPathDND     = "api/check/dnd"
	APIPathStatus  = "api/sms/status"
	APIPathInbox   = "api/sms/inbox"

	APIPathPhonebooks = "api/phonebooks"
	APIPathContacts   = "api/contacts"

	APIPathCampaigns    = "api/campaigns"
	APIPathSendCampaign = "api/campaigns/send"

	APIPathConversations = "api/conversations"

	APIPathSenderIDs       = "api/sender-id"
	APIPathRequestSenderID = "api/sender-id/request"
)

// Validation and limits.
const (
	// MinimumArgumentCount is used by commands taking KEY VALUE pairs.
	MinimumArgumentCount = 2

	// StringTruncationLimit is the number of trailing characters shown for masked keys.
	StringTruncationLimit = 4

	// StandardPageSize is the default per_page for list commands.
	StandardPageSize = 50
)

// UI and display constants.
const (
	// NotAvailable represents a value that is not available.
	NotAvailable = "N/A"

	// BooleanTrue represents true as a string.
	BooleanTrue = "true"

	// BooleanFalse represents false as a string.
	BooleanFalse = "false"
)

// Format constants.
const (
	// FormatJSON represents JSON output format.
	FormatJSON = "json"

	// FormatYAML represents YAML output format.
	FormatYAML = "yaml"

	// FormatTable represents table output format.
	FormatTable = "table"

	// JSONIndentSize is used by JSON and YAML encoders.
	JSONIndentSize = 2
)
