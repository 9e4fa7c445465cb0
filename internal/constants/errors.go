package constants

import "errors"

// CLI configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'termii login' or set TERMII_API_KEY")
	ErrEmptyAPIKey        = errors.New("API key cannot be empty")
	ErrUnknownConfigKey   = errors.New("unknown configuration key")
	ErrUnknownOutput      = errors.New("unknown output format")
)

// Argument errors.
var (
	ErrRecipientsRequired    = errors.New("at least one recipient is required")
	ErrContactsFileRequired  = errors.New("--file is required")
	ErrInvalidContactsFormat = errors.New("contacts file must be a JSON array of contacts")
	ErrInvalidTemplateData   = errors.New("template data must be KEY=VALUE")
)
