package termii

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MessageType selects the encoding of a message body.
type MessageType string

const (
	MessageTypePlain   MessageType = "plain"
	MessageTypeUnicode MessageType = "unicode"
)

// MessageChannel selects the route a message is delivered on.
type MessageChannel string

const (
	ChannelDND      MessageChannel = "dnd"
	ChannelWhatsApp MessageChannel = "whatsapp"
	ChannelGeneric  MessageChannel = "generic"
)

// TokenChannel selects the delivery path for a one-time pin.
type TokenChannel string

const (
	TokenChannelDND      TokenChannel = "dnd"
	TokenChannelSMS      TokenChannel = "sms"
	TokenChannelWhatsApp TokenChannel = "whatsapp"
	TokenChannelVoice    TokenChannel = "voice"
)

// PinType is the alphabet a generated pin is drawn from.
type PinType string

const (
	PinTypeNumeric           PinType = "NUMERIC"
	PinTypeAlphanumeric      PinType = "ALPHANUMERIC"
	PinTypeAlphanumericUpper PinType = "ALPHANUMERIC_UPPER"
	PinTypeAlphanumericLower PinType = "ALPHANUMERIC_LOWER"
)

// ListParams are the paging options shared by list endpoints.
type ListParams struct {
	Page    int `json:"page,omitempty"     yaml:"page,omitempty"`
	PerPage int `json:"per_page,omitempty" yaml:"per_page,omitempty"`
}

// PaginationLinks are the navigation links of a paged response.
type PaginationLinks struct {
	First string  `json:"first"          yaml:"first"`
	Last  string  `json:"last"           yaml:"last"`
	Prev  *string `json:"prev,omitempty" yaml:"prev,omitempty"`
	Next  *string `json:"next,omitempty" yaml:"next,omitempty"`
}

// PaginationMeta describes the position of a page in the result set.
type PaginationMeta struct {
	CurrentPage int    `json:"current_page" yaml:"current_page"`
	From        int    `json:"from"         yaml:"from"`
	LastPage    int    `json:"last_page"    yaml:"last_page"`
	Path        string `json:"path"         yaml:"path"`
	PerPage     int    `json:"per_page"     yaml:"per_page"`
	To          int    `json:"to"           yaml:"to"`
	Total       int    `json:"total"        yaml:"total"`
}

// MessageResponse is returned by endpoints that only acknowledge an action.
type MessageResponse struct {
	Message string `json:"message" yaml:"message"`
}

// Messaging

// SendMessageRequest sends one message. From, Type and Channel default to the
// configured sender, plain and generic.
type SendMessageRequest struct {
	To      string         `json:"to"                yaml:"to"`
	From    string         `json:"from,omitempty"    yaml:"from,omitempty"`
	SMS     string         `json:"sms"               yaml:"sms"`
	Type    MessageType    `json:"type,omitempty"    yaml:"type,omitempty"`
	Channel MessageChannel `json:"channel,omitempty" yaml:"channel,omitempty"`
}

// SendBulkMessageRequest sends the same message to several recipients.
type SendBulkMessageRequest struct {
	To      []string       `json:"to"                yaml:"to"`
	From    string         `json:"from,omitempty"    yaml:"from,omitempty"`
	SMS     string         `json:"sms"               yaml:"sms"`
	Type    MessageType    `json:"type,omitempty"    yaml:"type,omitempty"`
	Channel MessageChannel `json:"channel,omitempty" yaml:"channel,omitempty"`
}

// SendTemplateMessageRequest sends a WhatsApp template message.
type SendTemplateMessageRequest struct {
	To         string                 `json:"to"             yaml:"to"`
	From       string                 `json:"from,omitempty" yaml:"from,omitempty"`
	TemplateID string                 `json:"template_id"    yaml:"template_id"`
	Data       map[string]interface{} `json:"data,omitempty" yaml:"data,omitempty"`
}

// SendMessageResponse acknowledges a single message.
type SendMessageResponse struct {
	MessageID string  `json:"message_id" yaml:"message_id"`
	Message   string  `json:"message"    yaml:"message"`
	Balance   float64 `json:"balance"    yaml:"balance"`
	User      string  `json:"user"       yaml:"user"`
}

// SendBulkMessageResponse acknowledges a bulk message.
type SendBulkMessageResponse struct {
	MessageID MessageIDs `json:"message_id" yaml:"message_id"`
	Message   string     `json:"message"    yaml:"message"`
	Balance   float64    `json:"balance"    yaml:"balance"`
	User      string     `json:"user"       yaml:"user"`
}

// SendTemplateMessageResponse acknowledges a template message.
type SendTemplateMessageResponse = SendMessageResponse

// MessageIDs decodes either a single id or a list of ids.
type MessageIDs []string

// UnmarshalJSON accepts "id", ["id", ...] and null.
func (m *MessageIDs) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = nil

		return nil
	}

	if trimmed[0] == '[' {
		var ids []string

		err := json.Unmarshal(trimmed, &ids)
		if err != nil {
			return fmt.Errorf("decoding message ids: %w", err)
		}

		*m = ids

		return nil
	}

	var id string

	err := json.Unmarshal(trimmed, &id)
	if err != nil {
		return fmt.Errorf("decoding message id: %w", err)
	}

	*m = MessageIDs{id}

	return nil
}

// Tokens

// SendTokenRequest issues a pin over the selected channel. From defaults to
// the configured sender and PinType to MessageType.
type SendTokenRequest struct {
	MessageType    PinType      `json:"message_type"              yaml:"message_type"`
	To             string       `json:"to"                        yaml:"to"`
	From           string       `json:"from,omitempty"            yaml:"from,omitempty"`
	Channel        TokenChannel `json:"channel"                   yaml:"channel"`
	Code           string       `json:"code,omitempty"            yaml:"code,omitempty"`
	PinAttempts    int          `json:"pin_attempts,omitempty"    yaml:"pin_attempts,omitempty"`
	PinTimeToLive  int          `json:"pin_time_to_live,omitempty" yaml:"pin_time_to_live,omitempty"`
	PinLength      int          `json:"pin_length,omitempty"      yaml:"pin_length,omitempty"`
	PinType        PinType      `json:"pin_type,omitempty"        yaml:"pin_type,omitempty"`
	PinPlaceholder string       `json:"pin_placeholder,omitempty" yaml:"pin_placeholder,omitempty"`
	MessageText    string       `json:"message_text"              yaml:"message_text"`
}

// VerifyTokenRequest checks a pin previously issued.
type VerifyTokenRequest struct {
	PinID string `json:"pin_id" yaml:"pin_id"`
	Pin   string `json:"pin"    yaml:"pin"`
}

// InAppTokenRequest generates a pin returned to the caller instead of sent.
type InAppTokenRequest struct {
	PhoneNumber   string  `json:"phone_number"               yaml:"phone_number"`
	PinAttempts   int     `json:"pin_attempts,omitempty"     yaml:"pin_attempts,omitempty"`
	PinTimeToLive int     `json:"pin_time_to_live,omitempty" yaml:"pin_time_to_live,omitempty"`
	PinLength     int     `json:"pin_length,omitempty"       yaml:"pin_length,omitempty"`
	PinType       PinType `json:"pin_type,omitempty"         yaml:"pin_type,omitempty"`
}

// SendTokenResponse identifies the issued pin.
type SendTokenResponse struct {
	PinID     string `json:"pinId"     yaml:"pin_id"`
	To        string `json:"to"        yaml:"to"`
	SMSStatus string `json:"smsStatus" yaml:"sms_status"`
}

// VerifyTokenResponse reports the verification outcome.
type VerifyTokenResponse struct {
	PinID        string `json:"pinId"        yaml:"pin_id"`
	Verified     bool   `json:"verified"     yaml:"verified"`
	MSISDN       string `json:"msisdn"       yaml:"msisdn"`
	AttemptsLeft int    `json:"attemptsLeft" yaml:"attempts_left"`
}

// InAppTokenResponse carries the generated pin.
type InAppTokenResponse struct {
	PinID       string `json:"pinId"       yaml:"pin_id"`
	OTP         string `json:"otp"         yaml:"otp"`
	PhoneNumber string `json:"phoneNumber" yaml:"phone_number"`
}

// Insights

// Balance is the account's remaining credit.
type Balance struct {
	Balance  float64 `json:"balance"  yaml:"balance"`
	Currency string  `json:"currency" yaml:"currency"`
}

// GetBalanceResponse wraps the account balance.
type GetBalanceResponse struct {
	User Balance `json:"user" yaml:"user"`
}

// SearchNumberRequest looks up the DND status of a number.
type SearchNumberRequest struct {
	PhoneNumber string `json:"phone_number" yaml:"phone_number"`
}

// SearchNumberResponse describes a number's network and DND status.
type SearchNumberResponse struct {
	Number  string `json:"number"  yaml:"number"`
	Network string `json:"network" yaml:"network"`
	Status  string `json:"status"  yaml:"status"`
	Ported  string `json:"ported"  yaml:"ported"`
}

// GetStatusRequest looks up the delivery status of a message.
type GetStatusRequest struct {
	MessageID string `json:"message_id" yaml:"message_id"`
}

// GetStatusResponse is the delivery status of a message.
type GetStatusResponse struct {
	Status    string `json:"status"     yaml:"status"`
	MessageID string `json:"message_id" yaml:"message_id"`
	SenderID  string `json:"sender_id"  yaml:"sender_id"`
}

// HistoryItem is one message in the account's history.
type HistoryItem struct {
	ID       string `json:"id"       yaml:"id"`
	Sender   string `json:"sender"   yaml:"sender"`
	Receiver string `json:"receiver" yaml:"receiver"`
	Message  string `json:"message"  yaml:"message"`
	Status   string `json:"status"   yaml:"status"`
	Date     string `json:"date"     yaml:"date"`
}

// GetHistoryResponse is one page of message history.
type GetHistoryResponse struct {
	Data  []HistoryItem   `json:"data"  yaml:"data"`
	Links PaginationLinks `json:"links" yaml:"links"`
	Meta  PaginationMeta  `json:"meta"  yaml:"meta"`
}

// Contacts

// PhonebookRequest creates or renames a phonebook.
type PhonebookRequest struct {
	PhonebookName string `json:"phonebook_name"        yaml:"phonebook_name"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Phonebook is a named list of contacts.
type Phonebook struct {
	ID            string `json:"id"             yaml:"id"`
	Name          string `json:"name"           yaml:"name"`
	TotalContacts int    `json:"total_contacts" yaml:"total_contacts"`
	DateCreated   string `json:"date_created"   yaml:"date_created"`
}

// ListPhonebooksResponse lists the account's phonebooks.
type ListPhonebooksResponse struct {
	Data []Phonebook `json:"data" yaml:"data"`
}

// CreatePhonebookResponse identifies a new phonebook.
type CreatePhonebookResponse struct {
	Message     string `json:"message"      yaml:"message"`
	PhonebookID string `json:"phonebook_id" yaml:"phonebook_id"`
}

// ContactRequest adds a contact to a phonebook.
type ContactRequest struct {
	PhoneNumber string `json:"phone_number"         yaml:"phone_number"`
	FirstName   string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"  yaml:"last_name,omitempty"`
}

// AddBulkContactsRequest imports several contacts at once.
type AddBulkContactsRequest struct {
	Contacts []ContactRequest `json:"contacts" yaml:"contacts"`
}

// Contact is an entry in a phonebook.
type Contact struct {
	ID          string `json:"id"                   yaml:"id"`
	PhoneNumber string `json:"phone_number"         yaml:"phone_number"`
	FirstName   string `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"  yaml:"last_name,omitempty"`
}

// ListContactsResponse lists the contacts of a phonebook.
type ListContactsResponse struct {
	Data []Contact `json:"data" yaml:"data"`
}

// AddContactResponse identifies a new contact.
type AddContactResponse struct {
	Message   string `json:"message"    yaml:"message"`
	ContactID string `json:"contact_id" yaml:"contact_id"`
}

// AddBulkContactsResponse reports how many contacts were imported.
type AddBulkContactsResponse struct {
	Message    string `json:"message"     yaml:"message"`
	AddedCount int    `json:"added_count" yaml:"added_count"`
}

// Campaigns

// SendCampaignRequest sends a campaign to a phonebook or to an explicit list
// of recipients. When PhonebookID is set, Recipients is not sent.
type SendCampaignRequest struct {
	CampaignName string         `json:"campaign_name"           yaml:"campaign_name"`
	SenderID     string         `json:"sender_id,omitempty"     yaml:"sender_id,omitempty"`
	Message      string         `json:"message"                 yaml:"message"`
	Recipients   []string       `json:"recipients,omitempty"    yaml:"recipients,omitempty"`
	PhonebookID  string         `json:"phonebook_id,omitempty"  yaml:"phonebook_id,omitempty"`
	Channel      MessageChannel `json:"channel"                 yaml:"channel"`
	MessageType  MessageType    `json:"message_type"            yaml:"message_type"`
	ScheduleTime string         `json:"schedule_time,omitempty" yaml:"schedule_time,omitempty"`
}

// Campaign summarises a sent or scheduled campaign.
type Campaign struct {
	ID              string `json:"id"               yaml:"id"`
	Name            string `json:"name"             yaml:"name"`
	Status          string `json:"status"           yaml:"status"`
	TotalRecipients int    `json:"total_recipients" yaml:"total_recipients"`
	DateCreated     string `json:"date_created"     yaml:"date_created"`
}

// ListCampaignsResponse lists campaigns.
type ListCampaignsResponse struct {
	Data []Campaign `json:"data" yaml:"data"`
}

// CampaignHistoryItem is one event in a campaign's history.
type CampaignHistoryItem struct {
	Event     string `json:"event"     yaml:"event"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Details   string `json:"details"   yaml:"details"`
}

// CampaignHistoryResponse lists the events of a campaign.
type CampaignHistoryResponse struct {
	Data []CampaignHistoryItem `json:"data" yaml:"data"`
}

// SendCampaignResponse acknowledges a campaign.
type SendCampaignResponse struct {
	Message    string `json:"message"     yaml:"message"`
	CampaignID string `json:"campaign_id" yaml:"campaign_id"`
	Status     string `json:"status"      yaml:"status"`
}

// Conversations

// Conversation summarises a two-way thread with a contact.
type Conversation struct {
	ID                   string `json:"id"                     yaml:"id"`
	ContactNumber        string `json:"contact_number"         yaml:"contact_number"`
	LastMessage          string `json:"last_message"           yaml:"last_message"`
	LastMessageTimestamp string `json:"last_message_timestamp" yaml:"last_message_timestamp"`
	IsRead               bool   `json:"is_read"                yaml:"is_read"`
}

// ListConversationsResponse lists conversations.
type ListConversationsResponse struct {
	Data []Conversation `json:"data" yaml:"data"`
}

// ToggleReadStatusRequest marks a conversation read or unread.
type ToggleReadStatusRequest struct {
	IsRead bool `json:"is_read" yaml:"is_read"`
}

// ToggleReadStatusResponse reports the new read state.
type ToggleReadStatusResponse struct {
	Message        string `json:"message"         yaml:"message"`
	ConversationID string `json:"conversation_id" yaml:"conversation_id"`
	IsRead         bool   `json:"is_read"         yaml:"is_read"`
}

// SendConversationMessageRequest replies inside a conversation.
type SendConversationMessageRequest struct {
	Message string `json:"message" yaml:"message"`
}

// SendConversationMessageResponse identifies the reply.
type SendConversationMessageResponse struct {
	Message   string `json:"message"    yaml:"message"`
	MessageID string `json:"message_id" yaml:"message_id"`
}

// Sender IDs

// SenderIDEntry is a registered or pending sender identifier.
type SenderIDEntry struct {
	SenderID  string `json:"sender_id"  yaml:"sender_id"`
	Status    string `json:"status"     yaml:"status"`
	Company   string `json:"company"    yaml:"company"`
	Usecase   string `json:"usecase"    yaml:"usecase"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

// ListSenderIDsResponse lists sender identifiers.
type ListSenderIDsResponse struct {
	Data []SenderIDEntry `json:"data" yaml:"data"`
}

// SenderIDRequest asks for a new sender identifier.
type SenderIDRequest struct {
	SenderID string `json:"sender_id" yaml:"sender_id"`
	Usecase  string `json:"usecase"   yaml:"usecase"`
	Company  string `json:"company"   yaml:"company"`
}

// RequestSenderIDResponse acknowledges a sender identifier request.
type RequestSenderIDResponse struct {
	Message  string `json:"message"   yaml:"message"`
	SenderID string `json:"sender_id" yaml:"sender_id"`
	Status   string `json:"status"    yaml:"status"`
}
