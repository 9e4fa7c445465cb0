package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/internal/http"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// ContactsClient implements termii.ContactsClient.
type ContactsClient struct {
	httpClient *http.Client
}

// NewContactsClient creates a new contacts client.
func NewContactsClient(httpClient *http.Client) *ContactsClient {
	return &ContactsClient{
		httpClient: httpClient,
	}
}

func phonebookPath(phonebookID string, suffix ...string) string {
	path := constants.APIPathPhonebooks + "/" + url.PathEscape(phonebookID)
	for _, part := range suffix {
		path += "/" + part
	}

	return path
}

// ListPhonebooks implements termii.ContactsClient.ListPhonebooks.
func (c *ContactsClient) ListPhonebooks(ctx context.Context) (*termii.ListPhonebooksResponse, error) {
	resp, err := c.httpClient.Get(ctx, constants.APIPathPhonebooks, nil)
	if err != nil {
		return nil, fmt.Errorf("listing phonebooks: %w", err)
	}

	return decode[termii.ListPhonebooksResponse](resp, "phonebooks list")
}

// CreatePhonebook implements termii.ContactsClient.CreatePhonebook.
func (c *ContactsClient) CreatePhonebook(ctx context.Context, request *termii.PhonebookRequest) (*termii.CreatePhonebookResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("creating phonebook: %w", termii.ErrRequestRequired)
	}

	resp, err := c.httpClient.Post(ctx, constants.APIPathPhonebooks, request)
	if err != nil {
		return nil, fmt.Errorf("creating phonebook: %w", err)
	}

	return decode[termii.CreatePhonebookResponse](resp, "create phonebook")
}

// UpdatePhonebook implements termii.ContactsClient.UpdatePhonebook.
func (c *ContactsClient) UpdatePhonebook(ctx context.Context, phonebookID string, request *termii.PhonebookRequest) (*termii.MessageResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("updating phonebook: %w", termii.ErrRequestRequired)
	}

	resp, err := c.httpClient.Post(ctx, phonebookPath(phonebookID), request)
	if err != nil {
		return nil, fmt.Errorf("updating phonebook: %w", err)
	}

	return decode[termii.MessageResponse](resp, "update phonebook")
}

// DeletePhonebook implements termii.ContactsClient.DeletePhonebook.
func (c *ContactsClient) DeletePhonebook(ctx context.Context, phonebookID string) (*termii.MessageResponse, error) {
	resp, err := c.httpClient.Post(ctx, phonebookPath(phonebookID, "delete"), nil)
	if err != nil {
		return nil, fmt.Errorf("deleting phonebook: %w", err)
	}

	return decode[termii.MessageResponse](resp, "delete phonebook")
}

// ListContacts implements termii.ContactsClient.ListContacts.
func (c *ContactsClient) ListContacts(ctx context.Context, phonebookID string) (*termii.ListContactsResponse, error) {
	resp, err := c.httpClient.Get(ctx, phonebookPath(phonebookID, "contacts"), nil)
	if err != nil {
		return nil, fmt.Errorf("listing contacts: %w", err)
	}

	return decode[termii.ListContactsResponse](resp, "contacts list")
}

// AddContact implements termii.ContactsClient.AddContact.
func (c *ContactsClient) AddContact(ctx context.Context, phonebookID string, request *termii.ContactRequest) (*termii.AddContactResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("adding contact: %w", termii.ErrRequestRequired)
	}

	resp, err := c.httpClient.Post(ctx, phonebookPath(phonebookID, "contacts"), request)
	if err != nil {
		return nil, fmt.Errorf("adding contact: %w", err)
	}

	return decode[termii.AddContactResponse](resp, "add contact")
}

// AddBulkContacts implements termii.ContactsClient.AddBulkContacts.
func (c *ContactsClient) AddBulkContacts(ctx context.Context, phonebookID string, request *termii.AddBulkContactsRequest) (*termii.AddBulkContactsResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("importing contacts: %w", termii.ErrRequestRequired)
	}

	resp, err := c.httpClient.Post(ctx, phonebookPath(phonebookID, "contacts", "import"), request)
	if err != nil {
		return nil, fmt.Errorf("importing contacts: %w", err)
	}

	return decode[termii.AddBulkContactsResponse](resp, "import contacts")
}

// DeleteContact implements termii.ContactsClient.DeleteContact.
func (c *ContactsClient) DeleteContact(ctx context.Context, contactID string) (*termii.MessageResponse, error) {
	path := constants.APIPathContacts + "/" + url.PathEscape(contactID) + "/delete"

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting contact: %w", err)
	}

	return decode[termii.MessageResponse](resp, "delete contact")
}
