package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/termii/pkg/termii"
)

func TestContactsClient_Phonebooks(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{"data":[{"id":"pb1","name":"Customers","total_contacts":12,"date_created":"2024-01-01"}]}`)
		contacts := NewContactsClient(rec.httpClient())

		resp, err := contacts.ListPhonebooks(context.Background())
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "Customers", resp.Data[0].Name)
		assert.Equal(t, 12, resp.Data[0].TotalContacts)
		assert.Equal(t, "/api/phonebooks", rec.last(t).Path)
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{"message":"Phonebook added successfully","phonebook_id":"pb2"}`)
		contacts := NewContactsClient(rec.httpClient())

		resp, err := contacts.CreatePhonebook(context.Background(), &termii.PhonebookRequest{PhonebookName: "Leads"})
		require.NoError(t, err)
		assert.Equal(t, "pb2", resp.PhonebookID)

		got := rec.last(t)
		assert.Equal(t, http.MethodPost, got.Method)
		assert.Equal(t, "/api/phonebooks", got.Path)
		assert.Equal(t, map[string]interface{}{"phonebook_name": "Leads", "api_key": testAPIKey}, got.Payload)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{"message":"Phonebook Updated Successfully"}`)
		contacts := NewContactsClient(rec.httpClient())

		resp, err := contacts.UpdatePhonebook(context.Background(), "pb1", &termii.PhonebookRequest{PhonebookName: "Renamed"})
		require.NoError(t, err)
		assert.Equal(t, "Phonebook Updated Successfully", resp.Message)
		assert.Equal(t, "/api/phonebooks/pb1", rec.last(t).Path)
	})

	t.Run("delete sends only the api key", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{"message":"Phonebook Deleted Successfully"}`)
		contacts := NewContactsClient(rec.httpClient())

		resp, err := contacts.DeletePhonebook(context.Background(), "pb1")
		require.NoError(t, err)
		assert.Equal(t, "Phonebook Deleted Successfully", resp.Message)

		got := rec.last(t)
		assert.Equal(t, http.MethodPost, got.Method)
		assert.Equal(t, "/api/phonebooks/pb1/delete", got.Path)
		assert.Equal(t, map[string]interface{}{"api_key": testAPIKey}, got.Payload)
	})

	t.Run("ids are escaped", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{}`)
		contacts := NewContactsClient(rec.httpClient())

		_, err := contacts.DeletePhonebook(context.Background(), "a/b")
		require.NoError(t, err)
		assert.Equal(t, "/api/phonebooks/a%2Fb/delete", rec.last(t).Path)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusNotFound, `{"message":"Phonebook not found"}`)
		contacts := NewContactsClient(rec.httpClient())

		_, err := contacts.DeletePhonebook(context.Background(), "missing")
		require.ErrorIs(t, err, termii.ErrNotFound)
	})
}

func TestContactsClient_Contacts(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{"data":[{"id":"c1","phone_number":"2348012345678","first_name":"Ada"}]}`)
		contacts := NewContactsClient(rec.httpClient())

		resp, err := contacts.ListContacts(context.Background(), "pb1")
		require.NoError(t, err)
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "Ada", resp.Data[0].FirstName)

		got := rec.last(t)
		assert.Equal(t, http.MethodGet, got.Method)
		assert.Equal(t, "/api/phonebooks/pb1/contacts", got.Path)
	})

	t.Run("add", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{"message":"Contact added successfully","contact_id":"c2"}`)
		contacts := NewContactsClient(rec.httpClient())

		resp, err := contacts.AddContact(context.Background(), "pb1", &termii.ContactRequest{
			PhoneNumber: "2348012345678",
			FirstName:   "Ada",
		})
		require.NoError(t, err)
		assert.Equal(t, "c2", resp.ContactID)

		got := rec.last(t)
		assert.Equal(t, "/api/phonebooks/pb1/contacts", got.Path)
		assert.Equal(t, map[string]interface{}{
			"phone_number": "2348012345678",
			"first_name":   "Ada",
			"api_key":      testAPIKey,
		}, got.Payload)
	})

	t.Run("bulk import", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{"message":"Contacts imported","added_count":2}`)
		contacts := NewContactsClient(rec.httpClient())

		resp, err := contacts.AddBulkContacts(context.Background(), "pb1", &termii.AddBulkContactsRequest{
			Contacts: []termii.ContactRequest{{PhoneNumber: "1"}, {PhoneNumber: "2"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.AddedCount)

		got := rec.last(t)
		assert.Equal(t, "/api/phonebooks/pb1/contacts/import", got.Path)

		imported, ok := got.Payload["contacts"].([]interface{})
		require.True(t, ok)
		assert.Len(t, imported, 2)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{"message":"Contact deleted"}`)
		contacts := NewContactsClient(rec.httpClient())

		_, err := contacts.DeleteContact(context.Background(), "c1")
		require.NoError(t, err)

		got := rec.last(t)
		assert.Equal(t, "/api/contacts/c1/delete", got.Path)
		assert.Equal(t, map[string]interface{}{"api_key": testAPIKey}, got.Payload)
	})

	t.Run("nil request", func(t *testing.T) {
		t.Parallel()

		rec := newRecorder(t, http.StatusOK, `{}`)
		contacts := NewContactsClient(rec.httpClient())

		_, err := contacts.AddContact(context.Background(), "pb1", nil)
		require.ErrorIs(t, err, termii.ErrRequestRequired)
		assert.Empty(t, rec.all())
	})
}
