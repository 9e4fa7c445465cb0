package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// NewPhonebooksCommand creates the phonebooks command group.
func NewPhonebooksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "phonebooks",
		Aliases: []string{"phonebook", "pb"},
		Short:   "Manage phonebooks",
		Long:    "List, create, rename and delete phonebooks",
	}

	cmd.AddCommand(newPhonebooksListCommand())
	cmd.AddCommand(newPhonebooksCreateCommand())
	cmd.AddCommand(newPhonebooksUpdateCommand())
	cmd.AddCommand(newPhonebooksDeleteCommand())

	return cmd
}

func newPhonebooksListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List phonebooks",
		Long:  "List all phonebooks on the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			phonebooks, err := client.Contacts().ListPhonebooks(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list phonebooks: %w", err)
			}

			rows := make([][]string, 0, len(phonebooks.Data))
			for _, pb := range phonebooks.Data {
				rows = append(rows, []string{pb.ID, pb.Name, strconv.Itoa(pb.TotalContacts), pb.DateCreated})
			}

			return newRenderer(cmd).list(phonebooks.Data, []string{"ID", "Name", "Contacts", "Created"}, rows, "No phonebooks found")
		},
	}
}

func newPhonebooksCreateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a phonebook",
		Long:  "Create a new phonebook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Contacts().CreatePhonebook(cmd.Context(), &termii.PhonebookRequest{
				PhonebookName: args[0],
				Description:   description,
			})
			if err != nil {
				return fmt.Errorf("failed to create phonebook: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Phonebook ID", orNotAvailable(resp.PhonebookID)},
				{"Message", resp.Message},
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "phonebook description")

	return cmd
}

func newPhonebooksUpdateCommand() *cobra.Command {
	var (
		name        string
		description string
	)

	cmd := &cobra.Command{
		Use:   "update PHONEBOOK_ID",
		Short: "Update a phonebook",
		Long:  "Rename a phonebook or change its description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Contacts().UpdatePhonebook(cmd.Context(), args[0], &termii.PhonebookRequest{
				PhonebookName: name,
				Description:   description,
			})
			if err != nil {
				return fmt.Errorf("failed to update phonebook: %w", err)
			}

			return renderMessage(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new phonebook name")
	cmd.Flags().StringVar(&description, "description", "", "new phonebook description")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newPhonebooksDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PHONEBOOK_ID",
		Short: "Delete a phonebook",
		Long:  "Delete a phonebook and its contacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Contacts().DeletePhonebook(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete phonebook: %w", err)
			}

			return renderMessage(cmd, resp)
		},
	}
}

// NewContactsCommand creates the contacts command group.
func NewContactsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Aliases: []string{"contact"},
		Short:   "Manage phonebook contacts",
		Long:    "List, add, import and delete the contacts of a phonebook",
	}

	cmd.AddCommand(newContactsListCommand())
	cmd.AddCommand(newContactsAddCommand())
	cmd.AddCommand(newContactsImportCommand())
	cmd.AddCommand(newContactsDeleteCommand())

	return cmd
}

func newContactsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list PHONEBOOK_ID",
		Short: "List contacts",
		Long:  "List the contacts of a phonebook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			contacts, err := client.Contacts().ListContacts(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to list contacts: %w", err)
			}

			rows := make([][]string, 0, len(contacts.Data))
			for _, contact := range contacts.Data {
				rows = append(rows, []string{contact.ID, contact.PhoneNumber, contact.FirstName, contact.LastName})
			}

			return newRenderer(cmd).list(contacts.Data, []string{"ID", "Phone Number", "First Name", "Last Name"}, rows, "No contacts found")
		},
	}
}

func newContactsAddCommand() *cobra.Command {
	var (
		phoneNumber string
		firstName   string
		lastName    string
	)

	cmd := &cobra.Command{
		Use:   "add PHONEBOOK_ID",
		Short: "Add a contact",
		Long:  "Add a single contact to a phonebook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Contacts().AddContact(cmd.Context(), args[0], &termii.ContactRequest{
				PhoneNumber: phoneNumber,
				FirstName:   firstName,
				LastName:    lastName,
			})
			if err != nil {
				return fmt.Errorf("failed to add contact: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Contact ID", orNotAvailable(resp.ContactID)},
				{"Message", resp.Message},
			})
		},
	}

	cmd.Flags().StringVar(&phoneNumber, "phone-number", "", "contact phone number")
	cmd.Flags().StringVar(&firstName, "first-name", "", "contact first name")
	cmd.Flags().StringVar(&lastName, "last-name", "", "contact last name")
	_ = cmd.MarkFlagRequired("phone-number")

	return cmd
}

func newContactsImportCommand() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import PHONEBOOK_ID",
		Short: "Import contacts",
		Long:  "Import contacts into a phonebook from a JSON file containing an array of contacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := readContactsFile(file)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Contacts().AddBulkContacts(cmd.Context(), args[0], &termii.AddBulkContactsRequest{
				Contacts: contacts,
			})
			if err != nil {
				return fmt.Errorf("failed to import contacts: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Added", strconv.Itoa(resp.AddedCount)},
				{"Message", resp.Message},
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON file with contacts")

	return cmd
}

func newContactsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete CONTACT_ID",
		Short: "Delete a contact",
		Long:  "Delete a contact from its phonebook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Contacts().DeleteContact(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete contact: %w", err)
			}

			return renderMessage(cmd, resp)
		},
	}
}

func readContactsFile(path string) ([]termii.ContactRequest, error) {
	if path == "" {
		return nil, constants.ErrContactsFileRequired
	}

	// #nosec G304 -- the path is supplied by the user running the CLI
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read contacts file: %w", err)
	}

	var contacts []termii.ContactRequest

	err = json.Unmarshal(data, &contacts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidContactsFormat, err)
	}

	if len(contacts) == 0 {
		return nil, constants.ErrInvalidContactsFormat
	}

	return contacts, nil
}

func renderMessage(cmd *cobra.Command, resp *termii.MessageResponse) error {
	return newRenderer(cmd).properties(resp, [][]string{{"Message", resp.Message}})
}
