package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/termii/pkg/termii"
)

// NewSenderIDsCommand creates the sender-ids command group.
func NewSenderIDsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sender-ids",
		Aliases: []string{"sender-id", "senders"},
		Short:   "Manage sender IDs",
		Long:    "List registered sender IDs and request new ones",
	}

	cmd.AddCommand(newSenderIDsListCommand())
	cmd.AddCommand(newSenderIDsRequestCommand())

	return cmd
}

func newSenderIDsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List sender IDs",
		Long:  "List registered and pending sender IDs",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			senderIDs, err := client.SenderIDs().List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list sender IDs: %w", err)
			}

			rows := make([][]string, 0, len(senderIDs.Data))
			for _, entry := range senderIDs.Data {
				rows = append(rows, []string{entry.SenderID, entry.Status, entry.Company, entry.Usecase, entry.CreatedAt})
			}

			return newRenderer(cmd).list(senderIDs.Data,
				[]string{"Sender ID", "Status", "Company", "Use Case", "Created"}, rows, "No sender IDs found")
		},
	}
}

func newSenderIDsRequestCommand() *cobra.Command {
	var (
		usecase string
		company string
	)

	cmd := &cobra.Command{
		Use:   "request SENDER_ID",
		Short: "Request a sender ID",
		Long:  "Submit a new sender ID for approval",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.SenderIDs().Request(cmd.Context(), &termii.SenderIDRequest{
				SenderID: args[0],
				Usecase:  usecase,
				Company:  company,
			})
			if err != nil {
				return fmt.Errorf("failed to request sender ID: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Sender ID", orNotAvailable(resp.SenderID)},
				{"Status", orNotAvailable(resp.Status)},
				{"Message", resp.Message},
			})
		},
	}

	cmd.Flags().StringVar(&usecase, "usecase", "", "sample message describing the use case")
	cmd.Flags().StringVar(&company, "company", "", "company name")
	_ = cmd.MarkFlagRequired("usecase")
	_ = cmd.MarkFlagRequired("company")

	return cmd
}
