package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/termii/pkg/termii"
)

// NewConversationsCommand creates the conversations command group.
func NewConversationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "conversations",
		Aliases: []string{"conversation", "conv"},
		Short:   "Manage two-way conversations",
		Long:    "List conversations, mark them read or unread, and reply",
	}

	cmd.AddCommand(newConversationsListCommand())
	cmd.AddCommand(newConversationsMarkCommand())
	cmd.AddCommand(newConversationsReplyCommand())

	return cmd
}

func newConversationsListCommand() *cobra.Command {
	var params termii.ListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List conversations",
		Long:  "List two-way conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			conversations, err := client.Conversations().List(cmd.Context(), &params)
			if err != nil {
				return fmt.Errorf("failed to list conversations: %w", err)
			}

			rows := make([][]string, 0, len(conversations.Data))
			for _, conversation := range conversations.Data {
				rows = append(rows, []string{
					conversation.ID,
					conversation.ContactNumber,
					conversation.LastMessage,
					conversation.LastMessageTimestamp,
					formatBool(conversation.IsRead),
				})
			}

			return newRenderer(cmd).list(conversations.Data,
				[]string{"ID", "Contact", "Last Message", "At", "Read"}, rows, "No conversations found")
		},
	}

	registerListFlags(cmd, &params)

	return cmd
}

func newConversationsMarkCommand() *cobra.Command {
	var unread bool

	cmd := &cobra.Command{
		Use:   "mark CONVERSATION_ID",
		Short: "Mark a conversation read",
		Long:  "Mark a conversation read, or unread with --unread",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Conversations().ToggleRead(cmd.Context(), args[0], &termii.ToggleReadStatusRequest{
				IsRead: !unread,
			})
			if err != nil {
				return fmt.Errorf("failed to update conversation: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Conversation ID", orNotAvailable(resp.ConversationID)},
				{"Read", formatBool(resp.IsRead)},
				{"Message", resp.Message},
			})
		},
	}

	cmd.Flags().BoolVar(&unread, "unread", false, "mark as unread")

	return cmd
}

func newConversationsReplyCommand() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "reply CONVERSATION_ID",
		Short: "Reply to a conversation",
		Long:  "Send a message inside an existing conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Conversations().SendMessage(cmd.Context(), args[0], &termii.SendConversationMessageRequest{
				Message: message,
			})
			if err != nil {
				return fmt.Errorf("failed to send reply: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Message ID", orNotAvailable(resp.MessageID)},
				{"Message", resp.Message},
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "reply text")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
