package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// NewSMSCommand creates the sms command group.
func NewSMSCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sms",
		Aliases: []string{"message", "messages"},
		Short:   "Send messages",
		Long:    "Send single, bulk and WhatsApp template messages",
	}

	cmd.AddCommand(newSMSSendCommand())
	cmd.AddCommand(newSMSSendBulkCommand())
	cmd.AddCommand(newSMSSendTemplateCommand())

	return cmd
}

func newSMSSendCommand() *cobra.Command {
	var (
		to      string
		from    string
		message string
		msgType string
		channel string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message",
		Long:  "Send a message to a single recipient",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Messaging().Send(cmd.Context(), &termii.SendMessageRequest{
				To:      to,
				From:    from,
				SMS:     message,
				Type:    termii.MessageType(msgType),
				Channel: termii.MessageChannel(channel),
			})
			if err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}

			return renderSendResult(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient phone number")
	cmd.Flags().StringVar(&from, "from", "", "sender ID (defaults to the configured sender)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message text")
	cmd.Flags().StringVar(&msgType, "type", "", "message type (plain, unicode)")
	cmd.Flags().StringVar(&channel, "channel", "", "channel (generic, dnd, whatsapp)")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newSMSSendBulkCommand() *cobra.Command {
	var (
		to      []string
		from    string
		message string
		msgType string
		channel string
	)

	cmd := &cobra.Command{
		Use:   "send-bulk",
		Short: "Send a message to several recipients",
		Long:  "Send the same message to a list of recipients in one request",
		RunE: func(cmd *cobra.Command, args []string) error {
			recipients := splitRecipients(to)
			if len(recipients) == 0 {
				return constants.ErrRecipientsRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Messaging().SendBulk(cmd.Context(), &termii.SendBulkMessageRequest{
				To:      recipients,
				From:    from,
				SMS:     message,
				Type:    termii.MessageType(msgType),
				Channel: termii.MessageChannel(channel),
			})
			if err != nil {
				return fmt.Errorf("failed to send bulk message: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Message IDs", orNotAvailable(strings.Join(resp.MessageID, ", "))},
				{"Message", resp.Message},
				{"Balance", formatFloat(resp.Balance)},
				{"User", orNotAvailable(resp.User)},
			})
		},
	}

	cmd.Flags().StringSliceVar(&to, "to", nil, "recipient phone numbers (comma separated or repeated)")
	cmd.Flags().StringVar(&from, "from", "", "sender ID (defaults to the configured sender)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message text")
	cmd.Flags().StringVar(&msgType, "type", "", "message type (plain, unicode)")
	cmd.Flags().StringVar(&channel, "channel", "", "channel (generic, dnd, whatsapp)")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

func newSMSSendTemplateCommand() *cobra.Command {
	var (
		to         string
		from       string
		templateID string
		data       []string
	)

	cmd := &cobra.Command{
		Use:   "send-template",
		Short: "Send a WhatsApp template message",
		Long:  "Send a WhatsApp template message with KEY=VALUE template data",
		RunE: func(cmd *cobra.Command, args []string) error {
			templateData, err := parseTemplateData(data)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Messaging().SendWithTemplate(cmd.Context(), &termii.SendTemplateMessageRequest{
				To:         to,
				From:       from,
				TemplateID: templateID,
				Data:       templateData,
			})
			if err != nil {
				return fmt.Errorf("failed to send template message: %w", err)
			}

			return renderSendResult(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient phone number")
	cmd.Flags().StringVar(&from, "from", "", "sender ID (defaults to the configured sender)")
	cmd.Flags().StringVar(&templateID, "template-id", "", "template ID")
	cmd.Flags().StringArrayVar(&data, "data", nil, "template data as KEY=VALUE (repeatable)")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("template-id")

	return cmd
}

func renderSendResult(cmd *cobra.Command, resp *termii.SendMessageResponse) error {
	return newRenderer(cmd).properties(resp, [][]string{
		{"Message ID", orNotAvailable(resp.MessageID)},
		{"Message", resp.Message},
		{"Balance", formatFloat(resp.Balance)},
		{"User", orNotAvailable(resp.User)},
	})
}

func parseTemplateData(pairs []string) (map[string]interface{}, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	data := make(map[string]interface{}, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidTemplateData, pair)
		}

		data[strings.TrimSpace(key)] = value
	}

	return data, nil
}
