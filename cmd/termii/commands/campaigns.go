package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// NewCampaignsCommand creates the campaigns command group.
func NewCampaignsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "campaigns",
		Aliases: []string{"campaign"},
		Short:   "Manage campaigns",
		Long:    "List campaigns, inspect their history and send new campaigns",
	}

	cmd.AddCommand(newCampaignsListCommand())
	cmd.AddCommand(newCampaignsHistoryCommand())
	cmd.AddCommand(newCampaignsSendCommand())

	return cmd
}

func newCampaignsListCommand() *cobra.Command {
	var params termii.ListParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns",
		Long:  "List sent and scheduled campaigns",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			campaigns, err := client.Campaigns().List(cmd.Context(), &params)
			if err != nil {
				return fmt.Errorf("failed to list campaigns: %w", err)
			}

			rows := make([][]string, 0, len(campaigns.Data))
			for _, campaign := range campaigns.Data {
				rows = append(rows, []string{
					campaign.ID,
					campaign.Name,
					campaign.Status,
					strconv.Itoa(campaign.TotalRecipients),
					campaign.DateCreated,
				})
			}

			return newRenderer(cmd).list(campaigns.Data, []string{"ID", "Name", "Status", "Recipients", "Created"}, rows, "No campaigns found")
		},
	}

	registerListFlags(cmd, &params)

	return cmd
}

func newCampaignsHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history CAMPAIGN_ID",
		Short: "Show campaign history",
		Long:  "List the delivery events of a campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			history, err := client.Campaigns().History(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get campaign history: %w", err)
			}

			rows := make([][]string, 0, len(history.Data))
			for _, item := range history.Data {
				rows = append(rows, []string{item.Timestamp, item.Event, item.Details})
			}

			return newRenderer(cmd).list(history.Data, []string{"Timestamp", "Event", "Details"}, rows, "No campaign events found")
		},
	}
}

func newCampaignsSendCommand() *cobra.Command {
	var (
		name         string
		senderID     string
		message      string
		recipients   []string
		phonebookID  string
		channel      string
		messageType  string
		scheduleTime string
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a campaign",
		Long:  "Send a campaign to a phonebook or to an explicit list of recipients",
		RunE: func(cmd *cobra.Command, args []string) error {
			to := splitRecipients(recipients)
			if phonebookID == "" && len(to) == 0 {
				return constants.ErrRecipientsRequired
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Campaigns().Send(cmd.Context(), &termii.SendCampaignRequest{
				CampaignName: name,
				SenderID:     senderID,
				Message:      message,
				Recipients:   to,
				PhonebookID:  phonebookID,
				Channel:      termii.MessageChannel(channel),
				MessageType:  termii.MessageType(messageType),
				ScheduleTime: scheduleTime,
			})
			if err != nil {
				return fmt.Errorf("failed to send campaign: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Campaign ID", orNotAvailable(resp.CampaignID)},
				{"Status", orNotAvailable(resp.Status)},
				{"Message", resp.Message},
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "campaign name")
	cmd.Flags().StringVar(&senderID, "from", "", "sender ID (defaults to the configured sender)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "message text")
	cmd.Flags().StringSliceVar(&recipients, "to", nil, "recipient phone numbers (ignored with --phonebook)")
	cmd.Flags().StringVar(&phonebookID, "phonebook", "", "phonebook ID to send to")
	cmd.Flags().StringVar(&channel, "channel", string(termii.ChannelGeneric), "channel (generic, dnd, whatsapp)")
	cmd.Flags().StringVar(&messageType, "type", string(termii.MessageTypePlain), "message type (plain, unicode)")
	cmd.Flags().StringVar(&scheduleTime, "schedule", "", "schedule time, e.g. 2026-01-02 15:04")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}
