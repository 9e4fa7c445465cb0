package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// NewInsightsCommand creates the insights command group.
func NewInsightsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Inspect account activity",
		Long:  "Read the account balance, number DND status, delivery status and message history",
	}

	cmd.AddCommand(newInsightsBalanceCommand())
	cmd.AddCommand(newInsightsSearchCommand())
	cmd.AddCommand(newInsightsStatusCommand())
	cmd.AddCommand(newInsightsHistoryCommand())

	return cmd
}

func newInsightsBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show account balance",
		Long:  "Display the remaining account balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			balance, err := client.Insights().GetBalance(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get balance: %w", err)
			}

			return newRenderer(cmd).properties(balance, [][]string{
				{"Balance", formatFloat(balance.User.Balance)},
				{"Currency", orNotAvailable(balance.User.Currency)},
			})
		},
	}
}

func newInsightsSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "search PHONE_NUMBER",
		Aliases: []string{"dnd"},
		Short:   "Check a number's DND status",
		Long:    "Look up the network and do-not-disturb status of a phone number",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Insights().Search(cmd.Context(), &termii.SearchNumberRequest{PhoneNumber: args[0]})
			if err != nil {
				return fmt.Errorf("failed to search number: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Number", resp.Number},
				{"Network", orNotAvailable(resp.Network)},
				{"Status", orNotAvailable(resp.Status)},
				{"Ported", orNotAvailable(resp.Ported)},
			})
		},
	}
}

func newInsightsStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status MESSAGE_ID",
		Short: "Show delivery status",
		Long:  "Display the delivery status of a sent message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Insights().GetStatus(cmd.Context(), &termii.GetStatusRequest{MessageID: args[0]})
			if err != nil {
				return fmt.Errorf("failed to get status: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Message ID", resp.MessageID},
				{"Status", orNotAvailable(resp.Status)},
				{"Sender ID", orNotAvailable(resp.SenderID)},
			})
		},
	}
}

func newInsightsHistoryCommand() *cobra.Command {
	var params termii.ListParams

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List message history",
		Long:  "List previously sent and received messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			history, err := client.Insights().GetHistory(cmd.Context(), &params)
			if err != nil {
				return fmt.Errorf("failed to get history: %w", err)
			}

			rows := make([][]string, 0, len(history.Data))
			for _, item := range history.Data {
				rows = append(rows, []string{item.ID, item.Sender, item.Receiver, item.Status, item.Date})
			}

			err = newRenderer(cmd).list(history, []string{"ID", "Sender", "Receiver", "Status", "Date"}, rows, "No messages found")
			if err != nil {
				return err
			}

			printPageHint(cmd, history.Meta)

			return nil
		},
	}

	registerListFlags(cmd, &params)

	return cmd
}

func registerListFlags(cmd *cobra.Command, params *termii.ListParams) {
	cmd.Flags().IntVar(&params.Page, "page", 0, "page number")
	cmd.Flags().IntVar(&params.PerPage, "per-page", constants.StandardPageSize, "results per page")
}

func printPageHint(cmd *cobra.Command, meta termii.PaginationMeta) {
	if newRenderer(cmd).format != constants.FormatTable || meta.LastPage <= 1 {
		return
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nShowing page %d of %d. Use --page to fetch more.\n", meta.CurrentPage, meta.LastPage)
}
