package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/termii/pkg/termii"
)

// NewTokenCommand creates the token command group.
func NewTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "token",
		Aliases: []string{"otp"},
		Short:   "Issue and verify one-time pins",
		Long:    "Send one-time pins over SMS, WhatsApp or voice, verify them, or generate in-app pins",
	}

	cmd.AddCommand(newTokenSendCommand())
	cmd.AddCommand(newTokenVerifyCommand())
	cmd.AddCommand(newTokenInAppCommand())

	return cmd
}

type pinOptions struct {
	attempts   int
	timeToLive int
	length     int
	pinType    string
}

func (o *pinOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.attempts, "pin-attempts", 0, "number of verification attempts allowed")
	cmd.Flags().IntVar(&o.timeToLive, "pin-ttl", 0, "pin lifetime in minutes")
	cmd.Flags().IntVar(&o.length, "pin-length", 0, "pin length")
	cmd.Flags().StringVar(&o.pinType, "pin-type", "", "pin type (NUMERIC, ALPHANUMERIC)")
}

func newTokenSendCommand() *cobra.Command {
	var (
		to          string
		from        string
		channel     string
		messageType string
		text        string
		placeholder string
		code        string
		pin         pinOptions
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a one-time pin",
		Long:  "Send a one-time pin over the dnd, sms, whatsapp or voice channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Tokens().Send(cmd.Context(), &termii.SendTokenRequest{
				MessageType:    termii.PinType(messageType),
				To:             to,
				From:           from,
				Channel:        termii.TokenChannel(channel),
				Code:           code,
				PinAttempts:    pin.attempts,
				PinTimeToLive:  pin.timeToLive,
				PinLength:      pin.length,
				PinType:        termii.PinType(pin.pinType),
				PinPlaceholder: placeholder,
				MessageText:    text,
			})
			if err != nil {
				return fmt.Errorf("failed to send token: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Pin ID", resp.PinID},
				{"To", resp.To},
				{"Status", orNotAvailable(resp.SMSStatus)},
			})
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "recipient phone number")
	cmd.Flags().StringVar(&from, "from", "", "sender ID (defaults to the configured sender)")
	cmd.Flags().StringVar(&channel, "channel", string(termii.TokenChannelSMS), "delivery channel (dnd, sms, whatsapp, voice)")
	cmd.Flags().StringVar(&messageType, "message-type", string(termii.PinTypeNumeric), "message type (NUMERIC, ALPHANUMERIC)")
	cmd.Flags().StringVarP(&text, "message", "m", "", "message text containing the placeholder")
	cmd.Flags().StringVar(&placeholder, "placeholder", "", "placeholder replaced by the pin, e.g. < 1234 >")
	cmd.Flags().StringVar(&code, "code", "", "pin to speak on the voice channel")
	pin.register(cmd)
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newTokenVerifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify PIN_ID PIN",
		Short: "Verify a one-time pin",
		Long:  "Check a pin against a previously issued pin ID",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Tokens().Verify(cmd.Context(), &termii.VerifyTokenRequest{
				PinID: args[0],
				Pin:   args[1],
			})
			if err != nil {
				return fmt.Errorf("failed to verify token: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Pin ID", resp.PinID},
				{"Verified", formatBool(resp.Verified)},
				{"MSISDN", orNotAvailable(resp.MSISDN)},
				{"Attempts Left", strconv.Itoa(resp.AttemptsLeft)},
			})
		},
	}
}

func newTokenInAppCommand() *cobra.Command {
	var (
		phoneNumber string
		pin         pinOptions
	)

	cmd := &cobra.Command{
		Use:   "in-app",
		Short: "Generate an in-app pin",
		Long:  "Generate a pin that is returned to the caller instead of being delivered",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			resp, err := client.Tokens().InApp(cmd.Context(), &termii.InAppTokenRequest{
				PhoneNumber:   phoneNumber,
				PinAttempts:   pin.attempts,
				PinTimeToLive: pin.timeToLive,
				PinLength:     pin.length,
				PinType:       termii.PinType(pin.pinType),
			})
			if err != nil {
				return fmt.Errorf("failed to generate token: %w", err)
			}

			return newRenderer(cmd).properties(resp, [][]string{
				{"Pin ID", resp.PinID},
				{"OTP", resp.OTP},
				{"Phone Number", orNotAvailable(resp.PhoneNumber)},
			})
		},
	}

	cmd.Flags().StringVar(&phoneNumber, "phone-number", "", "phone number the pin is bound to")
	pin.register(cmd)

	return cmd
}
