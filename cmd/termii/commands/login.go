package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/termii/internal/constants"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiKey   string
		senderID string
		skipTest bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a Termii API key",
		Long:  "Save an API key to the configuration file after checking it against the account balance endpoint",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				key, err := readAPIKey(cmd)
				if err != nil {
					return err
				}

				apiKey = key
			}

			apiKey = strings.TrimSpace(apiKey)
			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			viper.Set("api_key", apiKey)

			if senderID != "" {
				viper.Set("sender_id", senderID)
			}

			if !skipTest {
				client, err := createClient()
				if err != nil {
					return err
				}

				balance, err := client.Insights().GetBalance(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to verify API key: %w", err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Balance: %s %s\n", formatFloat(balance.User.Balance), balance.User.Currency)
			}

			err := saveConfig(loadConfig())
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Successfully logged in")

			return nil
		},
	}

	cmd.Flags().StringVar(&apiKey, "key", "", "API key (prompted when omitted)")
	cmd.Flags().StringVar(&senderID, "sender", "", "default sender ID to store")
	cmd.Flags().BoolVar(&skipTest, "skip-verify", false, "save the key without calling the API")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		Long:  "Clear the API key from the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = ""

			err := saveConfig(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Successfully logged out")

			return nil
		},
	}
}

func readAPIKey(cmd *cobra.Command) (string, error) {
	fmt.Fprint(cmd.OutOrStdout(), "API key: ")

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		key, err := term.ReadPassword(fd)
		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout())

		return string(key), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	key, err := reader.ReadString('\n')
	if err != nil && key == "" {
		return "", fmt.Errorf("failed to read API key: %w", err)
	}

	return key, nil
}
