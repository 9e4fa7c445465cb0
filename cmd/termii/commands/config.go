package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/termii/internal/constants"
)

// Config represents the CLI configuration file.
type Config struct {
	APIKey        string        `json:"api_key,omitempty"        yaml:"api_key,omitempty"`
	SenderID      string        `json:"sender_id,omitempty"      yaml:"sender_id,omitempty"`
	BaseURL       string        `json:"base_url,omitempty"       yaml:"base_url,omitempty"`
	Timeout       time.Duration `json:"timeout,omitempty"        yaml:"timeout,omitempty"`
	RetryAttempts int           `json:"retry_attempts,omitempty" yaml:"retry_attempts,omitempty"`
	RateLimit     float64       `json:"rate_limit,omitempty"     yaml:"rate_limit,omitempty"`
	Output        string        `json:"output,omitempty"         yaml:"output,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the Termii CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigClearCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current CLI configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.APIKey = maskSecret(config.APIKey)

			return newRenderer(cmd).properties(config, [][]string{
				{"API Key", orNotAvailable(config.APIKey)},
				{"Sender ID", orNotAvailable(config.SenderID)},
				{"Base URL", orNotAvailable(config.BaseURL)},
				{"Timeout", config.Timeout.String()},
				{"Retry Attempts", strconv.Itoa(config.RetryAttempts)},
				{"Rate Limit", formatFloat(config.RateLimit)},
				{"Output", orNotAvailable(config.Output)},
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: api_key, sender_id, base_url, timeout, retry_attempts, rate_limit, output",
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]

			config := loadConfig()

			err := setConfigValue(config, key, value)
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			if key == "api_key" {
				value = maskSecret(value)
			}

			return outputConfigUpdateResult(cmd, "Set", key, value)
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			config := loadConfig()

			err := unsetConfigValue(config, key)
			if err != nil {
				return err
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			return outputConfigUpdateResult(cmd, "Unset", key, "")
		},
	}
}

func newConfigClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear configuration",
		Long:  "Remove the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(configFile)
			if err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config file: %w", err)
			}

			return outputConfigUpdateResult(cmd, "Cleared", "all configuration", "")
		},
	}
}

func loadConfig() *Config {
	return &Config{
		APIKey:        viper.GetString("api_key"),
		SenderID:      viper.GetString("sender_id"),
		BaseURL:       viper.GetString("base_url"),
		Timeout:       viper.GetDuration("timeout"),
		RetryAttempts: viper.GetInt("retry_attempts"),
		RateLimit:     viper.GetFloat64("rate_limit"),
		Output:        viper.GetString("output"),
	}
}

func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".termii", "config.yml"), nil
}

func saveConfig(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "api_key":
		value = strings.TrimSpace(value)
		if value == "" {
			return constants.ErrEmptyAPIKey
		}

		config.APIKey = value
	case "sender_id":
		config.SenderID = value
	case "base_url":
		config.BaseURL = value
	case "timeout":
		timeout, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", value, err)
		}

		config.Timeout = timeout
	case "retry_attempts":
		attempts, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid retry_attempts %q: %w", value, err)
		}

		config.RetryAttempts = attempts
	case "rate_limit":
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid rate_limit %q: %w", value, err)
		}

		config.RateLimit = rate
	case "output":
		switch value {
		case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrUnknownOutput, value)
		}
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func unsetConfigValue(config *Config, key string) error {
	switch key {
	case "api_key":
		config.APIKey = ""
	case "sender_id":
		config.SenderID = ""
	case "base_url":
		config.BaseURL = ""
	case "timeout":
		config.Timeout = 0
	case "retry_attempts":
		config.RetryAttempts = 0
	case "rate_limit":
		config.RateLimit = 0
	case "output":
		config.Output = ""
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

func outputConfigUpdateResult(cmd *cobra.Command, action, key, value string) error {
	result := map[string]string{
		"action": action,
		"key":    key,
	}

	rows := [][]string{{"Action", action}, {"Key", key}}

	if value != "" {
		result["value"] = value
		rows = append(rows, []string{"Value", value})
	}

	return newRenderer(cmd).properties(result, rows)
}
