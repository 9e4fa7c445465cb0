package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/pkg/termii"
	"github.com/fivetwenty-io/termii/pkg/termiiclient"
)

// createClient builds a Termii client from flags, environment and the config file.
func createClient() (termii.Client, error) {
	config, err := clientConfig()
	if err != nil {
		return nil, err
	}

	client, err := termiiclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

func clientConfig() (*termii.Config, error) {
	apiKey := strings.TrimSpace(viper.GetString("api_key"))
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	config := &termii.Config{
		APIKey:        apiKey,
		SenderID:      viper.GetString("sender_id"),
		BaseURL:       viper.GetString("base_url"),
		Timeout:       viper.GetDuration("timeout"),
		RetryAttempts: viper.GetInt("retry_attempts"),
	}

	if rate := viper.GetFloat64("rate_limit"); rate > 0 {
		config.RequestInterceptors = append(config.RequestInterceptors, termii.RateLimitInterceptor(rate, 1))
	}

	if viper.GetBool("verbose") {
		zapLogger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}

		config.Logger = termii.NewZapLogger(zapLogger)
		config.Debug = true
		config.ResponseInterceptors = append(config.ResponseInterceptors, termii.LoggingResponseInterceptor(config.Logger))
	}

	return config, nil
}

// renderer writes a value in the selected output format. The table function
// is used only for table output.
type renderer struct {
	out    io.Writer
	format string
}

func newRenderer(cmd *cobra.Command) *renderer {
	return &renderer{
		out:    cmd.OutOrStdout(),
		format: viper.GetString("output"),
	}
}

func (r *renderer) render(value interface{}, table func(*tablewriter.Table) error) error {
	switch r.format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(r.out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}

		return nil
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(r.out)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(value)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}

		return encoder.Close()
	case constants.FormatTable, "":
		tbl := tablewriter.NewWriter(r.out)

		err := table(tbl)
		if err != nil {
			return err
		}

		err = tbl.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownOutput, r.format)
	}
}

// properties renders key/value pairs as a two column table.
func (r *renderer) properties(value interface{}, rows [][]string) error {
	return r.render(value, func(table *tablewriter.Table) error {
		table.Header("Property", "Value")

		for _, row := range rows {
			err := table.Append(row)
			if err != nil {
				return fmt.Errorf("failed to append row: %w", err)
			}
		}

		return nil
	})
}

// list renders one row per item, or a notice when there are none.
func (r *renderer) list(value interface{}, header []string, rows [][]string, empty string) error {
	if len(rows) == 0 && (r.format == constants.FormatTable || r.format == "") {
		_, err := fmt.Fprintln(r.out, empty)

		return err
	}

	return r.render(value, func(table *tablewriter.Table) error {
		cells := make([]any, len(header))
		for i, cell := range header {
			cells[i] = cell
		}

		table.Header(cells...)

		for _, row := range rows {
			err := table.Append(row)
			if err != nil {
				return fmt.Errorf("failed to append row: %w", err)
			}
		}

		return nil
	})
}

func orNotAvailable(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

func formatBool(value bool) string {
	if value {
		return constants.BooleanTrue
	}

	return constants.BooleanFalse
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// maskSecret keeps the last few characters of a secret for display.
func maskSecret(secret string) string {
	if secret == "" {
		return ""
	}

	if len(secret) <= constants.StringTruncationLimit {
		return constants.MaskedSecret
	}

	return constants.MaskedSecret + secret[len(secret)-constants.StringTruncationLimit:]
}

// splitRecipients accepts comma separated and repeated --to values.
func splitRecipients(values []string) []string {
	var recipients []string

	for _, value := range values {
		for _, part := range strings.Split(value, constants.RecipientSeparator) {
			part = strings.TrimSpace(part)
			if part != "" {
				recipients = append(recipients, part)
			}
		}
	}

	return recipients
}
