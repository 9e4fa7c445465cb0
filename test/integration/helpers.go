//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/termii/pkg/termii"
	"github.com/fivetwenty-io/termii/pkg/termiiclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIKey     string
	SenderID   string
	BaseURL    string
	TermiiPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables and a .env
// file in the repository root when present.
func LoadTestConfig() *TestConfig {
	_ = godotenv.Load("../../.env")

	return &TestConfig{
		APIKey:     os.Getenv("TERMII_API_KEY"),
		SenderID:   os.Getenv("TERMII_SENDER_ID"),
		BaseURL:    os.Getenv("TERMII_BASE_URL"),
		TermiiPath: getTermiiPath(),
		Verbose:    os.Getenv("TERMII_VERBOSE") == "true",
	}
}

// getTermiiPath determines the path to the termii binary
func getTermiiPath() string {
	if path := os.Getenv("TERMII_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../termii",
		"./termii",
		"../termii",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "termii"
}

// SkipIfMissingConfig skips test if no API key is configured
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("TERMII_API_KEY not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips test if the CLI has not been built
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	config.SkipIfMissingConfig(t)

	if _, err := exec.LookPath(config.TermiiPath); err != nil {
		t.Skipf("termii binary not found at %s, skipping integration test", config.TermiiPath)
	}
}

// NewClient creates an SDK client for the configured account
func (config *TestConfig) NewClient(t *testing.T) termii.Client {
	t.Helper()

	client, err := termiiclient.New(&termii.Config{
		APIKey:   config.APIKey,
		SenderID: config.SenderID,
		BaseURL:  config.BaseURL,
		Timeout:  30 * time.Second,
	})
	require.NoError(t, err)

	return client
}

// CommandRunner provides utilities for running termii commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a termii command and returns output. The API key is passed
// through the environment so it never appears in process listings.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	// #nosec G204 -- binary path and arguments come from the test itself
	cmd := exec.Command(runner.config.TermiiPath, args...)
	cmd.Env = append(os.Environ(),
		"TERMII_API_KEY="+runner.config.APIKey,
		"TERMII_SENDER_ID="+runner.config.SenderID,
		"TERMII_BASE_URL="+runner.config.BaseURL,
	)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.TermiiPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().Unix())
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	if !json.Valid([]byte(strings.TrimSpace(output))) {
		t.Errorf("Output is not valid JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	var decoded interface{}

	if err := yaml.Unmarshal([]byte(output), &decoded); err != nil || decoded == nil {
		t.Errorf("Output is not valid YAML: %s", output)
	}
}
