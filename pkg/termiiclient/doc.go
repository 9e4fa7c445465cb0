// Package termiiclient provides the primary entry point for constructing a
// Termii API client that implements the termii.Client interface.
//
// It normalizes configuration and layers the retrying HTTP transport on top of
// the service interfaces and types defined in the termii package. Most
// applications should import termiiclient to build a client, then use the
// returned termii.Client to reach the service clients, for example
// Messaging(), Tokens(), Contacts(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "time"
//
//	  "github.com/fivetwenty-io/termii/pkg/termii"
//	  "github.com/fivetwenty-io/termii/pkg/termiiclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just an API key.
//	  cli, err := termiiclient.NewWithAPIKey("your-api-key", "Acme")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with explicit transport settings:
//	  cli, err = termiiclient.New(&termii.Config{
//	    APIKey:        "your-api-key",
//	    SenderID:      "Acme",
//	    Timeout:       10 * time.Second,
//	    RetryAttempts: 5,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  balance, err := cli.Insights().GetBalance(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = balance
//	}
//
// # Defaults
//
// BaseURL defaults to https://api.ng.termii.com, Timeout to 30 seconds and
// RetryAttempts to 3. The Config passed to New is copied and never modified.
package termiiclient
