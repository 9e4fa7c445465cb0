// Package termii provides types, interfaces, and helpers for working with the
// Termii messaging API.
//
// # Overview
//
// The termii package defines the request and response types (e.g.,
// SendMessageRequest, SendTokenResponse, Phonebook) and the interfaces for the
// service clients (MessagingClient, TokensClient, InsightsClient,
// ContactsClient, CampaignsClient, ConversationsClient, SenderIDsClient). A
// concrete implementation is provided by the termiiclient package, which
// normalizes configuration and wires the transport. Most consumers should
// import termiiclient to construct a client and then use the interfaces here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/termii/pkg/termii"
//	  "github.com/fivetwenty-io/termii/pkg/termiiclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := termiiclient.New(&termii.Config{APIKey: "key", SenderID: "Acme"})
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Messaging().Send(ctx, &termii.SendMessageRequest{
//	    To:  "2348012345678",
//	    SMS: "Hello",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = resp
//	}
//
// # Errors
//
// Non-2xx responses are returned as *APIError and calls that never received a
// response as *TransportError. Both work with errors.Is against the sentinel
// errors (ErrUnauthorized, ErrInsufficientBalance, ErrNotFound,
// ErrGeneralFailure, ErrTransportFailure) and with the IsUnauthorized,
// IsInsufficientBalance, IsNotFound and IsTransportFailure helpers.
//
// # Interceptors
//
// RequestInterceptor and ResponseInterceptor hooks run once per call, around
// all retry attempts. HeaderInterceptor, RateLimitInterceptor and
// LoggingResponseInterceptor cover the common cases; the termiiprom package
// provides a Prometheus collector built on the same hooks.
package termii
