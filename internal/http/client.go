package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/termii/internal/constants"
	"github.com/fivetwenty-io/termii/pkg/termii"
)

// Client is the single transport used by every Termii service client. It adds
// the API key to each call, retries failed attempts and classifies errors.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	timeout    time.Duration
	attempts   int
	logger     termii.Logger
	debug      bool
	httpClient *http.Client
	chain      *termii.InterceptorChain
	retry      *retryablehttp.Client
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger. Panics raised by the logger are recovered.
func WithLogger(logger termii.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDebug enables response logging at debug level.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithRetryAttempts sets the total number of attempts per call.
func WithRetryAttempts(attempts int) Option {
	return func(c *Client) {
		if attempts > 0 {
			c.attempts = attempts
		}
	}
}

// WithHTTPClient reuses the transport of an existing client. The client is
// copied; its Timeout is replaced by the configured timeout.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRequestInterceptors appends request interceptors.
func WithRequestInterceptors(interceptors ...termii.RequestInterceptor) Option {
	return func(c *Client) {
		for _, interceptor := range interceptors {
			if interceptor != nil {
				c.chain.AddRequestInterceptor(interceptor)
			}
		}
	}
}

// WithResponseInterceptors appends response interceptors.
func WithResponseInterceptors(interceptors ...termii.ResponseInterceptor) Option {
	return func(c *Client) {
		for _, interceptor := range interceptors {
			if interceptor != nil {
				c.chain.AddResponseInterceptor(interceptor)
			}
		}
	}
}

// NewClient creates a transport for baseURL authenticating with apiKey.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		apiKey:    apiKey,
		userAgent: constants.DefaultUserAgent,
		timeout:   constants.DefaultHTTPTimeout,
		attempts:  constants.DefaultRetryAttempts,
		logger:    termii.NopLogger{},
		chain:     termii.NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.logger = &safeLogger{logger: client.logger}
	client.retry = client.newRetryClient()

	return client
}

func (c *Client) newRetryClient() *retryablehttp.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = nil
	retryClient.RetryMax = c.attempts - 1
	retryClient.RetryWaitMin = 0
	retryClient.RetryWaitMax = 0
	retryClient.Backoff = func(_, _ time.Duration, _ int, _ *http.Response) time.Duration {
		return 0
	}
	retryClient.CheckRetry = retryablehttp.DefaultRetryPolicy
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.RequestLogHook = c.logAttempt

	if c.httpClient != nil {
		httpClient := *c.httpClient
		retryClient.HTTPClient = &httpClient
	}

	retryClient.HTTPClient.Timeout = c.timeout

	return retryClient
}

// Request is one logical call. Payload must encode to a JSON object, or be nil.
type Request struct {
	Method  string
	Path    string
	Payload interface{}
	Headers map[string]string
}

// Response is the outcome of a successful call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	Attempts   int
}

// Get issues a GET with payload encoded as the query string.
func (c *Client) Get(ctx context.Context, path string, payload interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Payload: payload})
}

// Post issues a POST with payload encoded as a JSON body.
func (c *Client) Post(ctx context.Context, path string, payload interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Payload: payload})
}

// callState follows one logical call through its retry attempts.
type callState struct {
	method   string
	url      string
	payload  map[string]interface{}
	attempts int
}

type callStateKey struct{}

// Do performs req, retrying transport failures, 429 and 5xx responses until the
// configured number of attempts is used up.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, termii.ErrRequestRequired
	}

	payload, err := preparePayload(req.Payload)
	if err != nil {
		return nil, err
	}

	interceptReq := &termii.Request{
		Method:   req.Method,
		Path:     req.Path,
		Headers:  c.defaultHeaders(req.Method),
		Payload:  payload,
		Metadata: make(map[string]interface{}),
	}

	for key, value := range req.Headers {
		interceptReq.Headers.Set(key, value)
	}

	err = c.chain.ExecuteRequestInterceptors(ctx, interceptReq)
	if err != nil {
		return nil, err
	}

	if interceptReq.Payload == nil {
		interceptReq.Payload = make(map[string]interface{})
	}

	interceptReq.Payload[constants.APIKeyField] = c.apiKey

	state := &callState{
		method:  interceptReq.Method,
		url:     c.buildURL(interceptReq.Path),
		payload: maskPayload(interceptReq.Payload),
	}

	httpReq, err := c.buildRequest(context.WithValue(ctx, callStateKey{}, state), interceptReq, state.url)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	httpResp, doErr := c.retry.Do(httpReq)
	duration := time.Since(start)

	resp, callErr := c.classify(state, httpResp, doErr)

	final := &termii.Response{
		Attempts: state.attempts,
		Duration: duration,
		Error:    callErr,
	}

	if resp != nil {
		final.StatusCode = resp.StatusCode
		final.Headers = resp.Headers
		final.Body = resp.Body
	} else {
		apiErr := &termii.APIError{}
		if errors.As(callErr, &apiErr) {
			final.StatusCode = apiErr.StatusCode
		}
	}

	interceptErr := c.chain.ExecuteResponseInterceptors(ctx, interceptReq, final)

	if callErr != nil {
		return nil, callErr
	}

	if interceptErr != nil {
		return nil, interceptErr
	}

	return resp, nil
}

func (c *Client) defaultHeaders(method string) http.Header {
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	headers.Set("User-Agent", c.userAgent)
	headers.Set(constants.RequestIDHeader, uuid.NewString())

	if method != http.MethodGet {
		headers.Set("Content-Type", "application/json")
	}

	return headers
}

func (c *Client) buildURL(path string) string {
	return c.baseURL + "/" + strings.TrimPrefix(path, "/")
}

func (c *Client) buildRequest(ctx context.Context, req *termii.Request, rawURL string) (*retryablehttp.Request, error) {
	var body interface{}

	if req.Method == http.MethodGet {
		query, err := encodeQuery(req.Payload)
		if err != nil {
			return nil, err
		}

		rawURL += "?" + query
	} else {
		encoded, err := json.Marshal(req.Payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		body = encoded
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range req.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	return httpReq, nil
}

// classify turns the final attempt into a response or a classified error.
func (c *Client) classify(state *callState, httpResp *http.Response, doErr error) (*Response, error) {
	if httpResp != nil && doErr != nil {
		_ = httpResp.Body.Close()
		httpResp = nil
	}

	if httpResp == nil {
		if doErr == nil {
			doErr = termii.ErrTransportFailure
		}

		transportErr := &termii.TransportError{
			Method:   state.method,
			URL:      state.url,
			Attempts: state.attempts,
			Err:      doErr,
		}

		c.logFailure(state, transportErr)

		return nil, transportErr
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		transportErr := &termii.TransportError{
			Method:   state.method,
			URL:      state.url,
			Attempts: state.attempts,
			Err:      fmt.Errorf("reading response body: %w", err),
		}

		c.logFailure(state, transportErr)

		return nil, transportErr
	}

	if c.debug {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"context":     constants.LogContext,
			"method":      state.method,
			"url":         state.url,
			"status_code": httpResp.StatusCode,
			"attempts":    state.attempts,
		})
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		apiErr := termii.NewAPIError(httpResp.StatusCode, termii.ParseErrorMessage(body))

		c.logFailure(state, apiErr)

		return nil, apiErr
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		Attempts:   state.attempts,
	}, nil
}

// logAttempt runs before every attempt, including retries.
func (c *Client) logAttempt(_ retryablehttp.Logger, req *http.Request, _ int) {
	state, ok := req.Context().Value(callStateKey{}).(*callState)
	if !ok {
		return
	}

	state.attempts++

	c.logger.Log(fmt.Sprintf("[%s] %s %s", constants.LogContext, state.method, state.url), map[string]interface{}{
		"context":    constants.LogContext,
		"method":     state.method,
		"url":        state.url,
		"payload":    state.payload,
		"attempt":    state.attempts,
		"request_id": req.Header.Get(constants.RequestIDHeader),
	})
}

func (c *Client) logFailure(state *callState, err error) {
	c.logger.Error(fmt.Sprintf("[%s] Error on %s %s", constants.LogContext, state.method, state.url), map[string]interface{}{
		"context":  constants.LogContext,
		"method":   state.method,
		"url":      state.url,
		"attempts": state.attempts,
		"error":    err,
	})
}

// preparePayload copies payload into a fresh map. A caller-supplied api_key is
// rejected rather than overwritten.
func preparePayload(payload interface{}) (map[string]interface{}, error) {
	result := make(map[string]interface{})

	if payload == nil {
		return result, nil
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	if bytes.Equal(bytes.TrimSpace(encoded), []byte("null")) {
		return result, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()

	err = decoder.Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", termii.ErrInvalidPayload, err)
	}

	if _, ok := result[constants.APIKeyField]; ok {
		return nil, fmt.Errorf("%w: %s", termii.ErrReservedField, constants.APIKeyField)
	}

	return result, nil
}

func maskPayload(payload map[string]interface{}) map[string]interface{} {
	masked := make(map[string]interface{}, len(payload))
	for key, value := range payload {
		masked[key] = value
	}

	if _, ok := masked[constants.APIKeyField]; ok {
		masked[constants.APIKeyField] = constants.MaskedSecret
	}

	return masked
}

func encodeQuery(payload map[string]interface{}) (string, error) {
	values := url.Values{}

	for key, value := range payload {
		switch typed := value.(type) {
		case nil:
			continue
		case string:
			values.Set(key, typed)
		case json.Number:
			values.Set(key, typed.String())
		case bool:
			values.Set(key, strconv.FormatBool(typed))
		default:
			encoded, err := json.Marshal(typed)
			if err != nil {
				return "", fmt.Errorf("encoding query parameter %s: %w", key, err)
			}

			values.Set(key, string(encoded))
		}
	}

	return values.Encode(), nil
}
