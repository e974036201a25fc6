package exchange

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog"

	"remitano/internal/signer"
	"remitano/internal/transport"
)

// apiPrefix is prepended to every request path; it participates in the
// signed request URI.
const apiPrefix = "/api/v1/"

// Params holds query parameters for a request.
type Params map[string]any

// Client is a signed REST client for the Remitano API. It holds the
// credentials and base URL, carries no mutable state between calls,
// and is safe for concurrent use.
type Client struct {
	config    *Config
	signer    *signer.Signer
	transport *transport.Client
	logger    zerolog.Logger
}

// Option is a functional option for configuring the Client.
type Option func(*Options)

// Options holds optional collaborators for the Client.
type Options struct {
	Logger zerolog.Logger
}

// WithLogger returns an option that sets the logger for the client.
// Without it the client stays silent; observability belongs to the caller.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// New creates a Client from the given configuration and options.
// The configuration is validated; a missing or incomplete credential
// pair fails with a configuration-typed error.
func New(config *Config, opts ...Option) (*Client, error) {
	if config == nil {
		return nil, NewAPIError(ErrorTypeConfiguration, "config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, NewAPIError(ErrorTypeConfiguration, fmt.Sprintf("validate config: %v", err))
	}

	options := &Options{
		Logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	tr, err := transport.NewClient(&transport.Config{
		BaseURL: config.BaseURL,
		Timeout: config.Timeout,
		Headers: map[string]string{
			"Accept":       "application/json",
			"Content-Type": "application/json",
			"User-Agent":   config.UserAgent,
		},
	}, options.Logger)
	if err != nil {
		return nil, NewAPIError(ErrorTypeConfiguration, fmt.Sprintf("create transport: %v", err))
	}

	return &Client{
		config:    config,
		signer:    signer.New(config.Credentials.Secret),
		transport: tr,
		logger:    options.Logger,
	}, nil
}

// Do executes one signed request/response cycle: it captures a fresh
// Date nonce, signs the canonical string for exactly the bytes and URI
// being dispatched, sends the request, and decodes the JSON response
// into out. Pass a nil out to discard the response body.
//
// Each call is independent; nothing is cached and nothing is retried.
func (c *Client) Do(ctx context.Context, method, path string, query Params, body any, out any) error {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return NewAPIError(ErrorTypeConfiguration, fmt.Sprintf("unsupported http method: %s", method))
	}

	payload, err := signer.Payload(body)
	if err != nil {
		return NewAPIError(ErrorTypeSigning, err.Error())
	}

	contentMD5 := signer.ContentMD5(payload)
	date := time.Now().UTC().Format(http.TimeFormat)
	uri := requestURI(path, query)
	signature := c.signer.Sign(signer.CanonicalString(method, contentMD5, uri, date))

	req, err := c.transport.Request()
	if err != nil {
		return ErrClientClosed
	}

	req.SetContext(ctx)
	req.SetHeader("Content-MD5", contentMD5)
	req.SetHeader("Date", date)
	req.SetHeader("Authorization", signer.Authorization(c.config.Credentials.Key, signature))
	if len(payload) > 0 {
		req.SetBody(payload)
	}

	c.logger.Debug().
		Str("method", method).
		Str("uri", uri).
		Msg("signed request")

	resp, err := c.transport.Execute(req, method, uri)
	if err != nil {
		return NewAPIError(ErrorTypeTransport, fmt.Sprintf("%s %s: %v", method, uri, err))
	}

	if !resp.IsSuccess() {
		return NewHTTPStatusError(resp.StatusCode(), string(resp.Bytes()))
	}

	if out == nil {
		return nil
	}

	if err := sonic.Unmarshal(resp.Bytes(), out); err != nil {
		return NewDeserializationError(string(resp.Bytes()), err)
	}

	return nil
}

// Close releases the underlying HTTP transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// Request executes a signed call and decodes the response body into T.
// It is a generic convenience over Client.Do for callers that want the
// result by value.
func Request[T any](ctx context.Context, c *Client, method, path string, query Params, body any) (T, error) {
	var out T
	if err := c.Do(ctx, method, path, query, body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// requestURI renders the exact path and query that participate in the
// signature. Query keys are encoded in sorted order so the signed URI
// matches the one dispatched byte for byte.
func requestURI(path string, query Params) string {
	uri := apiPrefix + strings.TrimPrefix(path, "/")
	if len(query) == 0 {
		return uri
	}

	values := url.Values{}
	for k, v := range query {
		values.Set(k, paramString(v))
	}
	return uri + "?" + values.Encode()
}

func paramString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
