package exchange

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// ProductionURL is the default Remitano REST API endpoint.
	ProductionURL = "https://api.remitano.com"

	// defaultTimeout bounds each request round-trip.
	defaultTimeout = 3 * time.Second

	// defaultUserAgent is the browser identity the API expects; the
	// service rejects requests carrying generic client agents.
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:85.0) Gecko/20100101 Firefox/85.0"
)

// Credentials holds the API key pair used to sign requests.
// The pair is immutable once the client is constructed and is never
// logged or serialized.
type Credentials struct {
	// Key is the public API key identifier sent in the Authorization header.
	Key string `json:"-" validate:"required"`
	// Secret is the private key used to sign requests; it never leaves
	// the process.
	Secret string `json:"-" validate:"required"`
}

// Config contains all configuration options for a client.
type Config struct {
	// Credentials are required; construction fails without a complete pair.
	Credentials *Credentials `validate:"required"`

	// BaseURL is the API endpoint requests are dispatched against.
	BaseURL string `validate:"required,url"`

	// Timeout is the maximum duration for each HTTP request.
	Timeout time.Duration `validate:"min=1ms"`

	// UserAgent is sent with every request.
	UserAgent string `validate:"required"`
}

// DefaultConfig returns a Config for the production endpoint with the
// given key pair and a 3 second request timeout.
func DefaultConfig(key, secret string) *Config {
	return &Config{
		Credentials: &Credentials{Key: key, Secret: secret},
		BaseURL:     ProductionURL,
		Timeout:     defaultTimeout,
		UserAgent:   defaultUserAgent,
	}
}

var validate = validator.New()

func (c *Config) Validate() error {
	return validate.Struct(c)
}

// WithBaseURL overrides the API endpoint and returns the config for chaining.
func (c *Config) WithBaseURL(baseURL string) *Config {
	c.BaseURL = baseURL
	return c
}

// WithTimeout sets the request timeout and returns the config for chaining.
func (c *Config) WithTimeout(timeout time.Duration) *Config {
	c.Timeout = timeout
	return c
}

// WithUserAgent sets the User-Agent header and returns the config for chaining.
func (c *Config) WithUserAgent(userAgent string) *Config {
	c.UserAgent = userAgent
	return c
}
