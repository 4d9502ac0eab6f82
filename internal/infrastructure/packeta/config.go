package packeta

import (
	"errors"
	"time"
)

const (
	// ProductionSOAPEndpoint is the live Packeta SOAP endpoint
	ProductionSOAPEndpoint = "https://www.zasilkovna.cz/api/soap"
	// ProductionFeedBaseURL is the base of the carrier feed
	ProductionFeedBaseURL = "https://www.zasilkovna.cz/api/v4"

	defaultTimeout         = 30 * time.Second
	defaultMaxResponseSize = 20 * 1024 * 1024
)

var (
	ErrConfigMissingEndpoint = errors.New("packeta: soap endpoint is required")
	ErrConfigMissingFeedURL  = errors.New("packeta: feed base url is required")
)

// Config holds the Packeta API connection settings
type Config struct {
	SOAPEndpoint    string
	FeedBaseURL     string
	Timeout         time.Duration
	MaxResponseSize int64
}

// NewConfig returns a production configuration
func NewConfig() *Config {
	return &Config{
		SOAPEndpoint:    ProductionSOAPEndpoint,
		FeedBaseURL:     ProductionFeedBaseURL,
		Timeout:         defaultTimeout,
		MaxResponseSize: defaultMaxResponseSize,
	}
}

// Validate checks required fields and fills defaults
func (c *Config) Validate() error {
	if c.SOAPEndpoint == "" {
		return ErrConfigMissingEndpoint
	}
	if c.FeedBaseURL == "" {
		return ErrConfigMissingFeedURL
	}
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxResponseSize <= 0 {
		c.MaxResponseSize = defaultMaxResponseSize
	}
	return nil
}
