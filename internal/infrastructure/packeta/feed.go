package packeta

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/packetery/backend/internal/domain/carrier"
	"github.com/packetery/backend/internal/domain/integration"
	"go.uber.org/zap"
)

// FeedClient downloads the carrier list, it implements carrier.Feed
type FeedClient struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewFeedClient creates a feed client
func NewFeedClient(config *Config, logger *zap.Logger) (*FeedClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &FeedClient{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		logger:     logger.Named("carrier_feed"),
	}, nil
}

var _ carrier.Feed = (*FeedClient)(nil)

// feedResponse mirrors branch.json. Every scalar is sent as a string.
type feedResponse struct {
	Carriers []feedCarrier `json:"carriers"`
}

type feedCarrier struct {
	ID                    string    `json:"id"`
	Name                  string    `json:"name"`
	Country               string    `json:"country"`
	Currency              string    `json:"currency"`
	PickupPoints          feedBool  `json:"pickupPoints"`
	APIAllowed            feedBool  `json:"apiAllowed"`
	SeparateHouseNumber   feedBool  `json:"separateHouseNumber"`
	CustomsDeclarations   feedBool  `json:"customsDeclarations"`
	RequiresEmail         feedBool  `json:"requiresEmail"`
	RequiresPhone         feedBool  `json:"requiresPhone"`
	RequiresSize          feedBool  `json:"requiresSize"`
	DisallowsCOD          feedBool  `json:"disallowsCod"`
	HasCarrierDirectLabel feedBool  `json:"hasCarrierDirectLabel"`
	MaxWeight             feedFloat `json:"maxWeight"`
}

// feedBool accepts "true"/"false" strings as well as JSON booleans
type feedBool bool

func (b *feedBool) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	switch strings.ToLower(s) {
	case "true", "1":
		*b = true
	case "false", "0", "", "null":
		*b = false
	default:
		return fmt.Errorf("invalid boolean %q", s)
	}
	return nil
}

// feedFloat accepts numeric strings as well as JSON numbers
type feedFloat float64

func (f *feedFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*f = feedFloat(v)
	return nil
}

// Fetch downloads and validates the feed. An empty or malformed feed is
// rejected as a whole so a broken download never deletes the catalog.
func (f *FeedClient) Fetch(ctx context.Context, apiKey string) ([]carrier.Carrier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: api key is required", integration.ErrFeedUnavailable)
	}

	endpoint := strings.TrimRight(f.config.FeedBaseURL, "/") + "/" + url.PathEscape(apiKey) + "/branch.json?address-delivery"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("carrier feed: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", integration.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.config.MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("carrier feed: failed to read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d", integration.ErrFeedUnavailable, resp.StatusCode)
	}

	var feed feedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("%w: %v", integration.ErrInvalidFeed, err)
	}
	if len(feed.Carriers) == 0 {
		return nil, fmt.Errorf("%w: no carriers", integration.ErrInvalidFeed)
	}

	carriers := make([]carrier.Carrier, 0, len(feed.Carriers))
	for _, fc := range feed.Carriers {
		c, err := fc.toCarrier()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", integration.ErrInvalidFeed, err)
		}
		carriers = append(carriers, c)
	}

	f.logger.Debug("Carrier feed downloaded", zap.Int("carriers", len(carriers)))
	return carriers, nil
}

func (fc feedCarrier) toCarrier() (carrier.Carrier, error) {
	id, err := strconv.Atoi(strings.TrimSpace(fc.ID))
	if err != nil {
		return carrier.Carrier{}, fmt.Errorf("carrier id %q is not numeric", fc.ID)
	}
	c := carrier.Carrier{
		ID:                    id,
		Name:                  strings.TrimSpace(fc.Name),
		IsPickupPoints:        bool(fc.PickupPoints),
		HasCarrierDirectLabel: bool(fc.HasCarrierDirectLabel),
		SeparateHouseNumber:   bool(fc.SeparateHouseNumber),
		CustomsDeclarations:   bool(fc.CustomsDeclarations),
		RequiresEmail:         bool(fc.RequiresEmail),
		RequiresPhone:         bool(fc.RequiresPhone),
		RequiresSize:          bool(fc.RequiresSize),
		DisallowsCOD:          bool(fc.DisallowsCOD),
		Country:               strings.ToLower(strings.TrimSpace(fc.Country)),
		Currency:              strings.ToUpper(strings.TrimSpace(fc.Currency)),
		MaxWeight:             float64(fc.MaxWeight),
	}
	if err := c.Validate(); err != nil {
		return carrier.Carrier{}, err
	}
	return c, nil
}
