package packeta

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/packetery/backend/internal/domain/integration"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
)

const tracerName = "github.com/packetery/backend/internal/infrastructure/packeta"

// Client implements integration.PacketaAPI over the Packeta SOAP endpoint
type Client struct {
	config      *Config
	httpClient  *http.Client
	credentials integration.CredentialsProvider
	observer    CallObserver
	logger      *zap.Logger
}

// CallObserver is told how long each SOAP operation took and which fault,
// if any, it returned
type CallObserver interface {
	RecordAPICall(ctx context.Context, operation string, d time.Duration, fault string)
}

// NewClient creates a SOAP client. The API password is looked up on every
// call so a settings change applies without restart.
func NewClient(config *Config, credentials integration.CredentialsProvider, logger *zap.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		config:      config,
		httpClient:  &http.Client{Timeout: config.Timeout},
		credentials: credentials,
		logger:      logger.Named("packeta"),
	}, nil
}

var _ integration.PacketaAPI = (*Client)(nil)

// WithObserver attaches a call observer, typically the shipping metrics
func (c *Client) WithObserver(o CallObserver) *Client {
	c.observer = o
	return c
}

// CreatePacket submits one packet
func (c *Client) CreatePacket(ctx context.Context, attrs integration.PacketAttributes) (*integration.CreatedPacket, error) {
	password, err := c.password(ctx)
	if err != nil {
		return nil, err
	}

	var resp createPacketResponse
	req := createPacketRequest{APIPassword: password, Attributes: toWireAttributes(attrs)}
	if err := c.call(ctx, "createPacket", req, &resp); err != nil {
		return nil, err
	}
	if resp.Result.ID == "" {
		return nil, fmt.Errorf("%w: createPacket returned no packet id", integration.ErrInvalidResponse)
	}
	return &integration.CreatedPacket{
		ID:          resp.Result.ID,
		Barcode:     resp.Result.Barcode,
		BarcodeText: resp.Result.BarcodeText,
	}, nil
}

// PacketsLabelsPdf returns one PDF with Packeta labels of all packets
func (c *Client) PacketsLabelsPdf(ctx context.Context, ids []string, format string, offset int) ([]byte, error) {
	password, err := c.password(ctx)
	if err != nil {
		return nil, err
	}

	var resp packetsLabelsPdfResponse
	req := packetsLabelsPdfRequest{
		APIPassword: password,
		PacketIDs:   packetIDs{IDs: ids},
		Format:      format,
		Offset:      offset,
	}
	if err := c.call(ctx, "packetsLabelsPdf", req, &resp); err != nil {
		return nil, err
	}
	return decodePDF(resp.Result)
}

// PacketCourierNumber returns the tracking number the external carrier assigned
func (c *Client) PacketCourierNumber(ctx context.Context, packetID string) (string, error) {
	password, err := c.password(ctx)
	if err != nil {
		return "", err
	}

	var resp packetCourierNumberResponse
	req := packetCourierNumberRequest{APIPassword: password, PacketID: packetID}
	if err := c.call(ctx, "packetCourierNumber", req, &resp); err != nil {
		return "", err
	}
	number := strings.TrimSpace(resp.Result)
	if number == "" {
		return "", fmt.Errorf("%w: empty courier number for packet %s", integration.ErrInvalidResponse, packetID)
	}
	return number, nil
}

// PacketsCourierLabelsPdf returns one PDF with carrier labels of all pairs
func (c *Client) PacketsCourierLabelsPdf(ctx context.Context, pairs []integration.PacketCourierPair, format string, offset int) ([]byte, error) {
	password, err := c.password(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]courierPair, 0, len(pairs))
	for _, p := range pairs {
		items = append(items, courierPair{PacketID: p.PacketID, CourierNumber: p.CourierNumber})
	}

	var resp packetsCourierLabelsPdfResponse
	req := packetsCourierLabelsPdfRequest{
		APIPassword: password,
		Pairs:       courierPairList{Items: items},
		Offset:      offset,
		Format:      format,
	}
	if err := c.call(ctx, "packetsCourierLabelsPdf", req, &resp); err != nil {
		return nil, err
	}
	return decodePDF(resp.Result)
}

func (c *Client) password(ctx context.Context) (string, error) {
	password, err := c.credentials.APIPassword(ctx)
	if err != nil {
		return "", fmt.Errorf("packeta: load api password: %w", err)
	}
	return password, nil
}

// call posts one SOAP operation and decodes the response element into out.
// SOAP faults come back as *integration.Fault, transport problems wrap
// integration.ErrPacketaUnavailable.
func (c *Client) call(ctx context.Context, operation string, request, out any) (err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "packeta."+operation)
	start := time.Now()
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		if c.observer != nil {
			fault := ""
			if f, ok := integration.AsFault(err); ok {
				fault = f.Name
			} else if err != nil {
				fault = "transport"
			}
			c.observer.RecordAPICall(ctx, operation, time.Since(start), fault)
		}
	}()

	payload, err := xml.Marshal(newEnvelope(request))
	if err != nil {
		return fmt.Errorf("packeta: encode %s: %w", operation, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.SOAPEndpoint,
		bytes.NewReader(append([]byte(xml.Header), payload...)))
	if err != nil {
		return fmt.Errorf("packeta: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "text/xml; charset=utf-8")
	httpReq.Header.Set("SOAPAction", `"`+operation+`"`)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%w: %v", integration.ErrPacketaUnavailable, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.config.MaxResponseSize))
	if err != nil {
		return fmt.Errorf("packeta: failed to read response: %w", err)
	}

	var env responseEnvelope
	if err := xml.Unmarshal(body, &env); err != nil {
		if resp.StatusCode >= 400 {
			return fmt.Errorf("%w: HTTP %d", integration.ErrPacketaUnavailable, resp.StatusCode)
		}
		return fmt.Errorf("%w: %s: %v", integration.ErrInvalidResponse, operation, err)
	}

	// Faults arrive with HTTP 500, so they are checked before the status
	if env.Body.Fault != nil {
		fault := toFault(env.Body.Fault)
		c.logger.Debug("SOAP fault",
			zap.String("operation", operation),
			zap.String("fault", fault.Name),
			zap.String("message", fault.String),
		)
		return fault
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%w: HTTP %d", integration.ErrPacketaUnavailable, resp.StatusCode)
	}

	if err := xml.Unmarshal(env.Body.Inner, out); err != nil {
		return fmt.Errorf("%w: %s: %v", integration.ErrInvalidResponse, operation, err)
	}
	return nil
}

func toFault(f *soapFault) *integration.Fault {
	fault := &integration.Fault{String: strings.TrimSpace(f.String)}

	se, dec, ok := firstElement(f.Detail.Inner)
	if !ok {
		return fault
	}
	fault.Name = se.Name.Local

	if fault.Name == integration.FaultPacketAttributes {
		var af attributesFault
		if err := dec.DecodeElement(&af, &se); err == nil {
			for _, a := range af.Attributes.Faults {
				fault.Attributes = append(fault.Attributes, integration.AttributeFault{Name: a.Name, Fault: a.Fault})
			}
		}
	}
	return fault
}

func decodePDF(encoded string) ([]byte, error) {
	encoded = strings.Join(strings.Fields(encoded), "")
	if encoded == "" {
		return nil, fmt.Errorf("%w: empty pdf", integration.ErrInvalidResponse)
	}
	pdf, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: pdf is not base64: %v", integration.ErrInvalidResponse, err)
	}
	return pdf, nil
}

func toWireAttributes(a integration.PacketAttributes) packetAttributes {
	w := packetAttributes{
		Number:             a.Number,
		Name:               a.Name,
		Surname:            a.Surname,
		Company:            a.Company,
		Email:              a.Email,
		Phone:              a.Phone,
		AddressID:          a.AddressID,
		Currency:           a.Currency,
		Eshop:              a.Eshop,
		Street:             a.Street,
		HouseNumber:        a.HouseNumber,
		City:               a.City,
		Zip:                a.Zip,
		CarrierPickupPoint: a.CarrierPickupPoint,
	}
	if !a.Value.IsZero() {
		w.Value = a.Value.StringFixed(2)
	}
	if !a.COD.IsZero() {
		w.COD = a.COD.StringFixed(2)
	}
	if a.Weight > 0 {
		w.Weight = strconv.FormatFloat(a.Weight, 'f', -1, 64)
	}
	if a.Size != nil {
		w.Size = &packetSize{Length: a.Size.Length, Width: a.Size.Width, Height: a.Size.Height}
	}
	return w
}
