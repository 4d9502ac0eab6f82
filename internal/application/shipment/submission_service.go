package shipment

import (
	"context"
	"errors"
	"strconv"

	logapp "github.com/packetery/backend/internal/application/packetlog"
	"github.com/packetery/backend/internal/domain/carrier"
	"github.com/packetery/backend/internal/domain/integration"
	"github.com/packetery/backend/internal/domain/packetlog"
	"github.com/packetery/backend/internal/domain/settings"
	"github.com/packetery/backend/internal/domain/shared"
	domain "github.com/packetery/backend/internal/domain/shipment"
	"github.com/packetery/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// OptionsSource loads the stored plugin options
type OptionsSource interface {
	Options(ctx context.Context) (*settings.Options, error)
}

// PacketSubmissionService creates Packeta packets for orders
type PacketSubmissionService struct {
	repo            domain.Repository
	carriers        carrier.Repository
	api             integration.PacketaAPI
	options         OptionsSource
	log             *logapp.LogService
	shippingMetrics *telemetry.ShippingMetrics
	logger          *zap.Logger
}

// NewPacketSubmissionService creates a new PacketSubmissionService
func NewPacketSubmissionService(
	repo domain.Repository,
	carriers carrier.Repository,
	api integration.PacketaAPI,
	options OptionsSource,
	log *logapp.LogService,
	logger *zap.Logger,
) *PacketSubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PacketSubmissionService{
		repo:     repo,
		carriers: carriers,
		api:      api,
		options:  options,
		log:      log,
		logger:   logger,
	}
}

// SetShippingMetrics sets the metrics recorder
func (s *PacketSubmissionService) SetShippingMetrics(m *telemetry.ShippingMetrics) {
	s.shippingMetrics = m
}

// Submit sends every order to createPacket on its own. One failed order
// does not stop the others and a rejected order keeps its meta unchanged.
func (s *PacketSubmissionService) Submit(ctx context.Context, req SubmitRequest) (*SubmitResult, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "shipment", "submit", telemetry.SpanAttrOrderCount, len(req.OrderIDs))
	defer span.End()

	opts, err := s.options.Options(ctx)
	if err != nil {
		return nil, err
	}
	if !opts.HasAPIPassword() {
		return nil, shared.ErrNotConfigured
	}

	shipments, err := s.repo.FindByOrderIDs(ctx, req.OrderIDs)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	byOrder := make(map[int64]*domain.Shipment, len(shipments))
	for i := range shipments {
		byOrder[shipments[i].OrderID] = &shipments[i]
	}

	result := &SubmitResult{
		Submitted: []SubmittedPacket{},
		Skipped:   []OrderMessage{},
		Failed:    []OrderMessage{},
	}
	for _, orderID := range req.OrderIDs {
		sh, ok := byOrder[orderID]
		if !ok {
			result.Failed = append(result.Failed, OrderMessage{OrderID: orderID, Message: "Order has no Packeta shipping"})
			continue
		}
		if sh.IsSubmitted() {
			result.Skipped = append(result.Skipped, OrderMessage{OrderID: orderID, Message: "Packet was already submitted"})
			continue
		}
		packet, err := s.submitOne(ctx, sh, opts)
		if err != nil {
			result.Failed = append(result.Failed, OrderMessage{OrderID: orderID, Message: err.Error()})
			continue
		}
		result.Submitted = append(result.Submitted, *packet)
	}

	telemetry.SetAttributes(span,
		telemetry.SpanAttrPacketCount, len(result.Submitted),
		"failed_count", len(result.Failed),
	)
	s.logger.Info("Packet submission finished",
		zap.Int("submitted", len(result.Submitted)),
		zap.Int("skipped", len(result.Skipped)),
		zap.Int("failed", len(result.Failed)),
	)
	return result, nil
}

func (s *PacketSubmissionService) submitOne(ctx context.Context, sh *domain.Shipment, opts *settings.Options) (*SubmittedPacket, error) {
	attrs, err := s.buildAttributes(ctx, sh, opts)
	if err != nil {
		s.logger.Warn("Order cannot be submitted",
			zap.Int64("order_id", sh.OrderID),
			zap.Error(err),
		)
		return nil, err
	}

	created, err := s.api.CreatePacket(ctx, *attrs)
	if err != nil {
		s.shippingMetrics.RecordPacketSubmitted(ctx, false)
		rec := packetlog.Failure(packetlog.ActionPacketSending, "Packet could not be created", err.Error()).
			ForOrder(sh.OrderID)
		for k, v := range attributeParams(attrs) {
			rec.WithParam(k, v)
		}
		s.log.Record(ctx, rec)
		if _, isFault := integration.AsFault(err); !isFault {
			s.logger.Error("createPacket call failed", zap.Int64("order_id", sh.OrderID), zap.Error(err))
		}
		return nil, err
	}

	if err := sh.MarkSubmitted(created.ID); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, sh); err != nil {
		s.logger.Error("Packet created but not stored",
			zap.Int64("order_id", sh.OrderID),
			zap.String("packet_id", created.ID),
			zap.Error(err),
		)
		return nil, err
	}

	s.shippingMetrics.RecordPacketSubmitted(ctx, true)
	s.log.Record(ctx, packetlog.Success(packetlog.ActionPacketSending, "Packet was created").
		ForOrder(sh.OrderID).
		WithParam("packet_id", created.ID))
	return &SubmittedPacket{OrderID: sh.OrderID, PacketID: created.ID, TrackingURL: sh.TrackingURL()}, nil
}

// buildAttributes maps the meta to createPacket and applies the carrier requirements
func (s *PacketSubmissionService) buildAttributes(ctx context.Context, sh *domain.Shipment, opts *settings.Options) (*integration.PacketAttributes, error) {
	number := sh.OrderNumber
	if number == "" {
		number = strconv.FormatInt(sh.OrderID, 10)
	}
	attrs := &integration.PacketAttributes{
		Number:    number,
		Name:      sh.Recipient.Name,
		Surname:   sh.Recipient.Surname,
		Company:   sh.Recipient.Company,
		Email:     sh.Recipient.Email,
		Phone:     sh.Recipient.Phone,
		AddressID: sh.AddressID(),
		Value:     sh.Value,
		COD:       sh.COD,
		Currency:  sh.Currency,
		Weight:    sh.Weight,
		Eshop:     opts.Sender,
	}
	if !sh.Size.IsZero() {
		attrs.Size = &integration.PacketSize{Length: sh.Size.Length, Width: sh.Size.Width, Height: sh.Size.Height}
	}

	if sh.IsPacketaPickupPoint() {
		if sh.Point.ID == "" {
			return nil, errors.New("pickup point is not selected")
		}
		return attrs, nil
	}

	id, _ := carrier.ParseID(sh.CarrierID)
	c, err := s.carriers.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return nil, errors.New("carrier " + sh.CarrierID + " is not available")
	}
	if err != nil {
		return nil, err
	}
	if c.Deleted {
		return nil, errors.New("carrier " + c.Name + " is no longer offered by Packeta")
	}
	if err := checkCarrierRequirements(c, sh); err != nil {
		return nil, err
	}

	if c.IsPickupPoints {
		attrs.CarrierPickupPoint = sh.Point.CarrierPointID
		if attrs.CarrierPickupPoint == "" {
			attrs.CarrierPickupPoint = sh.Point.ID
		}
	} else {
		attrs.Street = sh.Recipient.Street
		attrs.HouseNumber = sh.Recipient.HouseNumber
		attrs.City = sh.Recipient.City
		attrs.Zip = sh.Recipient.Zip
	}
	return attrs, nil
}

func checkCarrierRequirements(c *carrier.Carrier, sh *domain.Shipment) error {
	switch {
	case c.RequiresEmail && sh.Recipient.Email == "":
		return errors.New("carrier " + c.Name + " requires the customer email")
	case c.RequiresPhone && sh.Recipient.Phone == "":
		return errors.New("carrier " + c.Name + " requires the customer phone")
	case c.RequiresSize && !sh.Size.IsComplete():
		return errors.New("carrier " + c.Name + " requires the parcel size")
	case c.DisallowsCOD && sh.HasCOD():
		return errors.New("carrier " + c.Name + " does not accept cash on delivery")
	case !c.AcceptsWeight(sh.Weight):
		return errors.New("parcel weight exceeds the limit of carrier " + c.Name)
	case c.IsPickupPoints && sh.Point.CarrierPointID == "" && sh.Point.ID == "":
		return errors.New("carrier pickup point is not selected")
	}
	return nil
}

// attributeParams is the request as stored in the log, empty fields left out
func attributeParams(a *integration.PacketAttributes) map[string]any {
	params := map[string]any{
		"number":    a.Number,
		"name":      a.Name,
		"surname":   a.Surname,
		"addressId": a.AddressID,
		"value":     a.Value.String(),
		"eshop":     a.Eshop,
		"weight":    a.Weight,
	}
	optional := map[string]string{
		"company":            a.Company,
		"email":              a.Email,
		"phone":              a.Phone,
		"currency":           a.Currency,
		"street":             a.Street,
		"houseNumber":        a.HouseNumber,
		"city":               a.City,
		"zip":                a.Zip,
		"carrierPickupPoint": a.CarrierPickupPoint,
	}
	for k, v := range optional {
		if v != "" {
			params[k] = v
		}
	}
	if a.COD.IsPositive() {
		params["cod"] = a.COD.String()
	}
	if a.Size != nil {
		params["size"] = map[string]int{"length": a.Size.Length, "width": a.Size.Width, "height": a.Size.Height}
	}
	return params
}
