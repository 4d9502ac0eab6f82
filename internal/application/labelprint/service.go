// Package labelprint prints Packeta and carrier labels for the orders
// selected in the admin order list.
package labelprint

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/packetery/backend/internal/application/flash"
	logapp "github.com/packetery/backend/internal/application/packetlog"
	"github.com/packetery/backend/internal/domain/integration"
	"github.com/packetery/backend/internal/domain/packetlog"
	"github.com/packetery/backend/internal/domain/settings"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/packetery/backend/internal/domain/shipment"
	"github.com/packetery/backend/internal/infrastructure/storage"
	"github.com/packetery/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

const (
	selectionKeyPrefix = "packetery_label_print_order_ids_"
	selectionTTL       = time.Hour
)

// Error codes returned by Print
var (
	ErrNoOrdersSelected   = shared.NewDomainError("NO_ORDERS_SELECTED", "No orders were selected for label printing")
	ErrInvalidAPIPassword = shared.NewDomainError("INVALID_API_PASSWORD", "Packeta rejected the API password")
	ErrLabelPrintFailed   = shared.NewDomainError("LABEL_PRINT_FAILED", "Label print failed, more info in the log")
	ErrOrdersNotSubmitted = shared.NewDomainError("ORDERS_NOT_SUBMITTED", "Selected orders were not submitted to Packeta")
)

// OptionsSource loads the stored plugin options
type OptionsSource interface {
	Options(ctx context.Context) (*settings.Options, error)
}

// SelectionKey is the transient holding the selection of userID
func SelectionKey(userID string) string {
	return selectionKeyPrefix + userID
}

// LabelPrintService prints labels of the stored per-user selection
type LabelPrintService struct {
	store           shared.TransientStore
	shipments       shipment.Repository
	api             integration.PacketaAPI
	options         OptionsSource
	flash           *flash.FlashService
	log             *logapp.LogService
	archive         shared.DocumentArchive
	shippingMetrics *telemetry.ShippingMetrics
	logger          *zap.Logger
	now             func() time.Time
}

// NewLabelPrintService creates a new LabelPrintService
func NewLabelPrintService(
	store shared.TransientStore,
	shipments shipment.Repository,
	api integration.PacketaAPI,
	options OptionsSource,
	flashes *flash.FlashService,
	log *logapp.LogService,
	archive shared.DocumentArchive,
	logger *zap.Logger,
) *LabelPrintService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LabelPrintService{
		store:     store,
		shipments: shipments,
		api:       api,
		options:   options,
		flash:     flashes,
		log:       log,
		archive:   archive,
		logger:    logger,
		now:       time.Now,
	}
}

// SetShippingMetrics sets the metrics recorder
func (s *LabelPrintService) SetShippingMetrics(m *telemetry.ShippingMetrics) {
	s.shippingMetrics = m
}

// Select stores the orders userID wants to print, replacing an older selection
func (s *LabelPrintService) Select(ctx context.Context, userID string, req SelectionRequest) error {
	raw, err := json.Marshal(req.OrderIDs)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, SelectionKey(userID), raw, selectionTTL); err != nil {
		return err
	}
	s.logger.Debug("Label print selection stored",
		zap.String("user_id", userID),
		zap.Int("orders", len(req.OrderIDs)),
	)
	return nil
}

// OffsetChoices returns the offset form of the configured label format
func (s *LabelPrintService) OffsetChoices(ctx context.Context, carrierLabels bool) (*OffsetChoicesResponse, error) {
	opts, err := s.options.Options(ctx)
	if err != nil {
		return nil, err
	}
	format := opts.LabelFormatFor(carrierLabels)
	return &OffsetChoicesResponse{
		Format:    format,
		MaxOffset: format.MaxOffset(),
		Choices:   settings.OffsetChoices(format.MaxOffset()),
	}, nil
}

// Print requests the labels of the selection of userID and returns the PDF.
// The selection is consumed once printing was attempted.
func (s *LabelPrintService) Print(ctx context.Context, userID string, req PrintRequest) (*LabelDocument, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "labelprint", "print",
		telemetry.SpanAttrUserID, userID,
		"carrier_labels", req.CarrierLabels,
	)
	defer span.End()

	orderIDs, err := s.selection(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(orderIDs) == 0 {
		s.notify(ctx, userID, flash.TypeInfo, flash.NoOrdersSelected)
		return nil, ErrNoOrdersSelected
	}

	opts, err := s.options.Options(ctx)
	if err != nil {
		return nil, err
	}
	format := opts.LabelFormatFor(req.CarrierLabels)
	offset := req.Offset
	if format.MaxOffset() == 0 {
		offset = 0
	} else if offset < 0 || offset > format.MaxOffset() {
		var verr shared.ValidationError
		verr.Add("offset", "Offset must be between 0 and "+strconv.Itoa(format.MaxOffset()))
		return nil, &verr
	}
	telemetry.SetAttributes(span, telemetry.SpanAttrOrderCount, len(orderIDs), telemetry.SpanAttrLabelFormat, string(format))

	defer func() {
		if err := s.store.Delete(context.WithoutCancel(ctx), SelectionKey(userID)); err != nil {
			s.logger.Warn("Label print selection not cleared", zap.String("user_id", userID), zap.Error(err))
		}
	}()

	orders, err := s.printable(ctx, orderIDs, req.CarrierLabels)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		s.notify(ctx, userID, flash.TypeError, flash.YouSelectedOrdersThatWereNotSubmitted)
		return nil, ErrOrdersNotSubmitted
	}

	var pdf []byte
	if req.CarrierLabels {
		pdf, err = s.printCarrierLabels(ctx, userID, orders, format, offset)
	} else {
		pdf, err = s.printPacketaLabels(ctx, userID, orders, format, offset)
	}
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	doc := &LabelDocument{FileName: format.FileName(), PDF: pdf, PacketCount: len(orders)}
	key := storage.ArchiveKey("labels", doc.FileName, s.now())
	if location, err := s.archive.Archive(ctx, key, pdf, "application/pdf"); err != nil {
		s.logger.Warn("Labels not archived", zap.String("key", key), zap.Error(err))
	} else {
		doc.ArchiveURL = location
	}

	s.shippingMetrics.RecordLabelsPrinted(ctx, doc.PacketCount, string(format), req.CarrierLabels)
	s.logger.Info("Labels printed",
		zap.String("user_id", userID),
		zap.Int("packets", doc.PacketCount),
		zap.String("format", string(format)),
		zap.Bool("carrier_labels", req.CarrierLabels),
	)
	return doc, nil
}

func (s *LabelPrintService) selection(ctx context.Context, userID string) ([]int64, error) {
	raw, err := s.store.Get(ctx, SelectionKey(userID))
	if errors.Is(err, shared.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.logger.Warn("Unreadable label print selection", zap.String("user_id", userID), zap.Error(err))
		return nil, nil
	}
	return ids, nil
}

// printable keeps orders with a packet id, only external carrier ones for carrier labels
func (s *LabelPrintService) printable(ctx context.Context, orderIDs []int64, carrierLabels bool) ([]shipment.Shipment, error) {
	shipments, err := s.shipments.FindByOrderIDs(ctx, orderIDs)
	if err != nil {
		return nil, err
	}
	out := shipments[:0]
	for _, sh := range shipments {
		if !sh.IsSubmitted() {
			continue
		}
		if carrierLabels && !sh.IsExternalCarrier() {
			continue
		}
		out = append(out, sh)
	}
	return out, nil
}

func (s *LabelPrintService) printPacketaLabels(ctx context.Context, userID string, orders []shipment.Shipment, format settings.LabelFormat, offset int) ([]byte, error) {
	packetIDs := make([]string, len(orders))
	for i := range orders {
		packetIDs[i] = orders[i].PacketID
	}

	pdf, err := s.api.PacketsLabelsPdf(ctx, packetIDs, string(format), offset)
	if err != nil {
		s.log.Record(ctx, packetlog.Failure(packetlog.ActionLabelPrint, "Label print failed", err.Error()).
			WithParam("packetIds", strings.Join(packetIDs, ",")).
			WithParam("format", string(format)).
			WithParam("offset", offset))
		return nil, s.printFailed(ctx, userID, err)
	}

	for i := range orders {
		orders[i].MarkLabelPrinted("")
		s.save(ctx, &orders[i])
	}
	s.log.Record(ctx, packetlog.Success(packetlog.ActionLabelPrint, "Labels were printed").
		WithParam("packetIds", strings.Join(packetIDs, ",")))
	return pdf, nil
}

func (s *LabelPrintService) printCarrierLabels(ctx context.Context, userID string, orders []shipment.Shipment, format settings.LabelFormat, offset int) ([]byte, error) {
	pairs := make([]integration.PacketCourierPair, 0, len(orders))
	printed := make([]*shipment.Shipment, 0, len(orders))
	for i := range orders {
		sh := &orders[i]
		number, err := s.api.PacketCourierNumber(ctx, sh.PacketID)
		if err != nil {
			fault, isFault := integration.AsFault(err)
			if isFault && fault.IsWrongPassword() {
				s.notify(ctx, userID, flash.TypeError, flash.PleaseSetProperPassword)
				return nil, ErrInvalidAPIPassword
			}
			if !isFault {
				// the remaining packets would fail the same way
				return nil, s.printFailed(ctx, userID, err)
			}
			s.log.Record(ctx, packetlog.Failure(packetlog.ActionCarrierNumberRetrieving,
				"Carrier tracking number could not be retrieved", err.Error()).
				ForOrder(sh.OrderID).
				WithParam("packetId", sh.PacketID))
			continue
		}
		sh.CarrierNumber = number
		pairs = append(pairs, integration.PacketCourierPair{PacketID: sh.PacketID, CourierNumber: number})
		printed = append(printed, sh)
	}
	if len(pairs) == 0 {
		s.notify(ctx, userID, flash.TypeError, flash.LabelPrintFailedMoreInfoInLog)
		return nil, ErrLabelPrintFailed
	}

	pdf, err := s.api.PacketsCourierLabelsPdf(ctx, pairs, string(format), offset)
	if err != nil {
		s.log.Record(ctx, packetlog.Failure(packetlog.ActionCarrierLabelPrint, "Carrier label print failed", err.Error()).
			WithParam("packetIdsWithCourierNumbers", pairParams(pairs)).
			WithParam("format", string(format)).
			WithParam("offset", offset))
		return nil, s.printFailed(ctx, userID, err)
	}

	for _, sh := range printed {
		sh.MarkLabelPrinted(sh.CarrierNumber)
		s.save(ctx, sh)
	}
	s.log.Record(ctx, packetlog.Success(packetlog.ActionCarrierLabelPrint, "Carrier labels were printed").
		WithParam("packetIdsWithCourierNumbers", pairParams(pairs)))
	return pdf, nil
}

// printFailed flashes the log hint for SOAP faults and passes transport errors through
func (s *LabelPrintService) printFailed(ctx context.Context, userID string, err error) error {
	s.notify(ctx, userID, flash.TypeError, flash.LabelPrintFailedMoreInfoInLog)
	if _, ok := integration.AsFault(err); ok {
		return ErrLabelPrintFailed
	}
	s.logger.Error("Label print request failed", zap.String("user_id", userID), zap.Error(err))
	return err
}

func (s *LabelPrintService) save(ctx context.Context, sh *shipment.Shipment) {
	if err := s.shipments.Save(ctx, sh); err != nil {
		s.logger.Error("Label state not stored",
			zap.Int64("order_id", sh.OrderID),
			zap.String("packet_id", sh.PacketID),
			zap.Error(err),
		)
	}
}

func (s *LabelPrintService) notify(ctx context.Context, userID string, t flash.Type, key string) {
	if err := s.flash.Flash(ctx, userID, t, key); err != nil {
		s.logger.Warn("Flash message not stored", zap.String("user_id", userID), zap.String("message", key), zap.Error(err))
	}
}

func pairParams(pairs []integration.PacketCourierPair) []map[string]string {
	out := make([]map[string]string, len(pairs))
	for i, p := range pairs {
		out[i] = map[string]string{"packetId": p.PacketID, "courierNumber": p.CourierNumber}
	}
	return out
}
