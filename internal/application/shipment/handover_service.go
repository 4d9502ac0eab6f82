package shipment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/packetery/backend/internal/domain/carrier"
	"github.com/packetery/backend/internal/domain/shared"
	domain "github.com/packetery/backend/internal/domain/shipment"
	"github.com/packetery/backend/internal/infrastructure/storage"
	"github.com/packetery/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// HandoverService renders the list of packets handed over to the courier
type HandoverService struct {
	repo     domain.Repository
	carriers carrier.Repository
	renderer domain.SheetRenderer
	archive  shared.DocumentArchive
	options  OptionsSource
	logger   *zap.Logger
	now      func() time.Time
}

// NewHandoverService creates a new HandoverService
func NewHandoverService(
	repo domain.Repository,
	carriers carrier.Repository,
	renderer domain.SheetRenderer,
	archive shared.DocumentArchive,
	options OptionsSource,
	logger *zap.Logger,
) *HandoverService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HandoverService{
		repo:     repo,
		carriers: carriers,
		renderer: renderer,
		archive:  archive,
		options:  options,
		logger:   logger,
		now:      time.Now,
	}
}

// Generate renders the handover sheet of the submitted orders among orderIDs
func (s *HandoverService) Generate(ctx context.Context, req HandoverRequest) (*HandoverDocument, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, "shipment", "handover", telemetry.SpanAttrOrderCount, len(req.OrderIDs))
	defer span.End()

	shipments, err := s.repo.FindByOrderIDs(ctx, req.OrderIDs)
	if err != nil {
		return nil, err
	}
	opts, err := s.options.Options(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sheet := &domain.HandoverSheet{Sender: opts.Sender, GeneratedAt: now}
	names := make(map[string]string)
	for i := range shipments {
		sh := &shipments[i]
		if !sh.IsSubmitted() {
			continue
		}
		name, ok := names[sh.CarrierID]
		if !ok {
			name, err = s.carrierName(ctx, sh.CarrierID)
			if err != nil {
				return nil, err
			}
			names[sh.CarrierID] = name
		}
		sheet.Rows = append(sheet.Rows, sh.HandoverRow(name))
	}
	if len(sheet.Rows) == 0 {
		return nil, shared.NewDomainError("ORDERS_NOT_SUBMITTED", "None of the selected orders was submitted to Packeta")
	}

	pdf, err := s.renderer.RenderHandoverSheet(ctx, sheet)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	doc := &HandoverDocument{
		FileName:    "packeta_handover_" + now.UTC().Format("20060102_150405") + ".pdf",
		PDF:         pdf,
		PacketCount: len(sheet.Rows),
	}
	key := storage.ArchiveKey("handover", doc.FileName, now)
	if location, err := s.archive.Archive(ctx, key, pdf, "application/pdf"); err != nil {
		s.logger.Warn("Handover sheet not archived", zap.String("key", key), zap.Error(err))
	} else {
		doc.ArchiveURL = location
	}

	telemetry.SetAttributes(span, telemetry.SpanAttrPacketCount, doc.PacketCount)
	s.logger.Info("Handover sheet generated",
		zap.Int("packets", doc.PacketCount),
		zap.Bool("archived", doc.ArchiveURL != ""),
	)
	return doc, nil
}

func (s *HandoverService) carrierName(ctx context.Context, carrierID string) (string, error) {
	if carrier.IsZpointID(carrierID) {
		return carrier.ZpointCarriers()[strings.TrimPrefix(carrierID, "zpoint")].Name, nil
	}
	id, ok := carrier.ParseID(carrierID)
	if !ok {
		return "Packeta pickup points", nil
	}
	c, err := s.carriers.FindByID(ctx, id)
	if errors.Is(err, shared.ErrNotFound) {
		return carrierID, nil
	}
	if err != nil {
		return "", err
	}
	return c.Name, nil
}
