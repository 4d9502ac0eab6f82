package carrier

import (
	"context"
	"errors"
	"sync"
	"time"

	logapp "github.com/packetery/backend/internal/application/packetlog"
	domain "github.com/packetery/backend/internal/domain/carrier"
	"github.com/packetery/backend/internal/domain/packetlog"
	"github.com/packetery/backend/internal/domain/settings"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/packetery/backend/internal/infrastructure/telemetry"
	"go.uber.org/zap"
)

// ErrSyncInProgress is returned when a sync is requested while another one runs
var ErrSyncInProgress = shared.NewDomainError("SYNC_IN_PROGRESS", "Carrier list is already being updated")

// OptionsSource loads the stored plugin options
type OptionsSource interface {
	Options(ctx context.Context) (*settings.Options, error)
}

// CarrierSyncService downloads the carrier feed and mirrors it into the catalog
type CarrierSyncService struct {
	repo            domain.Repository
	feed            domain.Feed
	optionRepo      settings.Repository
	options         OptionsSource
	log             *logapp.LogService
	shippingMetrics *telemetry.ShippingMetrics
	logger          *zap.Logger
	now             func() time.Time

	running sync.Mutex
}

// NewCarrierSyncService creates a new CarrierSyncService
func NewCarrierSyncService(
	repo domain.Repository,
	feed domain.Feed,
	optionRepo settings.Repository,
	options OptionsSource,
	log *logapp.LogService,
	logger *zap.Logger,
) *CarrierSyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CarrierSyncService{
		repo:       repo,
		feed:       feed,
		optionRepo: optionRepo,
		options:    options,
		log:        log,
		logger:     logger,
		now:        time.Now,
	}
}

// SetShippingMetrics sets the metrics recorder
func (s *CarrierSyncService) SetShippingMetrics(m *telemetry.ShippingMetrics) {
	s.shippingMetrics = m
}

// Run downloads the feed, upserts every carrier in it and flags the rest as deleted
// Manual and scheduled runs share the service, only one of them runs at a time.
func (s *CarrierSyncService) Run(ctx context.Context) (*SyncResult, error) {
	if !s.running.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.running.Unlock()

	ctx, span := telemetry.StartServiceSpan(ctx, "carriersync", "run")
	defer span.End()

	result, err := s.run(ctx)
	if err != nil {
		telemetry.RecordError(span, err)
		s.log.Record(ctx, packetlog.Failure(packetlog.ActionCarrierListUpdate,
			"Carrier list could not be updated", err.Error()))
		s.logger.Error("Carrier sync failed", zap.Error(err))
		return nil, err
	}

	telemetry.SetAttributes(span, "inserted", result.Inserted, "updated", result.Updated, "deleted", result.Deleted)
	s.shippingMetrics.RecordCarriersSynced(ctx, result.Inserted, result.Updated)
	s.log.Record(ctx, packetlog.Success(packetlog.ActionCarrierListUpdate, "Carrier list was updated").
		WithParam("inserted", result.Inserted).
		WithParam("updated", result.Updated).
		WithParam("deleted", result.Deleted))
	s.logger.Info("Carrier list synced",
		zap.Int("inserted", result.Inserted),
		zap.Int("updated", result.Updated),
		zap.Int64("deleted", result.Deleted),
		zap.Int("total", result.Total),
	)
	return result, nil
}

func (s *CarrierSyncService) run(ctx context.Context) (*SyncResult, error) {
	opts, err := s.options.Options(ctx)
	if err != nil {
		return nil, err
	}
	apiKey := opts.APIKey()
	if apiKey == "" {
		return nil, shared.NewDomainError("NOT_CONFIGURED", "API key is not set, carriers cannot be downloaded")
	}

	carriers, err := s.feed.Fetch(ctx, apiKey)
	if err != nil {
		return nil, err
	}
	if len(carriers) == 0 {
		return nil, shared.NewDomainError("EMPTY_CARRIER_FEED", "Carrier feed contains no carriers")
	}
	for i := range carriers {
		if err := carriers[i].Validate(); err != nil {
			return nil, err
		}
	}

	known, err := s.repo.IDs(ctx)
	if err != nil {
		return nil, err
	}
	existing := make(map[int]struct{}, len(known))
	for _, id := range known {
		existing[id] = struct{}{}
	}

	result := &SyncResult{Total: len(carriers)}
	inFeed := make([]int, 0, len(carriers))
	for i := range carriers {
		c := carriers[i]
		c.Deleted = false
		inFeed = append(inFeed, c.ID)
		if _, ok := existing[c.ID]; ok {
			if err := s.repo.Update(ctx, &c); err != nil {
				return nil, err
			}
			result.Updated++
			continue
		}
		if err := s.repo.Insert(ctx, &c); err != nil {
			return nil, err
		}
		existing[c.ID] = struct{}{}
		result.Inserted++
	}

	result.Deleted, err = s.repo.MarkOthersDeleted(ctx, inFeed)
	if err != nil {
		return nil, err
	}

	result.SyncedAt = s.now().UTC().Truncate(time.Second)
	if err := s.optionRepo.Set(ctx, settings.CarrierUpdateKey, result.SyncedAt.Format(time.RFC3339)); err != nil {
		return nil, err
	}
	return result, nil
}

// LastUpdate returns the time of the last successful sync, nil before the first one
func (s *CarrierSyncService) LastUpdate(ctx context.Context) (*SyncStatusResponse, error) {
	raw, err := s.optionRepo.Get(ctx, settings.CarrierUpdateKey)
	if errors.Is(err, shared.ErrNotFound) {
		return &SyncStatusResponse{}, nil
	}
	if err != nil {
		return nil, err
	}
	at, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		s.logger.Warn("Stored carrier update time is unreadable", zap.String("value", raw), zap.Error(err))
		return &SyncStatusResponse{}, nil
	}
	return &SyncStatusResponse{LastUpdate: &at}, nil
}
