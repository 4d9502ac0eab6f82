// Package settings serves the Packeta options page.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/packetery/backend/internal/domain/integration"
	domain "github.com/packetery/backend/internal/domain/settings"
	"github.com/packetery/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// SettingsService reads and writes the options stored under domain.OptionsKey
type SettingsService struct {
	repo   domain.Repository
	logger *zap.Logger
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo domain.Repository, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{repo: repo, logger: logger}
}

// Ensure SettingsService supplies the SOAP client with the API password
var _ integration.CredentialsProvider = (*SettingsService)(nil)

// Options loads the stored options, falling back to defaults before the first save
func (s *SettingsService) Options(ctx context.Context) (*domain.Options, error) {
	raw, err := s.repo.Get(ctx, domain.OptionsKey)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return domain.DefaultOptions(), nil
		}
		return nil, err
	}

	opts := domain.DefaultOptions()
	if err := json.Unmarshal([]byte(raw), opts); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	return opts, nil
}

// Get returns the options page
func (s *SettingsService) Get(ctx context.Context) (*SettingsResponse, error) {
	opts, err := s.Options(ctx)
	if err != nil {
		return nil, err
	}
	resp := ToSettingsResponse(opts)
	return &resp, nil
}

// Update validates and stores the options form. Field errors come back
// as *shared.ValidationError.
func (s *SettingsService) Update(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error) {
	current, err := s.Options(ctx)
	if err != nil {
		return nil, err
	}

	opts := *current
	opts.APIPassword = req.APIPassword
	opts.Sender = req.Sender
	opts.PacketaLabelFormat = domain.LabelFormat(req.PacketaLabelFormat)
	opts.CarrierLabelFormat = domain.LabelFormat(req.CarrierLabelFormat)
	opts.AllowLabelEmailing = req.AllowLabelEmailing
	if req.DefaultPrice != nil {
		opts.DefaultPrice = *req.DefaultPrice
	}
	if req.FreeShippingLimit != nil {
		opts.FreeShippingLimit = *req.FreeShippingLimit
	}
	if req.CODSurcharge != nil {
		opts.CODSurcharge = *req.CODSurcharge
	}

	opts.Normalize()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(&opts)
	if err != nil {
		return nil, fmt.Errorf("encode options: %w", err)
	}
	if err := s.repo.Set(ctx, domain.OptionsKey, string(raw)); err != nil {
		return nil, err
	}

	s.logger.Info("Packeta options saved",
		zap.String("sender", opts.Sender),
		zap.String("packeta_label_format", opts.PacketaLabelFormat.String()),
		zap.String("carrier_label_format", opts.CarrierLabelFormat.String()),
	)

	resp := ToSettingsResponse(&opts)
	return &resp, nil
}

// LabelFormats returns the format catalog with max offsets
func (s *SettingsService) LabelFormats() LabelFormatsResponse {
	return LabelFormatsResponse{
		Packeta: domain.PacketaLabelFormats(),
		Carrier: domain.CarrierLabelFormats(),
	}
}

// OffsetChoices lists the "skip label fields" options of a format
func (s *SettingsService) OffsetChoices(format domain.LabelFormat) []domain.OffsetChoice {
	return domain.OffsetChoices(format.MaxOffset())
}

// APIPassword implements integration.CredentialsProvider
func (s *SettingsService) APIPassword(ctx context.Context) (string, error) {
	opts, err := s.Options(ctx)
	if err != nil {
		return "", err
	}
	if !opts.HasAPIPassword() {
		return "", shared.ErrNotConfigured
	}
	return opts.APIPassword, nil
}
