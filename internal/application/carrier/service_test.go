package carrier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/packetery/backend/internal/application/carrier"
	logapp "github.com/packetery/backend/internal/application/packetlog"
	domain "github.com/packetery/backend/internal/domain/carrier"
	"github.com/packetery/backend/internal/domain/packetlog"
	"github.com/packetery/backend/internal/domain/settings"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type MockCarrierRepository struct {
	mock.Mock
}

func (m *MockCarrierRepository) IDs(ctx context.Context) ([]int, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int), args.Error(1)
}

func (m *MockCarrierRepository) FindActive(ctx context.Context) ([]domain.Carrier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) FindByID(ctx context.Context, id int) (*domain.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) HasPickupPoints(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarrierRepository) FindByCountry(ctx context.Context, country string) ([]domain.Carrier, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) Countries(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCarrierRepository) Insert(ctx context.Context, c *domain.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) Update(ctx context.Context, c *domain.Carrier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCarrierRepository) MarkOthersDeleted(ctx context.Context, idsInFeed []int) (int64, error) {
	args := m.Called(ctx, idsInFeed)
	return args.Get(0).(int64), args.Error(1)
}

type MockFeed struct {
	mock.Mock
}

func (m *MockFeed) Fetch(ctx context.Context, apiKey string) ([]domain.Carrier, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Carrier), args.Error(1)
}

type MockOptionRepository struct {
	mock.Mock
}

func (m *MockOptionRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockOptionRepository) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockOptionRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type stubOptions struct {
	opts *settings.Options
	err  error
}

func (s stubOptions) Options(context.Context) (*settings.Options, error) {
	return s.opts, s.err
}

type recordingLogRepository struct {
	records []*packetlog.Record
}

func (r *recordingLogRepository) Save(_ context.Context, rec *packetlog.Record) error {
	r.records = append(r.records, rec)
	return nil
}

func (r *recordingLogRepository) List(context.Context, packetlog.Filter) ([]packetlog.Record, int64, error) {
	return nil, 0, nil
}

func configuredOptions() *settings.Options {
	o := settings.DefaultOptions()
	o.APIPassword = "0123456789abcdef0123456789abcdef"
	o.Sender = "shop"
	return o
}

func TestCarrierService_ListIncludingZpoints(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCarrierRepository)
	repo.On("FindActive", ctx).Return([]domain.Carrier{{ID: 106, Name: "CZ Home", Country: "cz"}}, nil)
	svc := carrier.NewCarrierService(repo, zaptest.NewLogger(t))

	options, err := svc.ListIncludingZpoints(ctx)
	require.NoError(t, err)
	require.Len(t, options, 5)
	assert.Equal(t, "zpointro", options[0].ID)
	assert.Equal(t, "zpointcz", options[3].ID)
	assert.Equal(t, "106", options[4].ID)
}

func TestCarrierService_ListByCountryIncludingZpoints(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes country", func(t *testing.T) {
		repo := new(MockCarrierRepository)
		repo.On("FindByCountry", ctx, "sk").Return([]domain.Carrier{{ID: 131, Name: "SK Home", Country: "sk"}}, nil)
		svc := carrier.NewCarrierService(repo, zaptest.NewLogger(t))

		options, err := svc.ListByCountryIncludingZpoints(ctx, " SK ")
		require.NoError(t, err)
		require.Len(t, options, 2)
		assert.Equal(t, "zpointsk", options[0].ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects bad country", func(t *testing.T) {
		svc := carrier.NewCarrierService(new(MockCarrierRepository), nil)
		_, err := svc.ListByCountryIncludingZpoints(ctx, "cze")
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_COUNTRY", derr.Code)
	})
}

func TestCarrierService_HasPickupPoints(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCarrierRepository)
	repo.On("HasPickupPoints", ctx, 3060).Return(true, nil)
	svc := carrier.NewCarrierService(repo, zaptest.NewLogger(t))

	ok, err := svc.HasPickupPoints(ctx, "zpointhu")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasPickupPoints(ctx, "packeta")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasPickupPoints(ctx, "not-a-carrier")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.HasPickupPoints(ctx, "3060")
	require.NoError(t, err)
	assert.True(t, ok)

	repo.AssertNumberOfCalls(t, "HasPickupPoints", 1)
}

func TestCarrierService_Get(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCarrierRepository)
	repo.On("FindByID", ctx, 106).Return(&domain.Carrier{ID: 106, Name: "CZ Home", Country: "cz", RequiresEmail: true}, nil)
	repo.On("FindByID", ctx, 1).Return(nil, shared.ErrNotFound)
	svc := carrier.NewCarrierService(repo, zaptest.NewLogger(t))

	resp, err := svc.Get(ctx, 106)
	require.NoError(t, err)
	assert.True(t, resp.RequiresEmail)

	_, err = svc.Get(ctx, 1)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCarrierSyncService_Run(t *testing.T) {
	ctx := context.Background()
	feedCarriers := []domain.Carrier{
		{ID: 106, Name: "CZ Home delivery", Country: "cz", Currency: "CZK"},
		{ID: 3060, Name: "PL InPost", Country: "pl", IsPickupPoints: true, Currency: "PLN"},
	}

	t.Run("inserts new and updates known carriers", func(t *testing.T) {
		repo := new(MockCarrierRepository)
		feed := new(MockFeed)
		optionRepo := new(MockOptionRepository)
		logs := &recordingLogRepository{}

		feed.On("Fetch", mock.Anything, "0123456789abcdef").Return(feedCarriers, nil)
		repo.On("IDs", mock.Anything).Return([]int{106, 999}, nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Carrier) bool {
			return c.ID == 106 && !c.Deleted
		})).Return(nil)
		repo.On("Insert", mock.Anything, mock.MatchedBy(func(c *domain.Carrier) bool {
			return c.ID == 3060 && !c.Deleted
		})).Return(nil)
		repo.On("MarkOthersDeleted", mock.Anything, []int{106, 3060}).Return(int64(1), nil)
		optionRepo.On("Set", mock.Anything, settings.CarrierUpdateKey, mock.AnythingOfType("string")).Return(nil)

		svc := carrier.NewCarrierSyncService(repo, feed, optionRepo, stubOptions{opts: configuredOptions()},
			logapp.NewLogService(logs, nil), zaptest.NewLogger(t))

		result, err := svc.Run(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Inserted)
		assert.Equal(t, 1, result.Updated)
		assert.Equal(t, int64(1), result.Deleted)
		assert.Equal(t, 2, result.Total)
		assert.False(t, result.SyncedAt.IsZero())

		require.Len(t, logs.records, 1)
		assert.Equal(t, packetlog.ActionCarrierListUpdate, logs.records[0].Action)
		assert.Equal(t, packetlog.StatusSuccess, logs.records[0].Status)
		repo.AssertExpectations(t)
		optionRepo.AssertExpectations(t)
	})

	t.Run("missing api key is logged as error", func(t *testing.T) {
		repo := new(MockCarrierRepository)
		feed := new(MockFeed)
		logs := &recordingLogRepository{}
		svc := carrier.NewCarrierSyncService(repo, feed, new(MockOptionRepository), stubOptions{opts: settings.DefaultOptions()},
			logapp.NewLogService(logs, nil), zaptest.NewLogger(t))

		_, err := svc.Run(ctx)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "NOT_CONFIGURED", derr.Code)
		require.Len(t, logs.records, 1)
		assert.Equal(t, packetlog.StatusError, logs.records[0].Status)
		feed.AssertNotCalled(t, "Fetch", mock.Anything, mock.Anything)
	})

	t.Run("empty feed changes nothing", func(t *testing.T) {
		repo := new(MockCarrierRepository)
		feed := new(MockFeed)
		feed.On("Fetch", mock.Anything, mock.Anything).Return([]domain.Carrier{}, nil)
		svc := carrier.NewCarrierSyncService(repo, feed, new(MockOptionRepository), stubOptions{opts: configuredOptions()},
			logapp.NewLogService(&recordingLogRepository{}, nil), zaptest.NewLogger(t))

		_, err := svc.Run(ctx)
		require.Error(t, err)
		repo.AssertNotCalled(t, "MarkOthersDeleted", mock.Anything, mock.Anything)
	})

	t.Run("invalid feed entry aborts before writes", func(t *testing.T) {
		repo := new(MockCarrierRepository)
		feed := new(MockFeed)
		feed.On("Fetch", mock.Anything, mock.Anything).Return([]domain.Carrier{{ID: 5, Country: "cz"}}, nil)
		svc := carrier.NewCarrierSyncService(repo, feed, new(MockOptionRepository), stubOptions{opts: configuredOptions()},
			logapp.NewLogService(&recordingLogRepository{}, nil), zaptest.NewLogger(t))

		_, err := svc.Run(ctx)
		require.Error(t, err)
		repo.AssertNotCalled(t, "IDs", mock.Anything)
	})

	t.Run("feed failure", func(t *testing.T) {
		feed := new(MockFeed)
		feed.On("Fetch", mock.Anything, mock.Anything).Return(nil, errors.New("feed down"))
		logs := &recordingLogRepository{}
		svc := carrier.NewCarrierSyncService(new(MockCarrierRepository), feed, new(MockOptionRepository),
			stubOptions{opts: configuredOptions()}, logapp.NewLogService(logs, nil), zaptest.NewLogger(t))

		_, err := svc.Run(ctx)
		assert.EqualError(t, err, "feed down")
		require.Len(t, logs.records, 1)
		assert.Equal(t, "feed down", logs.records[0].Error)
	})
}

func TestCarrierSyncService_Run_RejectsOverlappingRun(t *testing.T) {
	ctx := context.Background()
	repo := new(MockCarrierRepository)
	feed := new(MockFeed)
	optionRepo := new(MockOptionRepository)
	logs := &recordingLogRepository{}

	fetching := make(chan struct{})
	release := make(chan struct{})
	feed.On("Fetch", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(fetching)
			<-release
		}).
		Return([]domain.Carrier{{ID: 106, Name: "CZ Home delivery", Country: "cz", Currency: "CZK"}}, nil).
		Once()
	repo.On("IDs", mock.Anything).Return([]int{}, nil)
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	repo.On("MarkOthersDeleted", mock.Anything, []int{106}).Return(int64(0), nil)
	optionRepo.On("Set", mock.Anything, settings.CarrierUpdateKey, mock.AnythingOfType("string")).Return(nil)

	svc := carrier.NewCarrierSyncService(repo, feed, optionRepo, stubOptions{opts: configuredOptions()},
		logapp.NewLogService(logs, nil), zaptest.NewLogger(t))

	done := make(chan error, 1)
	go func() {
		_, err := svc.Run(ctx)
		done <- err
	}()
	<-fetching

	_, err := svc.Run(ctx)
	assert.ErrorIs(t, err, carrier.ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)

	require.Len(t, logs.records, 1)
	assert.Equal(t, packetlog.StatusSuccess, logs.records[0].Status)
	feed.AssertNumberOfCalls(t, "Fetch", 1)
	repo.AssertExpectations(t)
}

func TestCarrierSyncService_LastUpdate(t *testing.T) {
	ctx := context.Background()
	optionRepo := new(MockOptionRepository)
	svc := carrier.NewCarrierSyncService(nil, nil, optionRepo, nil, nil, zaptest.NewLogger(t))

	optionRepo.On("Get", ctx, settings.CarrierUpdateKey).Return("", shared.ErrNotFound).Once()
	status, err := svc.LastUpdate(ctx)
	require.NoError(t, err)
	assert.Nil(t, status.LastUpdate)

	optionRepo.On("Get", ctx, settings.CarrierUpdateKey).Return("2026-03-01T04:05:06Z", nil).Once()
	status, err = svc.LastUpdate(ctx)
	require.NoError(t, err)
	require.NotNil(t, status.LastUpdate)
	assert.True(t, status.LastUpdate.Equal(time.Date(2026, 3, 1, 4, 5, 6, 0, time.UTC)))
}
