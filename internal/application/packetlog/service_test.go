package packetlog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/packetery/backend/internal/application/packetlog"
	domain "github.com/packetery/backend/internal/domain/packetlog"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type MockLogRepository struct {
	mock.Mock
}

func (m *MockLogRepository) Save(ctx context.Context, r *domain.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockLogRepository) List(ctx context.Context, f domain.Filter) ([]domain.Record, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Record), args.Get(1).(int64), args.Error(2)
}

func TestLogService_Record(t *testing.T) {
	ctx := context.Background()
	repo := new(MockLogRepository)
	svc := packetlog.NewLogService(repo, zaptest.NewLogger(t))

	rec := domain.Success(domain.ActionPacketSending, "Packet was sent").ForOrder(12)
	repo.On("Save", ctx, rec).Return(errors.New("db down")).Once()

	assert.NotPanics(t, func() { svc.Record(ctx, rec) })
	svc.Record(ctx, nil)
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestLogService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes paging and maps records", func(t *testing.T) {
		repo := new(MockLogRepository)
		svc := packetlog.NewLogService(repo, zaptest.NewLogger(t))

		orderID := int64(5)
		rec := domain.Failure(domain.ActionLabelPrint, "Label print failed", "PacketIdsFault").ForOrder(orderID)
		repo.On("List", ctx, domain.Filter{
			Action:   domain.ActionLabelPrint,
			Status:   domain.StatusError,
			OrderID:  &orderID,
			Page:     1,
			PageSize: 20,
		}).Return([]domain.Record{*rec}, int64(21), nil)

		page, err := svc.List(ctx, packetlog.ListLogsRequest{Action: "label-print", Status: "error", OrderID: &orderID})
		require.NoError(t, err)
		assert.Equal(t, int64(21), page.Total)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "PacketIdsFault", page.Items[0].Error)
		assert.Equal(t, &orderID, page.Items[0].OrderID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		svc := packetlog.NewLogService(new(MockLogRepository), zaptest.NewLogger(t))
		_, err := svc.List(ctx, packetlog.ListLogsRequest{Action: "refund"})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_LOG_ACTION", derr.Code)
	})
}
