package shipment_test

import (
	"context"
	"errors"
	"testing"

	logapp "github.com/packetery/backend/internal/application/packetlog"
	"github.com/packetery/backend/internal/application/shipment"
	"github.com/packetery/backend/internal/domain/carrier"
	"github.com/packetery/backend/internal/domain/integration"
	"github.com/packetery/backend/internal/domain/packetlog"
	"github.com/packetery/backend/internal/domain/settings"
	"github.com/packetery/backend/internal/domain/shared"
	domain "github.com/packetery/backend/internal/domain/shipment"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type MockShipmentRepository struct {
	mock.Mock
}

func (m *MockShipmentRepository) FindByOrderID(ctx context.Context, orderID int64) (*domain.Shipment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) FindByOrderIDs(ctx context.Context, orderIDs []int64) ([]domain.Shipment, error) {
	args := m.Called(ctx, orderIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) Save(ctx context.Context, s *domain.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockCarrierRepository struct {
	mock.Mock
	carrier.Repository
}

func (m *MockCarrierRepository) FindByID(ctx context.Context, id int) (*carrier.Carrier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carrier.Carrier), args.Error(1)
}

type MockPacketaAPI struct {
	mock.Mock
	integration.PacketaAPI
}

func (m *MockPacketaAPI) CreatePacket(ctx context.Context, attrs integration.PacketAttributes) (*integration.CreatedPacket, error) {
	args := m.Called(ctx, attrs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*integration.CreatedPacket), args.Error(1)
}

type MockPickupPointSupport struct {
	mock.Mock
}

func (m *MockPickupPointSupport) HasPickupPoints(ctx context.Context, carrierID string) (bool, error) {
	args := m.Called(ctx, carrierID)
	return args.Bool(0), args.Error(1)
}

type MockSheetRenderer struct {
	mock.Mock
}

func (m *MockSheetRenderer) RenderHandoverSheet(ctx context.Context, sheet *domain.HandoverSheet) ([]byte, error) {
	args := m.Called(ctx, sheet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockArchive struct {
	mock.Mock
}

func (m *MockArchive) Archive(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	args := m.Called(ctx, key, data, contentType)
	return args.String(0), args.Error(1)
}

type stubOptions struct {
	opts *settings.Options
}

func (s stubOptions) Options(context.Context) (*settings.Options, error) {
	return s.opts, nil
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
	o.Sender = "my-eshop"
	return o
}

func zpointShipment(orderID int64) domain.Shipment {
	return domain.Shipment{
		OrderID:     orderID,
		OrderNumber: "WC-100",
		CarrierID:   "zpointcz",
		Point:       domain.PickupPoint{ID: "4321", Name: "Praha 4, Budějovická"},
		Recipient:   domain.Recipient{Name: "Jan", Surname: "Novák", Email: "jan@example.com", Country: "CZ", City: "Praha"},
		Weight:      1.5,
		Value:       decimal.NewFromInt(1000),
		COD:         decimal.Zero,
		Currency:    "CZK",
	}
}

func upsertRequest(carrierID string) shipment.UpsertShipmentRequest {
	return shipment.UpsertShipmentRequest{
		OrderNumber: "WC-100",
		CarrierID:   carrierID,
		Recipient:   shipment.RecipientDTO{Name: "Jan", Surname: "Novák", Country: "cz"},
		Weight:      2,
		Value:       decimal.NewFromInt(500),
		COD:         decimal.NewFromInt(500),
		Currency:    "czk",
	}
}

func TestShipmentService_Upsert(t *testing.T) {
	ctx := context.Background()

	t.Run("creates new meta with point", func(t *testing.T) {
		repo := new(MockShipmentRepository)
		carriers := new(MockPickupPointSupport)
		repo.On("FindByOrderID", ctx, int64(7)).Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*shipment.Shipment")).Return(nil)
		carriers.On("HasPickupPoints", ctx, "zpointcz").Return(true, nil)
		svc := shipment.NewShipmentService(repo, carriers, zaptest.NewLogger(t))

		req := upsertRequest("zpointcz")
		req.Point = &shipment.PickupPointDTO{ID: "4321", Name: "Praha 4"}
		resp, err := svc.Upsert(ctx, 7, req)
		require.NoError(t, err)
		assert.Equal(t, "CZ", resp.Recipient.Country)
		assert.Equal(t, "CZK", resp.Currency)
		assert.Equal(t, "4321", resp.Point.ID)
		repo.AssertExpectations(t)
	})

	t.Run("keeps packet id of submitted order", func(t *testing.T) {
		stored := zpointShipment(7)
		stored.PacketID = "1234567890"
		repo := new(MockShipmentRepository)
		repo.On("FindByOrderID", ctx, int64(7)).Return(&stored, nil)
		repo.On("Save", ctx, &stored).Return(nil)
		svc := shipment.NewShipmentService(repo, new(MockPickupPointSupport), zaptest.NewLogger(t))

		resp, err := svc.Upsert(ctx, 7, upsertRequest("zpointcz"))
		require.NoError(t, err)
		assert.Equal(t, "1234567890", resp.PacketID)
		assert.Equal(t, "https://tracking.packeta.com/?id=1234567890", resp.TrackingURL)
	})

	t.Run("carrier cannot change after submission", func(t *testing.T) {
		stored := zpointShipment(7)
		stored.PacketID = "1234567890"
		repo := new(MockShipmentRepository)
		repo.On("FindByOrderID", ctx, int64(7)).Return(&stored, nil)
		svc := shipment.NewShipmentService(repo, new(MockPickupPointSupport), zaptest.NewLogger(t))

		_, err := svc.Upsert(ctx, 7, upsertRequest("106"))
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "INVALID_STATE", derr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		svc := shipment.NewShipmentService(new(MockShipmentRepository), new(MockPickupPointSupport), nil)
		req := upsertRequest("106")
		req.COD = decimal.NewFromInt(-1)
		_, err := svc.Upsert(ctx, 7, req)
		var verr *shared.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "cod")
	})
}

func TestShipmentService_SelectPickupPoint(t *testing.T) {
	ctx := context.Background()

	t.Run("carrier without pickup points", func(t *testing.T) {
		stored := zpointShipment(3)
		stored.CarrierID = "106"
		repo := new(MockShipmentRepository)
		carriers := new(MockPickupPointSupport)
		repo.On("FindByOrderID", ctx, int64(3)).Return(&stored, nil)
		carriers.On("HasPickupPoints", ctx, "106").Return(false, nil)
		svc := shipment.NewShipmentService(repo, carriers, zaptest.NewLogger(t))

		_, err := svc.SelectPickupPoint(ctx, 3, shipment.PickupPointDTO{ID: "1"})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "PICKUP_POINTS_NOT_SUPPORTED", derr.Code)
	})

	t.Run("stores point", func(t *testing.T) {
		stored := zpointShipment(3)
		repo := new(MockShipmentRepository)
		carriers := new(MockPickupPointSupport)
		repo.On("FindByOrderID", ctx, int64(3)).Return(&stored, nil)
		repo.On("Save", ctx, &stored).Return(nil)
		carriers.On("HasPickupPoints", ctx, "zpointcz").Return(true, nil)
		svc := shipment.NewShipmentService(repo, carriers, zaptest.NewLogger(t))

		resp, err := svc.SelectPickupPoint(ctx, 3, shipment.PickupPointDTO{ID: "999", Name: "Brno"})
		require.NoError(t, err)
		assert.Equal(t, "999", resp.Point.ID)
	})
}

func TestShipmentService_OrderListColumns(t *testing.T) {
	ctx := context.Background()
	submitted := zpointShipment(1)
	submitted.PacketID = "Z 123"
	abroad := zpointShipment(2)
	abroad.Recipient.Country = "PL"

	repo := new(MockShipmentRepository)
	repo.On("FindByOrderIDs", ctx, []int64{1, 2, 3}).Return([]domain.Shipment{submitted, abroad}, nil)
	svc := shipment.NewShipmentService(repo, new(MockPickupPointSupport), zaptest.NewLogger(t))

	cols, err := svc.OrderListColumns(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.NotNil(t, cols[0].PacketID)
	assert.Equal(t, "https://tracking.packeta.com/?id=Z%20123", cols[0].PacketID.TrackingURL)
	assert.Equal(t, "Praha 4, Budějovická (4321)", cols[0].Destination)
	assert.Nil(t, cols[1].PacketID)
	assert.Equal(t, "Praha 4, Budějovická", cols[1].Destination)

	empty, err := svc.OrderListColumns(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPacketSubmissionService_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("submits, skips and fails per order", func(t *testing.T) {
		fresh := zpointShipment(1)
		done := zpointShipment(2)
		done.PacketID = "111"
		external := zpointShipment(3)
		external.CarrierID = "106"
		external.COD = decimal.NewFromInt(200)

		repo := new(MockShipmentRepository)
		carriers := new(MockCarrierRepository)
		api := new(MockPacketaAPI)
		logs := &recordingLogRepository{}

		repo.On("FindByOrderIDs", mock.Anything, []int64{1, 2, 3, 4}).
			Return([]domain.Shipment{fresh, done, external}, nil)
		repo.On("Save", mock.Anything, mock.MatchedBy(func(s *domain.Shipment) bool {
			return s.OrderID == 1 && s.PacketID == "222"
		})).Return(nil)
		carriers.On("FindByID", mock.Anything, 106).
			Return(&carrier.Carrier{ID: 106, Name: "CZ Home", Country: "cz", DisallowsCOD: true}, nil)
		api.On("CreatePacket", mock.Anything, mock.MatchedBy(func(a integration.PacketAttributes) bool {
			return a.Number == "WC-100" && a.AddressID == "4321" && a.Eshop == "my-eshop" && a.Street == ""
		})).Return(&integration.CreatedPacket{ID: "222"}, nil)

		svc := shipment.NewPacketSubmissionService(repo, carriers, api, stubOptions{opts: configuredOptions()},
			logapp.NewLogService(logs, nil), zaptest.NewLogger(t))

		result, err := svc.Submit(ctx, shipment.SubmitRequest{OrderIDs: []int64{1, 2, 3, 4}})
		require.NoError(t, err)

		require.Len(t, result.Submitted, 1)
		assert.Equal(t, "222", result.Submitted[0].PacketID)
		require.Len(t, result.Skipped, 1)
		assert.Equal(t, int64(2), result.Skipped[0].OrderID)
		require.Len(t, result.Failed, 2)
		assert.Equal(t, int64(3), result.Failed[0].OrderID)
		assert.Contains(t, result.Failed[0].Message, "cash on delivery")
		assert.Equal(t, int64(4), result.Failed[1].OrderID)

		require.Len(t, logs.records, 1)
		assert.Equal(t, packetlog.StatusSuccess, logs.records[0].Status)
		api.AssertNumberOfCalls(t, "CreatePacket", 1)
	})

	t.Run("fault is logged and meta unchanged", func(t *testing.T) {
		order := zpointShipment(5)
		repo := new(MockShipmentRepository)
		api := new(MockPacketaAPI)
		logs := &recordingLogRepository{}

		repo.On("FindByOrderIDs", mock.Anything, []int64{5}).Return([]domain.Shipment{order}, nil)
		fault := &integration.Fault{
			Name:       integration.FaultPacketAttributes,
			String:     "Packet attributes are not valid",
			Attributes: []integration.AttributeFault{{Name: "weight", Fault: "Invalid weight"}},
		}
		api.On("CreatePacket", mock.Anything, mock.Anything).Return(nil, fault)

		svc := shipment.NewPacketSubmissionService(repo, new(MockCarrierRepository), api, stubOptions{opts: configuredOptions()},
			logapp.NewLogService(logs, nil), zaptest.NewLogger(t))

		result, err := svc.Submit(ctx, shipment.SubmitRequest{OrderIDs: []int64{5}})
		require.NoError(t, err)
		require.Len(t, result.Failed, 1)
		assert.Equal(t, "Packet attributes are not valid (weight: Invalid weight)", result.Failed[0].Message)

		require.Len(t, logs.records, 1)
		rec := logs.records[0]
		assert.Equal(t, packetlog.ActionPacketSending, rec.Action)
		assert.Equal(t, packetlog.StatusError, rec.Status)
		assert.Equal(t, "4321", rec.Params["addressId"])
		assert.NotContains(t, rec.Params, "cod")
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("requires api password", func(t *testing.T) {
		svc := shipment.NewPacketSubmissionService(new(MockShipmentRepository), new(MockCarrierRepository), new(MockPacketaAPI),
			stubOptions{opts: settings.DefaultOptions()}, logapp.NewLogService(&recordingLogRepository{}, nil), nil)

		_, err := svc.Submit(ctx, shipment.SubmitRequest{OrderIDs: []int64{1}})
		assert.ErrorIs(t, err, shared.ErrNotConfigured)
	})
}

func TestPacketSubmissionService_Submit_ExternalCarrier(t *testing.T) {
	homeDelivery := func() domain.Shipment {
		sh := zpointShipment(10)
		sh.CarrierID = "106"
		sh.Point = domain.PickupPoint{}
		sh.Recipient.Phone = "+420777123456"
		sh.Recipient.Street = "Na Pankráci"
		sh.Recipient.HouseNumber = "1685/17"
		sh.Recipient.City = "Praha"
		sh.Recipient.Zip = "14000"
		sh.Size = domain.Size{Length: 30, Width: 20, Height: 10}
		return sh
	}
	strict := carrier.Carrier{
		ID: 106, Name: "CZ Home", Country: "cz", MaxWeight: 5,
		RequiresEmail: true, RequiresPhone: true, RequiresSize: true, DisallowsCOD: true,
	}

	tests := []struct {
		name    string
		carrier carrier.Carrier
		change  func(*domain.Shipment)
		wantErr string
		check   func(*testing.T, integration.PacketAttributes)
	}{
		{
			name:    "email required",
			carrier: strict,
			change:  func(sh *domain.Shipment) { sh.Recipient.Email = "" },
			wantErr: "requires the customer email",
		},
		{
			name:    "phone required",
			carrier: strict,
			change:  func(sh *domain.Shipment) { sh.Recipient.Phone = "" },
			wantErr: "requires the customer phone",
		},
		{
			name:    "size required",
			carrier: strict,
			change:  func(sh *domain.Shipment) { sh.Size.Height = 0 },
			wantErr: "requires the parcel size",
		},
		{
			name:    "cash on delivery disallowed",
			carrier: strict,
			change:  func(sh *domain.Shipment) { sh.COD = decimal.NewFromInt(200) },
			wantErr: "does not accept cash on delivery",
		},
		{
			name:    "weight over the carrier limit",
			carrier: strict,
			change:  func(sh *domain.Shipment) { sh.Weight = 5.5 },
			wantErr: "weight exceeds the limit",
		},
		{
			name:    "weight at the carrier limit",
			carrier: strict,
			change:  func(sh *domain.Shipment) { sh.Weight = 5 },
			check: func(t *testing.T, a integration.PacketAttributes) {
				assert.Equal(t, 5.0, a.Weight)
			},
		},
		{
			name:    "deleted carrier",
			carrier: carrier.Carrier{ID: 106, Name: "CZ Home", Country: "cz", Deleted: true},
			wantErr: "no longer offered",
		},
		{
			name:    "home delivery sends the address",
			carrier: strict,
			check: func(t *testing.T, a integration.PacketAttributes) {
				assert.Equal(t, "106", a.AddressID)
				assert.Equal(t, "Na Pankráci", a.Street)
				assert.Equal(t, "1685/17", a.HouseNumber)
				assert.Equal(t, "Praha", a.City)
				assert.Equal(t, "14000", a.Zip)
				assert.Empty(t, a.CarrierPickupPoint)
				require.NotNil(t, a.Size)
				assert.Equal(t, 30, a.Size.Length)
			},
		},
		{
			name:    "carrier pickup point",
			carrier: carrier.Carrier{ID: 106, Name: "PL InPost", Country: "pl", IsPickupPoints: true},
			change: func(sh *domain.Shipment) {
				sh.Point = domain.PickupPoint{ID: "9001", Name: "Kraków", CarrierPointID: "KRA01M"}
			},
			check: func(t *testing.T, a integration.PacketAttributes) {
				assert.Equal(t, "106", a.AddressID)
				assert.Equal(t, "KRA01M", a.CarrierPickupPoint)
				assert.Empty(t, a.Street)
				assert.Empty(t, a.Zip)
			},
		},
		{
			name:    "carrier pickup point falls back to point id",
			carrier: carrier.Carrier{ID: 106, Name: "PL InPost", Country: "pl", IsPickupPoints: true},
			change:  func(sh *domain.Shipment) { sh.Point = domain.PickupPoint{ID: "9001"} },
			check: func(t *testing.T, a integration.PacketAttributes) {
				assert.Equal(t, "9001", a.CarrierPickupPoint)
			},
		},
		{
			name:    "carrier pickup point not selected",
			carrier: carrier.Carrier{ID: 106, Name: "PL InPost", Country: "pl", IsPickupPoints: true},
			wantErr: "carrier pickup point is not selected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			sh := homeDelivery()
			if tt.change != nil {
				tt.change(&sh)
			}
			c := tt.carrier

			repo := new(MockShipmentRepository)
			carriers := new(MockCarrierRepository)
			api := new(MockPacketaAPI)
			repo.On("FindByOrderIDs", mock.Anything, []int64{10}).Return([]domain.Shipment{sh}, nil)
			repo.On("Save", mock.Anything, mock.Anything).Return(nil)
			carriers.On("FindByID", mock.Anything, 106).Return(&c, nil)

			var sent integration.PacketAttributes
			api.On("CreatePacket", mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) { sent = args.Get(1).(integration.PacketAttributes) }).
				Return(&integration.CreatedPacket{ID: "333"}, nil)

			svc := shipment.NewPacketSubmissionService(repo, carriers, api, stubOptions{opts: configuredOptions()},
				logapp.NewLogService(&recordingLogRepository{}, nil), zaptest.NewLogger(t))

			result, err := svc.Submit(ctx, shipment.SubmitRequest{OrderIDs: []int64{10}})
			require.NoError(t, err)

			if tt.wantErr != "" {
				require.Len(t, result.Failed, 1)
				assert.Contains(t, result.Failed[0].Message, tt.wantErr)
				api.AssertNotCalled(t, "CreatePacket", mock.Anything, mock.Anything)
				repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				return
			}
			require.Len(t, result.Submitted, 1)
			assert.Equal(t, "333", result.Submitted[0].PacketID)
			tt.check(t, sent)
		})
	}
}

func TestHandoverService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("renders submitted orders and archives", func(t *testing.T) {
		first := zpointShipment(1)
		first.PacketID = "111"
		external := zpointShipment(2)
		external.CarrierID = "106"
		external.PacketID = "222"
		pending := zpointShipment(3)

		repo := new(MockShipmentRepository)
		carriers := new(MockCarrierRepository)
		renderer := new(MockSheetRenderer)
		archive := new(MockArchive)

		repo.On("FindByOrderIDs", mock.Anything, []int64{1, 2, 3}).Return([]domain.Shipment{first, external, pending}, nil)
		carriers.On("FindByID", mock.Anything, 106).Return(&carrier.Carrier{ID: 106, Name: "CZ Home"}, nil)
		renderer.On("RenderHandoverSheet", mock.Anything, mock.MatchedBy(func(s *domain.HandoverSheet) bool {
			return len(s.Rows) == 2 && s.Rows[0].CarrierName == "CZ Packeta pickup points" &&
				s.Rows[1].CarrierName == "CZ Home" && s.Sender == "my-eshop"
		})).Return([]byte("%PDF-1.4"), nil)
		archive.On("Archive", mock.Anything, mock.MatchedBy(func(key string) bool {
			return len(key) > len("handover/") && key[:len("handover/")] == "handover/"
		}), []byte("%PDF-1.4"), "application/pdf").Return("https://s3.example.com/handover.pdf", nil)

		svc := shipment.NewHandoverService(repo, carriers, renderer, archive, stubOptions{opts: configuredOptions()}, zaptest.NewLogger(t))

		doc, err := svc.Generate(ctx, shipment.HandoverRequest{OrderIDs: []int64{1, 2, 3}})
		require.NoError(t, err)
		assert.Equal(t, 2, doc.PacketCount)
		assert.Equal(t, "https://s3.example.com/handover.pdf", doc.ArchiveURL)
		assert.Regexp(t, `^packeta_handover_\d{8}_\d{6}\.pdf$`, doc.FileName)
		renderer.AssertExpectations(t)
		archive.AssertExpectations(t)
	})

	t.Run("archive failure does not fail the sheet", func(t *testing.T) {
		order := zpointShipment(1)
		order.PacketID = "111"
		repo := new(MockShipmentRepository)
		renderer := new(MockSheetRenderer)
		archive := new(MockArchive)
		repo.On("FindByOrderIDs", mock.Anything, []int64{1}).Return([]domain.Shipment{order}, nil)
		renderer.On("RenderHandoverSheet", mock.Anything, mock.Anything).Return([]byte("%PDF"), nil)
		archive.On("Archive", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("s3 down"))

		svc := shipment.NewHandoverService(repo, new(MockCarrierRepository), renderer, archive, stubOptions{opts: configuredOptions()}, zaptest.NewLogger(t))

		doc, err := svc.Generate(ctx, shipment.HandoverRequest{OrderIDs: []int64{1}})
		require.NoError(t, err)
		assert.Empty(t, doc.ArchiveURL)
	})

	t.Run("nothing submitted", func(t *testing.T) {
		repo := new(MockShipmentRepository)
		repo.On("FindByOrderIDs", mock.Anything, []int64{3}).Return([]domain.Shipment{zpointShipment(3)}, nil)
		svc := shipment.NewHandoverService(repo, new(MockCarrierRepository), new(MockSheetRenderer), new(MockArchive),
			stubOptions{opts: configuredOptions()}, zaptest.NewLogger(t))

		_, err := svc.Generate(ctx, shipment.HandoverRequest{OrderIDs: []int64{3}})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "ORDERS_NOT_SUBMITTED", derr.Code)
	})
}
