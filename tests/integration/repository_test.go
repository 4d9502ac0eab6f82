package integration

import (
	"context"
	"testing"
	"time"

	"github.com/packetery/backend/internal/domain/carrier"
	"github.com/packetery/backend/internal/domain/packetlog"
	"github.com/packetery/backend/internal/domain/shared"
	"github.com/packetery/backend/internal/domain/shipment"
	"github.com/packetery/backend/internal/infrastructure/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacketeryRepositories_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)
	ctx := context.Background()

	t.Run("carrier list sync", func(t *testing.T) {
		testDB.CleanTables()
		repo := persistence.NewGormCarrierRepository(testDB.DB)

		for _, c := range []carrier.Carrier{
			{ID: 106, Name: "CZ Zasilkovna domu", Country: "cz", Currency: "CZK", MaxWeight: 10},
			{ID: 131, Name: "SK Posta", Country: "sk", Currency: "EUR", MaxWeight: 15},
			{ID: 3060, Name: "HU MPL box", Country: "hu", Currency: "HUF", IsPickupPoints: true, MaxWeight: 20},
		} {
			c := c
			require.NoError(t, repo.Insert(ctx, &c))
		}

		updated := carrier.Carrier{ID: 131, Name: "SK Slovenska posta", Country: "sk", Currency: "EUR", MaxWeight: 30}
		require.NoError(t, repo.Update(ctx, &updated))

		deleted, err := repo.MarkOthersDeleted(ctx, []int{106, 131})
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		active, err := repo.FindActive(ctx)
		require.NoError(t, err)
		assert.Len(t, active, 2)

		ids, err := repo.IDs(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int{106, 131, 3060}, ids)

		got, err := repo.FindByID(ctx, 131)
		require.NoError(t, err)
		assert.Equal(t, "SK Slovenska posta", got.Name)
		assert.Equal(t, 30.0, got.MaxWeight)

		hasPoints, err := repo.HasPickupPoints(ctx, 3060)
		require.NoError(t, err)
		assert.True(t, hasPoints)

		countries, err := repo.Countries(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"cz", "sk"}, countries)

		_, err = repo.FindByID(ctx, 999)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("shipment upsert", func(t *testing.T) {
		testDB.CleanTables()
		repo := persistence.NewGormShipmentRepository(testDB.DB)

		now := time.Now().UTC().Truncate(time.Second)
		s := &shipment.Shipment{
			OrderID:   42,
			CarrierID: "zpointcz",
			Point:     shipment.PickupPoint{ID: "1234", Name: "Praha 4, Budejovicka"},
			Value:     decimal.RequireFromString("499.90"),
			COD:       decimal.RequireFromString("499.90"),
			Currency:  "CZK",
			Weight:    1.25,
			CreatedAt: now,
			UpdatedAt: now,
		}
		require.NoError(t, repo.Save(ctx, s))

		s.PacketID = "1234567890"
		s.IsLabelPrinted = true
		s.UpdatedAt = now.Add(time.Minute)
		require.NoError(t, repo.Save(ctx, s))

		got, err := repo.FindByOrderID(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, "1234567890", got.PacketID)
		assert.True(t, got.IsLabelPrinted)
		assert.True(t, got.Value.Equal(decimal.RequireFromString("499.90")))
		assert.Equal(t, "Praha 4, Budejovicka", got.Point.Name)

		list, err := repo.FindByOrderIDs(ctx, []int64{7, 42})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, int64(42), list[0].OrderID)
	})

	t.Run("options", func(t *testing.T) {
		testDB.CleanTables()
		repo := persistence.NewGormOptionRepository(testDB.DB)

		_, err := repo.Get(ctx, "packetery")
		assert.ErrorIs(t, err, shared.ErrNotFound)

		require.NoError(t, repo.Set(ctx, "packetery", `{"sender":"shop"}`))
		require.NoError(t, repo.Set(ctx, "packetery", `{"sender":"eshop"}`))

		value, err := repo.Get(ctx, "packetery")
		require.NoError(t, err)
		assert.JSONEq(t, `{"sender":"eshop"}`, value)

		require.NoError(t, repo.Delete(ctx, "packetery"))
		_, err = repo.Get(ctx, "packetery")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("log filter and paging", func(t *testing.T) {
		testDB.CleanTables()
		repo := persistence.NewGormLogRepository(testDB.DB)

		base := time.Now().UTC().Add(-time.Hour)
		for i := 0; i < 5; i++ {
			r := packetlog.Success(packetlog.ActionPacketSending, "Packet sent").
				ForOrder(int64(100 + i)).
				WithParam("attempt", i)
			r.Date = base.Add(time.Duration(i) * time.Minute)
			require.NoError(t, repo.Save(ctx, r))
		}
		failed := packetlog.Failure(packetlog.ActionLabelPrint, "Label print failed", "Invalid packet id")
		failed.Date = base.Add(10 * time.Minute)
		require.NoError(t, repo.Save(ctx, failed))

		records, total, err := repo.List(ctx, packetlog.Filter{Action: packetlog.ActionPacketSending, Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(5), total)
		require.Len(t, records, 2)
		assert.Equal(t, int64(104), *records[0].OrderID)
		assert.EqualValues(t, 4, records[0].Params["attempt"])

		records, total, err = repo.List(ctx, packetlog.Filter{Status: packetlog.StatusError})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Equal(t, "Invalid packet id", records[0].Error)
	})
}
