package packetlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	r, err := NewRecord(ActionLabelPrint, StatusSuccess, "Labels printed")
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.False(t, r.Date.IsZero())
	assert.NotNil(t, r.Params)

	_, err = NewRecord("bogus", StatusSuccess, "")
	assert.Error(t, err)

	_, err = NewRecord(ActionLabelPrint, "warning", "")
	assert.Error(t, err)
}

func TestFailure(t *testing.T) {
	r := Failure(ActionPacketSending, "Packet could not be created", "Invalid weight").
		ForOrder(42).
		WithParam("weight", 0)

	assert.Equal(t, StatusError, r.Status)
	assert.Equal(t, "Invalid weight", r.Error)
	require.NotNil(t, r.OrderID)
	assert.Equal(t, int64(42), *r.OrderID)
	assert.Equal(t, 0, r.Params["weight"])
}

func TestFilter_Normalize(t *testing.T) {
	f := Filter{PageSize: 500}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 100, f.PageSize)

	f = Filter{}
	f.Normalize()
	assert.Equal(t, 20, f.PageSize)
}
