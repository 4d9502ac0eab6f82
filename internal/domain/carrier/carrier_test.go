package carrier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarrier_Validate(t *testing.T) {
	tests := []struct {
		name    string
		carrier Carrier
		wantErr bool
	}{
		{"valid", Carrier{ID: 106, Name: "CZ Home delivery", Country: "cz"}, false},
		{"zero id", Carrier{Name: "x", Country: "cz"}, true},
		{"blank name", Carrier{ID: 1, Name: "  ", Country: "cz"}, true},
		{"bad country", Carrier{ID: 1, Name: "x", Country: "cze"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.carrier.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCarrier_AcceptsWeight(t *testing.T) {
	c := Carrier{MaxWeight: 10}
	assert.True(t, c.AcceptsWeight(10))
	assert.False(t, c.AcceptsWeight(10.5))
	assert.True(t, (&Carrier{}).AcceptsWeight(100))
}

func TestZpointCarriers(t *testing.T) {
	z := ZpointCarriers()
	require.Len(t, z, 4)
	assert.Equal(t, Option{ID: "zpointcz", Name: "CZ Packeta pickup points", IsPickupPoints: true, Country: "cz"}, z["cz"])
	assert.Equal(t, "zpointro", z["ro"].ID)

	assert.True(t, IsZpointID("zpointhu"))
	assert.False(t, IsZpointID("zpointpl"))
	assert.False(t, IsZpointID("106"))
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("106")
	assert.True(t, ok)
	assert.Equal(t, 106, id)

	for _, bad := range []string{"", "zpointcz", "-3", "0"} {
		_, ok := ParseID(bad)
		assert.False(t, ok, bad)
	}
}

func TestWithZpoints(t *testing.T) {
	carriers := []Carrier{{ID: 106, Name: "CZ Home", Country: "cz"}}

	all := WithZpoints(carriers)
	require.Len(t, all, 5)
	ids := make([]string, len(all))
	for i := range all {
		ids[i] = all[i].ID
	}
	assert.Equal(t, []string{"zpointro", "zpointhu", "zpointsk", "zpointcz", "106"}, ids)

	cz := WithCountryZpoint("CZ", carriers)
	require.Len(t, cz, 2)
	assert.Equal(t, "zpointcz", cz[0].ID)

	pl := WithCountryZpoint("pl", []Carrier{{ID: 3060, Name: "PL InPost", Country: "pl"}})
	require.Len(t, pl, 1)
	assert.Equal(t, "3060", pl[0].ID)
}
