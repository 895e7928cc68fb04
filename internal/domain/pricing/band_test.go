package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sigec-api/internal/domain"
	"github.com/jhoicas/sigec-api/internal/domain/pricing"
)

func TestTranslateBand_Hijos(t *testing.T) {
	cases := []struct {
		age  int
		want pricing.BandKey
	}{
		{0, pricing.BandChild0To1},
		{1, pricing.BandChild0To1},
		{2, pricing.BandChild2To20},
		{20, pricing.BandChild2To20},
		{21, pricing.BandChild21To29},
		{29, pricing.BandChild21To29},
		{30, pricing.BandChild30To39},
		{39, pricing.BandChild30To39},
		{40, pricing.BandChild40To49},
		{49, pricing.BandChild40To49},
	}
	for _, tc := range cases {
		got, ok := pricing.TranslateBand(tc.age, pricing.RoleChild, false)
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "edad %d", tc.age)
	}
}

func TestTranslateBand_HijoMayorSeCotizaComoTitularSoltero(t *testing.T) {
	got, ok := pricing.TranslateBand(50, pricing.RoleChild, true)
	require.True(t, ok)
	assert.Equal(t, pricing.Band41To50, got, "hijo de 50 nunca lleva prefijo married aunque el titular sea casado")

	got, ok = pricing.TranslateBand(70, pricing.RoleChild, true)
	require.True(t, ok)
	assert.Equal(t, pricing.Band66Plus, got)
}

func TestTranslateBand_TitularLimitesInclusivos(t *testing.T) {
	cases := []struct {
		age     int
		single  pricing.BandKey
		married pricing.BandKey
	}{
		{0, pricing.Band0To25, pricing.BandMarried0To25},
		{25, pricing.Band0To25, pricing.BandMarried0To25},
		{26, pricing.Band26To35, pricing.BandMarried26To35},
		{35, pricing.Band26To35, pricing.BandMarried26To35},
		{36, pricing.Band36To40, pricing.BandMarried36To40},
		{40, pricing.Band36To40, pricing.BandMarried36To40},
		{41, pricing.Band41To50, pricing.BandMarried41To50},
		{50, pricing.Band41To50, pricing.BandMarried41To50},
		{51, pricing.Band51To60, pricing.BandMarried51To60},
		{60, pricing.Band51To60, pricing.BandMarried51To60},
		{61, pricing.Band61To65, pricing.BandMarried61To65},
		{65, pricing.Band61To65, pricing.BandMarried61To65},
		{66, pricing.Band66Plus, pricing.BandMarried66Plus},
		{100, pricing.Band66Plus, pricing.BandMarried66Plus},
	}
	for _, tc := range cases {
		got, ok := pricing.TranslateBand(tc.age, pricing.RoleHolder, false)
		require.True(t, ok)
		assert.Equal(t, tc.single, got, "soltero edad %d", tc.age)

		got, ok = pricing.TranslateBand(tc.age, pricing.RoleHolder, true)
		require.True(t, ok)
		assert.Equal(t, tc.married, got, "casado edad %d", tc.age)
	}
}

func TestTranslateBand_ConyugeSinBanda(t *testing.T) {
	for _, married := range []bool{true, false} {
		got, ok := pricing.TranslateBand(40, pricing.RoleSpouse, married)
		assert.False(t, ok)
		assert.Empty(t, got)
	}
}

func TestTranslateBand_SinHuecosEntre0y100(t *testing.T) {
	for _, role := range []pricing.Role{pricing.RoleHolder, pricing.RoleChild} {
		for age := 0; age <= pricing.MaxMemberAge; age++ {
			got, ok := pricing.TranslateBand(age, role, false)
			require.True(t, ok)
			assert.True(t, got.Valid(), "rol %s edad %d produjo banda %q", role, age, got)
		}
	}
}

func TestParseBandKey(t *testing.T) {
	for _, k := range pricing.AllBandKeys() {
		got, err := pricing.ParseBandKey(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := pricing.ParseBandKey("MAT 41-50")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = pricing.ParseBandKey("hijo 2-20")
	assert.Error(t, err)
}

func TestAllBandKeys_DevuelveCopia(t *testing.T) {
	keys := pricing.AllBandKeys()
	require.Len(t, keys, 19)
	keys[0] = "x"
	assert.Equal(t, pricing.BandChild0To1, pricing.AllBandKeys()[0])
}
