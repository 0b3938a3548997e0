package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(`{"data_columns":["total_sqft","bath","bhk","Indiranagar","whitefield","indiranagar"]}`))
	require.NoError(t, err)
	assert.Equal(t, 6, m.Len())
	assert.Equal(t, []string{"indiranagar", "whitefield", "indiranagar"}, m.Locations())

	idx, ok := m.LocationIndex("  INDIRANAGAR ")
	require.True(t, ok)
	assert.Equal(t, 3, idx, "first occurrence wins")

	idx, ok = m.LocationIndex("Whitefield")
	require.True(t, ok)
	assert.Equal(t, 4, idx)

	_, ok = m.LocationIndex("nowhere")
	assert.False(t, ok)
}

func TestManifest_NumericColumnsAreNotLocations(t *testing.T) {
	m, err := NewManifest([]string{"total_sqft", "bath", "bhk", "hebbal"})
	require.NoError(t, err)
	for _, name := range []string{"total_sqft", "bath", "bhk"} {
		_, ok := m.LocationIndex(name)
		assert.False(t, ok, name)
	}
}

func TestManifest_ColumnsCopy(t *testing.T) {
	m, err := NewManifest([]string{"total_sqft", "bath", "bhk", "hebbal"})
	require.NoError(t, err)
	cols := m.Columns()
	cols[3] = "mutated"
	idx, ok := m.LocationIndex("hebbal")
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
	assert.Equal(t, "hebbal", m.Locations()[0])
}

func TestParseManifest_Errors(t *testing.T) {
	_, err := ParseManifest([]byte(`not json`))
	assert.Error(t, err)
	_, err = ParseManifest([]byte(`{"columns":["a","b","c"]}`))
	assert.ErrorContains(t, err, ManifestKey)
	_, err = ParseManifest([]byte(`{"data_columns":["a","b"]}`))
	assert.Error(t, err)
}

func TestLinearPredict(t *testing.T) {
	l, err := NewLinear([]float64{0.1, 2, 3, 50, -5}, 10)
	require.NoError(t, err)
	assert.Equal(t, 5, l.NumFeatures())

	out, err := l.Predict([][]float64{
		{2000, 2, 3, 1, 0},
		{2000, 2, 3, 0, 0},
	})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.InDelta(t, 10+200+4+9+50, out[0], 1e-9)
	assert.InDelta(t, 10+200+4+9, out[1], 1e-9)
}

func TestLinearPredict_WrongWidth(t *testing.T) {
	l, err := NewLinear([]float64{1, 2, 3}, 0)
	require.NoError(t, err)
	_, err = l.Predict([][]float64{{1, 2}})
	assert.Error(t, err)
}

func TestParseLinear_Encodings(t *testing.T) {
	cases := map[string]string{
		".json": `{"coef":[1,2,3,4],"intercept":-1.5}`,
		".yaml": "coef: [1, 2, 3, 4]\nintercept: -1.5\n",
		".toml": "coef = [1.0, 2.0, 3.0, 4.0]\nintercept = -1.5\n",
	}
	for ext, doc := range cases {
		l, err := ParseLinear([]byte(doc), ext)
		require.NoError(t, err, ext)
		assert.Equal(t, 4, l.NumFeatures(), ext)
		assert.Equal(t, -1.5, l.Intercept(), ext)
	}
}

func TestParseLinear_Errors(t *testing.T) {
	_, err := ParseLinear([]byte(`{}`), ".json")
	assert.Error(t, err, "no coefficients")
	_, err = ParseLinear([]byte(`{}`), ".pickle")
	assert.Error(t, err)
	_, err = ParseLinear([]byte(`{"coef":`), ".json")
	assert.Error(t, err)
}
