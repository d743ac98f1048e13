package geojson

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/venkydam/polyline/errs"
	"github.com/venkydam/polyline/format"
)

var (
	// Clockwise square ring.
	cwRing = [][]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0, 0}}
	// The same square wound counterclockwise.
	ccwRing = [][]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}
)

func TestNewLineString(t *testing.T) {
	coords := [][]float64{{8.69821, 50.10228}, {8.69567, 50.10201}}

	geometry, err := NewLineString(coords)
	require.NoError(t, err)
	require.Equal(t, TypeLineString, geometry.Type)
	require.Equal(t, coords, geometry.LineString)
}

func TestNewLineString_TooShort(t *testing.T) {
	_, err := NewLineString([][]float64{{5, 5}})
	require.ErrorIs(t, err, errs.ErrInvalidLineStringLength)

	_, err = NewLineString(nil)
	require.ErrorIs(t, err, errs.ErrInvalidLineStringLength)
}

func TestNewPolygon_WindingNormalization(t *testing.T) {
	t.Run("clockwise outer ring is reversed", func(t *testing.T) {
		geometry, err := NewPolygon([][][]float64{cwRing})
		require.NoError(t, err)
		require.Equal(t, ccwRing, geometry.Polygon[0])
	})

	t.Run("counterclockwise outer ring is unchanged", func(t *testing.T) {
		geometry, err := NewPolygon([][][]float64{ccwRing})
		require.NoError(t, err)
		require.Equal(t, ccwRing, geometry.Polygon[0])
	})

	t.Run("counterclockwise inner ring is reversed", func(t *testing.T) {
		inner := [][]float64{{2, 2}, {8, 2}, {8, 8}, {2, 8}, {2, 2}} // counterclockwise
		geometry, err := NewPolygon([][][]float64{ccwRing, inner})
		require.NoError(t, err)
		require.Equal(t, ccwRing, geometry.Polygon[0])
		require.Equal(t, [][]float64{{2, 2}, {2, 8}, {8, 8}, {8, 2}, {2, 2}}, geometry.Polygon[1])
	})

	t.Run("clockwise inner ring is unchanged", func(t *testing.T) {
		inner := [][]float64{{2, 2}, {2, 8}, {8, 8}, {8, 2}, {2, 2}} // clockwise
		geometry, err := NewPolygon([][][]float64{ccwRing, inner})
		require.NoError(t, err)
		require.Equal(t, inner, geometry.Polygon[1])
	})
}

func TestNewPolygon_TooShort(t *testing.T) {
	_, err := NewPolygon([][][]float64{{{0, 0}, {0, 10}, {0, 0}}})
	require.ErrorIs(t, err, errs.ErrInvalidPolygonLength)
}

func TestNewPolygon_NotClosed(t *testing.T) {
	open := [][]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	_, err := NewPolygon([][][]float64{open})
	require.ErrorIs(t, err, errs.ErrInvalidPolygonClosure)

	// A later ring fails too, even when the first one is fine.
	_, err = NewPolygon([][][]float64{ccwRing, open})
	require.ErrorIs(t, err, errs.ErrInvalidPolygonClosure)
}

func TestNewPolygon_ClosureEpsilon(t *testing.T) {
	// First and last positions differ by less than the epsilon.
	nearlyClosed := [][]float64{{0, 0}, {0, 10}, {10, 10}, {10, 0}, {0.0000005, 0}}
	_, err := NewPolygon([][][]float64{nearlyClosed})
	require.NoError(t, err)
}

func TestGeometry_MarshalJSON(t *testing.T) {
	geometry, err := NewLineString([][]float64{{8.5, 50.25}, {8.75, 50.5}})
	require.NoError(t, err)

	text, err := json.Marshal(geometry)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"LineString","coordinates":[[8.5,50.25],[8.75,50.5]]}`, string(text))

	polygon, err := NewPolygon([][][]float64{ccwRing})
	require.NoError(t, err)

	text, err = json.Marshal(polygon)
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"Polygon","coordinates":[[[0,0],[10,0],[10,10],[0,10],[0,0]]]}`, string(text))
}

func TestNewFeature_Properties2D(t *testing.T) {
	geometry, err := NewLineString([][]float64{{8.5, 50.25}, {8.75, 50.5}})
	require.NoError(t, err)

	feature := NewFeature(geometry, format.CompressionParameters{Precision: 7})
	require.Equal(t, "Feature", feature.Type)
	require.Equal(t, map[string]any{"precision": 7}, feature.Properties)
	require.Same(t, geometry, feature.Geometry)
}

func TestNewFeature_Properties3D(t *testing.T) {
	geometry, err := NewLineString([][]float64{{8.5, 50.25, 1}, {8.75, 50.5, 2}})
	require.NoError(t, err)

	feature := NewFeature(geometry, format.CompressionParameters{
		Precision:         5,
		ThirdDim:          format.ThirdDimElevation,
		ThirdDimPrecision: 2,
	})
	require.Equal(t, map[string]any{
		"precision":               5,
		"thirdDimensionPrecision": 2,
		"thirdDimensionType":      "elevation",
	}, feature.Properties)
}

func TestFeature_MarshalJSON(t *testing.T) {
	geometry, err := NewLineString([][]float64{{8.5, 50.25}, {8.75, 50.5}})
	require.NoError(t, err)

	feature := NewFeature(geometry, format.CompressionParameters{Precision: 5})
	text, err := json.Marshal(feature)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "Feature",
		"properties": {"precision": 5},
		"geometry": {"type":"LineString","coordinates":[[8.5,50.25],[8.75,50.5]]}
	}`, string(text))
}
