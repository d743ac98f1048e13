package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/venkydam/polyline/encoding"
	"github.com/venkydam/polyline/errs"
	"github.com/venkydam/polyline/format"
)

func TestHeader_Append(t *testing.T) {
	tests := []struct {
		name   string
		header Header
		want   string
	}{
		{
			name:   "precision 5 no third dimension",
			header: Header{Precision: 5},
			want:   "BF",
		},
		{
			name:   "precision 5 altitude",
			header: Header{Precision: 5, ThirdDim: format.ThirdDimAltitude},
			want:   "BlB",
		},
		{
			name:   "precision 0",
			header: Header{Precision: 0},
			want:   "BA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.header.Append(nil, encoding.Flexible)
			require.Equal(t, tt.want, string(got))
		})
	}
}

func TestHeader_RoundTrip(t *testing.T) {
	headers := []Header{
		{Precision: 0},
		{Precision: 5},
		{Precision: 11},
		{Precision: 7, ThirdDim: format.ThirdDimLevel, ThirdDimPrecision: 0},
		{Precision: 5, ThirdDim: format.ThirdDimAltitude, ThirdDimPrecision: 2},
		{Precision: 6, ThirdDim: format.ThirdDimElevation, ThirdDimPrecision: 11},
	}

	for _, want := range headers {
		encoded := want.Append(nil, encoding.Flexible)
		got, pos, err := Parse(string(encoded), encoding.Flexible)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.Equal(t, len(encoded), pos)
	}
}

func TestParse_InvalidVersion(t *testing.T) {
	// Version varint 'C' decodes to 2, which is not FormatVersion.
	_, _, err := Parse("CF", encoding.Flexible)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderVersion)

	// Version 0.
	_, _, err = Parse("AF", encoding.Flexible)
	require.ErrorIs(t, err, errs.ErrInvalidHeaderVersion)
}

func TestParse_TruncatedOrInvalid(t *testing.T) {
	// Version only, metadata missing entirely.
	_, _, err := Parse("B", encoding.Flexible)
	require.ErrorIs(t, err, errs.ErrExtraContinueBit)

	// Metadata varint never terminates.
	_, _, err = Parse("Bl", encoding.Flexible)
	require.ErrorIs(t, err, errs.ErrExtraContinueBit)

	// Character outside the alphabet.
	_, _, err = Parse("B!", encoding.Flexible)
	require.ErrorIs(t, err, errs.ErrInvalidEncodedCharacter)
}

func TestHeader_Parameters(t *testing.T) {
	h := Header{Precision: 6, ThirdDim: format.ThirdDimLevel, ThirdDimPrecision: 3}
	params := h.Parameters()
	require.Equal(t, 6, params.Precision)
	require.Equal(t, format.ThirdDimLevel, params.ThirdDim)
	require.Equal(t, 3, params.ThirdDimPrecision)
	require.Equal(t, h, NewHeader(params))
}
