package compress

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/venkydam/polyline/format"
)

// samplePayload imitates an archive of encoded polylines joined by newlines.
func samplePayload() []byte {
	lines := []string{
		"BFoz5xJ67i1B1B7PzIhaxL7Y",
		"BlBoz5xJ67i1BU1B7PUzIhaU",
		"_p~iF~ps|U_ulLnnqC_mqNvxq`@",
	}

	var b strings.Builder
	for i := 0; i < 64; i++ {
		for _, line := range lines {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return []byte(b.String())
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xFF))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := samplePayload()

	tests := []struct {
		name  string
		codec Codec
	}{
		{name: "noop", codec: NewNoOpCompressor()},
		{name: "zstd", codec: NewZstdCompressor()},
		{name: "s2", codec: NewS2Compressor()},
		{name: "lz4", codec: NewLZ4Compressor()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := tt.codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, decompressed))
		})
	}
}

func TestCodecs_CompressRepetitivePayload(t *testing.T) {
	// Delta-encoded polyline text repeats heavily; every real codec should
	// shrink a large batch.
	payload := samplePayload()

	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload))
	}
}

func TestNoOp_SharesInput(t *testing.T) {
	payload := []byte("BFoz5xJ67i1B")
	codec := NewNoOpCompressor()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}
