package encoding

import (
	"fmt"
	"math"

	"github.com/venkydam/polyline/errs"
)

const (
	dataBits     = 5
	dataMask     = 0x1F
	continueMask = 0x20
)

// Alphabet maps between raw 6-bit varint chunks and a 64-symbol character
// table. Each encoded character carries 5 data bits; bit 0x20 of the raw
// chunk signals that more chunks follow.
//
// The two table instances below cover the supported wire formats; both are
// immutable after package init and safe for concurrent use.
type Alphabet struct {
	chars [64]byte
	// index maps an input byte to its raw 6-bit chunk, or -1 when the byte
	// is outside the alphabet.
	index [256]int8
}

// Flexible is the alphabet of the flexible polyline format: a URL-safe
// base64-style table with indices 0-63.
var Flexible = newAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_")

// Legacy is the alphabet of the Polyline5/Polyline6 formats: the 64
// consecutive ASCII characters 63 ('?') through 126 ('~').
var Legacy = newAlphabet(legacyChars())

func newAlphabet(chars string) *Alphabet {
	if len(chars) != 64 {
		panic(fmt.Sprintf("alphabet must contain 64 characters, got %d", len(chars)))
	}

	a := &Alphabet{}
	for i := range a.index {
		a.index[i] = -1
	}
	for i := 0; i < 64; i++ {
		a.chars[i] = chars[i]
		a.index[chars[i]] = int8(i)
	}

	return a
}

func legacyChars() string {
	var b [64]byte
	for i := range b {
		b[i] = byte(63 + i)
	}

	return string(b[:])
}

// AppendUnsigned appends the varint encoding of val to dst and returns the
// extended slice. The value is emitted least-significant 5 bits first, with
// the continuation bit set on every chunk except the last.
func (a *Alphabet) AppendUnsigned(dst []byte, val uint64) []byte {
	for val > dataMask {
		dst = append(dst, a.chars[(val&dataMask)|continueMask])
		val >>= dataBits
	}

	return append(dst, a.chars[val&dataMask])
}

// AppendSigned appends the varint encoding of val to dst using the zigzag
// transform, so small negative deltas stay short on the wire.
func (a *Alphabet) AppendSigned(dst []byte, val int64) []byte {
	// Zigzag: 0 -> 0, -1 -> 1, 1 -> 2, -2 -> 3, ...
	return a.AppendUnsigned(dst, uint64(val<<1)^uint64(val>>63)) //nolint:gosec
}

// DecodeUnsigned decodes one unsigned varint from encoded starting at pos.
// It returns the value and the index of the first character after the
// varint.
//
// Fails with errs.ErrInvalidEncodedCharacter when a character is outside the
// alphabet, and with errs.ErrExtraContinueBit when the string ends while the
// continuation bit of the last chunk is still set.
func (a *Alphabet) DecodeUnsigned(encoded string, pos int) (uint64, int, error) {
	var val uint64
	var shift uint

	for pos < len(encoded) {
		code := a.index[encoded[pos]]
		if code < 0 {
			return 0, pos, fmt.Errorf("%w: %q at index %d", errs.ErrInvalidEncodedCharacter, encoded[pos], pos)
		}
		pos++

		val |= uint64(code&dataMask) << shift
		if code&continueMask == 0 {
			return val, pos, nil
		}
		shift += dataBits
	}

	return 0, pos, errs.ErrExtraContinueBit
}

// DecodeSigned decodes one zigzag-encoded signed varint from encoded
// starting at pos.
func (a *Alphabet) DecodeSigned(encoded string, pos int) (int64, int, error) {
	uval, next, err := a.DecodeUnsigned(encoded, pos)
	if err != nil {
		return 0, next, err
	}

	val := int64(uval) //nolint:gosec
	if uval&1 != 0 {
		val = ^val
	}

	return val >> 1, next, nil
}

// Round rounds half away from zero: sign(x) * floor(|x| + 0.5).
//
// This deliberately overrides Go's default rounding so that independently
// written encoders produce byte-identical output for the same input.
func Round(x float64) int64 {
	if x < 0 {
		return -int64(math.Floor(-x + 0.5))
	}

	return int64(math.Floor(x + 0.5))
}
