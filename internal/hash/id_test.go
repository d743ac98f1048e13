package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	// Deterministic across calls.
	require.Equal(t, ID("BFoz5xJ67i1B"), ID("BFoz5xJ67i1B"))

	// Distinct inputs hash to distinct IDs.
	require.NotEqual(t, ID("BFoz5xJ67i1B"), ID("BFoz5xJ67i1C"))

	// The empty string has a well-defined hash too.
	require.Equal(t, ID(""), ID(""))
}
