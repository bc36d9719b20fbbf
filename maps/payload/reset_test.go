package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNoDataRejectsAnyPayload(t *testing.T) {
	_, err := DecodeNoData([]byte("x"))
	assert.Error(t, err)
	_, err = DecodeNoData(nil)
	assert.NoError(t, err)
}

func TestSingleEnforcesBRRange(t *testing.T) {
	_, err := DecodeSingle([]byte("6"), true)
	assert.Error(t, err)
	v, err := DecodeSingle([]byte("3"), true)
	require.NoError(t, err)
	assert.EqualValues(t, 3, v)
}

func TestSingleWithoutRangeAcceptsAnyDigit(t *testing.T) {
	v, err := DecodeSingle([]byte("9"), false)
	require.NoError(t, err)
	assert.EqualValues(t, 9, v)
}

func TestDualEnforcesCallerRange(t *testing.T) {
	_, err := DecodeDual([]byte("25"), 1, 24)
	assert.Error(t, err)
	v, err := DecodeDual([]byte("24"), 1, 24)
	require.NoError(t, err)
	assert.EqualValues(t, 24, v)
}

func TestDualRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Uint8Range(3, 10).Draw(t, "v")
		body := EncodeDual(v)
		got, err := DecodeDual(body, 3, 10)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	})
}

func TestDecodeREEmptyForm(t *testing.T) {
	r, err := DecodeRE(nil)
	require.NoError(t, err)
	assert.Nil(t, r)
}

func TestEncodeREEmptyFormWhenFirmVerZero(t *testing.T) {
	body, err := EncodeRE(0, 5, 24, 3, 15)
	require.NoError(t, err)
	assert.Nil(t, body)
}

func TestEncodeDecodeRERoundTrip(t *testing.T) {
	body, err := EncodeRE(12, 3, 26, 2, 28)
	require.NoError(t, err)
	require.Len(t, body, 32)

	r, err := DecodeRE(body)
	require.NoError(t, err)
	// Each field is sliced between the literal's '/' separators (see
	// DecodeRE), so FVersion and FNumRev keep their "V-"/"R-" prefixes.
	assert.Equal(t, "CF-220M", string(r.BModel[2:9]))
	assert.Equal(t, "V-12", string(r.FVersion[:]))
	assert.Equal(t, "R-03", string(r.FNumRev[:]))
}

func TestEncodeRERejectsInvalidDay(t *testing.T) {
	_, err := EncodeRE(1, 1, 26, 2, 30) // Feb 30th
	assert.Error(t, err)
}

func TestEncodeREAcceptsFeb29InAnyYear(t *testing.T) {
	// The source's days[] table hardcodes Feb at 29 days regardless of the
	// actual year - no leap-year awareness. Reproduced verbatim.
	_, err := EncodeRE(1, 1, 25, 2, 29)
	assert.NoError(t, err)
}

func TestIARMEmptyFormOnZero(t *testing.T) {
	body := EncodeIARM(0)
	assert.Nil(t, body)
}

func TestIARMRoundTrip(t *testing.T) {
	body := EncodeIARM(42)
	v, err := DecodeIARM(body)
	require.NoError(t, err)
	assert.EqualValues(t, 42, v.Value)
}

func TestIARMClampsToNinetyNine(t *testing.T) {
	body := EncodeIARM(250)
	v, err := DecodeIARM(body)
	require.NoError(t, err)
	assert.EqualValues(t, 99, v.Value)
}
