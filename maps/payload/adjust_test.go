package payload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarrierTestRoundTrip(t *testing.T) {
	var tt BarrierTest
	copy(tt.EmitterMap[:], strings.Repeat("1A", 8))
	copy(tt.ReceiverMap[:], strings.Repeat("F0", 4))

	body, err := EncodeTT(&tt)
	require.NoError(t, err)
	require.Len(t, body, 26)
	assert.Equal(t, byte('M'), body[0])
	assert.Equal(t, byte('R'), body[17])

	got, err := DecodeTT(body)
	require.NoError(t, err)
	assert.Equal(t, &tt, got)
}

func TestBarrierTestRejectsMissingTags(t *testing.T) {
	bad := make([]byte, 26)
	for i := range bad {
		bad[i] = '0'
	}
	_, err := DecodeTT(bad)
	assert.Error(t, err)
}

func TestBarrierAdjustRoundTripAJ(t *testing.T) {
	var a BarrierAdjust
	copy(a.RcvMap8[:], strings.Repeat("3C", 32))
	copy(a.RcvMap3[:], strings.Repeat("09", 12))

	body, err := EncodeAJ(&a)
	require.NoError(t, err)
	require.Len(t, body, 88)
	got, err := DecodeAJ(body)
	require.NoError(t, err)
	assert.Equal(t, &a, got)
}

func TestBarrierAdjustRoundTripPAS(t *testing.T) {
	var a BarrierAdjust
	copy(a.RcvMap8[:], strings.Repeat("00", 32))
	copy(a.RcvMap3[:], strings.Repeat("FF", 12))

	body, err := EncodePAS(&a)
	require.NoError(t, err)
	got, err := DecodePAS(body)
	require.NoError(t, err)
	assert.Equal(t, &a, got)
}

func TestBarrierAdjustRejectsNonHex(t *testing.T) {
	raw := make([]byte, 88)
	for i := range raw {
		raw[i] = '0'
	}
	raw[10] = 'Z'
	_, err := DecodeAJ(raw)
	assert.Error(t, err)
}
