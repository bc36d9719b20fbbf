package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndVehicleSmb3(t *testing.T) {
	v, err := DecodeEndVehicle([]byte("0105"))
	require.NoError(t, err)
	assert.EqualValues(t, 3, v.Smb)
	assert.EqualValues(t, 1, v.PAxes)
	assert.EqualValues(t, 5, v.NAxes)
}

func TestEndVehicleSmb1(t *testing.T) {
	v, err := DecodeEndVehicle([]byte("0105M"))
	require.NoError(t, err)
	assert.EqualValues(t, 1, v.Smb)
	assert.Equal(t, byte('M'), v.VClass)
}

func TestEndVehicleSmb1RejectsBadClass(t *testing.T) {
	_, err := DecodeEndVehicle([]byte("0105Q"))
	assert.Error(t, err)
}

func TestEndVehicleSmb2RoundTrip(t *testing.T) {
	v := &EndVehicle{
		Smb: 2, PAxes: 1, NAxes: 2,
		PAxes10: 3, NAxes10: 4, PAxes16: 5, NAxes16: 6, PAxes22: 7, NAxes22: 8,
		VClass: 'X',
	}
	body, err := EncodeEndVehicle(v)
	require.NoError(t, err)
	require.Len(t, body, 17)
	got, err := DecodeEndVehicle(body)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}

func TestEndVehicleClampsAxleCounts(t *testing.T) {
	body, err := EncodeEndVehicle(&EndVehicle{Smb: 3, PAxes: 150, NAxes: 200})
	require.NoError(t, err)
	got, err := DecodeEndVehicle(body)
	require.NoError(t, err)
	assert.EqualValues(t, 99, got.PAxes)
	assert.EqualValues(t, 99, got.NAxes)
}

func TestFailureRoundTrip(t *testing.T) {
	f := &Failure{Type: 'E', NGroup: 4, NSensor: 8}
	body, err := EncodeFailure(f)
	require.NoError(t, err)
	require.Len(t, body, 3)
	got, err := DecodeFailure(body)
	require.NoError(t, err)
	assert.Equal(t, f, got)
}

func TestFailureRejectsCountsAboveEight(t *testing.T) {
	_, err := EncodeFailure(&Failure{Type: 'R', NGroup: 9, NSensor: 0})
	assert.Error(t, err)
}

func TestAnomalyLimitsRoundTrip(t *testing.T) {
	a := &AnomalyLimits{CASensors: 12, DASensors: 34}
	body, err := EncodeCA(a)
	require.NoError(t, err)
	require.Len(t, body, 4)
	got, err := DecodeCA(body)
	require.NoError(t, err)
	assert.Equal(t, a, got)
}
