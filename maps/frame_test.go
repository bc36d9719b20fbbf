package maps

import (
	"testing"

	"github.com/gavajc/MapsProto/maps/mapstrace"
	"github.com/gavajc/MapsProto/maps/payload"
	"github.com/gavajc/MapsProto/maps/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBuildParseRoundTripRequest(t *testing.T) {
	tr := mapstrace.New(t)
	tr.Enable(testing.Verbose())

	frame, err := BuildBRRequest(3, 2)
	require.NoError(t, err)
	assert.Equal(t, byte(wire.SOH), frame[0])
	assert.Equal(t, byte(wire.CR), frame[len(frame)-1])
	tr.Logf("built BR request: % X", frame)

	pf, err := Parse(frame)
	require.NoError(t, err)
	tr.Logf("parsed: seq=%d dir=%s cmd=%s payload=%v", pf.Seq, pf.Direction, pf.Cmd, pf.Payload)
	assert.EqualValues(t, 3, pf.Seq)
	assert.Equal(t, Request, pf.Direction)
	assert.Equal(t, CommandTag("BR"), pf.Cmd)
	assert.EqualValues(t, 2, pf.Payload)
}

func TestBuildParseRoundTripResponse(t *testing.T) {
	h := &payload.Heights{IMaxHeight: 10, UMaxHeight: 20, UMinHeight: 5, LMaxHeight: 99}
	frame, err := BuildEAResponse(7, h)
	require.NoError(t, err)

	pf, err := Parse(frame)
	require.NoError(t, err)
	assert.Equal(t, Response, pf.Direction)
	assert.Equal(t, CommandTag("EA"), pf.Cmd)
	assert.Equal(t, h, pf.Payload)
}

func TestBuildParseRoundTripUnknown(t *testing.T) {
	frame, err := BuildUnknownResponse(5, "ZZ")
	require.NoError(t, err)
	pf, err := Parse(frame)
	require.NoError(t, err)
	assert.Equal(t, Unknown, pf.Direction)
	assert.Equal(t, CommandTag("ZZ"), pf.Cmd)
}

func TestParseRejectsSequenceOutOfRange(t *testing.T) {
	frame, err := BuildBRRequest(0, 1)
	require.NoError(t, err)
	frame[1] = ':' // one past '9'
	// Recompute nothing - LRC will now mismatch before the seq check even
	// matters, but BadFrame is still the right error class either way.
	_, err = Parse(frame)
	assert.Error(t, err)
}

func TestParseDetectsChecksumCorruption(t *testing.T) {
	frame, err := BuildBRRequest(1, 3)
	require.NoError(t, err)
	frame[len(frame)-3] ^= 0x01 // flip a bit in the LRC's first hex digit

	_, err = Parse(frame)
	assert.ErrorContains(t, err, "checksum")
}

func TestParseRejectsShortFrame(t *testing.T) {
	_, err := Parse([]byte{wire.SOH, '0'})
	assert.Error(t, err)
}

func TestParseRejectsMissingSOH(t *testing.T) {
	frame, err := BuildBRRequest(1, 1)
	require.NoError(t, err)
	frame[0] = 'X'
	// Fix up the LRC so the SOH check, not the checksum check, is what
	// fails.
	body := frame[1 : len(frame)-3]
	lrc := wire.LRCHex(body)
	frame[len(frame)-3] = lrc[0]
	frame[len(frame)-2] = lrc[1]

	_, err = Parse(frame)
	assert.ErrorContains(t, err, "SOH")
}

func TestFAGetsRewrittenToFASWhenCarryingAPayload(t *testing.T) {
	frame, err := BuildEndVehicleRequest(2, "FA", &payload.EndVehicle{Smb: 3, PAxes: 2, NAxes: 2})
	require.NoError(t, err)
	pf, err := Parse(frame)
	require.NoError(t, err)
	assert.Equal(t, CommandTag("FAS"), pf.Cmd)
}

func TestBareFAStaysFA(t *testing.T) {
	frame, err := BuildEmptyRequest(2, "FA")
	require.NoError(t, err)
	pf, err := Parse(frame)
	require.NoError(t, err)
	assert.Equal(t, CommandTag("FA"), pf.Cmd)
}

func TestSCGetsRewrittenToSCSForEmbeddedSpecialForm(t *testing.T) {
	special := &payload.ScannerSpecial{Mode: 'A', Presence: 1, Sensors: [6]byte{'0', '0', '0', '0', '0', '0'}, SweepsNum: 3}
	frame, err := BuildSCSpecialABCRequest(4, special)
	require.NoError(t, err)

	pf, err := Parse(frame)
	require.NoError(t, err)
	assert.Equal(t, CommandTag("SCS"), pf.Cmd)
	got, ok := pf.Payload.(*payload.ScannerSpecial)
	require.True(t, ok)
	assert.EqualValues(t, 1, got.Presence)
}

func TestOrdinarySCStaysSC(t *testing.T) {
	frame, err := BuildSCRequest(4, 'D', 100)
	require.NoError(t, err)
	pf, err := Parse(frame)
	require.NoError(t, err)
	assert.Equal(t, CommandTag("SC"), pf.Cmd)
}

func TestPASSpecialFrameRecognizedByLength(t *testing.T) {
	var a payload.BarrierAdjust
	for i := range a.RcvMap8 {
		a.RcvMap8[i] = '0'
	}
	for i := range a.RcvMap3 {
		a.RcvMap3[i] = 'F'
	}
	frame, err := BuildPASRequest(&a)
	require.NoError(t, err)
	require.Len(t, frame, 89)

	pf, err := Parse(frame)
	require.NoError(t, err)
	assert.Equal(t, CommandTag("PAS"), pf.Cmd)
	assert.Equal(t, &a, pf.Payload)
}

func TestSCSpecialDModeRecognizedByLength(t *testing.T) {
	var s payload.ScannerSpecial
	s.Mode = 'D'
	for i := range s.Reception {
		s.Reception[i] = '7'
	}
	frame, err := BuildSCSpecialDEHIRequest(&s)
	require.NoError(t, err)
	require.Len(t, frame, 13)

	pf, err := Parse(frame)
	require.NoError(t, err)
	assert.Equal(t, CommandTag("SCS"), pf.Cmd)
	got := pf.Payload.(*payload.ScannerSpecial)
	assert.Equal(t, byte('D'), got.Mode)
}

func TestSCSpecialHModeRecognizedByLength(t *testing.T) {
	var s payload.ScannerSpecial
	s.Mode = 'H'
	for i := range s.Reception {
		s.Reception[i] = 'A'
	}
	frame, err := BuildSCSpecialDEHIRequest(&s)
	require.NoError(t, err)
	require.Len(t, frame, 14)

	pf, err := Parse(frame)
	require.NoError(t, err)
	got := pf.Payload.(*payload.ScannerSpecial)
	assert.Equal(t, byte('H'), got.Mode)
}

func TestBuildRejectsSequenceAboveNine(t *testing.T) {
	_, err := BuildBRRequest(10, 1)
	assert.Error(t, err)
}

func TestBuildRejectsEmptyPayloadWhenNotAllowed(t *testing.T) {
	_, err := buildFrame(0, Request, "ER", nil, false)
	assert.Error(t, err)
}

func TestEnvelopeRoundTripIsLossless(t *testing.T) {
	tr := mapstrace.New(t)
	tr.Enable(testing.Verbose())

	rapid.Check(t, func(t *rapid.T) {
		seq := rapid.Uint8Range(0, 9).Draw(t, "seq")
		n := rapid.Uint8Range(1, 24).Draw(t, "n")

		frame, err := BuildERRequest(seq, n)
		require.NoError(t, err)
		tr.Logf("seq=%d n=%d frame=% X", seq, n, frame)

		pf, err := Parse(frame)
		require.NoError(t, err)
		assert.Equal(t, seq, pf.Seq)
		assert.Equal(t, n, pf.Payload)
	})
}
