package maps

import (
	"github.com/gavajc/MapsProto/maps/mapserr"
	"github.com/gavajc/MapsProto/maps/payload"
	"github.com/gavajc/MapsProto/maps/wire"
)

// BuildEmptyRequest builds a bare no-payload request for any command whose
// descriptor allows it (MV, PA, AC, RF, FP, IP, IR, and the no-data forms of
// DE/EA/TT/FA/CB/RE/IA/RM).
func BuildEmptyRequest(seq uint8, cmd CommandTag) ([]byte, error) {
	d, ok := lookup(cmd)
	if !ok || !d.emptyRequestOK() {
		return nil, mapserr.New(mapserr.InvalidArgument, "command does not allow an empty request")
	}
	return buildFrame(seq, Request, cmd, nil, true)
}

// BuildEmptyResponse builds a bare no-payload response.
func BuildEmptyResponse(seq uint8, cmd CommandTag) ([]byte, error) {
	d, ok := lookup(cmd)
	if !ok || !d.emptyResponseOK() {
		return nil, mapserr.New(mapserr.InvalidArgument, "command does not allow an empty response")
	}
	return buildFrame(seq, Response, cmd, nil, true)
}

// BuildUnknownResponse builds an "NE" not-executed reply. Unlike every
// other builder, this never consults the descriptor table - an NE reply is
// legal for a command the receiver doesn't even recognize.
func BuildUnknownResponse(seq uint8, cmd CommandTag) ([]byte, error) {
	return buildFrame(seq, Unknown, cmd, nil, true)
}

// BuildBRRequest selects the baud-rate mode, 1..=5. An out-of-range mode
// clamps to 1, matching MapsProtoCreateBRRequest's frame[pos]=49 fallback.
func BuildBRRequest(seq uint8, mode uint8) ([]byte, error) {
	if mode < 1 || mode > 5 {
		mode = 1
	}
	return buildFrame(seq, Request, "BR", payload.EncodeSingle(mode), false)
}

// BuildCARequest builds the CA anomaly-limits request.
func BuildCARequest(seq uint8, limits *payload.AnomalyLimits) ([]byte, error) {
	body, err := payload.EncodeCA(limits)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Request, "CA", body, false)
}

// BuildERRequest requests a receiver count, 1..=24.
func BuildERRequest(seq uint8, n uint8) ([]byte, error) {
	if n < 1 || n > 24 {
		return nil, mapserr.New(mapserr.InvalidArgument, "ER value must be 1..24")
	}
	return buildFrame(seq, Request, "ER", payload.EncodeDual(n), false)
}

// BuildERResponse acknowledges an ER request with a single status digit.
func BuildERResponse(seq uint8, received bool) ([]byte, error) {
	v := uint8(0)
	if received {
		v = 1
	}
	return buildFrame(seq, Response, "ER", payload.EncodeSingle(v), false)
}

// BuildPRRequest sets the relay pulse time in milliseconds, clamped to 99.
func BuildPRRequest(seq uint8, msec uint8) ([]byte, error) {
	if msec > 99 {
		msec = 99
	}
	return buildFrame(seq, Request, "PR", payload.EncodeDual(msec), true)
}

// BuildSCRequest selects the scanner mode and send-time budget.
func BuildSCRequest(seq uint8, mode byte, sendTime uint16) ([]byte, error) {
	body, err := payload.EncodeSC(&payload.Scanner{Mode: mode, SendTime: sendTime})
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Request, "SC", body, false)
}

// BuildSCSpecialABCRequest builds the A/B/C sensor-map form embedded inside
// an ordinary SC request envelope (MapsProtoCreateSCSpecialRequest's first
// branch).
func BuildSCSpecialABCRequest(seq uint8, s *payload.ScannerSpecial) ([]byte, error) {
	body, err := payload.EncodeScannerSpecialABC(s)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Request, "SC", body, false)
}

// BuildSCSpecialDEHIRequest builds the envelope-less D/E/H/I reception-map
// frame: 12 raw hex bytes followed by CR (modes D/E) or CR+LF (modes H/I).
func BuildSCSpecialDEHIRequest(s *payload.ScannerSpecial) ([]byte, error) {
	body, err := payload.EncodeScannerSpecialDEHI(s)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(body)+2)
	out = append(out, body...)
	out = append(out, wire.CR)
	if s.Mode == 'H' || s.Mode == 'I' {
		out = append(out, wire.LF)
	}
	return out, nil
}

// BuildSMRequest sets the barrier work mode. elements selects the wire
// length (3, 4, or 5), matching MapsProtoCreateSMRequest's "elements" param.
func BuildSMRequest(seq uint8, elements int, w *payload.WorkMode) ([]byte, error) {
	body, err := payload.EncodeSM(elements, w)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Request, "SM", body, false)
}

// BuildSRRequest requests a receiver count, 3..=10 (both directions share
// this range; SR has no one-sided empty-payload carve-out).
func BuildSRRequest(seq uint8, dir Direction, n uint8) ([]byte, error) {
	if n < 3 || n > 10 {
		return nil, mapserr.New(mapserr.InvalidArgument, "SR value must be 3..10")
	}
	return buildFrame(seq, dir, "SR", payload.EncodeDual(n), true)
}

// BuildRHRequest/BuildRHResponse build the relay-height frame. Both
// directions share the same payload-relative 3-byte layout.
func BuildRHRequest(seq uint8, h *payload.HeightRelay) ([]byte, error) {
	body, err := payload.EncodeRH(h)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Request, "RH", body, false)
}

func BuildRHResponse(seq uint8, h *payload.HeightRelay) ([]byte, error) {
	body, err := payload.EncodeRH(h)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Response, "RH", body, false)
}

// BuildCBResponse acknowledges a CB request with a single status digit.
func BuildCBResponse(seq uint8, status bool) ([]byte, error) {
	v := uint8(0)
	if status {
		v = 1
	}
	return buildFrame(seq, Response, "CB", payload.EncodeSingle(v), true)
}

// BuildAJRequest builds the AJ barrier-adjustment request, carried inside a
// normal envelope.
func BuildAJRequest(seq uint8, a *payload.BarrierAdjust) ([]byte, error) {
	body, err := payload.EncodeAJ(a)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Request, "AJ", body, false)
}

// BuildPASRequest builds the envelope-less PA-special frame: 88 raw bytes
// followed by a bare CR, with no SOH, sequence number, or LRC.
func BuildPASRequest(a *payload.BarrierAdjust) ([]byte, error) {
	body, err := payload.EncodePAS(a)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(body)+1)
	out = append(out, body...)
	out = append(out, wire.CR)
	return out, nil
}

// BuildAPRequest builds the AP first-axis-height request.
func BuildAPRequest(seq uint8, a *payload.AxisFirstHeight) ([]byte, error) {
	body, err := payload.EncodeAP(a)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Request, "AP", body, false)
}

// BuildEJRequest builds the EJ axle-speed request.
func BuildEJRequest(seq uint8, a *payload.AxisSpeed) ([]byte, error) {
	body, err := payload.EncodeEJ(a)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Request, "EJ", body, false)
}

// BuildEMRequest builds the EM barrier-status spontaneous request.
func BuildEMRequest(seq uint8, s *payload.BarrierStatus) ([]byte, error) {
	body, err := payload.EncodeEM(s)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Request, "EM", body, false)
}

// BuildEndVehicleRequest builds an FA (reported internally as FAS once
// parsed back) or FR end-of-vehicle summary, per cmd.
func BuildEndVehicleRequest(seq uint8, cmd CommandTag, v *payload.EndVehicle) ([]byte, error) {
	if cmd != "FA" && cmd != "FR" {
		return nil, mapserr.New(mapserr.InvalidArgument, "end-of-vehicle command must be FA or FR")
	}
	body, err := payload.EncodeEndVehicle(v)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Request, cmd, body, false)
}

// BuildFailureRequest builds an FX (emitter) or PX (receiver) failure
// report, per cmd.
func BuildFailureRequest(seq uint8, cmd CommandTag, f *payload.Failure) ([]byte, error) {
	if cmd != "FX" && cmd != "PX" {
		return nil, mapserr.New(mapserr.InvalidArgument, "failure command must be FX or PX")
	}
	body, err := payload.EncodeFailure(f)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Request, cmd, body, false)
}

// BuildIARequest builds the IA composite-speed report; speed == 0 builds
// the empty no-data form.
func BuildIARequest(seq uint8, speed uint8) ([]byte, error) {
	return buildFrame(seq, Request, "IA", payload.EncodeIARM(speed), true)
}

// BuildRMRequest builds the RM composite-speed report; speed == 0 builds
// the empty no-data form.
func BuildRMRequest(seq uint8, speed uint8) ([]byte, error) {
	return buildFrame(seq, Request, "RM", payload.EncodeIARM(speed), true)
}

// BuildRERequest builds the RE reset-info request. firmVer == 0 builds the
// empty no-data form instead.
func BuildRERequest(seq uint8, firmVer, revVer, year, month, day uint8) ([]byte, error) {
	body, err := payload.EncodeRE(firmVer, revVer, year, month, day)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Request, "RE", body, true)
}

// BuildDEResponse builds the DE barrier-status response.
func BuildDEResponse(seq uint8, s *payload.BarrierStatus) ([]byte, error) {
	body, err := payload.EncodeDE(s)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Response, "DE", body, false)
}

// BuildEAResponse builds the EA height-limits response.
func BuildEAResponse(seq uint8, h *payload.Heights) ([]byte, error) {
	body, err := payload.EncodeEA(h)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Response, "EA", body, false)
}

// BuildTTResponse builds the TT barrier-test response.
func BuildTTResponse(seq uint8, t *payload.BarrierTest) ([]byte, error) {
	body, err := payload.EncodeTT(t)
	if err != nil {
		return nil, err
	}
	return buildFrame(seq, Response, "TT", body, false)
}
