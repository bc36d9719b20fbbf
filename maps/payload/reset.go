package payload

import (
	"github.com/gavajc/MapsProto/maps/mapserr"
	"github.com/gavajc/MapsProto/maps/wire"
)

// DecodeNoData validates a payload-less command: no-data commands (DE
// request, MV, FA, PA, AC, RF, TT request, FP, IP, IR, and several
// spontaneous commands' plain acknowledgements) carry zero payload bytes
// regardless of direction.
func DecodeNoData(p []byte) (struct{}, error) {
	if len(p) != 0 {
		return struct{}{}, mapserr.New(mapserr.MalformedPayload, "expected no payload")
	}
	return struct{}{}, nil
}

// EncodeNoData always succeeds with an empty payload.
func EncodeNoData() []byte { return nil }

// DecodeSingle decodes a one-byte numeric payload (BR request, ER
// response, CB response). brRange restricts the decoded value to '1'..'5'
// when true (the BR case); otherwise any single digit is accepted as-is.
func DecodeSingle(p []byte, brRange bool) (uint8, error) {
	if len(p) != 1 {
		return 0, mapserr.New(mapserr.MalformedPayload, "expected a single payload byte")
	}
	if brRange && (p[0] < '1' || p[0] > '5') {
		return 0, mapserr.At(mapserr.MalformedPayload, "BR value out of range", 0)
	}
	return p[0] - '0', nil
}

// EncodeSingle is the inverse of DecodeSingle.
func EncodeSingle(v uint8) []byte {
	return []byte{wire.Digit(v)}
}

// DecodeDual decodes a two-digit numeric payload shared by ER-request and
// SR (both directions). low/high enforce the command-specific range (ER:
// 1..24; SR: 3..10).
func DecodeDual(p []byte, low, high uint8) (uint8, error) {
	if len(p) != 2 {
		return 0, mapserr.New(mapserr.MalformedPayload, "expected a two-digit payload")
	}
	if !wire.IsDigit(p[0]) || !wire.IsDigit(p[1]) {
		return 0, mapserr.New(mapserr.MalformedPayload, "expected two ASCII digits")
	}
	v := wire.ParseDigit2(p, 0)
	if v < low || v > high {
		return 0, mapserr.New(mapserr.MalformedPayload, "value out of range")
	}
	return v, nil
}

// EncodeDual is the inverse of DecodeDual.
func EncodeDual(v uint8) []byte {
	d := wire.Digit2(v)
	return d[:]
}

// Reset is the RE payload carried on the request direction (spec.md §9:
// spec.md's own prose heading calls this the "response form", but the
// source descriptor table and spec.md's own worked example both put the
// 39-byte reset-info form on the request wire; see DESIGN.md). The
// no-data request form (7 bytes on the wire) decodes to a nil *Reset.
type Reset struct {
	BModel   [9]byte
	FVersion [4]byte
	FNumRev  [4]byte
	VerDate  [8]byte
}

// DecodeRE decodes an RE-request payload: length 0 (no-data form, the
// caller reports a nil *Reset) or 32 (the fixed-offset reset-info form).
// The fields are sliced at fixed offsets of the "/32CF-220M/V-nn/R-nn/D-dd-mm-yy/"
// layout that EncodeRE emits; each slice lies between two '/' separators
// and excludes them (BModel "32CF-220M", FVersion "V-nn", FNumRev "R-nn",
// VerDate "dd-mm-yy").
func DecodeRE(p []byte) (*Reset, error) {
	if len(p) == 0 {
		return nil, nil
	}
	if len(p) != 32 {
		return nil, mapserr.New(mapserr.MalformedPayload, "RE payload must be 0 or 32 bytes")
	}
	var r Reset
	copy(r.BModel[:], p[1:10])
	copy(r.FVersion[:], p[11:15])
	copy(r.FNumRev[:], p[16:20])
	copy(r.VerDate[:], p[23:31])
	return &r, nil
}

// EncodeRE builds the 32-byte reset-info payload from firmware/revision
// version numbers and a date passed as separate year, month and day
// values (MapsProtoCreateRERequest packs the same date as yymmdd in
// date_ver); the date is emitted as dd-mm-yy. Passing firmVer == 0 builds the empty
// no-data form instead (returns nil, nil).
func EncodeRE(firmVer, revVer uint8, year, month, day uint8) ([]byte, error) {
	if firmVer == 0 {
		return nil, nil
	}
	if month == 0 || month > 12 {
		return nil, mapserr.New(mapserr.InvalidArgument, "RE month out of range")
	}
	daysInMonth := [12]uint8{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	if day == 0 || day > daysInMonth[month-1] {
		return nil, mapserr.New(mapserr.InvalidArgument, "RE day out of range")
	}
	clamp := func(v uint8) uint8 {
		if v > 99 {
			return 99
		}
		return v
	}
	fv, rv := wire.Digit2(clamp(firmVer)), wire.Digit2(clamp(revVer))
	dd, mm, yy := wire.Digit2(day), wire.Digit2(month), wire.Digit2(year)

	b := wire.NewBuilder(32)
	b.Byte('/').Bytes([]byte("32CF-220M")).Byte('/').Bytes([]byte("V-")).Bytes(fv[:]).Byte('/')
	b.Bytes([]byte("R-")).Bytes(rv[:]).Byte('/').Bytes([]byte("D-")).Bytes(dd[:]).Byte('-')
	b.Bytes(mm[:]).Byte('-').Bytes(yy[:]).Byte('/')
	return b.Built(), nil
}

// CompositeSpeed is the IA/RM payload: a single 0..=99 value, or no
// payload at all when the caller has nothing to report.
type CompositeSpeed struct {
	Value uint8
}

// DecodeIARM decodes an IA/RM-request payload: length 0 (no-data form,
// returns nil) or 2 (a two-digit composite value).
func DecodeIARM(p []byte) (*CompositeSpeed, error) {
	if len(p) == 0 {
		return nil, nil
	}
	if len(p) != 2 {
		return nil, mapserr.New(mapserr.MalformedPayload, "IA/RM payload must be 0 or 2 bytes")
	}
	if !wire.IsDigit(p[0]) || !wire.IsDigit(p[1]) {
		return nil, mapserr.New(mapserr.MalformedPayload, "IA/RM value not digits")
	}
	return &CompositeSpeed{Value: wire.ParseDigit2(p, 0)}, nil
}

// EncodeIARM is the inverse of DecodeIARM; speed clamps to 99. Passing 0
// builds the empty no-data form, matching MapsProtoCreateIARequest /
// MapsProtoCreateRMRequest.
func EncodeIARM(speed uint8) []byte {
	if speed == 0 {
		return nil
	}
	if speed > 99 {
		speed = 99
	}
	d := wire.Digit2(speed)
	return d[:]
}
