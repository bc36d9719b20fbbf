package payload

import (
	"github.com/gavajc/MapsProto/maps/mapserr"
	"github.com/gavajc/MapsProto/maps/wire"
)

// BarrierTest is the TT-response payload: a 16-byte emitter map and an
// 8-byte receiver map, each ASCII hex, separated by literal 'M'/'R' tags.
type BarrierTest struct {
	EmitterMap  [16]byte
	ReceiverMap [8]byte
}

// DecodeTT decodes a TT-response payload: fixed length 26 ('M' + 16 hex +
// 'R' + 8 hex).
func DecodeTT(p []byte) (*BarrierTest, error) {
	if len(p) != 26 {
		return nil, mapserr.New(mapserr.MalformedPayload, "TT payload must be 26 bytes")
	}
	if p[0] != 'M' {
		return nil, mapserr.At(mapserr.MalformedPayload, "TT missing 'M' tag", 0)
	}
	if p[17] != 'R' {
		return nil, mapserr.At(mapserr.MalformedPayload, "TT missing 'R' tag", 17)
	}
	var t BarrierTest
	for i := 0; i < 16; i++ {
		if !wire.IsHexDigit(p[1+i]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "TT emitter byte not hex", 1+i)
		}
		t.EmitterMap[i] = p[1+i]
	}
	for i := 0; i < 8; i++ {
		if !wire.IsHexDigit(p[18+i]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "TT receiver byte not hex", 18+i)
		}
		t.ReceiverMap[i] = p[18+i]
	}
	return &t, nil
}

// EncodeTT is the inverse of DecodeTT.
func EncodeTT(t *BarrierTest) ([]byte, error) {
	if t == nil {
		return nil, mapserr.New(mapserr.InvalidArgument, "TT payload required")
	}
	for i, c := range t.EmitterMap {
		if !wire.IsHexDigit(c) {
			return nil, mapserr.At(mapserr.InvalidArgument, "TT emitter byte not hex", i)
		}
	}
	for i, c := range t.ReceiverMap {
		if !wire.IsHexDigit(c) {
			return nil, mapserr.At(mapserr.InvalidArgument, "TT receiver byte not hex", i)
		}
	}
	b := wire.NewBuilder(26)
	b.Byte('M').Bytes(t.EmitterMap[:]).Byte('R').Bytes(t.ReceiverMap[:])
	return b.Built(), nil
}

// BarrierAdjust is the AJ/PAS payload: a 64-byte group-of-8 receiver map
// followed by a 24-byte group-of-3 receiver map, all ASCII hex.
type BarrierAdjust struct {
	RcvMap8 [64]byte
	RcvMap3 [24]byte
}

func decodeBarrierAdjustBytes(p []byte) (*BarrierAdjust, error) {
	if len(p) != 88 {
		return nil, mapserr.New(mapserr.MalformedPayload, "barrier adjust payload must be 88 bytes")
	}
	var a BarrierAdjust
	for i := 0; i < 64; i++ {
		if !wire.IsHexDigit(p[i]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "rcv_map8 byte not hex", i)
		}
		a.RcvMap8[i] = p[i]
	}
	for i := 0; i < 24; i++ {
		if !wire.IsHexDigit(p[64+i]) {
			return nil, mapserr.At(mapserr.MalformedPayload, "rcv_map3 byte not hex", 64+i)
		}
		a.RcvMap3[i] = p[64+i]
	}
	return &a, nil
}

func encodeBarrierAdjustBytes(a *BarrierAdjust) ([]byte, error) {
	if a == nil {
		return nil, mapserr.New(mapserr.InvalidArgument, "barrier adjust payload required")
	}
	for i, c := range a.RcvMap8 {
		if !wire.IsHexDigit(c) {
			return nil, mapserr.At(mapserr.InvalidArgument, "rcv_map8 byte not hex", i)
		}
	}
	for i, c := range a.RcvMap3 {
		if !wire.IsHexDigit(c) {
			return nil, mapserr.At(mapserr.InvalidArgument, "rcv_map3 byte not hex", i)
		}
	}
	b := wire.NewBuilder(88)
	b.Bytes(a.RcvMap8[:]).Bytes(a.RcvMap3[:])
	return b.Built(), nil
}

// DecodeAJ decodes an AJ-request payload (88 bytes, inside a normal
// envelope).
func DecodeAJ(p []byte) (*BarrierAdjust, error) { return decodeBarrierAdjustBytes(p) }

// EncodeAJ is the inverse of DecodeAJ.
func EncodeAJ(a *BarrierAdjust) ([]byte, error) { return encodeBarrierAdjustBytes(a) }

// DecodePAS decodes the envelope-less PA-special frame's 88 raw bytes
// (the CR has already been stripped by the caller).
func DecodePAS(raw []byte) (*BarrierAdjust, error) { return decodeBarrierAdjustBytes(raw) }

// EncodePAS is the inverse of DecodePAS, returning the 88 raw bytes (the
// caller appends the trailing CR).
func EncodePAS(a *BarrierAdjust) ([]byte, error) { return encodeBarrierAdjustBytes(a) }
